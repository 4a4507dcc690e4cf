package cp6

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// ============================================================================
// CP6 Pairing Tests
//
// These use a from-scratch toy CP6-shaped tower rather than the real
// SW6-782 parameters: no concrete Miller-loop scalar (x) or final-exponent
// split (w0, w1) for the real curve is available anywhere in the source
// material (original_source's own pairing test leaves this commented out
// with mismatched placeholder constants). See DESIGN.md's "Open Question
// resolutions" for how these toy parameters were derived: p = 19, cubic
// non-residue alpha = 2, curve y^2 = x^3 + 4 over Fq (order 21 = 3*7), its
// quadratic twist over Fq3 via tau = u (order 6916 = 4*7*13*19), and the
// order-7 subgroup generators P, Q below. x = |t-1| = 2 (t = -1 is E's
// trace), and w0/w1 solve w1*p + w0 = (p^6-1)/(r*(p^3-1)(p+1)) exactly, so
// the hard part of final exponentiation raises alpha to precisely that
// exponent by construction.
// ============================================================================

func toyCP6(t *testing.T) (*CP6, *G1, *G2) {
	t.Helper()

	field := NewFqContext(big.NewInt(19))
	alpha := FqFromInt64(field, 2)
	fq3Ctx := NewFq3Ctx(field, alpha)
	fq6Ctx, err := NewExtension2Over3(field.Modulus, fq3Ctx)
	require.NoError(t, err)

	curve := NewCurve(field, FqZero(field), FqFromInt64(field, 4))
	twistB := NewFq3(fq3Ctx, FqFromInt64(field, 8), FqZero(field), FqZero(field))
	twist := NewTwist(fq3Ctx, Fq3Zero(fq3Ctx), twistB)
	tau := NewFq3(fq3Ctx, FqZero(field), FqOne(field), FqZero(field))

	engine := NewCP6(CP6Params{
		X: big.NewInt(2), XIsNegative: true,
		W0: big.NewInt(11), W0IsNegative: false,
		W1:         big.NewInt(2),
		Curve:      curve,
		CurveTwist: twist,
		Twist:      tau,
		Fq3Ctx:     fq3Ctx,
		Fq6Ctx:     fq6Ctx,
	}, nil)

	p, err := NewG1(curve, FqFromInt64(field, 11), FqFromInt64(field, 10))
	require.NoError(t, err)

	q, err := NewG2(twist, NewFq3(fq3Ctx, FqFromInt64(field, 2), FqZero(field), FqZero(field)),
		NewFq3(fq3Ctx, FqFromInt64(field, 15), FqZero(field), FqZero(field)))
	require.NoError(t, err)

	return engine, p, q
}

const toySubgroupOrder = 7

func TestCP6GeneratorsHaveExpectedOrder(t *testing.T) {
	_, p, q := toyCP6(t)
	require.True(t, p.ScalarMult(big.NewInt(toySubgroupOrder)).Infinity)
	require.True(t, q.ScalarMult(big.NewInt(toySubgroupOrder)).Infinity)
	for k := int64(1); k < toySubgroupOrder; k++ {
		require.False(t, p.ScalarMult(big.NewInt(k)).Infinity)
		require.False(t, q.ScalarMult(big.NewInt(k)).Infinity)
	}
}

func TestCP6PairWithInfinityIsOne(t *testing.T) {
	engine, p, q := toyCP6(t)

	result, ok := engine.Pair([]*G1{G1Infinity(p.Curve)}, []*G2{q})
	require.True(t, ok)
	require.True(t, result.IsOne())

	result, ok = engine.Pair([]*G1{p}, []*G2{G2Infinity(q.Twist)})
	require.True(t, ok)
	require.True(t, result.IsOne())
}

func TestCP6PairIsNonDegenerate(t *testing.T) {
	engine, p, q := toyCP6(t)
	result, ok := engine.Pair([]*G1{p}, []*G2{q})
	require.True(t, ok)
	require.False(t, result.IsOne())
}

func TestCP6PairResultHasOrderR(t *testing.T) {
	engine, p, q := toyCP6(t)
	result, ok := engine.Pair([]*G1{p}, []*G2{q})
	require.True(t, ok)
	require.True(t, result.Pow(big.NewInt(toySubgroupOrder)).IsOne())
}

func TestCP6PairBilinearInG1(t *testing.T) {
	engine, p, q := toyCP6(t)
	base, ok := engine.Pair([]*G1{p}, []*G2{q})
	require.True(t, ok)

	doubled, ok := engine.Pair([]*G1{p.ScalarMult(big.NewInt(2))}, []*G2{q})
	require.True(t, ok)
	require.True(t, doubled.Equal(base.Mul(base)))
}

func TestCP6PairBilinearInG2(t *testing.T) {
	engine, p, q := toyCP6(t)
	base, ok := engine.Pair([]*G1{p}, []*G2{q})
	require.True(t, ok)

	doubled, ok := engine.Pair([]*G1{p}, []*G2{q.ScalarMult(big.NewInt(2))})
	require.True(t, ok)
	require.True(t, doubled.Equal(base.Mul(base)))
}

func TestCP6PairBilinearGeneral(t *testing.T) {
	engine, p, q := toyCP6(t)
	base, ok := engine.Pair([]*G1{p}, []*G2{q})
	require.True(t, ok)

	lhs, ok := engine.Pair([]*G1{p.ScalarMult(big.NewInt(3))}, []*G2{q.ScalarMult(big.NewInt(5))})
	require.True(t, ok)
	rhs := base.Pow(big.NewInt(15))
	require.True(t, lhs.Equal(rhs))
}

func TestCP6MultiPairEqualsProductOfSeparatePairs(t *testing.T) {
	engine, p, q := toyCP6(t)
	p2 := p.ScalarMult(big.NewInt(2))
	q2 := q.ScalarMult(big.NewInt(3))

	multi, ok := engine.Pair([]*G1{p, p2}, []*G2{q, q2})
	require.True(t, ok)

	e1, ok := engine.Pair([]*G1{p}, []*G2{q})
	require.True(t, ok)
	e2, ok := engine.Pair([]*G1{p2}, []*G2{q2})
	require.True(t, ok)

	require.True(t, multi.Equal(e1.Mul(e2)))
}

func TestCP6CheckAcceptsBalancedPairs(t *testing.T) {
	engine, p, q := toyCP6(t)
	// e(P, Q) * e(-P, Q) == 1.
	require.True(t, engine.Check([]*G1{p, p.Neg()}, []*G2{q, q}))
}

func TestCP6CheckRejectsUnbalancedPairs(t *testing.T) {
	engine, p, q := toyCP6(t)
	require.False(t, engine.Check([]*G1{p}, []*G2{q}))
}

func TestCP6MillerLoopTruncatesToShorterSlice(t *testing.T) {
	engine, p, q := toyCP6(t)
	p2 := p.ScalarMult(big.NewInt(2))

	full, ok := engine.Pair([]*G1{p, p2}, []*G2{q})
	require.True(t, ok)

	single, ok := engine.Pair([]*G1{p}, []*G2{q})
	require.True(t, ok)

	require.True(t, full.Equal(single))
}
