package cp6

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// ============================================================================
// Fq6 Tests (toy tower: see fq3_test.go)
// ============================================================================

func toyFq6Ctx(t *testing.T) *Extension2Over3 {
	t.Helper()
	fq3Ctx := toyFq3Ctx()
	ctx, err := NewExtension2Over3(fq3Ctx.Base.Modulus, fq3Ctx)
	require.NoError(t, err)
	return ctx
}

func toyFq6(ctx *Extension2Over3, a, b *Fq3) *Fq6 { return NewFq6(ctx, a, b) }

func TestFq6MulMatchesKaratsubaDefinition(t *testing.T) {
	ctx := toyFq6Ctx(t)
	a := toyFq6(ctx, toyFq3(ctx.Field, 3, 1, 4), toyFq3(ctx.Field, 1, 5, 9))
	b := toyFq6(ctx, toyFq3(ctx.Field, 2, 6, 5), toyFq3(ctx.Field, 3, 5, 8))

	got := a.Mul(b)

	// Direct definition: (a0+a1 v)(b0+b1 v) = a0 b0 + xi a1 b1 + (a0 b1 + a1 b0) v.
	want0 := a.a.Mul(b.a).Add(ctx.MultiplyByNonResidue(a.b.Mul(b.b)))
	want1 := a.a.Mul(b.b).Add(a.b.Mul(b.a))
	require.True(t, got.a.Equal(want0))
	require.True(t, got.b.Equal(want1))
}

func TestFq6SquareMatchesMul(t *testing.T) {
	ctx := toyFq6Ctx(t)
	a := toyFq6(ctx, toyFq3(ctx.Field, 9, 2, 13), toyFq3(ctx.Field, 4, 7, 1))
	require.True(t, a.Square().Equal(a.Mul(a)))
}

func TestFq6InverseRoundTrip(t *testing.T) {
	ctx := toyFq6Ctx(t)
	a := toyFq6(ctx, toyFq3(ctx.Field, 5, 12, 3), toyFq3(ctx.Field, 8, 0, 17))
	inv, ok := a.Inverse()
	require.True(t, ok)
	require.True(t, a.Mul(inv).IsOne())
}

func TestFq6InverseOfZeroFails(t *testing.T) {
	ctx := toyFq6Ctx(t)
	_, ok := Fq6Zero(ctx).Inverse()
	require.False(t, ok)
}

func TestFq6PowMatchesRepeatedSquareMultiply(t *testing.T) {
	ctx := toyFq6Ctx(t)
	a := toyFq6(ctx, toyFq3(ctx.Field, 2, 3, 4), toyFq3(ctx.Field, 5, 1, 0))

	got := a.Pow(big.NewInt(13))
	want := Fq6One(ctx)
	for i := 0; i < 13; i++ {
		want = want.Mul(a)
	}
	require.True(t, got.Equal(want))
}

func TestFq6CyclotomicExpMatchesPow(t *testing.T) {
	ctx := toyFq6Ctx(t)
	a := toyFq6(ctx, toyFq3(ctx.Field, 2, 3, 4), toyFq3(ctx.Field, 5, 1, 0))
	e := big.NewInt(11)
	require.True(t, a.CyclotomicExp(e).Equal(a.Pow(e)))
}

func TestFq6FrobeniusMapMatchesPow(t *testing.T) {
	ctx := toyFq6Ctx(t)
	a := toyFq6(ctx, toyFq3(ctx.Field, 6, 13, 9), toyFq3(ctx.Field, 2, 0, 5))
	p := ctx.Field.Base.Modulus

	got := a.FrobeniusMap(1)
	want := a.Pow(p)
	require.True(t, got.Equal(want))
}

func TestFq6ConjugatePanics(t *testing.T) {
	ctx := toyFq6Ctx(t)
	a := Fq6One(ctx)
	require.Panics(t, func() { a.Conjugate() })
}

func TestFq6ZeroOneIdentities(t *testing.T) {
	ctx := toyFq6Ctx(t)
	a := toyFq6(ctx, toyFq3(ctx.Field, 6, 13, 9), toyFq3(ctx.Field, 2, 0, 5))
	require.True(t, a.Mul(Fq6One(ctx)).Equal(a))
	require.True(t, a.Add(Fq6Zero(ctx)).Equal(a))
	require.True(t, Fq6One(ctx).IsOne())
	require.True(t, Fq6Zero(ctx).IsZero())
}
