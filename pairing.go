package cp6

import "math/big"

// CP6 is the pairing engine for the CP6/SW6 curve family (§4.2): a Miller
// loop keyed by the signed scalar x, followed by a two-stage final
// exponentiation parameterized by w0 and w1.
type CP6 struct {
	X            *big.Int // |x|, the Miller-loop scalar magnitude
	XIsNegative  bool
	W0           *big.Int
	W0IsNegative bool
	W1           *big.Int

	BaseField  *FqContext
	Curve      *Curve
	CurveTwist *Twist
	Twist      *Fq3 // τ, the cubic twist constant relating G2 to the untwisted group
	Fq3Ctx     *Fq3Ctx
	Fq6Ctx     *Extension2Over3

	Log Logger
}

// CP6Params bundles the construction-time inputs for NewCP6 (§6
// "Descriptor construction inputs").
type CP6Params struct {
	X            *big.Int
	XIsNegative  bool
	W0           *big.Int
	W0IsNegative bool
	W1           *big.Int
	Curve        *Curve
	CurveTwist   *Twist
	Twist        *Fq3
	Fq3Ctx       *Fq3Ctx
	Fq6Ctx       *Extension2Over3
}

// NewCP6 builds a pairing engine from its parameters. log may be nil, in
// which case DefaultLogger() is used.
func NewCP6(p CP6Params, log Logger) *CP6 {
	if log == nil {
		log = DefaultLogger()
	}
	log.Debugw("cp6: engine constructed",
		"xBitLen", p.X.BitLen(), "w0BitLen", p.W0.BitLen(), "w1BitLen", p.W1.BitLen())
	return &CP6{
		X: p.X, XIsNegative: p.XIsNegative,
		W0: p.W0, W0IsNegative: p.W0IsNegative, W1: p.W1,
		BaseField: p.Curve.Field, Curve: p.Curve, CurveTwist: p.CurveTwist,
		Twist: p.Twist, Fq3Ctx: p.Fq3Ctx, Fq6Ctx: p.Fq6Ctx,
		Log: log,
	}
}

// millerLoopSingle computes the Miller-loop accumulator for a single pair
// (P, Q), per §4.2. If either point is the point at infinity the
// accumulator is the identity 1 ∈ Fq6.
func (e *CP6) millerLoopSingle(p *G1, q *G2) *Fq6 {
	if p.Infinity || q.Infinity {
		return Fq6One(e.Fq6Ctx)
	}

	px, py := p.X, p.Y
	qx, qy := q.X, q.Y

	pyTwistSquared := e.Twist.Square().MulByFp(py)

	rx, ry := qx, qy
	f := Fq6One(e.Fq6Ctx)

	foundOne := false
	for i := e.X.BitLen() - 1; i >= 0; i-- {
		bit := e.X.Bit(i) == 1
		if !foundOne {
			if bit {
				foundOne = true
			}
			continue
		}

		oldRx, oldRy := rx, ry

		// Doubling step: γ = (3·Rx² + A_twist) / (2·Ry).
		rxSquared := oldRx.Square()
		threeRx2 := rxSquared.Double().Add(rxSquared)
		num := threeRx2.Add(e.CurveTwist.A)
		denInv, ok := oldRy.Double().Inverse()
		if !ok {
			e.Log.Errorw("cp6: degenerate doubling slope", "bit", i)
			panic(ErrDegenerateLine)
		}
		gamma := num.Mul(denInv)
		gammaTwist := gamma.Mul(e.Twist)

		ell := &Fq6{
			a:   pyTwistSquared,
			b:   gamma.Mul(oldRx).Sub(oldRy).Sub(gammaTwist.MulByFp(px)),
			ctx: e.Fq6Ctx,
		}

		rx = gamma.Square().Sub(oldRx).Sub(oldRx)
		ry = oldRx.Sub(rx).Mul(gamma).Sub(oldRy)

		f = f.Square()
		f = f.Mul(ell)

		if bit {
			oldRx, oldRy = rx, ry

			// Addition step: γ = (Ry − Qy) / (Rx − Qx).
			dy := oldRy.Sub(qy)
			dx := oldRx.Sub(qx)
			dxInv, ok := dx.Inverse()
			if !ok {
				e.Log.Errorw("cp6: degenerate addition slope", "bit", i)
				panic(ErrDegenerateLine)
			}
			gamma := dy.Mul(dxInv)
			gammaTwist := gamma.Mul(e.Twist)

			ellAdd := &Fq6{
				a:   pyTwistSquared,
				b:   gamma.Mul(qx).Sub(qy).Sub(gammaTwist.MulByFp(px)),
				ctx: e.Fq6Ctx,
			}

			rx = gamma.Square().Sub(oldRx).Sub(qx)
			ry = oldRx.Sub(rx).Mul(gamma).Sub(oldRy)

			f = f.Mul(ellAdd)
		}
	}

	return f
}

// millerLoop multiplies the per-pair Miller accumulators of points[i], twists[i]
// for i in [0, min(len(points), len(twists))) (§6: unequal lengths truncate
// to the shorter, matching the source's zip behavior).
func (e *CP6) millerLoop(points []*G1, twists []*G2) *Fq6 {
	n := len(points)
	if len(twists) < n {
		n = len(twists)
	}
	f := Fq6One(e.Fq6Ctx)
	for i := 0; i < n; i++ {
		f = f.Mul(e.millerLoopSingle(points[i], twists[i]))
	}
	return f
}

// finalExponentiationPartOne computes elt^((p³-1)(p+1)) (§4.2 stage one),
// given elt and its precomputed inverse eltInv.
func (e *CP6) finalExponentiationPartOne(elt, eltInv *Fq6) *Fq6 {
	eltQ3 := elt.FrobeniusMap(3)
	eltQ3OverElt := eltQ3.Mul(eltInv)
	alpha := eltQ3OverElt.FrobeniusMap(1)
	alpha = alpha.Mul(eltQ3OverElt)
	return alpha
}

// finalExponentiationPartTwo computes the hard part of final exponentiation
// given α = elt and α⁻¹ = eltInv from stage one (§4.2 stage two).
func (e *CP6) finalExponentiationPartTwo(elt, eltInv *Fq6) *Fq6 {
	beta := elt.FrobeniusMap(1)
	w1Part := beta.CyclotomicExp(e.W1)

	var w0Part *Fq6
	if e.W0IsNegative {
		w0Part = eltInv.CyclotomicExp(e.W0)
	} else {
		w0Part = elt.CyclotomicExp(e.W0)
	}

	return w1Part.Mul(w0Part)
}

// finalExponentiation raises f to (p⁶-1)/r via the easy/hard split (§4.2).
// Returns (nil, false) iff f is zero (f⁻¹ does not exist).
func (e *CP6) finalExponentiation(f *Fq6) (*Fq6, bool) {
	fInv, ok := f.Inverse()
	if !ok {
		return nil, false
	}
	alpha := e.finalExponentiationPartOne(f, fInv)
	alphaInv := e.finalExponentiationPartOne(fInv, f)
	return e.finalExponentiationPartTwo(alpha, alphaInv), true
}

// Pair computes e(P_i, Q_i) for each elementwise pair, multiplies the
// Miller-loop outputs, and applies final exponentiation (§6 PairingEngine
// contract). Returns (nil, false) iff the Miller output is zero (the one
// domain-recoverable failure mode per §7); a degenerate line slope inside
// the Miller loop is a programmer-error precondition violation and panics
// instead of returning an error (§7).
//
// Known gap (§9 design note, deliberately unresolved): when XIsNegative is
// true, correctness requires inverting f before final exponentiation. This
// engine does not perform that inversion, matching the source exactly;
// see DESIGN.md for why this is preserved rather than silently "fixed".
// TODO: once a signed-x test vector is available to disambiguate, invert f
// here when e.XIsNegative is true.
func (e *CP6) Pair(points []*G1, twists []*G2) (*Fq6, bool) {
	f := e.millerLoop(points, twists)
	return e.finalExponentiation(f)
}

// Check reports whether the product of e(points[i], twists[i]) over all i
// equals 1 ∈ Fq6 — the batch pairing-check idiom used by EIP-197-style
// verifiers, supplementing the single-pair PairingEngine contract (§6).
// It accumulates every pair's Miller output before a single shared final
// exponentiation, rather than comparing one finalized pairing per call.
func (e *CP6) Check(points []*G1, twists []*G2) bool {
	f := e.millerLoop(points, twists)
	result, ok := e.finalExponentiation(f)
	if !ok {
		return false
	}
	return result.IsOne()
}
