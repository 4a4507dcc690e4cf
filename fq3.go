package cp6

import "math/big"

// Fq3Ctx is the immutable descriptor for the cubic extension
// Fq3 = Fq[u]/(u³-α): the base field, the cubic non-residue α ∈ Fq, and the
// Frobenius coefficient tables c1[0..3), c2[0..3) (§3 Data Model).
type Fq3Ctx struct {
	Base  *FqContext
	Alpha *Fq // the cubic non-residue α
	C1    [3]*Fq
	C2    [3]*Fq
}

// NewFq3Ctx builds a cubic-extension descriptor and precomputes its
// Frobenius coefficient tables (§4.3: c1[k] = α^((p^k-1)/3), c2[k] = α^(2(p^k-1)/3)).
func NewFq3Ctx(base *FqContext, alpha *Fq) *Fq3Ctx {
	ctx := &Fq3Ctx{Base: base, Alpha: alpha}
	c1, c2 := frobeniusCoeffsFq3(base.Modulus, alpha)
	ctx.C1 = c1
	ctx.C2 = c2
	return ctx
}

// mulByNonResidueScalar multiplies an Fq scalar by the cubic non-residue α;
// this is the primitive the Karatsuba carries in Mul/Square/Inverse reduce
// to, since Fq3's coefficients already live in the base field (a plain
// scalar multiply rather than a quadratic-extension multiply).
func (c *Fq3Ctx) mulByNonResidueScalar(x *Fq) *Fq {
	return x.Mul(c.Alpha)
}

// Fq3 is a cubic-extension element c0 + c1·u + c2·u² with u³ = α.
type Fq3 struct {
	c0, c1, c2 *Fq
	ctx        *Fq3Ctx
}

// NewFq3 builds an element from its three coordinates.
func NewFq3(ctx *Fq3Ctx, c0, c1, c2 *Fq) *Fq3 {
	return &Fq3{c0: c0, c1: c1, c2: c2, ctx: ctx}
}

// Fq3Zero returns the additive identity.
func Fq3Zero(ctx *Fq3Ctx) *Fq3 {
	z := FqZero(ctx.Base)
	return &Fq3{c0: z, c1: FqZero(ctx.Base), c2: FqZero(ctx.Base), ctx: ctx}
}

// Fq3One returns the multiplicative identity.
func Fq3One(ctx *Fq3Ctx) *Fq3 {
	return &Fq3{c0: FqOne(ctx.Base), c1: FqZero(ctx.Base), c2: FqZero(ctx.Base), ctx: ctx}
}

// Context returns the element's descriptor.
func (f *Fq3) Context() *Fq3Ctx { return f.ctx }

// Copy returns a deep copy.
func (f *Fq3) Copy() *Fq3 {
	return &Fq3{c0: f.c0.Copy(), c1: f.c1.Copy(), c2: f.c2.Copy(), ctx: f.ctx}
}

// IsZero reports whether f == 0.
func (f *Fq3) IsZero() bool {
	return f.c0.IsZero() && f.c1.IsZero() && f.c2.IsZero()
}

// Equal reports whether f == g.
func (f *Fq3) Equal(g *Fq3) bool {
	return f.c0.Equal(g.c0) && f.c1.Equal(g.c1) && f.c2.Equal(g.c2)
}

// Add computes f + g, component-wise.
func (f *Fq3) Add(g *Fq3) *Fq3 {
	return &Fq3{c0: f.c0.Add(g.c0), c1: f.c1.Add(g.c1), c2: f.c2.Add(g.c2), ctx: f.ctx}
}

// Sub computes f - g, component-wise.
func (f *Fq3) Sub(g *Fq3) *Fq3 {
	return &Fq3{c0: f.c0.Sub(g.c0), c1: f.c1.Sub(g.c1), c2: f.c2.Sub(g.c2), ctx: f.ctx}
}

// Neg computes -f, component-wise.
func (f *Fq3) Neg() *Fq3 {
	return &Fq3{c0: f.c0.Neg(), c1: f.c1.Neg(), c2: f.c2.Neg(), ctx: f.ctx}
}

// Double computes f + f, component-wise.
func (f *Fq3) Double() *Fq3 {
	return &Fq3{c0: f.c0.Double(), c1: f.c1.Double(), c2: f.c2.Double(), ctx: f.ctx}
}

// MulByFp multiplies every coordinate by a base-field scalar.
func (f *Fq3) MulByFp(s *Fq) *Fq3 {
	return &Fq3{c0: f.c0.Mul(s), c1: f.c1.Mul(s), c2: f.c2.Mul(s), ctx: f.ctx}
}

// Mul computes f * g using Karatsuba multiplication modulo u³ = α, with
// the non-residue step a plain Fq scalar multiply.
func (f *Fq3) Mul(g *Fq3) *Fq3 {
	a := f.c0.Mul(g.c0)
	b := f.c1.Mul(g.c1)
	c := f.c2.Mul(g.c2)

	t0 := f.c1.Add(f.c2).Mul(g.c1.Add(g.c2))
	t0 = t0.Sub(b).Sub(c)
	t0 = f.ctx.mulByNonResidueScalar(t0)
	c0 := a.Add(t0)

	t1 := f.c0.Add(f.c1).Mul(g.c0.Add(g.c1))
	t1 = t1.Sub(a).Sub(b)
	c1 := f.ctx.mulByNonResidueScalar(c).Add(t1)

	t2 := f.c0.Add(f.c2).Mul(g.c0.Add(g.c2))
	c2 := t2.Sub(a).Sub(c).Add(b)

	return &Fq3{c0: c0, c1: c1, c2: c2, ctx: f.ctx}
}

// Square computes f² (naive via Mul; no dedicated cubic squaring formula
// is used here).
func (f *Fq3) Square() *Fq3 { return f.Mul(f) }

// Inverse computes f⁻¹ via the conjugate/norm method (Algorithm 8,
// "High-Speed Software Implementation of the Optimal Ate Pairing over
// Barreto-Naehrig Curves"). Returns (nil, false) iff f is zero.
func (f *Fq3) Inverse() (*Fq3, bool) {
	if f.IsZero() {
		return nil, false
	}
	c0 := f.c0.Square().Sub(f.ctx.mulByNonResidueScalar(f.c1.Mul(f.c2)))
	c1 := f.ctx.mulByNonResidueScalar(f.c2.Square()).Sub(f.c0.Mul(f.c1))
	c2 := f.c1.Square().Sub(f.c0.Mul(f.c2))

	t := f.c1.Mul(c2).Add(f.c2.Mul(c1))
	t = f.ctx.mulByNonResidueScalar(t)
	t = t.Add(f.c0.Mul(c0))

	tInv, ok := t.Inverse()
	if !ok {
		// t is the norm of a non-zero element of an integral domain;
		// it cannot be zero. Surfacing false here would contradict the
		// f.IsZero() check above.
		return nil, false
	}

	return &Fq3{c0: c0.Mul(tInv), c1: c1.Mul(tInv), c2: c2.Mul(tInv), ctx: f.ctx}, true
}

// Pow computes f^e by left-to-right square-and-multiply.
func (f *Fq3) Pow(e *big.Int) *Fq3 {
	result := Fq3One(f.ctx)
	for i := e.BitLen() - 1; i >= 0; i-- {
		result = result.Square()
		if e.Bit(i) == 1 {
			result = result.Mul(f)
		}
	}
	return result
}

// FrobeniusMap applies x ↦ x^(p^power) and returns the result as a new
// element, leaving the receiver unchanged: c0 is fixed (base-field scalars satisfy
// x^p = x) and c1, c2 are scaled by the precomputed Frobenius coefficients
// indexed mod 3.
func (f *Fq3) FrobeniusMap(power int) *Fq3 {
	k := power % 3
	return &Fq3{
		c0: f.c0.Copy(),
		c1: f.c1.Mul(f.ctx.C1[k]),
		c2: f.c2.Mul(f.ctx.C2[k]),
		ctx: f.ctx,
	}
}
