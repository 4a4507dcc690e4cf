package cp6

import "math/big"

// Extension2Over3 is the immutable descriptor for Fq6 = Fq3[v]/(v²-ξ): the
// cubic-extension field it sits over, the quadratic non-residue ξ ∈ Fq3,
// and the Frobenius coefficient table fc1[0..6) ∈ Fq (§3, §4.3).
//
// This concrete SW6 tower always takes ξ = u, the cubic indeterminate
// itself (c0=0, c1=1, c2=0), which is what licenses the rotation shortcut
// in MultiplyByNonResidue (§4.1).
type Extension2Over3 struct {
	Field      *Fq3Ctx
	NonResidue *Fq3
	Fc1        [6]*Fq
}

// NewExtension2Over3 builds the Fq6 descriptor over field, taking ξ = u and
// precomputing the Frobenius coefficient table. Returns an error if this
// tower does not satisfy the §9 narrowing that fc1[k] projects to a scalar
// in Fq (frobeniusCoeffsFq6).
func NewExtension2Over3(modulus *big.Int, field *Fq3Ctx) (*Extension2Over3, error) {
	xi := NewFq3(field, FqZero(field.Base), FqOne(field.Base), FqZero(field.Base))
	fc1, err := frobeniusCoeffsFq6(modulus, xi)
	if err != nil {
		return nil, err
	}
	return &Extension2Over3{Field: field, NonResidue: xi, Fc1: fc1}, nil
}

// MultiplyByNonResidue multiplies el by ξ = u using the structural
// rotation shortcut (§4.1): (c0,c1,c2) ↦ (α·c2, c0, c1).
func (e *Extension2Over3) MultiplyByNonResidue(el *Fq3) *Fq3 {
	return &Fq3{
		c0:  e.Field.mulByNonResidueScalar(el.c2),
		c1:  el.c0,
		c2:  el.c1,
		ctx: el.ctx,
	}
}

// Fq6 is a degree-6 extension element a + b·v with v² = ξ, a, b ∈ Fq3.
type Fq6 struct {
	a, b *Fq3
	ctx  *Extension2Over3
}

// NewFq6 builds an element from its two Fq3 coordinates.
func NewFq6(ctx *Extension2Over3, a, b *Fq3) *Fq6 {
	return &Fq6{a: a, b: b, ctx: ctx}
}

// Fq6Zero returns the additive identity.
func Fq6Zero(ctx *Extension2Over3) *Fq6 {
	return &Fq6{a: Fq3Zero(ctx.Field), b: Fq3Zero(ctx.Field), ctx: ctx}
}

// Fq6One returns the multiplicative identity.
func Fq6One(ctx *Extension2Over3) *Fq6 {
	return &Fq6{a: Fq3One(ctx.Field), b: Fq3Zero(ctx.Field), ctx: ctx}
}

// Context returns the element's descriptor.
func (f *Fq6) Context() *Extension2Over3 { return f.ctx }

// Copy returns a deep copy.
func (f *Fq6) Copy() *Fq6 { return &Fq6{a: f.a.Copy(), b: f.b.Copy(), ctx: f.ctx} }

// IsZero reports whether f == 0.
func (f *Fq6) IsZero() bool { return f.a.IsZero() && f.b.IsZero() }

// IsOne reports whether f == 1.
func (f *Fq6) IsOne() bool {
	return f.a.Equal(Fq3One(f.ctx.Field)) && f.b.IsZero()
}

// Equal reports whether f == g.
func (f *Fq6) Equal(g *Fq6) bool { return f.a.Equal(g.a) && f.b.Equal(g.b) }

// Add computes f + g, component-wise.
func (f *Fq6) Add(g *Fq6) *Fq6 { return &Fq6{a: f.a.Add(g.a), b: f.b.Add(g.b), ctx: f.ctx} }

// Sub computes f - g, component-wise.
func (f *Fq6) Sub(g *Fq6) *Fq6 { return &Fq6{a: f.a.Sub(g.a), b: f.b.Sub(g.b), ctx: f.ctx} }

// Neg computes -f, component-wise.
func (f *Fq6) Neg() *Fq6 { return &Fq6{a: f.a.Neg(), b: f.b.Neg(), ctx: f.ctx} }

// Double computes f + f, component-wise.
func (f *Fq6) Double() *Fq6 { return &Fq6{a: f.a.Double(), b: f.b.Double(), ctx: f.ctx} }

// Mul computes f * g via Karatsuba (§4.1): with A = a·a', B = b·b',
// C = (a+b)(a'+b') - A - B, the result is (A + ξ·B) + C·v.
func (f *Fq6) Mul(g *Fq6) *Fq6 {
	A := f.a.Mul(g.a)
	B := f.b.Mul(g.b)
	C := f.a.Add(f.b).Mul(g.a.Add(g.b)).Sub(A).Sub(B)

	c0 := A.Add(f.ctx.MultiplyByNonResidue(B))
	return &Fq6{a: c0, b: C, ctx: f.ctx}
}

// Square computes f² via s = a+b, p = a·b, t = ξ·p:
// c0 = s·(a + ξ·b) - p - t,  c1 = 2p  (§4.1).
func (f *Fq6) Square() *Fq6 {
	s := f.a.Add(f.b)
	p := f.a.Mul(f.b)
	t := f.ctx.MultiplyByNonResidue(p)
	aPlusXiB := f.a.Add(f.ctx.MultiplyByNonResidue(f.b))

	c0 := s.Mul(aPlusXiB).Sub(p).Sub(t)
	c1 := p.Double()
	return &Fq6{a: c0, b: c1, ctx: f.ctx}
}

// Inverse computes f⁻¹: with t = a² - ξ·b², the result is
// (a·t⁻¹) + (-b·t⁻¹)·v (§4.1). Returns (nil, false) iff f is zero.
func (f *Fq6) Inverse() (*Fq6, bool) {
	if f.IsZero() {
		return nil, false
	}
	t := f.a.Square().Sub(f.ctx.MultiplyByNonResidue(f.b.Square()))
	tInv, ok := t.Inverse()
	if !ok {
		// t is the norm of a non-zero element; it cannot be zero in an
		// integral domain. See fq3.go's Inverse for the same reasoning.
		return nil, false
	}
	return &Fq6{a: f.a.Mul(tInv), b: f.b.Neg().Mul(tInv), ctx: f.ctx}, true
}

// Pow computes f^exp by left-to-right square-and-multiply, starting from 1
// and skipping the exponent's leading zero bits (§4.1).
func (f *Fq6) Pow(exp *big.Int) *Fq6 {
	result := Fq6One(f.ctx)
	foundOne := false
	for i := exp.BitLen() - 1; i >= 0; i-- {
		if foundOne {
			result = result.Square()
		} else {
			foundOne = exp.Bit(i) == 1
		}
		if exp.Bit(i) == 1 {
			result = result.Mul(f)
		}
	}
	return result
}

// CyclotomicExp computes f^exp using the Fq6-wide square (§4.1): the
// operand has already been mapped into the cyclotomic subgroup Φ₆(p) by the
// easy part of final exponentiation, so a future implementation may
// substitute a compressed (Granger-Scott) squaring without changing this
// contract. This design uses no such compression.
func (f *Fq6) CyclotomicExp(exp *big.Int) *Fq6 { return f.Pow(exp) }

// FrobeniusMap applies x ↦ x^(p^power): Fq3.FrobeniusMap(power) to each
// coordinate, then scales c1 (here `b`) by the Fq6 Frobenius coefficient
// fc1[power%6] (§4.1).
func (f *Fq6) FrobeniusMap(power int) *Fq6 {
	a := f.a.FrobeniusMap(power)
	b := f.b.FrobeniusMap(power).MulByFp(f.ctx.Fc1[power%6])
	return &Fq6{a: a, b: b, ctx: f.ctx}
}

// Conjugate is not defined for Fq6 on this tower (§4.1, §9): the correct
// conjugate would be (c0, -c1), but the source deliberately aborts here to
// flag any caller that reaches for it, since no code path in this engine
// is supposed to need it. Panics unconditionally.
func (f *Fq6) Conjugate() *Fq6 {
	panic("cp6: Fq6.Conjugate is not defined for this tower")
}
