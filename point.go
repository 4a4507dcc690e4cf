package cp6

import "math/big"

// Curve describes the base-field Weierstraß curve y² = x³ + a·x + b that
// G1 points live on (§3 Data Model).
type Curve struct {
	Field *FqContext
	A, B  *Fq
}

// NewCurve builds a G1 curve descriptor.
func NewCurve(field *FqContext, a, b *Fq) *Curve { return &Curve{Field: field, A: a, B: b} }

// G1 is an affine point on Curve, or the point at infinity. §9's design
// note calls for a tagged Infinity/Affine(x,y) representation rather than
// an X=Y=0 sentinel, which is ambiguous with the valid affine point (0,0)
// on curves where b=0.
type G1 struct {
	Infinity bool
	X, Y     *Fq
	Curve    *Curve
}

// G1Infinity returns the point at infinity on curve.
func G1Infinity(curve *Curve) *G1 { return &G1{Infinity: true, Curve: curve} }

// NewG1 builds an affine point and validates it against the curve equation.
func NewG1(curve *Curve, x, y *Fq) (*G1, error) {
	p := &G1{X: x, Y: y, Curve: curve}
	if !p.IsOnCurve() {
		return nil, ErrInvalidPoint
	}
	return p, nil
}

// IsOnCurve checks y² = x³ + a·x + b (true for the point at infinity).
func (p *G1) IsOnCurve() bool {
	if p.Infinity {
		return true
	}
	y2 := p.Y.Square()
	x3 := p.X.Square().Mul(p.X).Add(p.Curve.A.Mul(p.X)).Add(p.Curve.B)
	return y2.Equal(x3)
}

// Equal reports whether p == q.
func (p *G1) Equal(q *G1) bool {
	if p.Infinity || q.Infinity {
		return p.Infinity == q.Infinity
	}
	return p.X.Equal(q.X) && p.Y.Equal(q.Y)
}

// Neg computes -p.
func (p *G1) Neg() *G1 {
	if p.Infinity {
		return p
	}
	return &G1{X: p.X.Copy(), Y: p.Y.Neg(), Curve: p.Curve}
}

// Copy returns a deep copy.
func (p *G1) Copy() *G1 {
	if p.Infinity {
		return G1Infinity(p.Curve)
	}
	return &G1{X: p.X.Copy(), Y: p.Y.Copy(), Curve: p.Curve}
}

// Double computes 2p.
func (p *G1) Double() *G1 {
	if p.Infinity || p.Y.IsZero() {
		return G1Infinity(p.Curve)
	}
	x2 := p.X.Square()
	num := x2.Double().Add(x2).Add(p.Curve.A)
	denInv, ok := p.Y.Double().Inverse()
	if !ok {
		return G1Infinity(p.Curve)
	}
	lambda := num.Mul(denInv)
	x3 := lambda.Square().Sub(p.X).Sub(p.X)
	y3 := p.X.Sub(x3).Mul(lambda).Sub(p.Y)
	return &G1{X: x3, Y: y3, Curve: p.Curve}
}

// Add computes p + q using affine addition.
func (p *G1) Add(q *G1) *G1 {
	if p.Infinity {
		return q.Copy()
	}
	if q.Infinity {
		return p.Copy()
	}
	if p.X.Equal(q.X) {
		if p.Y.Equal(q.Y) {
			return p.Double()
		}
		return G1Infinity(p.Curve)
	}
	dy := q.Y.Sub(p.Y)
	dx := q.X.Sub(p.X)
	dxInv, ok := dx.Inverse()
	if !ok {
		return G1Infinity(p.Curve)
	}
	lambda := dy.Mul(dxInv)
	x3 := lambda.Square().Sub(p.X).Sub(q.X)
	y3 := p.X.Sub(x3).Mul(lambda).Sub(p.Y)
	return &G1{X: x3, Y: y3, Curve: p.Curve}
}

// ScalarMult computes k*p by double-and-add.
func (p *G1) ScalarMult(k *big.Int) *G1 {
	result := G1Infinity(p.Curve)
	if k.Sign() == 0 {
		return result
	}
	base := p.Copy()
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			result = result.Add(base)
		}
		base = base.Double()
	}
	return result
}

// Twist describes the cubic-twist curve y² = x³ + A·x + B over Fq3 that G2
// points live on (§3 Data Model).
type Twist struct {
	Field *Fq3Ctx
	A, B  *Fq3
}

// NewTwist builds a G2 curve descriptor.
func NewTwist(field *Fq3Ctx, a, b *Fq3) *Twist { return &Twist{Field: field, A: a, B: b} }

// G2 is an affine point on Twist, or the point at infinity.
type G2 struct {
	Infinity bool
	X, Y     *Fq3
	Twist    *Twist
}

// G2Infinity returns the point at infinity on twist.
func G2Infinity(twist *Twist) *G2 { return &G2{Infinity: true, Twist: twist} }

// NewG2 builds an affine point and validates it against the twist equation.
func NewG2(twist *Twist, x, y *Fq3) (*G2, error) {
	p := &G2{X: x, Y: y, Twist: twist}
	if !p.IsOnCurve() {
		return nil, ErrInvalidPoint
	}
	return p, nil
}

// IsOnCurve checks y² = x³ + A·x + B (true for the point at infinity).
func (p *G2) IsOnCurve() bool {
	if p.Infinity {
		return true
	}
	y2 := p.Y.Square()
	x3 := p.X.Square().Mul(p.X).Add(p.Twist.A.Mul(p.X)).Add(p.Twist.B)
	return y2.Equal(x3)
}

// Equal reports whether p == q.
func (p *G2) Equal(q *G2) bool {
	if p.Infinity || q.Infinity {
		return p.Infinity == q.Infinity
	}
	return p.X.Equal(q.X) && p.Y.Equal(q.Y)
}

// Neg computes -p.
func (p *G2) Neg() *G2 {
	if p.Infinity {
		return p
	}
	return &G2{X: p.X.Copy(), Y: p.Y.Neg(), Twist: p.Twist}
}

// Copy returns a deep copy.
func (p *G2) Copy() *G2 {
	if p.Infinity {
		return G2Infinity(p.Twist)
	}
	return &G2{X: p.X.Copy(), Y: p.Y.Copy(), Twist: p.Twist}
}

// Double computes 2p.
func (p *G2) Double() *G2 {
	if p.Infinity || p.Y.IsZero() {
		return G2Infinity(p.Twist)
	}
	x2 := p.X.Square()
	num := x2.Double().Add(x2).Add(p.Twist.A)
	denInv, ok := p.Y.Double().Inverse()
	if !ok {
		return G2Infinity(p.Twist)
	}
	lambda := num.Mul(denInv)
	x3 := lambda.Square().Sub(p.X).Sub(p.X)
	y3 := p.X.Sub(x3).Mul(lambda).Sub(p.Y)
	return &G2{X: x3, Y: y3, Twist: p.Twist}
}

// Add computes p + q using affine addition.
func (p *G2) Add(q *G2) *G2 {
	if p.Infinity {
		return q.Copy()
	}
	if q.Infinity {
		return p.Copy()
	}
	if p.X.Equal(q.X) {
		if p.Y.Equal(q.Y) {
			return p.Double()
		}
		return G2Infinity(p.Twist)
	}
	dy := q.Y.Sub(p.Y)
	dx := q.X.Sub(p.X)
	dxInv, ok := dx.Inverse()
	if !ok {
		return G2Infinity(p.Twist)
	}
	lambda := dy.Mul(dxInv)
	x3 := lambda.Square().Sub(p.X).Sub(q.X)
	y3 := p.X.Sub(x3).Mul(lambda).Sub(p.Y)
	return &G2{X: x3, Y: y3, Twist: p.Twist}
}

// ScalarMult computes k*p by double-and-add.
func (p *G2) ScalarMult(k *big.Int) *G2 {
	result := G2Infinity(p.Twist)
	if k.Sign() == 0 {
		return result
	}
	base := p.Copy()
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			result = result.Add(base)
		}
		base = base.Double()
	}
	return result
}
