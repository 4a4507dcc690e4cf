package cp6

import "math/big"

// FqContext is the immutable descriptor shared by every Fq element: the
// prime modulus and the fixed byte width used for big-endian encoding
// (§3 Data Model, §6 Field-element byte encoding). Descriptors are
// constructed once and outlive every element that references them (§9).
type FqContext struct {
	Modulus *big.Int
	width   int // ceil(log2(modulus)/8), the big-endian encoding width
}

// NewFqContext builds a prime-field descriptor from modulus.
func NewFqContext(modulus *big.Int) *FqContext {
	byteLen := (modulus.BitLen() + 7) / 8
	return &FqContext{Modulus: new(big.Int).Set(modulus), width: byteLen}
}

// Fq is a prime-field element: a canonical residue in [0, p) plus a
// non-owning reference to its descriptor.
type Fq struct {
	n   *big.Int
	ctx *FqContext
}

// NewFq reduces n modulo the context's modulus and returns the element.
func NewFq(ctx *FqContext, n *big.Int) *Fq {
	return &Fq{n: new(big.Int).Mod(n, ctx.Modulus), ctx: ctx}
}

// FqFromInt64 builds a small Fq constant, e.g. for non-residues.
func FqFromInt64(ctx *FqContext, v int64) *Fq {
	return NewFq(ctx, big.NewInt(v))
}

// FqFromBytes decodes a big-endian fixed-width byte string per §6. Returns
// ErrInvalidEncoding if buf is not exactly the context's fixed width.
func FqFromBytes(ctx *FqContext, buf []byte) (*Fq, error) {
	if len(buf) != ctx.width {
		return nil, ErrInvalidEncoding
	}
	return NewFq(ctx, new(big.Int).SetBytes(buf)), nil
}

// Bytes encodes the element as big-endian, zero-padded to the context's
// fixed width (§6 Field-element byte encoding).
func (f *Fq) Bytes() []byte {
	out := make([]byte, f.ctx.width)
	b := f.n.Bytes()
	copy(out[f.ctx.width-len(b):], b)
	return out
}

// Context returns the element's field descriptor.
func (f *Fq) Context() *FqContext { return f.ctx }

// Copy returns a deep copy of f.
func (f *Fq) Copy() *Fq {
	return &Fq{n: new(big.Int).Set(f.n), ctx: f.ctx}
}

// BigInt returns the canonical residue as a big.Int.
func (f *Fq) BigInt() *big.Int { return new(big.Int).Set(f.n) }

// FqZero returns the additive identity in ctx.
func FqZero(ctx *FqContext) *Fq { return &Fq{n: big.NewInt(0), ctx: ctx} }

// FqOne returns the multiplicative identity in ctx.
func FqOne(ctx *FqContext) *Fq { return &Fq{n: big.NewInt(1), ctx: ctx} }

// Add computes f + g.
func (f *Fq) Add(g *Fq) *Fq {
	r := new(big.Int).Add(f.n, g.n)
	return &Fq{n: r.Mod(r, f.ctx.Modulus), ctx: f.ctx}
}

// Sub computes f - g.
func (f *Fq) Sub(g *Fq) *Fq {
	r := new(big.Int).Sub(f.n, g.n)
	return &Fq{n: r.Mod(r, f.ctx.Modulus), ctx: f.ctx}
}

// Mul computes f * g.
func (f *Fq) Mul(g *Fq) *Fq {
	r := new(big.Int).Mul(f.n, g.n)
	return &Fq{n: r.Mod(r, f.ctx.Modulus), ctx: f.ctx}
}

// Square computes f².
func (f *Fq) Square() *Fq {
	r := new(big.Int).Mul(f.n, f.n)
	return &Fq{n: r.Mod(r, f.ctx.Modulus), ctx: f.ctx}
}

// Double computes f + f.
func (f *Fq) Double() *Fq { return f.Add(f) }

// Neg computes -f.
func (f *Fq) Neg() *Fq {
	if f.IsZero() {
		return f.Copy()
	}
	return &Fq{n: new(big.Int).Sub(f.ctx.Modulus, f.n), ctx: f.ctx}
}

// Inverse computes f⁻¹ via Fermat's little theorem. Returns (nil, false)
// iff f is zero.
func (f *Fq) Inverse() (*Fq, bool) {
	if f.IsZero() {
		return nil, false
	}
	pMinus2 := new(big.Int).Sub(f.ctx.Modulus, big.NewInt(2))
	r := new(big.Int).Exp(f.n, pMinus2, f.ctx.Modulus)
	return &Fq{n: r, ctx: f.ctx}, true
}

// Pow computes f^e by left-to-right square-and-multiply.
func (f *Fq) Pow(e *big.Int) *Fq {
	result := FqOne(f.ctx)
	for i := e.BitLen() - 1; i >= 0; i-- {
		result = result.Square()
		if e.Bit(i) == 1 {
			result = result.Mul(f)
		}
	}
	return result
}

// IsZero reports whether f == 0.
func (f *Fq) IsZero() bool { return f.n.Sign() == 0 }

// Equal reports whether f == g.
func (f *Fq) Equal(g *Fq) bool { return f.n.Cmp(g.n) == 0 }
