// Package cp6 implements the arithmetic tower and bilinear pairing engine
// for the CP6/SW6 family of pairing-friendly curves: a prime field Fq, its
// cubic extension Fq3 = Fq[u]/(u³-α), the degree-6 extension
// Fq6 = Fq3[v]/(v²-ξ), and a Miller-loop-and-final-exponentiation pairing
// engine (CP6) over a curve of embedding degree 6.
//
// The package is single-threaded and allocation-only: no operation blocks,
// schedules, or performs I/O. Field and extension descriptors
// (FqContext, Fq3Ctx, Extension2Over3) are constructed once and shared
// read-only by every element and by the pairing engine; they may be read
// concurrently from multiple goroutines, but individual element values are
// not safe to mutate across goroutines without external synchronization.
package cp6
