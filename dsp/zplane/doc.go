// Package zplane models a discrete-time filter as placed zeros and poles in
// the z-plane and derives everything a design tool needs from that single
// description: polynomial coefficients, the complex frequency response on the
// unit circle, and a numerically stable impulse response.
//
// The transfer function of a [Filter] is
//
//	H(z) = gain * z^-delay * Π(1 - zi/z) / Π(1 - pi/z)
//
// where zi ranges over the zeros and pi over the poles. Positive delay acts
// as pure-delay poles at the origin, negative delay as pure-advance zeros.
//
// A Filter is an explicitly passed value; no package state is shared between
// calls, so every derived quantity is a pure function of the description it
// is handed. Derived values are recomputed on each query and never cached.
package zplane
