// Package spectrum provides derived views of a complex frequency response.
//
// The package operates on complex response samples produced elsewhere (the
// z-plane evaluator or an FFT backend) and extracts the real-valued curves a
// plotting layer needs: magnitude, peak-normalized magnitude in dB, phase,
// unwrapped phase, and group delay.
package spectrum
