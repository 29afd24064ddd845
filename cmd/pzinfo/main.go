// Command pzinfo inspects pole/zero filter designs.
//
// Usage:
//
//	pzinfo [flags]
//
// The filter is given as comma-separated root lists in the z-plane, plus an
// optional gain and delay. pzinfo prints the transfer function, polynomial
// coefficients, stability, a magnitude response table, and the recovered
// impulse response. With -signal it also runs an input expression through the
// filter's difference equation.
//
// Examples:
//
//	pzinfo -poles "0.5" -gain 2 -delay 1
//	pzinfo -zeros "1, -1" -poles "(0.5+0.5j), (0.5-0.5j)"
//	pzinfo -poles "0.9" -signal "sin(0.2*n)" -samples 16
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/CleverlyFoolish/PoZeDSP/dsp/expr"
	"github.com/CleverlyFoolish/PoZeDSP/dsp/filter/iir"
	"github.com/CleverlyFoolish/PoZeDSP/dsp/signal"
	"github.com/CleverlyFoolish/PoZeDSP/dsp/spectrum"
	"github.com/CleverlyFoolish/PoZeDSP/dsp/zplane"
)

func main() {
	zeros := flag.String("zeros", "", "comma-separated zero locations, e.g. \"1, (0.5+0.5j)\"")
	poles := flag.String("poles", "", "comma-separated pole locations")
	gain := flag.Float64("gain", 1, "scalar gain")
	delay := flag.Int("delay", 0, "integer delay in samples (negative advances)")
	fftSize := flag.Int("fft", zplane.DefaultFFTSize, "FFT size for response and impulse tables")
	sigExpr := flag.String("signal", "", "input signal expression to filter, e.g. \"sin(0.2*n)\"")
	samples := flag.Int("samples", 16, "number of input samples when -signal is given")
	bins := flag.Int("bins", 9, "number of rows in the magnitude response table")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pzinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Inspects a pole/zero filter design.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pzinfo -poles \"0.5\" -gain 2 -delay 1\n")
		fmt.Fprintf(os.Stderr, "  pzinfo -zeros \"1, -1\" -poles \"(0.5+0.5j), (0.5-0.5j)\"\n")
		fmt.Fprintf(os.Stderr, "  pzinfo -poles \"0.9\" -signal \"sin(0.2*n)\" -samples 16\n")
	}
	flag.Parse()

	f, err := buildFilter(*zeros, *poles, *gain, *delay)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printSummary(f)
	printResponse(f, *bins)

	if err := printImpulse(f, *fftSize); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *sigExpr != "" {
		if err := printFiltered(f, *sigExpr, *samples); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

func buildFilter(zeroList, poleList string, gain float64, delay int) (zplane.Filter, error) {
	f := zplane.New()
	f.Gain = gain
	f.Delay = delay

	zs, err := zplane.ParseComplexList(zeroList)
	if err != nil {
		return zplane.Filter{}, fmt.Errorf("zeros: %w", err)
	}

	ps, err := zplane.ParseComplexList(poleList)
	if err != nil {
		return zplane.Filter{}, fmt.Errorf("poles: %w", err)
	}

	f.Zeros = zs
	f.Poles = ps

	return f, nil
}

func printSummary(f zplane.Filter) {
	numOrder, denOrder := f.Order()

	stability := "stable"
	if !f.IsStable() {
		stability = "UNSTABLE"
	}

	fmt.Println(f.TransferString())
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "zeros:\t%d\n", numOrder)
	fmt.Fprintf(w, "poles:\t%d\n", denOrder)
	fmt.Fprintf(w, "gain:\t%g\n", f.Gain)
	fmt.Fprintf(w, "delay:\t%d\n", f.Delay)
	fmt.Fprintf(w, "stability:\t%s\n", stability)
	w.Flush()
	fmt.Println()
}

func printResponse(f zplane.Filter, bins int) {
	if bins < 2 {
		bins = 2
	}

	// Sample the upper half of the unit circle: w in [0, pi].
	ws := make([]float64, bins)
	for i := range ws {
		ws[i] = math.Pi * float64(i) / float64(bins-1)
	}

	h := f.Response(ws)
	db := spectrum.MagnitudeDB(h)
	phase := spectrum.Phase(h)

	fmt.Println("magnitude response (peak-normalized):")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "w/pi\t|H| dB\tphase rad\t")
	for i, wi := range ws {
		fmt.Fprintf(w, "%.3f\t%.2f\t%.3f\t\n", wi/math.Pi, db[i], phase[i])
	}
	w.Flush()
	fmt.Println()
}

func printImpulse(f zplane.Filter, fftSize int) error {
	idx, h, err := f.ImpulseResponse(fftSize)
	if err != nil {
		return err
	}

	fmt.Printf("impulse response (FFT size %d, showing n in [-8, 8]):\n", fftSize)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "n\th[n]\t")
	for i, n := range idx {
		if n < -8 || n > 8 {
			continue
		}
		fmt.Fprintf(w, "%.0f\t%.6f\t\n", n, h[i])
	}
	w.Flush()
	fmt.Println()

	return nil
}

func printFiltered(f zplane.Filter, expression string, samples int) error {
	if samples < 1 {
		samples = 1
	}

	n := signal.IndexRange(0, samples)

	x, err := expr.Eval(expression, n)
	if err != nil {
		return err
	}

	b, a := f.RealCoefficients()

	y, err := iir.Apply(b, a, x)
	if err != nil {
		return err
	}

	y = iir.AlignDelay(y, f.Delay)

	fmt.Printf("filtered signal (x = %s):\n", expression)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "n\tx[n]\ty[n]\t")
	for i := range n {
		fmt.Fprintf(w, "%.0f\t%.6f\t%.6f\t\n", n[i], x[i], y[i])
	}
	w.Flush()

	return nil
}
