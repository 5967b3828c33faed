// Command subrender runs the sub-octave engine offline.
//
// Usage:
//
//	subrender [flags]
//
// The source is either a PCM WAV file (-in) or a generated tone. The
// processed audio is written to -out and a level and pitch report for
// input and output is printed.
//
// Examples:
//
//	subrender -wave square -freq 110 -out sub.wav
//	subrender -in guitar.wav -preset presets/heavy.json -out heavy.wav
//	subrender -set "SUB GLITCH AMOUNT=0.4" -set blend_amount=1 -out glitch.wav
//	subrender -list
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-subdominant/dsp/effects/subdominant"
	"github.com/cwbudde/algo-subdominant/state"
)

// overrides collects repeated -set NAME=value flags.
type overrides []override

type override struct {
	name  string
	value float64
}

func (o *overrides) String() string {
	parts := make([]string, 0, len(*o))
	for _, ov := range *o {
		parts = append(parts, fmt.Sprintf("%s=%g", ov.name, ov.value))
	}

	return strings.Join(parts, ",")
}

func (o *overrides) Set(raw string) error {
	name, value, ok := strings.Cut(raw, "=")
	if !ok {
		return fmt.Errorf("want NAME=value, got %q", raw)
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	*o = append(*o, override{name: canonicalName(name), value: v})

	return nil
}

// canonicalName lets parameter names be typed without quoting, e.g.
// sub-glitch-amount for "SUB GLITCH AMOUNT".
func canonicalName(name string) string {
	r := strings.NewReplacer("_", " ", "-", " ")
	return strings.ToUpper(strings.TrimSpace(r.Replace(name)))
}

func main() {
	inPath := flag.String("in", "", "input WAV (16, 24 or 32-bit PCM); overrides the generated tone")
	outPath := flag.String("out", "subrender.wav", "output WAV path")
	wave := flag.String("wave", "square", "generated source waveform: square|sine")
	freq := flag.Float64("freq", 110, "generated source frequency in Hz")
	amp := flag.Float64("amp", 0.3, "generated source peak amplitude")
	duration := flag.Float64("duration", 2, "generated source length in seconds")
	sampleRate := flag.Int("sample-rate", 48000, "sample rate for generated sources")
	channels := flag.Int("channels", 2, "channel count for generated sources (1 or 2)")
	blockSize := flag.Int("block", 512, "processing block size in frames")
	presetPath := flag.String("preset", "", "preset JSON to load before overrides")
	savePreset := flag.String("save-preset", "", "write the effective parameters as preset JSON")
	saveState := flag.String("save-state", "", "write the effective parameters as a binary state blob")
	loadState := flag.String("load-state", "", "restore parameters from a binary state blob")
	smoothing := flag.Bool("smooth-rectifier", false, "low-pass the rectified branch at 1591 Hz")
	list := flag.Bool("list", false, "list parameters and exit")

	var sets overrides
	flag.Var(&sets, "set", "parameter override NAME=value (repeatable)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: subrender [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Renders a source through the sub-octave engine.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *blockSize < 1 {
		die("block must be >= 1")
	}

	src, err := loadSource(sourceConfig{
		path:       *inPath,
		wave:       *wave,
		freq:       *freq,
		amp:        *amp,
		duration:   *duration,
		sampleRate: *sampleRate,
		channels:   *channels,
	})
	if err != nil {
		die("source: %v", err)
	}

	e, err := subdominant.New(float64(src.sampleRate), subdominant.WithRectifierSmoothing(*smoothing))
	if err != nil {
		die("engine: %v", err)
	}

	if *list {
		printParameters(e)
		return
	}

	if !e.SupportsLayout(len(src.channels), len(src.channels)) {
		die("unsupported channel layout: %d channels", len(src.channels))
	}

	if *loadState != "" {
		blob, err := os.ReadFile(*loadState)
		if err != nil {
			die("load state: %v", err)
		}

		if err := e.DeserializeState(blob); err != nil {
			die("load state: %v", err)
		}
	}

	if *presetPath != "" {
		p, err := state.LoadJSON(*presetPath)
		if err != nil {
			die("preset: %v", err)
		}

		if err := e.LoadPreset(p); err != nil {
			fmt.Fprintf(os.Stderr, "preset: %v\n", err)
		}
	}

	for _, ov := range sets {
		if err := e.SetParameterByName(ov.name, ov.value); err != nil {
			die("set: %v", err)
		}
	}

	out := render(e, src.channels, *blockSize)

	if err := writeWAV(*outPath, src.sampleRate, out); err != nil {
		die("write: %v", err)
	}

	if *savePreset != "" {
		if err := state.SaveJSON(*savePreset, e.Preset(strings.TrimSuffix(*savePreset, ".json"))); err != nil {
			die("save preset: %v", err)
		}
	}

	if *saveState != "" {
		blob, err := e.SerializeState()
		if err != nil {
			die("save state: %v", err)
		}

		if err := os.WriteFile(*saveState, blob, 0o644); err != nil {
			die("save state: %v", err)
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIGNAL\tRMS dBFS\tPEAK dBFS\tPITCH Hz")
	printReport(w, "input", analyze(src.channels[0], float64(src.sampleRate)))
	printReport(w, "output", analyze(out[0], float64(src.sampleRate)))
	_ = w.Flush()

	fmt.Printf("wrote %s (%d frames, %d ch, %d Hz)\n", *outPath, len(out[0]), len(out), src.sampleRate)
}

func printParameters(e *subdominant.Engine) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tRANGE\tDEFAULT")

	for _, p := range e.Parameters() {
		fmt.Fprintf(w, "%d\t%s\t%g..%g\t%s\n", p.ID, p.Name, p.Min, p.Max, p.Display)
	}

	_ = w.Flush()
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "subrender: "+format+"\n", args...)
	os.Exit(1)
}
