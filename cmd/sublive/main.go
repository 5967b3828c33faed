// Command sublive plays a test tone through the sub-octave engine in
// real time and lets the parameters be changed from the keyboard.
//
// Usage:
//
//	sublive [flags]
//
// Examples:
//
//	sublive -freq 82.4 -wave square
//	sublive -preset presets/heavy.json -buffer 20ms
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cwbudde/algo-subdominant/dsp/effects/subdominant"
	"github.com/cwbudde/algo-subdominant/dsp/signal"
	"github.com/cwbudde/algo-subdominant/state"
	"github.com/ebitengine/oto/v3"
	"golang.org/x/term"
)

func main() {
	sampleRate := flag.Int("sample-rate", 48000, "output sample rate")
	buffer := flag.Duration("buffer", 40*time.Millisecond, "audio device buffer length")
	blockSize := flag.Int("block", 256, "engine block size in frames")
	waveName := flag.String("wave", "square", "source waveform: square|sine")
	freq := flag.Float64("freq", 110, "source frequency in Hz")
	amp := flag.Float64("amp", 0.2, "source peak amplitude")
	presetPath := flag.String("preset", "", "preset JSON to load at start")
	flag.Parse()

	if *blockSize < 1 {
		die("block must be >= 1")
	}

	wave, err := signal.ParseWaveform(*waveName)
	if err != nil {
		die("%v", err)
	}

	osc, err := signal.NewOscillator(wave, float64(*sampleRate), *freq, *amp)
	if err != nil {
		die("%v", err)
	}

	e, err := subdominant.New(float64(*sampleRate))
	if err != nil {
		die("engine: %v", err)
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

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   *sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatFloat32LE,
		BufferSize:   *buffer,
	})
	if err != nil {
		die("audio: %v", err)
	}
	<-ready

	s := newStream(e, osc, *blockSize)
	player := ctx.NewPlayer(s)
	player.Play()

	defer player.Close()

	if err := run(&controller{engine: e, stream: s}); err != nil {
		fmt.Fprintf(os.Stderr, "sublive: %v\n", err)
	}
}

// run owns the terminal until the user quits.
func run(c *controller) error {
	fd := int(os.Stdin.Fd())

	old, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}
	defer func() { _ = term.Restore(fd, old) }()

	keys := make(chan byte)

	go func() {
		buf := make([]byte, 1)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				close(keys)
				return
			}

			if n == 1 {
				keys <- buf[0]
			}
		}
	}()

	fmt.Print(help + "\r\n")

	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()

	for {
		select {
		case key, ok := <-keys:
			if !ok {
				return nil
			}

			quit, err := c.handle(key)
			if err != nil {
				fmt.Printf("\r\n%v\r\n", err)
			}

			if quit {
				fmt.Print("\r\n")
				return nil
			}
		case <-tick.C:
		}

		fmt.Printf("\r\x1b[K%s", c.status())
	}
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "sublive: "+format+"\n", args...)
	os.Exit(1)
}
