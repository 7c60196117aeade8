// Command noise-render renders shaped noise offline to a WAV file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cwbudde/algo-noise/analysis"
	"github.com/cwbudde/algo-noise/internal/fitcommon"
	"github.com/cwbudde/algo-noise/noise"
)

func main() {
	duration := flag.Float64("duration", 10.0, "Render duration in seconds")
	sampleRate := flag.Int("sample-rate", 48000, "Render sample rate in Hz")
	channels := flag.Int("channels", 1, "Output channels (1 or 2, mono duplicated)")
	style := flag.String("style", "vanilla", "Noise style: vanilla or rain")
	perceptual := flag.Bool("perceptual", false, "Apply perceptual loudness compensation")
	volume := flag.Float64("volume", 0.5, "Master volume 0..1")
	gains := flag.String("gains", "", "Comma-separated per-band gains 0..1, low to high (missing bands keep 0.5)")
	seed := flag.Int64("seed", 1, "Noise generator seed")
	resample := flag.Int("resample", 0, "Resample the output to this rate before writing (0 disables)")
	output := flag.String("output", "noise.wav", "Output WAV file path")
	flag.Parse()

	if *channels != 1 && *channels != 2 {
		fmt.Fprintf(os.Stderr, "Error: -channels must be 1 or 2, got %d\n", *channels)
		os.Exit(1)
	}

	st := noise.DefaultSettings()
	st.Volume = float32(*volume)
	st.Style = noise.ParseStyle(*style)
	if *perceptual {
		st.Mode = noise.PerceptualMode
	}
	if err := fitcommon.ParseGains(*gains, st.BandGains[:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -gains: %v\n", err)
		os.Exit(1)
	}
	st.Clamp()

	eng, err := noise.NewEngine(noise.Config{
		SampleRate: *sampleRate,
		Seed:       *seed,
		Settings:   &st,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating engine: %v\n", err)
		os.Exit(1)
	}

	totalFrames := int(float64(*sampleRate) * (*duration))
	if totalFrames < 1 {
		totalFrames = 1
	}

	fmt.Printf("Rendering %.2fs of %s noise at %d Hz (%d channel(s), seed %d)...\n",
		*duration, st.Style, *sampleRate, *channels, *seed)

	blockSize := 128
	samples := make([]float32, 0, totalFrames**channels)
	for rendered := 0; rendered < totalFrames; {
		frames := blockSize
		if rendered+frames > totalFrames {
			frames = totalFrames - rendered
		}
		samples = append(samples, eng.RenderBlock(frames, *channels)...)
		rendered += frames
	}

	outRate := *sampleRate
	if *resample > 0 && *resample != *sampleRate {
		if *channels != 1 {
			fmt.Fprintln(os.Stderr, "Error: -resample requires -channels 1")
			os.Exit(1)
		}
		samples, err = fitcommon.ResampleIfNeeded(samples, *sampleRate, *resample)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error resampling: %v\n", err)
			os.Exit(1)
		}
		outRate = *resample
	}

	if *channels == 2 {
		err = fitcommon.WriteStereoInterleavedWAV(*output, samples, outRate)
	} else {
		err = fitcommon.WriteMonoWAV(*output, samples, outRate)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing WAV file: %v\n", err)
		os.Exit(1)
	}

	rms := analysis.RMS(samples)
	fmt.Printf("Successfully wrote %s (%d frames at %d Hz, RMS %.4f)\n",
		*output, len(samples) / *channels, outRate, rms)
}
