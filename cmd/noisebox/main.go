// Command noisebox plays shaped ambient noise through the system audio
// device with an interactive terminal mixer.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cwbudde/algo-noise/internal/audioout"
	"github.com/cwbudde/algo-noise/internal/ui"
	"github.com/cwbudde/algo-noise/noise"
	"github.com/cwbudde/algo-noise/preset"
)

var version = "0.1.0"

// CLI defines the command-line interface.
type CLI struct {
	Version        bool    `short:"v" help:"Show version information"`
	SampleRate     int     `default:"48000" help:"Output sample rate in Hz"`
	Settings       string  `short:"c" type:"path" help:"Path to the settings file (default: user config dir)"`
	Seed           int64   `help:"Noise generator seed (0 uses the current time)"`
	Volume         float32 `default:"-1" help:"Initial master volume 0..1 (default: muted for safety)"`
	Style          string  `help:"Initial style: vanilla or rain"`
	NonInteractive bool    `help:"Run without the terminal mixer until interrupted"`
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("noisebox"),
		kong.Description("Real-time ambient noise generator with an eight-band equalizer"),
		kong.UsageOnError(),
	)

	if cli.Version {
		fmt.Printf("noisebox %s\n", version)
		os.Exit(0)
	}

	settingsPath := cli.Settings
	if settingsPath == "" {
		p, err := preset.DefaultPath()
		if err != nil {
			ctx.FatalIfErrorf(fmt.Errorf("resolve settings path: %w", err))
		}
		settingsPath = p
	}

	st, err := preset.Load(settingsPath)
	ctx.FatalIfErrorf(err)

	// Playback always starts muted unless a volume was given explicitly.
	// A stale saved volume through headphones is an unpleasant surprise.
	if cli.Volume >= 0 {
		st.Volume = cli.Volume
	} else {
		st.Volume = 0
	}
	if cli.Style != "" {
		st.Style = noise.ParseStyle(cli.Style)
	}
	st.Clamp()

	seed := cli.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	handle, err := noise.Open(noise.Config{
		SampleRate: cli.SampleRate,
		Seed:       seed,
		Settings:   &st,
	})
	ctx.FatalIfErrorf(err)
	defer handle.Shutdown()

	player, err := audioout.NewPlayer(handle)
	ctx.FatalIfErrorf(err)
	defer player.Close()
	player.Start()

	if cli.NonInteractive {
		runHeadless(handle)
	} else {
		model := ui.NewModel(handle)
		p := tea.NewProgram(model, tea.WithAltScreen())
		_, err := p.Run()
		ctx.FatalIfErrorf(err)
	}

	st = handle.Snapshot()
	handle.Shutdown()
	if err := preset.Save(settingsPath, st); err != nil {
		fmt.Fprintf(os.Stderr, "noisebox: save settings: %v\n", err)
	}
}

// runHeadless blocks until an interrupt or termination signal arrives.
func runHeadless(h *noise.Handle) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	fmt.Println("noisebox: playing, press Ctrl+C to stop")
	<-sig
	h.Shutdown()
}
