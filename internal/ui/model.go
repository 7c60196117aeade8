// Package ui provides the Bubbletea terminal mixer for the noise engine.
package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cwbudde/algo-noise/noise"
)

// gainStep is the amount a slider moves per key press.
const gainStep = 0.05

// numRows covers the volume slider plus one slider per band.
const numRows = 1 + noise.NumBands

// Model is the Bubbletea model for the interactive mixer.
type Model struct {
	handle *noise.Handle

	// Local copy of the engine settings, kept in sync with the handle.
	settings noise.Settings

	// Selected row: 0 is the master volume, 1..NumBands are band sliders.
	cursor int

	Width  int
	Height int
}

// NewModel creates a mixer model bound to a running engine handle.
func NewModel(h *noise.Handle) Model {
	return Model{
		handle:   h,
		settings: h.Snapshot(),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses and window resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < numRows-1 {
				m.cursor++
			}

		case "left", "h":
			m.adjust(-gainStep)

		case "right", "l":
			m.adjust(gainStep)

		case "s":
			m.settings.Style = m.settings.Style.Next()
			m.handle.SetStyle(m.settings.Style)

		case "n":
			m.settings.Mode = m.settings.Mode.Next()
			m.handle.SetMode(m.settings.Mode)
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
	}

	return m, nil
}

// View renders the mixer.
func (m Model) View() string {
	return renderMixer(m)
}

// adjust moves the selected slider by delta and pushes the new value to
// the engine. Values are clamped to the unit range.
func (m *Model) adjust(delta float32) {
	if m.cursor == 0 {
		v := clampUnit(m.settings.Volume + delta)
		m.settings.Volume = v
		m.handle.SetVolume(v)
		return
	}

	id := noise.BandID(m.cursor - 1)
	g := clampUnit(m.settings.BandGains[id] + delta)
	m.settings.BandGains[id] = g
	m.handle.SetBandGain(id, g)
}

func clampUnit(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
