package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cwbudde/algo-noise/noise"
)

const sliderWidth = 30

// renderMixer renders the full mixer view.
func renderMixer(m Model) string {
	var b strings.Builder

	b.WriteString(renderHeader(m))
	b.WriteString("\n\n")
	b.WriteString(renderSliders(m))
	b.WriteString("\n")
	b.WriteString(renderFooter(m))

	return b.String()
}

// renderHeader renders the title line and the current style and mode.
func renderHeader(m Model) string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5FAFFF")).
		Render("algo-noise - ambient noise mixer")

	status := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		Render(fmt.Sprintf("style: %s   normalization: %s",
			m.settings.Style, m.settings.Mode))

	return title + "\n" + status
}

// renderSliders renders the volume slider followed by one slider per band.
func renderSliders(m Model) string {
	var b strings.Builder

	b.WriteString(renderSlider("Volume", m.settings.Volume, m.cursor == 0))
	b.WriteString("\n\n")

	for id := noise.BandID(0); id < noise.NumBands; id++ {
		selected := m.cursor == int(id)+1
		b.WriteString(renderSlider(id.String(), m.settings.BandGains[id], selected))
		b.WriteString("\n")
	}

	return b.String()
}

// renderSlider renders a single labelled bar.
func renderSlider(label string, value float32, selected bool) string {
	filled := int(value*sliderWidth + 0.5)
	if filled > sliderWidth {
		filled = sliderWidth
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", sliderWidth-filled)

	marker := "  "
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	if selected {
		marker = "> "
		style = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5FAFFF"))
	}

	return style.Render(fmt.Sprintf("%s%-10s %s %3.0f%%", marker, label, bar, value*100))
}

// renderFooter renders the selected band's frequency range and key help.
func renderFooter(m Model) string {
	var info string
	if m.cursor > 0 {
		band := noise.Bands[m.cursor-1]
		info = fmt.Sprintf("%s: %.0f–%.0f Hz", band.Name, band.LowHz, band.HighHz)
	} else {
		info = "Master volume"
	}

	help := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#555555")).
		Render("↑/↓ select   ←/→ adjust   s style   n normalization   q quit")

	return info + "\n" + help
}
