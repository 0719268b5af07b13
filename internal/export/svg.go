// Package export renders recorded runs as standalone SVG images.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/gravlab/internal/storage"
)

// trail colors cycled across particles
var palette = []string{
	"#00ff88", "#00c8ff", "#ff8800", "#ff00aa",
	"#aaff00", "#8844ff", "#ff4444", "#ffee00",
}

// TrailsSVG renders each particle's recorded trajectory as a polyline
// inside the simulation domain, which maps 1:1 onto the viewBox.
func TrailsSVG(meta *storage.RunMetadata, frames []storage.Frame) string {
	if len(frames) == 0 || len(frames[0].Particles) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, meta.Width, meta.Height, meta.Width, meta.Height))

	n := len(frames[0].Particles)
	for i := 0; i < n; i++ {
		color := palette[i%len(palette)]
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1" opacity="0.7" d="`, color))
		for fi, f := range frames {
			p := f.Particles[i].Pos
			if fi == 0 {
				sb.WriteString(fmt.Sprintf("M%.1f,%.1f", p.X, p.Y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", p.X, p.Y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	// final positions as dots
	sb.WriteString(`<g fill="#ffffff">` + "\n")
	for _, p := range frames[len(frames)-1].Particles {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="2.5"/>`+"\n", p.Pos.X, p.Pos.Y))
	}
	sb.WriteString("</g>\n</svg>\n")

	return sb.String()
}
