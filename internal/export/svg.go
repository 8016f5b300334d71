package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/ballista/internal/launch"
)

// TrajectorySVG renders the flight path as an SVG polyline with a
// ground line and a marker on the landing sample.
func TrajectorySVG(samples []launch.TrajectorySample, width, height int, strokeColor string) string {
	if len(samples) < 2 {
		return ""
	}
	if strokeColor == "" {
		strokeColor = "#00ff88"
	}

	// Bounds always include the ground so the landing is visible.
	minX, maxX := samples[0].Position.X, samples[0].Position.X
	minY, maxY := 0.0, samples[0].Position.Y
	for _, s := range samples {
		p := s.Position
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	toView := func(x, y float64) (float64, float64) {
		vx := (x - minX) / rangeX * float64(width)
		vy := float64(height) - (y-minY)/rangeY*float64(height)
		return vx, vy
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	_, groundY := toView(0, 0)
	sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#333333" stroke-width="1"/>
`, groundY, width, groundY))

	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, strokeColor))
	for i, s := range samples {
		x, y := toView(s.Position.X, s.Position.Y)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	sb.WriteString("\"/>\n")

	landing := samples[len(samples)-1]
	lx, ly := toView(landing.Position.X, landing.Position.Y)
	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="3" fill="#ff5f5f"/>
</svg>`, lx, ly))

	return sb.String()
}

func ExportSVG(path string, samples []launch.TrajectorySample, width, height int, strokeColor string) error {
	svg := TrajectorySVG(samples, width, height, strokeColor)
	return os.WriteFile(path, []byte(svg), 0644)
}
