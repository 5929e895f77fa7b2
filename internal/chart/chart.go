// Package chart renders subject timeline charts to PNG files.
package chart

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/inconsolata"

	"github.com/spacetrawl/spacetrawl/internal/subject"
)

// Layout constants, in pixels.
const (
	rowHeight    = 28
	barInset     = 5  // vertical padding inside a row
	minBarWidth  = 3  // bars for single-year spans stay visible
	plotWidth    = 820
	rightMargin  = 90 // room for the count label past the last bar
	topMargin    = 56
	bottomMargin = 48
	labelGap     = 10
	charWidth    = 8 // inconsolata.Regular8x16 advance
)

// Renderer draws horizontal year-span charts from aggregation results.
type Renderer struct {
	logger *slog.Logger
}

// New creates a renderer.
func New(logger *slog.Logger) *Renderer {
	return &Renderer{logger: logger}
}

// SortStats returns the stats of a result ordered ascending by AvgYear.
// Ties are broken by the folded subject key, so the order is total and
// stable across runs.
func SortStats(result subject.Result) []subject.Stat {
	type row struct {
		key  string
		stat subject.Stat
	}

	rows := make([]row, 0, len(result))
	for key, stat := range result {
		rows = append(rows, row{key: key, stat: stat})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].stat.AvgYear != rows[j].stat.AvgYear {
			return rows[i].stat.AvgYear < rows[j].stat.AvgYear
		}
		return rows[i].key < rows[j].key
	})

	stats := make([]subject.Stat, len(rows))
	for i, r := range rows {
		stats[i] = r.stat
	}
	return stats
}

// Render writes a horizontal bar chart of the result to filename. Each
// subject gets a bar spanning its observed year range with an adjacent
// occurrence count. An empty result produces no file and no error.
func (r *Renderer) Render(result subject.Result, title, filename string) error {
	stats := SortStats(result)
	if len(stats) == 0 {
		r.logger.Info("nothing to render", "chart", title)
		return nil
	}

	minYear, maxYear := yearBounds(stats)
	// Pad the domain so bars never touch the plot edges.
	minYear--
	maxYear += 2

	labelWidth := 0
	for _, s := range stats {
		if w := len(s.Subject) * charWidth; w > labelWidth {
			labelWidth = w
		}
	}
	leftMargin := labelWidth + 2*labelGap

	width := leftMargin + plotWidth + rightMargin
	height := topMargin + len(stats)*rowHeight + bottomMargin

	xScale := func(year float64) float64 {
		frac := (year - float64(minYear)) / float64(maxYear-minYear)
		return float64(leftMargin) + frac*plotWidth
	}

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// Title.
	dc.SetFontFace(inconsolata.Bold8x16)
	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(title, float64(width)/2, topMargin/2, 0.5, 0.35)

	dc.SetFontFace(inconsolata.Regular8x16)

	// Decade gridlines and axis labels.
	axisY := float64(topMargin + len(stats)*rowHeight)
	for year := (minYear/10 + 1) * 10; year <= maxYear; year += 10 {
		x := xScale(float64(year))
		dc.SetRGBA(0, 0, 0, 0.15)
		dc.SetLineWidth(1)
		dc.DrawLine(x, topMargin, x, axisY)
		dc.Stroke()
		dc.SetRGB(0.2, 0.2, 0.2)
		dc.DrawStringAnchored(fmt.Sprintf("%d", year), x, axisY+14, 0.5, 0.35)
	}

	// Bars, counts, and subject labels.
	for i, s := range stats {
		y := float64(topMargin + i*rowHeight)
		yCenter := y + rowHeight/2

		x0 := xScale(float64(s.MinYear))
		x1 := xScale(float64(s.MaxYear))
		barWidth := x1 - x0
		if barWidth < minBarWidth {
			barWidth = minBarWidth
		}

		dc.SetRGBA(0.21, 0.47, 0.72, 0.6)
		dc.DrawRectangle(x0, y+barInset, barWidth, rowHeight-2*barInset)
		dc.Fill()

		dc.SetRGB(0.1, 0.1, 0.1)
		dc.DrawStringAnchored(fmt.Sprintf("(%d)", s.Count), x0+barWidth+labelGap, yCenter, 0, 0.35)
		dc.DrawStringAnchored(s.Subject, float64(leftMargin-labelGap), yCenter, 1, 0.35)
	}

	// Axis line.
	dc.SetRGB(0.3, 0.3, 0.3)
	dc.SetLineWidth(1)
	dc.DrawLine(float64(leftMargin), axisY, float64(leftMargin+plotWidth), axisY)
	dc.Stroke()

	if err := dc.SavePNG(filename); err != nil {
		return fmt.Errorf("save chart %s: %w", filename, err)
	}

	r.logger.Info("saved chart", "file", filename, "subjects", len(stats))
	return nil
}

func yearBounds(stats []subject.Stat) (minYear, maxYear int) {
	minYear = stats[0].MinYear
	maxYear = stats[0].MaxYear
	for _, s := range stats[1:] {
		if s.MinYear < minYear {
			minYear = s.MinYear
		}
		if s.MaxYear > maxYear {
			maxYear = s.MaxYear
		}
	}
	return minYear, maxYear
}
