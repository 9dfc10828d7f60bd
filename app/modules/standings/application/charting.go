package standingsservice

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	standingstypes "github.com/fairway-club/standings/app/modules/standings/domain"
)

// ChartPalette holds the colors for rendered charts.
type ChartPalette struct {
	Background drawing.Color
	TextColor  drawing.Color
	Lines      []drawing.Color
}

// DefaultChartPalette is a light theme with a small rotating line palette.
var DefaultChartPalette = ChartPalette{
	Background: drawing.ColorWhite,
	TextColor:  drawing.Color{R: 51, G: 51, B: 51, A: 255},
	Lines: []drawing.Color{
		{R: 46, G: 107, B: 74, A: 255},  // fairway green
		{R: 191, G: 144, B: 0, A: 255},  // gold
		{R: 54, G: 94, B: 173, A: 255},  // blue
		{R: 170, G: 57, B: 57, A: 255},  // red
		{R: 108, G: 77, B: 158, A: 255}, // purple
	},
}

// RenderPointsRace produces a PNG line chart of cumulative season points per
// player across the season's events, limited to the top n leaderboard
// players. Events are plotted in the order given.
func RenderPointsRace(leaderboard []standingstypes.SeasonResult, events []standingstypes.EventName, palette ChartPalette, topN int) ([]byte, error) {
	if len(leaderboard) == 0 || len(events) == 0 {
		return renderNoDataPlaceholder(palette)
	}
	if topN <= 0 || topN > len(leaderboard) {
		topN = len(leaderboard)
	}
	leaderboard = sortLeaderboardForChart(leaderboard)

	xValues := make([]float64, len(events))
	for i := range events {
		xValues[i] = float64(i + 1)
	}

	series := make([]chart.Series, 0, topN)
	for i, sr := range leaderboard[:topN] {
		yValues := make([]float64, len(events))
		running := 0.0
		for j, event := range events {
			running += sr.PointsByEvent[event]
			yValues[j] = running
		}
		color := palette.Lines[i%len(palette.Lines)]
		series = append(series, chart.ContinuousSeries{
			Name:    string(sr.Player),
			XValues: xValues,
			YValues: yValues,
			Style: chart.Style{
				StrokeColor: color,
				StrokeWidth: 2,
				DotWidth:    3,
				DotColor:    color,
			},
		})
	}

	graph := chart.Chart{
		Width:  800,
		Height: 400,
		Background: chart.Style{
			FillColor: palette.Background,
		},
		Canvas: chart.Style{
			FillColor: palette.Background,
		},
		XAxis: chart.XAxis{
			Name: "Event",
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					idx := int(f) - 1
					if idx >= 0 && idx < len(events) && f == float64(int(f)) {
						return string(events[idx])
					}
				}
				return ""
			},
			Style: chart.Style{
				FontColor: palette.TextColor,
			},
		},
		YAxis: chart.YAxis{
			Name: "Season Points",
			Style: chart.Style{
				FontColor: palette.TextColor,
			},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render points race: %w", err)
	}
	return buffer.Bytes(), nil
}

// EventOrder lists the season's event names in workbook order, for plotting.
func EventOrder(read standingstypes.SeasonSheetReadData) []standingstypes.EventName {
	names := make([]standingstypes.EventName, 0, len(read.Events))
	for _, event := range read.Events {
		names = append(names, event.Name)
	}
	return names
}

func renderNoDataPlaceholder(palette ChartPalette) ([]byte, error) {
	const (
		width  = 400
		height = 200
		msg    = "No season data"
	)

	graph := chart.Chart{
		Width:  width,
		Height: height,
		Background: chart.Style{
			FillColor: palette.Background,
		},
		Canvas: chart.Style{
			FillColor: palette.Background,
		},
		Elements: []chart.Renderable{
			func(r chart.Renderer, cb chart.Box, chartDefaults chart.Style) {
				r.SetFontColor(palette.TextColor)
				r.SetFontSize(12.0)
				tb := r.MeasureText(msg)
				x := (cb.Width() - tb.Width()) / 2
				y := (cb.Height() + tb.Height()) / 2
				r.Text(msg, x, y)
			},
		},
	}
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// sortLeaderboardForChart keeps chart ordering stable when callers pass an
// unsorted leaderboard.
func sortLeaderboardForChart(leaderboard []standingstypes.SeasonResult) []standingstypes.SeasonResult {
	sorted := make([]standingstypes.SeasonResult, len(leaderboard))
	copy(sorted, leaderboard)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].SeasonPoints == sorted[j].SeasonPoints {
			return sorted[i].Player < sorted[j].Player
		}
		return sorted[i].SeasonPoints > sorted[j].SeasonPoints
	})
	return sorted
}
