// Package render draws melodies and note graphs as self-contained HTML
// charts.
package render

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"aleatoria/motif/internal/melody"
	"aleatoria/motif/internal/midifile"
	"aleatoria/motif/internal/notegraph"
)

// Line renders the melody (as MIDI pitch values) and its intensity trace
// over a synthetic step axis.
func Line(w io.Writer, result *melody.Result) error {
	if result == nil || len(result.Notes) == 0 {
		return fmt.Errorf("%w: nothing to render", notegraph.ErrInvalidArgument)
	}

	steps := make([]int, len(result.Notes))
	notes := make([]opts.LineData, len(result.Notes))
	intensities := make([]opts.LineData, len(result.Intensities))
	for i, n := range result.Notes {
		pitch, err := midifile.Pitch(n)
		if err != nil {
			return err
		}
		steps[i] = i
		notes[i] = opts.LineData{Value: pitch, Name: n.String()}
	}
	for i, v := range result.Intensities {
		intensities[i] = opts.LineData{Value: v}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Melody Visualization",
			Subtitle: fmt.Sprintf("mood: %s", result.Mood),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Step"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Note value"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	line.SetXAxis(steps).
		AddSeries("Melody", notes).
		AddSeries("Intensity", intensities)

	if err := line.Render(w); err != nil {
		return fmt.Errorf("rendering melody chart: %w", err)
	}
	return nil
}

// GraphChart renders the note graph in a circular layout. Edge values are
// raw weights, or the mood-adjusted transition probabilities when mood is
// non-empty.
func GraphChart(w io.Writer, g *notegraph.Graph, mood melody.Mood) error {
	nodes := make([]opts.GraphNode, 0, g.NodeCount())
	links := make([]opts.GraphLink, 0, g.EdgeCount())

	for _, n := range g.Notes() {
		nodes = append(nodes, opts.GraphNode{Name: n.String()})
		if mood != "" {
			probs, err := melody.TransitionProbabilities(g, n, mood)
			if err != nil {
				return err
			}
			for _, p := range probs {
				links = append(links, opts.GraphLink{
					Source: n.String(),
					Target: p.To.String(),
					Value:  float32(p.Probability),
				})
			}
			continue
		}
		out, err := g.Neighbors(n)
		if err != nil {
			return err
		}
		for _, e := range out {
			links = append(links, opts.GraphLink{
				Source: n.String(),
				Target: e.To.String(),
				Value:  float32(e.Weight),
			})
		}
	}

	title := "Note Graph Structure"
	if mood != "" {
		title = fmt.Sprintf("Note Graph Structure (%s)", mood)
	}

	chart := charts.NewGraph()
	chart.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: title}))
	chart.AddSeries("notes", nodes, links,
		charts.WithGraphChartOpts(opts.GraphChart{
			Layout: "circular",
			Roam:   opts.Bool(true),
		}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}),
	)

	if err := chart.Render(w); err != nil {
		return fmt.Errorf("rendering graph chart: %w", err)
	}
	return nil
}

// LineFile renders the melody chart to an HTML file.
func LineFile(path string, result *melody.Result) error {
	return toFile(path, func(w io.Writer) error { return Line(w, result) })
}

// GraphFile renders the note graph chart to an HTML file.
func GraphFile(path string, g *notegraph.Graph, mood melody.Mood) error {
	return toFile(path, func(w io.Writer) error { return GraphChart(w, g, mood) })
}

func toFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if err := render(f); err != nil {
		return err
	}
	return f.Close()
}
