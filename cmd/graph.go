package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"aleatoria/motif/internal/melody"
	"aleatoria/motif/internal/notegraph"
	"aleatoria/motif/internal/render"
)

var (
	graphJSON bool
	graphHTML string
	graphMood string
	graphOut  string
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Inspect the note graph: degrees, weights, connectivity",
	RunE: func(cmd *cobra.Command, args []string) error {
		var mood melody.Mood
		if graphMood != "" {
			m, err := melody.ParseMood(graphMood)
			if err != nil {
				return err
			}
			mood = m
		}

		g, err := notegraph.Build(notegraph.DefaultConfig())
		if err != nil {
			return fmt.Errorf("building note graph: %w", err)
		}

		if graphHTML != "" {
			dir, err := ResolveOutDir(graphOut)
			if err != nil {
				return err
			}
			path := outPath(dir, graphHTML)
			if err := render.GraphFile(path, g, mood); err != nil {
				return err
			}
			if !graphJSON {
				fmt.Printf("Graph chart written to %s\n", path)
			}
		}

		report := g.Inspect()

		if graphJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}

		printGraphReport(report, g, mood)
		return nil
	},
}

func init() {
	graphCmd.Flags().BoolVar(&graphJSON, "json", false, "Output as JSON")
	graphCmd.Flags().StringVar(&graphHTML, "html", "", "Write graph chart to this HTML file name")
	graphCmd.Flags().StringVar(&graphMood, "mood", "", "Annotate edges with this mood's transition probabilities")
	graphCmd.Flags().StringVar(&graphOut, "out", "", "Output directory (default: MOTIF_OUT or CWD)")
	rootCmd.AddCommand(graphCmd)
}

func printGraphReport(report *notegraph.InspectReport, g *notegraph.Graph, mood melody.Mood) {
	connected := "yes"
	if !report.Connected {
		connected = "NO"
	}
	fmt.Println("\n  NOTE GRAPH")
	fmt.Println("  ────────────────────────────────────────")
	fmt.Printf("  Nodes: %d  Edges: %d  Connected: %s\n", report.TotalNodes, report.TotalEdges, connected)
	fmt.Printf("  Out-degree: min=%d max=%d\n", report.MinOutDegree, report.MaxOutDegree)

	fmt.Println("\n  Out-degree distribution:")
	for _, b := range report.DegreeHistogram {
		fmt.Printf("    %3d: %4d  %s\n", b.Degree, b.Count, strings.Repeat("=", b.Count))
	}

	fmt.Println("\n  Transitions:")
	for _, n := range g.Notes() {
		if mood != "" {
			probs, err := melody.TransitionProbabilities(g, n, mood)
			if err != nil {
				continue
			}
			parts := make([]string, len(probs))
			for i, p := range probs {
				parts[i] = fmt.Sprintf("%s %.3f", p.To, p.Probability)
			}
			fmt.Printf("    %-3s -> %s\n", n, strings.Join(parts, "  "))
			continue
		}
		out, err := g.Neighbors(n)
		if err != nil {
			continue
		}
		parts := make([]string, len(out))
		for i, e := range out {
			parts[i] = fmt.Sprintf("%s %.1f", e.To, e.Weight)
		}
		fmt.Printf("    %-3s -> %s\n", n, strings.Join(parts, "  "))
	}
	fmt.Println()
}
