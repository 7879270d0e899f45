package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"aleatoria/motif/internal/melody"
	"aleatoria/motif/internal/midifile"
	"aleatoria/motif/internal/notegraph"
	"aleatoria/motif/internal/render"
)

var (
	composeMood   string
	composeLength int
	composeTempo  float64
	composeMIDI   string
	composeChart  string
	composeOut    string
	composeJSON   bool
	composeQuiet  bool
)

// composeOutput is the JSON shape of one generation run.
type composeOutput struct {
	ID          string    `json:"id"`
	Mood        string    `json:"mood"`
	Notes       []string  `json:"notes"`
	Intensities []float64 `json:"intensities"`
	MIDIFile    string    `json:"midi_file,omitempty"`
	ChartFile   string    `json:"chart_file,omitempty"`
}

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Generate a melody by a mood-weighted random walk",
	Long:  "Builds the note graph, walks it with the selected mood, and optionally writes the melody as a MIDI file and an HTML chart.",
	RunE: func(cmd *cobra.Command, args []string) error {
		mood, err := melody.ParseMood(composeMood)
		if err != nil {
			return err
		}

		g, err := notegraph.Build(notegraph.DefaultConfig())
		if err != nil {
			return fmt.Errorf("building note graph: %w", err)
		}

		result, err := melody.Generate(g, composeLength, mood, newRand())
		if err != nil {
			return err
		}

		out := composeOutput{
			ID:          result.ID,
			Mood:        string(result.Mood),
			Intensities: result.Intensities,
		}
		for _, n := range result.Notes {
			out.Notes = append(out.Notes, n.String())
		}

		if composeMIDI != "" || composeChart != "" {
			dir, err := ResolveOutDir(composeOut)
			if err != nil {
				return err
			}
			if composeMIDI != "" {
				profile, _ := melody.GetProfile(mood)
				opts := midifile.DefaultOptions()
				opts.TempoBPM = composeTempo
				opts.DurationBeats = profile.DurationBeats
				path := outPath(dir, composeMIDI)
				if err := midifile.WriteFile(path, result.Notes, opts); err != nil {
					return err
				}
				out.MIDIFile = path
			}
			if composeChart != "" {
				path := outPath(dir, composeChart)
				if err := render.LineFile(path, result); err != nil {
					return err
				}
				out.ChartFile = path
			}
		}

		if composeJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		if !composeQuiet {
			shortID := out.ID
			if len(shortID) > 8 {
				shortID = shortID[:8]
			}
			fmt.Printf("Generation %s (mood: %s, %d notes)\n", shortID, out.Mood, len(out.Notes))
			fmt.Printf("Notes: %s\n", strings.Join(out.Notes, ", "))
			if out.MIDIFile != "" {
				fmt.Printf("MIDI written to %s\n", out.MIDIFile)
			}
			if out.ChartFile != "" {
				fmt.Printf("Chart written to %s\n", out.ChartFile)
			}
		}
		return nil
	},
}

func init() {
	composeCmd.Flags().StringVar(&composeMood, "mood", "happy", "Mood profile: happy, sad, energetic, calm")
	composeCmd.Flags().IntVar(&composeLength, "length", 16, "Number of notes to generate")
	composeCmd.Flags().Float64Var(&composeTempo, "tempo", 120, "Tempo in BPM for MIDI output")
	composeCmd.Flags().StringVar(&composeMIDI, "midi", "", "Write melody to this MIDI file name")
	composeCmd.Flags().StringVar(&composeChart, "chart", "", "Write melody chart to this HTML file name")
	composeCmd.Flags().StringVar(&composeOut, "out", "", "Output directory (default: MOTIF_OUT or CWD)")
	composeCmd.Flags().BoolVar(&composeJSON, "json", false, "Output as JSON")
	composeCmd.Flags().BoolVar(&composeQuiet, "quiet", false, "Suppress non-essential output")
	rootCmd.AddCommand(composeCmd)
}
