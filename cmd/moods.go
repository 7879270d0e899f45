package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"aleatoria/motif/internal/melody"
)

var moodsJSON bool

type moodEntry struct {
	Mood    string         `json:"mood"`
	Profile melody.Profile `json:"profile"`
}

var moodsCmd = &cobra.Command{
	Use:   "moods",
	Short: "List mood profiles and their walk parameters",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries := make([]moodEntry, 0, len(melody.Moods()))
		for _, m := range melody.Moods() {
			p, err := melody.GetProfile(m)
			if err != nil {
				return err
			}
			entries = append(entries, moodEntry{Mood: string(m), Profile: p})
		}

		if moodsJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		}

		fmt.Printf("  %-10s %-12s %s\n", "MOOD", "WEIGHT MUL", "NOTE DURATION (beats)")
		for _, e := range entries {
			fmt.Printf("  %-10s %-12.1f %.2f\n", e.Mood, e.Profile.WeightMul, e.Profile.DurationBeats)
		}
		return nil
	},
}

func init() {
	moodsCmd.Flags().BoolVar(&moodsJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(moodsCmd)
}
