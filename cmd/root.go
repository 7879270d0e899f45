package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var seed uint64

var rootCmd = &cobra.Command{
	Use:   "motif",
	Short: "Mood-weighted melody generation over a note graph",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "Random seed (0 = non-deterministic)")
}

// newRand builds the random source for a run. A zero seed draws fresh seeds
// from the global source; anything else gives reproducible output.
func newRand() *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// ResolveOutDir finds the output directory using priority: flag > MOTIF_OUT env > CWD
func ResolveOutDir(flagValue string) (string, error) {
	if flagValue != "" {
		if info, err := os.Stat(flagValue); err != nil || !info.IsDir() {
			return "", fmt.Errorf("output directory not found at --out path: %s", flagValue)
		}
		return flagValue, nil
	}
	if envDir := os.Getenv("MOTIF_OUT"); envDir != "" {
		if info, err := os.Stat(envDir); err == nil && info.IsDir() {
			return envDir, nil
		}
	}
	return os.Getwd()
}

func outPath(dir, name string) string {
	return filepath.Join(dir, name)
}
