// wingshot is a terminal side-scroller: flap to stay airborne, slip
// through the wall gaps, and shoot down the drifting enemies.
//
// Usage:
//
//	wingshot play            - Start a session
//	wingshot scores          - Browse recorded scores
//
// Global flags:
//
//	--fps <rate>    - Tick rate (0 = config value)
//	--seed <value>  - RNG seed for reproducible runs (0 = time-based)
//	--db <path>     - Scores database path (default: ~/.wingshot/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wingshot",
	Short: "Wingshot - a flap-and-shoot side-scroller for your terminal",
	Long: `Wingshot is a terminal arcade game: gravity pulls you down, flapping
pushes you up, walls scroll in from the right, and enemies weave across
the field until you shoot them down.

Examples:
  wingshot play
  wingshot play --level 2 --mute
  wingshot play --seed 42 --config ./my-tuning.yaml
  wingshot scores
  wingshot scores --plain --limit 25`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (0 = config value)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.wingshot/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
}
