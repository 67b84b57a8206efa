// Command gridiron is the simulation core's reference binary: a set of
// JSON-in/JSON-out subcommands exercising the Schedule Generator, Game
// Engine, Season Engine, and Playoff Engine directly, with no network
// surface. Grounded on stormlightlabs-baseball's cmd.go/cli.go
// command-group structure - the only repo in the retrieval pack built
// around spf13/cobra.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gridiron",
	Short: "Deterministic football league simulation core",
	Long: "gridiron simulates a football season end to end: schedule generation, " +
		"play-by-play game simulation, standings, and playoff bracket advancement. " +
		"Every command accepts a --seed for reproducible output.",
}

func init() {
	rootCmd.AddCommand(simulateGameCmd())
	rootCmd.AddCommand(simulateWeekCmd())
	rootCmd.AddCommand(simulateSeasonCmd())
	rootCmd.AddCommand(simulateTrialsCmd())
	rootCmd.AddCommand(getStandingsCmd())
	rootCmd.AddCommand(getBracketCmd())
	rootCmd.AddCommand(exportCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
