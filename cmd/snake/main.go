// snake is the classic snake game for the terminal.
//
// Usage:
//
//	snake play      - Play in this terminal
//	snake serve     - Start SSH server for remote play
//	snake scores    - Show recorded runs and the high score
//	snake config    - Print the default configuration
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.snake/scores.db)
//	--config <path>       - Use a custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write logs to a file
//	--verbose             - Log debug messages
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is the classic grid game for the terminal: steer the snake to the
food, grow, and avoid the walls and your own tail.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View recorded runs
  config   - Print the default configuration

Examples:
  snake play
  snake play --renderer tcell --difficulty hard
  snake serve --ssh :2222
  snake scores --limit 20`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default from config: ~/.snake/scores.db)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log debug messages")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
