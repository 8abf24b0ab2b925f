package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML. Save it to one of the
searched paths (~/.snake/snake.yaml or ./configs/snake.yaml) or pass it with
--config to start tuning.

Examples:
  snake config > ~/.snake/snake.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printDefaultConfig(os.Stdout)
	},
}

func printDefaultConfig(w io.Writer) error {
	_, err := w.Write(config.DefaultYAML())
	return err
}
