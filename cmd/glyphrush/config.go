package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/glyph-rush/internal/config"
	"github.com/vovakirdan/glyph-rush/internal/games/glyphrush"
)

var flagConfigEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the commented default configuration, ready to be saved as
~/.glyphrush/configs/glyphrush.yaml and edited. With --effective, print the
configuration a game would use after --config, --difficulty and --timescale
are applied.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigEffective, "effective", false, "Print the resolved configuration instead of the defaults")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if !flagConfigEffective {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := glyphrush.LoadConfig("")
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
