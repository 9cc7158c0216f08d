package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/bubblepop/internal/config"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration",
	Long: `Print the built-in default configuration as YAML. Save it as
~/.bubblepop/configs/bubblepop.yaml or pass it with --config to override
values.

With --effective, print the configuration a game would actually use after
--config and --difficulty are applied.

Examples:
  bubblepop config > ~/.bubblepop/configs/bubblepop.yaml
  bubblepop config --effective --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the resolved config instead of the defaults")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagEffective {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := config.LoadPreset(flagConfig, flagDifficulty)
	if err != nil {
		fail("%v", err)
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		fail("encoding config: %v", err)
	}
	fmt.Print(string(out))
}
