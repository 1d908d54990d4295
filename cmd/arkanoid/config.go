package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration a game would start with, as YAML.
The output can be saved and passed back with --config.

Examples:
  arkanoid config > my-arkanoid.yaml
  arkanoid config --difficulty hard
  arkanoid config --defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults")
}

// effectiveConfig resolves the config the game would load, with the preset applied.
func effectiveConfig(path, difficulty string) (config.ArkanoidConfig, error) {
	cfg, err := config.LoadArkanoid(path)
	if err != nil {
		return cfg, err
	}
	if preset := config.ParseDifficulty(difficulty); preset != "" {
		config.ApplyArkanoidPreset(&cfg, preset)
	}
	return cfg, nil
}

func runConfig(cmd *cobra.Command, args []string) error {
	if flagDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	if err := validateSelection("", flagDifficulty); err != nil {
		return err
	}

	cfg, err := effectiveConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	data, err := config.MarshalArkanoid(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
