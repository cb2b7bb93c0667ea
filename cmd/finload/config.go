package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"finload/app/settings"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the settings file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath()
		if err != nil {
			return err
		}
		b, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", path, b)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Store one setting in the settings file",
	Long:  "Store one setting in the settings file. Values equal to the built-in default are left out of the file.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath()
		if err != nil {
			return err
		}
		s, err := settings.LoadFile(path)
		if err != nil {
			return fmt.Errorf("reading settings: %w", err)
		}
		if err := s.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := settings.SaveFile(path, s); err != nil {
			return fmt.Errorf("writing settings: %w", err)
		}
		log.WithField("path", path).Debugf("%s set to %q", args[0], args[1])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetCmd)
}

// configPath is the --config file, or finload.yml next to the executable
func configPath() (string, error) {
	if flagConfig != "" {
		return flagConfig, nil
	}
	return settings.DefaultPath()
}
