package config

import (
	"github.com/simplefan/fancontrol/cmd/global"
	"github.com/simplefan/fancontrol/internal/configuration"
	"github.com/simplefan/fancontrol/internal/ui"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validates the current configuration",
	Long: `Loads the configuration from all sources, prints a warning for every value
that had to be reset to its default and fails if required values are missing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// note: config file path parameter comes from the root command (-c)
		config, err := global.LoadConfiguration()
		if err != nil {
			return err
		}

		if err := configuration.Validate(config); err != nil {
			return err
		}

		ui.Success("Config looks good! :)")
		return nil
	},
}

func init() {
	Command.AddCommand(validateCmd)
}
