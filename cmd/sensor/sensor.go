package sensor

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/simplefan/fancontrol/cmd/global"
	"github.com/simplefan/fancontrol/internal/sensors"
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:   "sensor",
	Short: "Print the current value of the temperature sensor in °C",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		config, err := global.LoadConfiguration()
		if err != nil {
			return err
		}

		sensor, err := sensors.NewSensor(config)
		if err != nil {
			return err
		}

		value, err := sensor.GetValue()
		if err != nil {
			return err
		}
		fmt.Printf("%.3f\n", value)
		return nil
	},
}
