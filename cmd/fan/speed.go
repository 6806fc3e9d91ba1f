package fan

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/simplefan/fancontrol/internal/fans"
	"github.com/simplefan/fancontrol/internal/util"
	"github.com/spf13/cobra"
)

var speedCmd = &cobra.Command{
	Use:   "speed [value]",
	Short: "Get/Set the current speed setting of the fan ([0..255])",
	Long:  ``,
	Args:  cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		fan, err := getFan()
		if err != nil {
			return err
		}

		if len(args) <= 0 {
			pwm, err := fan.GetPwm()
			if err != nil {
				return err
			}
			fmt.Printf("%d\n", pwm)
			return nil
		}

		pwmValue, err := parseSpeed(args[0])
		if err != nil {
			return err
		}
		return fan.SetPwm(pwmValue)
	},
}

func parseSpeed(arg string) (int, error) {
	value, err := strconv.Atoi(arg)
	if err != nil {
		return 0, err
	}
	if !util.InRange(value, fans.MinPwmValue, fans.MaxPwmValue) {
		return 0, fmt.Errorf("speed %d is out of range [%d..%d]", value, fans.MinPwmValue, fans.MaxPwmValue)
	}
	return value, nil
}

func init() {
	Command.AddCommand(speedCmd)
}
