package cmd

import (
	"fmt"
	"strconv"

	"github.com/guptarohit/asciigraph"
	"github.com/simplefan/fancontrol/cmd/global"
	"github.com/simplefan/fancontrol/internal/configuration"
	"github.com/simplefan/fancontrol/internal/curves"
	"github.com/simplefan/fancontrol/internal/ui"
	"github.com/simplefan/fancontrol/internal/util"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

// margin in °C plotted below MinTemp and above the first temperature at MaxSpeed
const curveGraphMargin = 10

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Print the step curve of the current configuration to console",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := global.LoadConfiguration()
		if err != nil {
			return err
		}

		steps := curves.Steps(config)

		if err := printTable(createStepTable(config, steps)); err != nil {
			return err
		}

		ui.Printfln("%s", plotCurve(config, steps))
		return nil
	},
}

func createStepTable(config configuration.Configuration, steps []curves.Step) table.Table {
	var rows [][]string
	for idx, step := range steps {
		temperature := fmt.Sprintf(">= %d", step.Temperature)
		if idx == 0 {
			temperature = fmt.Sprintf("< %d", config.MinTemp)
		}
		rows = append(rows, []string{temperature, strconv.Itoa(step.Speed)})
	}

	return table.Table{
		Headers: []string{"Temperature (°C)", "Speed"},
		Rows:    rows,
	}
}

// plotCurve samples the curve once per degree
func plotCurve(config configuration.Configuration, steps []curves.Step) string {
	start := util.Coerce(config.MinTemp-curveGraphMargin, 0, config.MinTemp)
	end := steps[len(steps)-1].Temperature + curveGraphMargin

	values := make([]float64, 0, end-start+1)
	for temp := start; temp <= end; temp++ {
		values = append(values, float64(curves.SpeedForTemperature(float64(temp), config)))
	}

	caption := fmt.Sprintf("Speed / Temperature (%d..%d °C)", start, end)
	return asciigraph.Plot(values, asciigraph.Height(15), asciigraph.Caption(caption))
}

func init() {
	rootCmd.AddCommand(curveCmd)
}
