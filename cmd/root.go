package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/simplefan/fancontrol/cmd/config"
	"github.com/simplefan/fancontrol/cmd/fan"
	"github.com/simplefan/fancontrol/cmd/global"
	"github.com/simplefan/fancontrol/cmd/sensor"
	"github.com/simplefan/fancontrol/internal"
	"github.com/simplefan/fancontrol/internal/configuration"
	"github.com/simplefan/fancontrol/internal/daemon"
	"github.com/simplefan/fancontrol/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// usageError is printed together with the usage of the failing command and
// does not result in an error exit code
type usageError struct {
	err error
}

func (e *usageError) Error() string {
	return e.err.Error()
}

func (e *usageError) Unwrap() error {
	return e.err
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fancontrol",
	Short: "A daemon to control a fan based on a temperature sensor.",
	Long: `fancontrol periodically reads a temperature sensor file and
writes a fan speed derived from a step curve to a fan file.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupUi()
	},
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return &usageError{fmt.Errorf("unknown argument %q", args[0])}
		}
		return nil
	},
	// this is the default command to run when no subcommand is specified
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().NFlag() <= 0 {
			return cmd.Usage()
		}

		printHeader()

		config, err := global.LoadConfiguration()
		if err != nil {
			return err
		}
		if err := configuration.Validate(config); err != nil {
			return err
		}

		return internal.RunDaemon(config, daemon.NewDaemonizer())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&global.CfgFile, "config", "c", "", "config file (default is fancontrol.yaml in ., $HOME or /etc/fancontrol/)")
	rootCmd.PersistentFlags().BoolVarP(&global.NoColor, "no-color", "", false, "Disable all terminal output coloration")
	rootCmd.PersistentFlags().BoolVarP(&global.NoStyle, "no-style", "", false, "Disable all terminal output styling")
	rootCmd.PersistentFlags().BoolVarP(&global.Verbose, "verbose", "v", false, "More verbose output")

	flags := rootCmd.PersistentFlags()
	flags.Int("interval", configuration.DefaultInterval, "Seconds between two temperature readings [1..35]")
	flags.Int("min-temp", configuration.DefaultMinTemp, "Temperature in °C at which the fan is turned on")
	flags.Int("max-speed", configuration.DefaultMaxSpeed, "Maximum fan speed [1..255]")
	flags.Int("min-speed", configuration.DefaultMinSpeed, "Fan speed at min-temp [1..255]")
	flags.Int("temp-step", configuration.DefaultTempStep, "Width of a temperature step in °C [1..10]")
	flags.Int("speed-step", configuration.DefaultSpeedStep, "Speed increase per temperature step [1..50]")
	flags.String("fan-path", "", "Path of the fan speed file, e.g. /sys/class/hwmon/hwmon0/pwm1")
	flags.String("cpu-temp-path", "", "Path of the temperature file, e.g. /sys/class/hwmon/hwmon0/temp1_input")
	flags.Bool("no-daemon", false, "Stay in the foreground")

	bindFlag("interval", "interval")
	bindFlag("minTemp", "min-temp")
	bindFlag("maxSpeed", "max-speed")
	bindFlag("minSpeed", "min-speed")
	bindFlag("tempStep", "temp-step")
	bindFlag("speedStep", "speed-step")
	bindFlag("fanPath", "fan-path")
	bindFlag("cpuTempPath", "cpu-temp-path")
	bindFlag("noDaemon", "no-daemon")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err}
	})

	rootCmd.AddCommand(config.Command)
	rootCmd.AddCommand(fan.Command)
	rootCmd.AddCommand(sensor.Command)
}

func bindFlag(key string, flag string) {
	if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

func setupUi() {
	ui.SetDebugEnabled(global.Verbose)

	if global.NoColor {
		pterm.DisableColor()
	}
	if global.NoStyle {
		pterm.DisableStyling()
	}
}

// Print a large text with the LetterStyle from the standard theme.
func printHeader() {
	err := pterm.DefaultBigText.WithLetters(
		pterm.NewLettersFromStringWithStyle("fan", pterm.NewStyle(pterm.FgLightBlue)),
		pterm.NewLettersFromStringWithStyle("control", pterm.NewStyle(pterm.FgWhite)),
	).Render()
	if err != nil {
		fmt.Println("fancontrol")
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.OnInitialize(func() {
		if err := configuration.InitConfig(global.CfgFile); err != nil {
			ui.Fatal("Unable to initialize configuration: %v", err)
		}
	})

	os.Exit(handleResult(rootCmd.ExecuteC()))
}

// handleResult is the single place where errors of all commands end up
func handleResult(cmd *cobra.Command, err error) int {
	if err == nil {
		return 0
	}

	// subcommands may have disabled output to print plain values
	pterm.EnableOutput()

	var usageErr *usageError
	if errors.As(err, &usageErr) {
		ui.Printfln("[!] %v", usageErr.err)
		_ = cmd.Usage()
		return 0
	}

	ui.ErrorAndNotify("fancontrol", "%v", err)
	return 1
}
