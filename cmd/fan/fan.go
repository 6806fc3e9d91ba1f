package fan

import (
	"github.com/simplefan/fancontrol/cmd/global"
	"github.com/simplefan/fancontrol/internal/fans"
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:              "fan",
	Short:            "Fan related commands",
	Long:             ``,
	TraverseChildren: true,
}

func getFan() (fans.Fan, error) {
	config, err := global.LoadConfiguration()
	if err != nil {
		return nil, err
	}
	return fans.NewFan(config)
}
