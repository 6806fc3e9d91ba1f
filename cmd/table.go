package cmd

import (
	"bytes"

	"github.com/mgutz/ansi"
	"github.com/simplefan/fancontrol/cmd/global"
	"github.com/simplefan/fancontrol/internal/ui"
	"github.com/tomlazar/table"
)

func createTableConfig() *table.Config {
	return &table.Config{
		ShowIndex:       false,
		Color:           !global.NoColor,
		AlternateColors: true,
		TitleColorCode:  ansi.ColorCode("white+buf"),
		AltColorCodes: []string{
			ansi.ColorCode("white"),
			ansi.ColorCode("white:236"),
		},
	}
}

func renderTable(tab table.Table) (string, error) {
	var buf bytes.Buffer
	if err := tab.WriteTable(&buf, createTableConfig()); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func printTable(tab table.Table) error {
	tableString, err := renderTable(tab)
	if err != nil {
		return err
	}
	ui.Printfln("%s", tableString)
	return nil
}
