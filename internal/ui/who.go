package ui

import (
	"fmt"
	"strings"
)

// parseDisplayUser finds the user owning the given display in the output of `who`
func parseDisplayUser(whoOutput string, display string) (string, error) {
	for _, line := range strings.Split(whoOutput, "\n") {
		fields := strings.Fields(line)
		if len(fields) <= 0 {
			continue
		}
		// the display is either the terminal column or the "(host)" column
		for _, field := range fields[1:] {
			if field == display || field == "("+display+")" {
				return fields[0], nil
			}
		}
	}
	return "", fmt.Errorf("no user found for display %s", display)
}
