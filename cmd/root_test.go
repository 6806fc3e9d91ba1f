package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func executeRoot(args ...string) (string, error) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{}, args...))
	_, err := rootCmd.ExecuteC()
	return out.String(), err
}

func TestRootWithoutArgumentsPrintsUsage(t *testing.T) {
	// WHEN
	out, err := executeRoot()

	// THEN
	assert.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "--cpu-temp-path")
}

func TestRootUnknownFlag(t *testing.T) {
	// WHEN
	_, err := executeRoot("--fast")

	// THEN
	var usageErr *usageError
	assert.ErrorAs(t, err, &usageErr)
	assert.Equal(t, 0, handleResult(rootCmd, err))
}

func TestRootNonNumericFlag(t *testing.T) {
	// WHEN
	_, err := executeRoot("--interval", "abc")

	// THEN
	var usageErr *usageError
	assert.ErrorAs(t, err, &usageErr)
}

func TestRootUnknownArgument(t *testing.T) {
	// WHEN
	_, err := executeRoot("fast")

	// THEN
	var usageErr *usageError
	assert.ErrorAs(t, err, &usageErr)
	assert.EqualError(t, err, `unknown argument "fast"`)
}

func TestRootHelp(t *testing.T) {
	t.Cleanup(func() {
		_ = rootCmd.Flags().Set("help", "false")
	})

	// WHEN
	out, err := executeRoot("--help")

	// THEN
	assert.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Equal(t, 0, handleResult(rootCmd, err))
}

func TestHandleResult(t *testing.T) {
	t.Setenv("DISPLAY", "")

	assert.Equal(t, 0, handleResult(rootCmd, nil))
	assert.Equal(t, 0, handleResult(rootCmd, &usageError{errors.New("unknown flag: --fast")}))
	assert.Equal(t, 1, handleResult(rootCmd, errors.New("unable to read temperature")))
}
