package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "obsportable.dev/pkg/obsportable/internal/model"
)

func TestParsePaths(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []m.Path
	}{
		{"empty", []string{}, []m.Path{}},
		{"single", []string{"Untitled.json"}, []m.Path{m.Path("Untitled.json")}},
		{
			"multiple",
			[]string{"scenes/Untitled.json", "scenes/Gaming.json", `C:\scenes\Talk.json`},
			[]m.Path{m.Path("scenes/Untitled.json"), m.Path("scenes/Gaming.json"), m.Path(`C:\scenes\Talk.json`)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parsePaths(tt.args)
			require.Len(t, got, len(tt.want))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "obs-portable", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.Equal(t, rootLongDescription, cmd.Long)
}

func TestRootCmd_HelpOutput(t *testing.T) {
	cmd := newRootCmd()
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{})
	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, output.String(), "Usage:")
	assert.Contains(t, output.String(), "portable bundle")
}

func TestInit(t *testing.T) {
	assert.NotNil(t, ui)
	assert.NotNil(t, fsAdapter)
	assert.NotNil(t, codec)
	assert.NotNil(t, iniPatcher)
	assert.NotNil(t, workflow)
}

func newStubCmd(run func() error) *cobra.Command {
	stub := &cobra.Command{
		Use: "stub",
		RunE: func(_ *cobra.Command, _ []string) error {
			return run()
		},
	}
	stub.SetArgs([]string{})
	stub.SetOut(os.Stdout)
	stub.SetErr(os.Stderr)

	return stub
}

func TestExecute_WithError(t *testing.T) {
	originalRootCmd := rootCmd
	defer func() { rootCmd = originalRootCmd }()

	rootCmd = newStubCmd(func() error { return fmt.Errorf("command failed") })
	rootCmd.SetErr(&bytes.Buffer{})

	require.Error(t, rootCmd.Execute())
}

func TestExecute_ProcessLevel(t *testing.T) {
	if mode := os.Getenv("OBSPORTABLE_EXECUTE_SUBPROCESS"); mode != "" {
		rootCmd = newStubCmd(func() error {
			if mode == "fail" {
				fmt.Fprintln(os.Stderr, "error occurred")
				return fmt.Errorf("command failed")
			}

			fmt.Println("success")

			return nil
		})

		Execute()

		return
	}

	tests := []struct {
		mode     string
		exitCode int
		output   string
	}{
		{"ok", 0, "success"},
		{"fail", 1, "error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			cmd := exec.Command(os.Args[0], "-test.run=^TestExecute_ProcessLevel$")
			cmd.Env = append(os.Environ(), "OBSPORTABLE_EXECUTE_SUBPROCESS="+tt.mode)
			output, err := cmd.CombinedOutput()

			assert.Contains(t, string(output), tt.output)

			if tt.exitCode == 0 {
				require.NoError(t, err, "output: %s", output)
				return
			}

			var exitErr *exec.ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, tt.exitCode, exitErr.ExitCode())
		})
	}
}
