// Package controller provides progress output for portable builds.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "obsportable.dev/pkg/obsportable/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeBuild StartMode = iota
	ModeRewrite
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode   StartMode
	dryRun bool
}

// WithBuildMode sets the UI to full bundle build mode.
func WithBuildMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeBuild
	}
}

// WithRewriteMode sets the UI to scene-only rewrite mode.
func WithRewriteMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRewrite
	}
}

// WithDryRun marks the run as not writing anything.
func WithDryRun(dryRun bool) StartOption {
	return func(c *StartConfig) {
		c.dryRun = dryRun
	}
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeBuild}
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI defines the progress sink of a build.
// Implementations must be safe for use from several goroutines.
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	DisplayStep(ctx context.Context, step int, title string)
	DisplayStepDone(ctx context.Context, message string)
	DisplayDocument(ctx context.Context, document m.Path)
	DisplayAssetCopied(ctx context.Context, record m.AssetRecord)
	DisplayDiff(ctx context.Context, document m.Path, diff string)
	DisplaySummary(ctx context.Context, summary m.BuildSummary) error
}

// NewUI returns the interactive TUI on a terminal and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
