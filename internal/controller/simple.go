package controller

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "obsportable.dev/pkg/obsportable/internal/model"
)

const (
	buildBanner   = "=== OBS Portable Builder ==="
	rewriteBanner = "=== OBS Portable Scene Rewrite ==="
	dryRunSuffix  = " (dry run)"
	doneBanner    = "=== Completed successfully ==="
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start prints the run banner.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options)

	s.printf("%s\n\n", banner(cfg))

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplayStep announces a pipeline step.
func (s *SimpleUI) DisplayStep(ctx context.Context, step int, title string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("[%d] %s...\n", step, title)
}

// DisplayStepDone confirms the current step.
func (s *SimpleUI) DisplayStepDone(ctx context.Context, message string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("    ✓ %s\n", message)
}

// DisplayDocument announces the scene file being processed.
func (s *SimpleUI) DisplayDocument(ctx context.Context, document m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("    - Processing %s\n", m.BaseName(string(document)))
}

// DisplayAssetCopied reports one copied media file.
func (s *SimpleUI) DisplayAssetCopied(ctx context.Context, record m.AssetRecord) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("    Copying file: %s -> %s\n", m.BaseName(string(record.Source)), m.BaseName(string(record.Destination)))
}

// DisplayDiff prints the pending change of a dry run.
func (s *SimpleUI) DisplayDiff(ctx context.Context, document m.Path, diff string) {
	if err := ctx.Err(); err != nil {
		return
	}

	if diff == "" {
		s.printf("    %s: no changes\n", m.BaseName(string(document)))
		return
	}

	s.printf("%s\n", diff)
}

// DisplaySummary prints the copied assets as a table.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.BuildSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderSummaryTable(summary))
	s.printf("\n%s\n", doneBanner)

	return nil
}

func renderSummaryTable(summary m.BuildSummary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Scene", "Source", "Asset"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, doc := range summary.Documents {
		scene := m.BaseName(string(doc.Document))

		if len(doc.Assets) == 0 {
			table.Append([]string{scene, "-", "-"})
			continue
		}

		for _, asset := range doc.Assets {
			table.Append([]string{scene, string(asset.Source), asset.Reference})
		}
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Scenes %d", len(summary.Documents)),
		"",
		fmt.Sprintf("%d", summary.AssetCount()),
	})

	table.Render()

	return tableBuffer.String()
}

func banner(cfg StartConfig) string {
	title := buildBanner
	if cfg.mode == ModeRewrite {
		title = rewriteBanner
	}

	if cfg.dryRun {
		title += dryRunSuffix
	}

	return title
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
