package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "obsportable.dev/pkg/obsportable/internal/model"
)

// maxRecentAssets bounds how many copied files stay on screen.
const maxRecentAssets = 8

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

type stepMsg struct {
	step  int
	title string
}

type stepDoneMsg struct{ message string }

type documentMsg struct{ document m.Path }

type assetMsg struct{ record m.AssetRecord }

type diffMsg struct {
	document m.Path
	diff     string
}

type summaryMsg struct{ summary m.BuildSummary }

type quitMsg struct{}

// TUI implements UI with a Bubble Tea progress view.
type TUI struct {
	output  io.Writer
	options []tea.ProgramOption

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer, options ...tea.ProgramOption) *TUI {
	return &TUI{output: output, options: options}
}

// Start launches the Bubble Tea program in the background.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return fmt.Errorf("tui already started")
	}

	cfg := newStartConfig(options)
	programOptions := append([]tea.ProgramOption{
		tea.WithOutput(t.output),
		tea.WithInput(nil),
		tea.WithContext(ctx),
	}, t.options...)

	t.program = tea.NewProgram(newProgressModel(banner(cfg)), programOptions...)
	t.done = make(chan struct{})

	go func(program *tea.Program, done chan struct{}) {
		defer close(done)

		if _, err := program.Run(); err != nil {
			slog.Debug("tui stopped", "error", err)
		}
	}(t.program, t.done)

	return nil
}

// Close stops the program and waits for the final frame to be drawn.
func (t *TUI) Close(_ context.Context) {
	t.mu.Lock()
	program, done := t.program, t.done
	t.program = nil
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(quitMsg{})
	<-done
}

// DisplayStep announces a pipeline step.
func (t *TUI) DisplayStep(_ context.Context, step int, title string) {
	t.send(stepMsg{step: step, title: title})
}

// DisplayStepDone confirms the current step.
func (t *TUI) DisplayStepDone(_ context.Context, message string) {
	t.send(stepDoneMsg{message: message})
}

// DisplayDocument announces the scene file being processed.
func (t *TUI) DisplayDocument(_ context.Context, document m.Path) {
	t.send(documentMsg{document: document})
}

// DisplayAssetCopied reports one copied media file.
func (t *TUI) DisplayAssetCopied(_ context.Context, record m.AssetRecord) {
	t.send(assetMsg{record: record})
}

// DisplayDiff records the pending change of a dry run.
func (t *TUI) DisplayDiff(_ context.Context, document m.Path, diff string) {
	t.send(diffMsg{document: document, diff: diff})
}

// DisplaySummary renders the summary table as the final frame.
func (t *TUI) DisplaySummary(ctx context.Context, summary m.BuildSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.send(summaryMsg{summary: summary})

	return nil
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(msg)
	}
}

type stepLine struct {
	step  int
	title string
	done  string
}

// progressModel is the Bubble Tea model behind TUI.
type progressModel struct {
	title     string
	spinner   spinner.Model
	steps     []stepLine
	current   m.Path
	documents int
	copied    int
	recent    []string
	diffs     []string
	summary   *m.BuildSummary
	quitting  bool
}

func newProgressModel(title string) progressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = activeStyle

	return progressModel{title: title, spinner: s}
}

func (pm progressModel) Init() tea.Cmd {
	return pm.spinner.Tick
}

//nolint:cyclop // One case per message type.
func (pm progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stepMsg:
		pm.steps = append(pm.steps, stepLine{step: msg.step, title: msg.title})
	case stepDoneMsg:
		if n := len(pm.steps); n > 0 {
			pm.steps[n-1].done = msg.message
		}
	case documentMsg:
		pm.current = msg.document
		pm.documents++
	case assetMsg:
		pm.copied++
		pm.recent = append(pm.recent, fmt.Sprintf("%s -> %s",
			m.BaseName(string(msg.record.Source)), msg.record.Reference))

		if len(pm.recent) > maxRecentAssets {
			pm.recent = pm.recent[len(pm.recent)-maxRecentAssets:]
		}
	case diffMsg:
		if msg.diff != "" {
			pm.diffs = append(pm.diffs, msg.diff)
		}
	case summaryMsg:
		summary := msg.summary
		pm.summary = &summary
	case quitMsg:
		pm.quitting = true
		return pm, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			pm.quitting = true
			return pm, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		pm.spinner, cmd = pm.spinner.Update(msg)

		return pm, cmd
	}

	return pm, nil
}

func (pm progressModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(pm.title))
	b.WriteString("\n\n")

	for _, step := range pm.steps {
		fmt.Fprintf(&b, "[%d] %s\n", step.step, step.title)

		if step.done != "" {
			fmt.Fprintf(&b, "    %s\n", doneStyle.Render("✓ "+step.done))
		}
	}

	if pm.summary == nil && !pm.quitting && pm.current != "" {
		fmt.Fprintf(&b, "    %s %s (%d scene(s), %d asset(s))\n",
			pm.spinner.View(), m.BaseName(string(pm.current)), pm.documents, pm.copied)

		for _, line := range pm.recent {
			fmt.Fprintf(&b, "      %s\n", dimStyle.Render(line))
		}
	}

	for _, diff := range pm.diffs {
		b.WriteString("\n")
		b.WriteString(diff)
	}

	if pm.summary != nil {
		b.WriteString("\n")
		b.WriteString(renderSummaryTable(*pm.summary))
		b.WriteString("\n")
		b.WriteString(doneStyle.Render(doneBanner))
		b.WriteString("\n")
	}

	return b.String()
}
