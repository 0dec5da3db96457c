// Package domain contains the portable bundle workflow and the scene
// path-rewriting core.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"obsportable.dev/pkg/obsportable/internal/adapter"
	"obsportable.dev/pkg/obsportable/internal/controller"
	m "obsportable.dev/pkg/obsportable/internal/model"
)

const defaultFilePerm os.FileMode = 0o644

// BuildArgs contains the arguments for building a portable bundle.
type BuildArgs struct {
	Destination   m.Path `validate:"required"`
	InstallDir    m.Path `validate:"required"`
	AppDataDir    m.Path `validate:"required"`
	AssetsDirName string `validate:"omitempty,excludesall=/\\"`
	Threads       int    `validate:"gte=0"`
}

// RewriteArgs contains the arguments for rewriting scene files in place.
type RewriteArgs struct {
	Documents []m.Path `validate:"required,min=1,dive,required"`
	AssetsDir m.Path   `validate:"required"`
	Threads   int      `validate:"gte=0"`
	DryRun    bool
}

var validate = validator.New()

// Validate checks the build arguments.
func (a BuildArgs) Validate() error {
	if err := validate.Struct(a); err != nil {
		return fmt.Errorf("invalid build arguments: %w", err)
	}

	return nil
}

// Validate checks the rewrite arguments.
func (a RewriteArgs) Validate() error {
	if err := validate.Struct(a); err != nil {
		return fmt.Errorf("invalid rewrite arguments: %w", err)
	}

	return nil
}

// Workflow defines the operations exposed to the CLI.
type Workflow interface {
	Build(ctx context.Context, args BuildArgs) (m.BuildSummary, error)
	Rewrite(ctx context.Context, args RewriteArgs) (m.BuildSummary, error)
}

type workflow struct {
	adapter.FSAdapter
	adapter.DocumentCodec
	controller.UI
	IniPatcher
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.FSAdapter,
	codec adapter.DocumentCodec,
	ui controller.UI,
	patcher IniPatcher,
) Workflow {
	return &workflow{
		FSAdapter:     fsAdapter,
		DocumentCodec: codec,
		UI:            ui,
		IniPatcher:    patcher,
	}
}

// Build runs the whole pipeline: program files, profile data, ini patch and
// scene rewrite.
func (w *workflow) Build(ctx context.Context, args BuildArgs) (m.BuildSummary, error) {
	if err := args.Validate(); err != nil {
		return m.BuildSummary{}, err
	}

	layout := NewLayout(args)
	slog.Info("building portable bundle", "root", layout.Root, "install", args.InstallDir, "appdata", args.AppDataDir)

	if err := w.Start(ctx, controller.WithBuildMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return m.BuildSummary{}, err
	}
	defer w.Close(ctx)

	if err := w.prepareStructure(ctx, layout, args.InstallDir); err != nil {
		return m.BuildSummary{}, fmt.Errorf("prepare structure: %w", err)
	}

	if err := w.copyProfileData(ctx, layout); err != nil {
		return m.BuildSummary{}, fmt.Errorf("copy profile data: %w", err)
	}

	if err := w.patchGlobalIni(ctx, layout); err != nil {
		return m.BuildSummary{}, fmt.Errorf("patch global.ini: %w", err)
	}

	w.DisplayStep(ctx, 4, "Processing JSON scene files")

	documents, err := w.sceneDocuments(layout.ScenesDir)
	if err != nil {
		return m.BuildSummary{}, fmt.Errorf("list scenes: %w", err)
	}

	results, err := w.processDocuments(ctx, documents, layout.AssetsDir, args.Threads, false)
	if err != nil {
		return m.BuildSummary{}, err
	}

	w.DisplayStepDone(ctx, "Scene files updated.")

	summary := m.BuildSummary{Root: layout.Root, AssetsDir: layout.AssetsDir, Documents: results}
	if err := w.DisplaySummary(ctx, summary); err != nil {
		return summary, fmt.Errorf("display: %w", err)
	}

	slog.Info("portable bundle ready", "root", layout.Root, "scenes", len(results), "assets", summary.AssetCount())

	return summary, nil
}

// Rewrite migrates the assets of the given scene files only.
func (w *workflow) Rewrite(ctx context.Context, args RewriteArgs) (m.BuildSummary, error) {
	if err := args.Validate(); err != nil {
		return m.BuildSummary{}, err
	}

	if err := w.Start(ctx, controller.WithRewriteMode(), controller.WithDryRun(args.DryRun)); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return m.BuildSummary{}, err
	}
	defer w.Close(ctx)

	results, err := w.processDocuments(ctx, args.Documents, args.AssetsDir, args.Threads, args.DryRun)
	if err != nil {
		return m.BuildSummary{}, err
	}

	summary := m.BuildSummary{AssetsDir: args.AssetsDir, Documents: results}
	if err := w.DisplaySummary(ctx, summary); err != nil {
		return summary, fmt.Errorf("display: %w", err)
	}

	return summary, nil
}

func (w *workflow) prepareStructure(ctx context.Context, layout Layout, installDir m.Path) error {
	w.DisplayStep(ctx, 1, "Preparing portable OBS structure")

	if err := w.MkdirAll(layout.Root); err != nil {
		return err
	}

	slog.Debug("copying OBS installation", "from", installDir, "to", layout.Root)

	if err := w.CopyDir(installDir, layout.Root); err != nil {
		return fmt.Errorf("copy installation: %w", err)
	}

	if err := w.MkdirAll(layout.ConfigDir); err != nil {
		return err
	}

	exists, err := w.exists(layout.PortableFlag)
	if err != nil {
		return err
	}

	if !exists {
		if err := w.WriteFile(layout.PortableFlag, []byte(PortableFlagContent), defaultFilePerm); err != nil {
			return fmt.Errorf("write %s: %w", PortableFlagName, err)
		}
	}

	w.DisplayStepDone(ctx, "Portable structure ready.")

	return nil
}

func (w *workflow) copyProfileData(ctx context.Context, layout Layout) error {
	w.DisplayStep(ctx, 2, "Copying profiles, scenes and ini files")

	if err := w.MkdirAll(layout.BasicDir); err != nil {
		return err
	}

	if err := w.CopyDir(layout.SourceProfilesDir, layout.ProfilesDir); err != nil {
		return fmt.Errorf("copy profiles: %w", err)
	}

	if err := w.CopyDir(layout.SourceScenesDir, layout.ScenesDir); err != nil {
		return fmt.Errorf("copy scenes: %w", err)
	}

	if err := w.CopyFile(layout.SourceGlobalIni, layout.GlobalIni); err != nil {
		return fmt.Errorf("copy %s: %w", globalIniName, err)
	}

	userIni, err := w.exists(layout.SourceUserIni)
	if err != nil {
		return err
	}

	if userIni {
		if err := w.CopyFile(layout.SourceUserIni, layout.UserIni); err != nil {
			return fmt.Errorf("copy %s: %w", userIniName, err)
		}
	}

	w.DisplayStepDone(ctx, "Profile & scene data copied.")

	return nil
}

func (w *workflow) patchGlobalIni(ctx context.Context, layout Layout) error {
	w.DisplayStep(ctx, 3, "Patching global.ini")

	info, err := w.Stat(layout.GlobalIni)
	if err != nil {
		return err
	}

	content, err := w.ReadFile(layout.GlobalIni)
	if err != nil {
		return err
	}

	patched := w.Patch(string(content))
	if err := w.WriteFile(layout.GlobalIni, []byte(patched), info.Mode().Perm()); err != nil {
		return err
	}

	w.DisplayStepDone(ctx, "global.ini updated.")

	return nil
}

// sceneDocuments lists the *.json files directly inside dir, by name.
func (w *workflow) sceneDocuments(dir m.Path) ([]m.Path, error) {
	entries, err := w.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	documents := make([]m.Path, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), sceneExt) {
			continue
		}

		documents = append(documents, w.JoinPath(string(dir), entry.Name()))
	}

	return documents, nil
}

// processDocuments rewrites every document against one shared namer. With
// threads > 1 documents run concurrently; the first failure cancels the
// rest.
func (w *workflow) processDocuments(
	ctx context.Context,
	documents []m.Path,
	assetsDir m.Path,
	threads int,
	dryRun bool,
) ([]m.DocumentResult, error) {
	index, err := LoadDirIndex(w.FSAdapter, assetsDir)
	if err != nil {
		return nil, err
	}

	namer := NewCollisionSafeNamer(assetsDir, index)
	classifier := NewPathClassifier(w.FSAdapter)
	results := make([]m.DocumentResult, len(documents))

	if threads <= 1 {
		for i, document := range documents {
			result, err := w.processDocument(ctx, document, classifier, namer, dryRun)
			if err != nil {
				return nil, err
			}

			results[i] = result
		}

		return results, nil
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for i, document := range documents {
		group.Go(func() error {
			result, err := w.processDocument(groupCtx, document, classifier, namer, dryRun)
			if err != nil {
				return err
			}

			results[i] = result

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// processDocument rewrites one scene file. Nothing is written back unless
// the whole document was rewritten.
func (w *workflow) processDocument(
	ctx context.Context,
	document m.Path,
	classifier PathClassifier,
	namer *CollisionSafeNamer,
	dryRun bool,
) (m.DocumentResult, error) {
	w.DisplayDocument(ctx, document)

	info, err := w.Stat(document)
	if err != nil {
		return m.DocumentResult{}, &DocumentError{Document: document, Err: err}
	}

	original, err := w.ReadFile(document)
	if err != nil {
		return m.DocumentResult{}, &DocumentError{Document: document, Err: err}
	}

	root, err := w.Decode(original)
	if err != nil {
		return m.DocumentResult{}, &DocumentError{Document: document, Err: err}
	}

	if scene, ok := root.(*m.Mapping); ok {
		name, _ := scene.Get("name")
		slog.Debug("decoded scene collection", "document", document, "name", name, "keys", scene.Keys())
	} else {
		slog.Debug("decoded document", "document", document, "root", root.Kind())
	}

	options := []RewriterOption{
		WithAssetPrefix(AssetPrefixFor(m.BaseName(string(namer.Dir())))),
		WithProgress(func(record m.AssetRecord) {
			w.DisplayAssetCopied(ctx, record)
		}),
	}
	if dryRun {
		options = append(options, WithDryRun())
	}

	rewritten, assets, err := NewTreeRewriter(classifier, namer, w.FSAdapter, options...).Rewrite(ctx, root)
	if err != nil {
		slog.Error("Failed to rewrite document, leaving it untouched", "document", document, "error", err)
		return m.DocumentResult{}, &DocumentError{Document: document, Err: err}
	}

	encoded, err := w.Encode(rewritten)
	if err != nil {
		return m.DocumentResult{}, &DocumentError{Document: document, Err: err}
	}

	result := m.DocumentResult{Document: document, Assets: assets}

	if dryRun {
		diff, err := unifiedDiff(document, original, encoded)
		if err != nil {
			return m.DocumentResult{}, &DocumentError{Document: document, Err: err}
		}

		w.DisplayDiff(ctx, document, diff)

		return result, nil
	}

	if err := w.WriteFile(document, encoded, info.Mode().Perm()); err != nil {
		return m.DocumentResult{}, &DocumentError{Document: document, Err: fmt.Errorf("write back: %w", err)}
	}

	result.Written = true
	slog.Debug("rewrote document", "document", document, "assets", len(assets))

	return result, nil
}

func (w *workflow) exists(path m.Path) (bool, error) {
	_, err := w.Stat(path)
	if err == nil {
		return true, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	return false, err
}

func unifiedDiff(document m.Path, before, after []byte) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: string(document),
		ToFile:   string(document) + " (portable)",
		Context:  2,
	})
}
