package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"obsportable.dev/pkg/obsportable/internal/adapter"
	m "obsportable.dev/pkg/obsportable/internal/model"
)

// AssetPrefix is prepended to every rewritten reference into the default
// assets directory. Portable OBS resolves relative media paths from
// bin/64bit, two levels below the bundle root that holds the assets
// directory.
const AssetPrefix = "../../" + DefaultAssetsDirName + "/"

// AssetPrefixFor returns the reference prefix of an assets directory named
// dirName under the bundle root.
func AssetPrefixFor(dirName string) string {
	if dirName == "" {
		return AssetPrefix
	}

	return "../../" + dirName + "/"
}

// AssetCopier performs the side effect of migrating one asset.
type AssetCopier interface {
	MkdirAll(path m.Path) error
	CopyFile(src, dst m.Path) error
}

// dryRunCopier reserves names without touching the disk.
type dryRunCopier struct{}

func (dryRunCopier) MkdirAll(m.Path) error { return nil }

func (dryRunCopier) CopyFile(_, _ m.Path) error { return nil }

// RewriterOption configures a TreeRewriter.
type RewriterOption func(*TreeRewriter)

// WithProgress registers a callback invoked after every copied asset.
func WithProgress(fn func(record m.AssetRecord)) RewriterOption {
	return func(r *TreeRewriter) {
		r.progress = fn
	}
}

// WithCopier replaces the copier used for assets.
func WithCopier(copier AssetCopier) RewriterOption {
	return func(r *TreeRewriter) {
		r.copier = copier
	}
}

// WithAssetPrefix replaces the prefix written in front of reserved names.
func WithAssetPrefix(prefix string) RewriterOption {
	return func(r *TreeRewriter) {
		r.prefix = prefix
	}
}

// WithDryRun makes the rewriter reserve names and rewrite references
// without copying anything.
func WithDryRun() RewriterOption {
	return WithCopier(dryRunCopier{})
}

// TreeRewriter walks a document and replaces every migratable path with a
// reference into the assets directory, copying the file on the way.
type TreeRewriter struct {
	classifier PathClassifier
	namer      *CollisionSafeNamer
	copier     AssetCopier
	prefix     string
	progress   func(record m.AssetRecord)
}

// NewTreeRewriter constructs a TreeRewriter. Assets are copied with fs
// unless WithCopier or WithDryRun overrides it.
func NewTreeRewriter(
	classifier PathClassifier,
	namer *CollisionSafeNamer,
	fs adapter.FSAdapter,
	options ...RewriterOption,
) *TreeRewriter {
	r := &TreeRewriter{
		classifier: classifier,
		namer:      namer,
		copier:     fs,
		prefix:     AssetPrefix,
	}

	for _, option := range options {
		option(r)
	}

	return r
}

// Rewrite returns a copy of node with migrated references, plus a record
// for every asset copied. The input tree is not modified. The first copy
// failure aborts the walk.
func (r *TreeRewriter) Rewrite(ctx context.Context, node m.Node) (m.Node, []m.AssetRecord, error) {
	var records []m.AssetRecord

	out, err := r.rewrite(ctx, node, &records)
	if err != nil {
		return nil, records, err
	}

	return out, records, nil
}

func (r *TreeRewriter) rewrite(ctx context.Context, node m.Node, records *[]m.AssetRecord) (m.Node, error) {
	switch n := node.(type) {
	case *m.Mapping:
		out := m.NewMapping(n.Len())

		for _, entry := range n.Entries {
			value, err := r.rewrite(ctx, entry.Value, records)
			if err != nil {
				return nil, err
			}

			out.Entries = append(out.Entries, m.Entry{Key: entry.Key, Value: value})
		}

		return out, nil
	case m.Sequence:
		out := make(m.Sequence, 0, len(n))

		for _, item := range n {
			value, err := r.rewrite(ctx, item, records)
			if err != nil {
				return nil, err
			}

			out = append(out, value)
		}

		return out, nil
	case m.String:
		if !r.classifier.ClassifyNode(n) {
			return n, nil
		}

		record, err := r.migrate(ctx, m.Path(n))
		if err != nil {
			return nil, err
		}

		*records = append(*records, record)

		return m.String(record.Reference), nil
	}

	return node, nil
}

func (r *TreeRewriter) migrate(ctx context.Context, source m.Path) (m.AssetRecord, error) {
	if err := ctx.Err(); err != nil {
		return m.AssetRecord{}, err
	}

	destination := r.namer.Reserve(m.BaseName(string(source)))

	if err := r.copier.MkdirAll(r.namer.Dir()); err != nil {
		return m.AssetRecord{}, &CopyError{
			Source:      source,
			Destination: destination,
			Kind:        ErrDestinationUnwritable,
			Err:         err,
		}
	}

	slog.Debug("copying asset", "source", source, "destination", destination)

	if err := r.copier.CopyFile(source, destination); err != nil {
		copyErr := newCopyError(source, destination, err)
		slog.Error("failed to copy asset", "source", source, "destination", destination, "error", err)

		return m.AssetRecord{}, copyErr
	}

	record := m.AssetRecord{
		Source:      source,
		Destination: destination,
		Reference:   r.prefix + m.BaseName(string(destination)),
	}

	if r.progress != nil {
		r.progress(record)
	}

	return record, nil
}

func newCopyError(source, destination m.Path, err error) *CopyError {
	kind := ErrDestinationUnwritable

	if errors.Is(err, adapter.ErrCopySource) {
		kind = ErrSourceUnreadable
		if errors.Is(err, os.ErrNotExist) {
			kind = ErrSourceVanished
		}
	}

	return &CopyError{
		Source:      source,
		Destination: destination,
		Kind:        kind,
		Err:         fmt.Errorf("copy asset: %w", err),
	}
}
