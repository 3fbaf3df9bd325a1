package seed

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jppf-project/site/internal/services/site/storage"
)

// Config holds runner settings.
type Config struct {
	ManifestPath string
	Verbose      bool
}

// Result counts the records a run created and skipped.
type Result struct {
	GroupsCreated int
	GroupsSkipped int
	LinksCreated  int
	LinksSkipped  int
}

// Runner applies manifests to a link store.
type Runner struct {
	cfg    Config
	writer storage.LinkWriter
	errW   io.Writer
}

// NewRunner builds a runner writing through writer. Verbose progress goes to
// errW.
func NewRunner(cfg Config, writer storage.LinkWriter, errW io.Writer) *Runner {
	if errW == nil {
		errW = io.Discard
	}
	return &Runner{cfg: cfg, writer: writer, errW: errW}
}

// Run loads and applies the configured manifest.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	manifest, err := LoadManifest(r.cfg.ManifestPath)
	if err != nil {
		return Result{}, err
	}
	return r.RunManifest(ctx, manifest)
}

// RunManifest applies one manifest. Records that already exist are left
// untouched.
func (r *Runner) RunManifest(ctx context.Context, manifest Manifest) (Result, error) {
	if r == nil {
		return Result{}, fmt.Errorf("runner is required")
	}
	if r.writer == nil {
		return Result{}, fmt.Errorf("link writer is required")
	}
	if err := ValidateManifest(manifest); err != nil {
		return Result{}, err
	}

	var result Result
	for _, group := range manifest.Groups {
		created, err := r.apply(r.writer.CreateLinkGroup(ctx, storage.LinkGroup{
			ID:          group.ID,
			Description: group.Description,
		}))
		if err != nil {
			return result, fmt.Errorf("create group %d: %w", group.ID, err)
		}
		if created {
			result.GroupsCreated++
			r.logf("group %d created", group.ID)
		} else {
			result.GroupsSkipped++
			r.logf("group %d exists, skipped", group.ID)
		}

		for _, link := range group.Links {
			created, err := r.apply(r.writer.CreateLink(ctx, storage.Link{
				ID:          link.ID,
				GroupID:     group.ID,
				URL:         link.URL,
				Title:       link.Title,
				Description: link.Description,
			}))
			if err != nil {
				return result, fmt.Errorf("create link %d in group %d: %w", link.ID, group.ID, err)
			}
			if created {
				result.LinksCreated++
				r.logf("link %d/%d created", group.ID, link.ID)
			} else {
				result.LinksSkipped++
				r.logf("link %d/%d exists, skipped", group.ID, link.ID)
			}
		}
	}
	return result, nil
}

func (r *Runner) apply(err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, storage.ErrAlreadyExists):
		return false, nil
	default:
		return false, err
	}
}

func (r *Runner) logf(format string, args ...any) {
	if r == nil || !r.cfg.Verbose || r.errW == nil {
		return
	}
	_, _ = fmt.Fprintf(r.errW, format+"\n", args...)
}
