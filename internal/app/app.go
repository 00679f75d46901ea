package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/varates/internal/dataset"
	"github.com/hyperifyio/varates/internal/output"
	"github.com/hyperifyio/varates/internal/render"
	"github.com/hyperifyio/varates/internal/rows"
	"github.com/hyperifyio/varates/internal/section"
	"github.com/hyperifyio/varates/internal/table"
)

// ErrNoOutputMode is returned when neither an output destination nor preview
// mode was requested. Per the exit code policy this condition results in a
// non-zero process exit.
var ErrNoOutputMode = errors.New("no output mode: provide -out or run with -preview")

// ErrOutputModeConflict is returned when both were requested; the two modes
// are mutually exclusive per run.
var ErrOutputModeConflict = errors.New("-out and -preview are mutually exclusive")

type App struct {
	cfg      Config
	renderer render.Renderer
}

// New builds an App, selecting the renderer backend: a saved snapshot when
// configured, headless Chrome otherwise.
func New(cfg Config) *App {
	a := &App{cfg: cfg}
	if cfg.SnapshotPath != "" {
		a.renderer = &render.File{Path: cfg.SnapshotPath}
	} else {
		a.renderer = &render.Chrome{Headless: cfg.RenderHeadless, HydrationTimeout: cfg.RenderTimeout}
	}
	return a
}

// NewWithRenderer builds an App around an explicit renderer. Used by tests.
func NewWithRenderer(cfg Config, r render.Renderer) *App {
	return &App{cfg: cfg, renderer: r}
}

// Run executes one scrape: render, extract, assemble, then write or preview.
func (a *App) Run(ctx context.Context) error {
	log.Debug().Str("renderer", a.renderer.Name()).Str("url", a.cfg.URL).Msg("rendering page")
	snap, err := a.renderer.Render(ctx, a.cfg.URL)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	handles := table.Collect(snap.Doc)
	log.Debug().Int("tables", len(handles)).Msg("found hydrated tables")

	all := make([]dataset.Row, 0, 256)
	for i, h := range handles {
		meta := section.Locate(h.Node)
		if a.cfg.Verbose {
			logTable(i+1, h, meta)
		}
		all = append(all, rows.Normalize(h, meta, a.cfg.Year)...)
	}

	final, sum, err := dataset.Assemble(all)
	if err != nil {
		return err
	}
	log.Debug().Int("removed", sum.Removed).Int("final", sum.Final).Msg("deduplicated rows")

	switch {
	case a.cfg.Preview > 0 && a.cfg.OutputPath != "":
		return ErrOutputModeConflict
	case a.cfg.Preview > 0:
		if err := output.Preview(os.Stdout, final, a.cfg.Preview); err != nil {
			return fmt.Errorf("preview: %w", err)
		}
		log.Info().Int("rows", sum.Final).Msg("preview mode: no file written")
		return nil
	case a.cfg.OutputPath != "":
		if err := output.Write(a.cfg.OutputPath, final, a.cfg.Year); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		log.Info().Int("rows", sum.Final).Str("out", a.cfg.OutputPath).Msg("saved dataset")
		return nil
	}
	return ErrNoOutputMode
}

// logTable emits the per-table diagnostics of verbose mode: index, caption,
// resolved category, section meta, headers, and body-row count.
func logTable(idx int, h table.Handle, meta *section.Meta) {
	category, twoCol := table.Classify(h.Caption, h.Headers)
	ev := log.Debug().
		Int("table", idx).
		Str("caption", h.Caption).
		Str("category", string(category)).
		Bool("twoColumn", twoCol).
		Strs("headers", h.Headers).
		Int("bodyRows", len(h.Body))
	if meta != nil {
		ev = ev.Str("sectionID", meta.ID).Str("sectionText", meta.Text)
	}
	ev.Msg("classified table")
}
