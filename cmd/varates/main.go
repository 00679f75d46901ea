package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/varates/internal/app"
	"github.com/hyperifyio/varates/internal/dataset"
	"github.com/hyperifyio/varates/internal/render"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		url            string
		year           int
		outPath        string
		preview        int
		snapshotPath   string
		configPath     string
		verbose        bool
		renderTimeout  time.Duration
		renderHeadless bool
	)

	flag.StringVar(&url, "url", os.Getenv("VARATES_URL"), "Disability rates page URL to render")
	flag.IntVar(&year, "year", 0, "Rates year associated with every row (e.g. 2024)")
	flag.StringVar(&outPath, "out", os.Getenv("VARATES_OUT"), "Output path; format follows extension (.csv default, .xlsx, .pdf)")
	flag.IntVar(&preview, "preview", 0, "Preview the first N rows on stdout instead of writing a file")
	flag.StringVar(&snapshotPath, "snapshot", os.Getenv("VARATES_SNAPSHOT"), "Render from a saved page snapshot instead of Chrome")
	flag.StringVar(&configPath, "config", "", "Optional YAML/JSON config file")
	flag.BoolVar(&verbose, "v", false, "Verbose per-table diagnostics")
	flag.DurationVar(&renderTimeout, "render.timeout", 15*time.Second, "Bounded wait for table hydration")
	flag.BoolVar(&renderHeadless, "render.headless", true, "Run the browser headless")
	flag.Parse()

	cfg := app.Config{
		URL:            url,
		Year:           year,
		OutputPath:     outPath,
		Preview:        preview,
		SnapshotPath:   snapshotPath,
		RenderTimeout:  renderTimeout,
		RenderHeadless: renderHeadless,
		Verbose:        verbose,
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "render.timeout":
			cfg.RenderTimeoutSet = true
		case "render.headless":
			cfg.RenderHeadlessSet = true
		}
	})
	app.ApplyEnvToConfig(&cfg)
	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("config", configPath).Msg("load config file")
			os.Exit(2)
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if cfg.Year <= 0 {
		log.Error().Msg("-year is required")
		os.Exit(2)
	}
	if cfg.URL == "" && cfg.SnapshotPath == "" {
		log.Error().Msg("-url is required unless -snapshot is given")
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		if h := hint(err); h != "" {
			fmt.Fprintln(os.Stderr, h)
		}
		// Exit code policy: configuration mistakes and empty results exit 2,
		// render failures and I/O errors exit 1.
		if errors.Is(err, dataset.ErrEmpty) || errors.Is(err, app.ErrNoOutputMode) || errors.Is(err, app.ErrOutputModeConflict) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// hint adds a human-readable follow-up for the common fatal conditions.
func hint(err error) string {
	switch {
	case errors.Is(err, dataset.ErrEmpty):
		return "No rows were scraped. Run again with -v to see per-table diagnostics."
	case errors.Is(err, render.ErrHydrationTimeout):
		return "The page never hydrated its tables; check the URL or raise -render.timeout."
	case errors.Is(err, app.ErrNoOutputMode), errors.Is(err, app.ErrOutputModeConflict):
		return "Provide -out (or run with -preview), not both."
	}
	return ""
}

func run(cfg app.Config) error {
	return app.New(cfg).Run(context.Background())
}
