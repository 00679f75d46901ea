package app

import "time"

// Config holds runtime configuration for a single scrape run.
type Config struct {
	// URL of the rates page to render. Ignored when SnapshotPath is set.
	URL string
	// Year associated with every extracted row.
	Year int

	// OutputPath receives the dataset; format follows the extension
	// (.csv default, .xlsx, .pdf). Mutually exclusive with Preview.
	OutputPath string
	// Preview prints the first N rows instead of writing a file.
	Preview int

	// SnapshotPath renders from a saved page snapshot instead of Chrome.
	SnapshotPath string

	// Render
	RenderTimeout  time.Duration
	RenderHeadless bool

	// RenderTimeoutSet and RenderHeadlessSet report whether the value came
	// from an explicit flag (or, for the timeout, the environment) rather
	// than the built-in default. Overlays skip set fields, so an explicit
	// -render.timeout=15s is never mistaken for "unset".
	RenderTimeoutSet  bool
	RenderHeadlessSet bool

	// Behavior
	Verbose bool
}
