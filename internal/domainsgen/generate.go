// Package domainsgen turns the free email domain list into Go source that
// embeds the list as a set.
//
// The pipeline is Load, Normalize, Render and Write, in that order. Each run
// is a pure function of the input file: sorting is byte-wise and duplicates
// are dropped, so the generated file is reproducible byte for byte and
// produces clean diffs. The output file is only touched once rendering has
// succeeded.
package domainsgen

import (
	"io"
	"log/slog"
	"path/filepath"

	"github.com/optimode/freemail/internal/parse"
)

// Config describes one generator run.
type Config struct {
	Input   string
	Output  string
	Options Options
	// Logger receives stage transitions at debug level. Nil discards them.
	Logger *slog.Logger
}

// Result reports what a run produced.
type Result struct {
	Output     string
	Count      int
	Duplicates int
}

// Generate runs the whole pipeline and stops at the first failing stage.
func Generate(cfg Config) (Result, error) {
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	opts := cfg.Options
	if opts.Source == "" {
		opts.Source = filepath.Base(cfg.Input)
	}

	domains, err := Load(cfg.Input)
	if err != nil {
		return Result{}, err
	}
	log.Debug("domainsgen.loaded", "path", cfg.Input, "domains", len(domains))

	sorted := Normalize(domains)
	dups := len(domains) - len(sorted)
	log.Debug("domainsgen.normalized", "domains", len(sorted), "duplicates", dups)
	for _, d := range sorted {
		// Kept as listed; lookups normalize their input and would never match it.
		if key := parse.LookupKey(d); key != d {
			log.Warn("domainsgen.unreachable_domain", "domain", d, "lookup_key", key)
		}
	}

	artifact, err := Render(sorted, opts)
	if err != nil {
		return Result{}, err
	}
	log.Debug("domainsgen.rendered", "bytes", len(artifact.Source))

	n, err := Write(artifact, cfg.Output)
	if err != nil {
		return Result{}, err
	}
	log.Debug("domainsgen.written", "path", cfg.Output, "domains", n)

	return Result{Output: cfg.Output, Count: n, Duplicates: dups}, nil
}
