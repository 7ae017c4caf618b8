// Command domainsgen regenerates domains_gen.go from domains.json.
//
// It takes no arguments when run through go generate from the module root.
// Flags and DOMAINSGEN_* environment variables override the defaults.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"github.com/optimode/freemail/internal/domainsgen"
)

type config struct {
	Root    string `env:"DOMAINSGEN_ROOT"`
	In      string `env:"DOMAINSGEN_IN" envDefault:"domains.json"`
	Out     string `env:"DOMAINSGEN_OUT" envDefault:"domains_gen.go"`
	Package string `env:"DOMAINSGEN_PKG" envDefault:"freemail"`
	Verbose bool   `env:"DOMAINSGEN_VERBOSE"`
}

func main() {
	if err := run(os.Args[1:], nil, os.Stdout, os.Stderr); err != nil {
		fatal(err)
	}
}

// run executes one generation. A nil environ reads the process environment.
func run(args []string, environ map[string]string, stdout, stderr io.Writer) error {
	var cfg config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	flags := flag.NewFlagSet("domainsgen", flag.ContinueOnError)
	flags.StringVar(&cfg.In, "in", cfg.In, "domain list, relative to the root")
	flags.StringVar(&cfg.Out, "out", cfg.Out, "generated Go file, relative to the root")
	flags.StringVar(&cfg.Package, "pkg", cfg.Package, "package clause of the generated file")
	flags.StringVar(&cfg.Root, "root", cfg.Root, "repo root (defaults to locating go.mod)")
	flags.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "log pipeline stages")
	flags.SetOutput(stderr)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if flags.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", flags.Args())
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	root, err := resolveRoot(cfg.Root)
	if err != nil {
		return err
	}

	opts := domainsgen.DefaultOptions()
	opts.Package = cfg.Package
	opts.Source = filepath.ToSlash(cfg.In)

	res, err := domainsgen.Generate(domainsgen.Config{
		Input:   resolvePath(root, cfg.In),
		Output:  resolvePath(root, cfg.Out),
		Options: opts,
		Logger:  log,
	})
	if err != nil {
		return err
	}
	if res.Duplicates > 0 {
		log.Warn("domainsgen.duplicates_dropped", "count", res.Duplicates)
	}

	fmt.Fprintf(stdout, "Generated %s with %d domains\n", res.Output, res.Count)
	return nil
}

func resolvePath(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// resolveRoot chooses the module root so the list and the generated file
// are found regardless of the working directory.
func resolveRoot(flagRoot string) (string, error) {
	if flagRoot != "" {
		return filepath.Clean(flagRoot), nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working dir: %w", err)
	}
	return findModuleRoot(wd)
}

func findModuleRoot(start string) (string, error) {
	dir := start
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("go.mod not found above %s", start)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "domainsgen: %v\n", err)
	os.Exit(1)
}
