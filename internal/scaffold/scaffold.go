// Package scaffold embeds starter cursecov files and writes them to a
// target project directory.
package scaffold

import (
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

//go:embed assets/*
var assets embed.FS

// file maps an embedded asset to its path under the target directory.
type file struct {
	asset  string
	target string
}

var files = []file{
	{asset: "assets/cursecov.yaml", target: ".cursecov.yaml"},
	{asset: "assets/workflow.yml", target: filepath.Join(".github", "workflows", "cursecov.yml")},
}

// Options configures the scaffold operation.
type Options struct {
	// TargetDir is the root directory to scaffold into.
	// Defaults to the current working directory.
	TargetDir string

	// Force overwrites existing files when true.
	// When false, existing files are skipped.
	Force bool

	// Version is the cursecov version string to embed in the
	// version marker comment. Defaults to "dev".
	Version string

	// Stdout is the writer for summary output.
	// Defaults to os.Stdout.
	Stdout io.Writer
}

// Result reports what the scaffold operation did.
type Result struct {
	// Created lists files that were written for the first time.
	Created []string

	// Skipped lists files that already existed and were not
	// overwritten (Force was false).
	Skipped []string

	// Overwritten lists files that existed and were replaced
	// (Force was true).
	Overwritten []string
}

// versionMarker returns the comment prepended to each scaffolded file.
// Both assets are YAML, so a '#' comment is valid in each.
func versionMarker(version string) string {
	if version == "" {
		version = "dev"
	}
	return fmt.Sprintf("# scaffolded by cursecov %s\n", version)
}

// Run writes the starter config file and CI workflow into the target
// directory. Existing files are skipped unless opts.Force is set.
func Run(opts Options) (*Result, error) {
	if opts.TargetDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		opts.TargetDir = cwd
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	if _, err := os.Stat(filepath.Join(opts.TargetDir, "package.json")); os.IsNotExist(err) {
		fmt.Fprintln(opts.Stdout, "Warning: no package.json found in target directory.")
		fmt.Fprintln(opts.Stdout, "cursecov works best in a JavaScript or TypeScript project root.")
		fmt.Fprintln(opts.Stdout)
	}

	result := &Result{}
	marker := versionMarker(opts.Version)

	for _, f := range files {
		outPath := filepath.Join(opts.TargetDir, f.target)

		_, statErr := os.Stat(outPath)
		exists := statErr == nil

		if exists && !opts.Force {
			result.Skipped = append(result.Skipped, f.target)
			continue
		}

		content, err := assets.ReadFile(f.asset)
		if err != nil {
			return nil, fmt.Errorf("reading embedded asset %s: %w", f.asset, err)
		}

		dir := filepath.Dir(outPath)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", dir, err)
		}

		out := append([]byte(marker), content...)
		if err := os.WriteFile(outPath, out, 0o644); err != nil {
			return nil, fmt.Errorf("creating %s: %w", f.target, err)
		}

		if exists {
			result.Overwritten = append(result.Overwritten, f.target)
		} else {
			result.Created = append(result.Created, f.target)
		}
	}

	printSummary(opts.Stdout, result)

	return result, nil
}

// printSummary writes a human-readable summary of the scaffold
// operation to w.
func printSummary(w io.Writer, r *Result) {
	fmt.Fprintln(w, "cursecov initialized:")

	for _, f := range r.Created {
		fmt.Fprintf(w, "  created: %s\n", f)
	}
	for _, f := range r.Skipped {
		fmt.Fprintf(w, "  skipped: %s (already exists)\n", f)
	}
	for _, f := range r.Overwritten {
		fmt.Fprintf(w, "  overwritten: %s\n", f)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run cursecov --verbose to see the current coverage.")

	if len(r.Skipped) > 0 {
		fmt.Fprintf(w, "%d file(s) skipped (use --force to overwrite).\n", len(r.Skipped))
	}
}

// Targets returns the paths Run writes, relative to the target
// directory.
func Targets() []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.target)
	}
	return out
}
