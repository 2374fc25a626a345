package coverage

import (
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/unbound-force/cursecov/internal/extract"
)

// Extractor returns the comments of one file.
type Extractor interface {
	Extract(path string) ([]extract.Comment, error)
}

// Matcher decides whether a comment text is cursed.
type Matcher interface {
	Matches(text string) bool
}

// Options configures coverage analysis.
type Options struct {
	// Workers bounds the number of files analyzed concurrently.
	// Values below 2 analyze files sequentially.
	Workers int

	// OnFile, when set, is called once per analyzed file. With
	// Workers > 1 it may be called from several goroutines.
	OnFile func(FileAnalysis)
}

// DefaultOptions returns sequential analysis.
func DefaultOptions() Options {
	return Options{Workers: 1}
}

// Analyze computes the coverage report for paths. Any extraction error
// aborts the analysis; the error of the first failing file in path
// order is returned and no partial report is produced.
func Analyze(paths []string, ex Extractor, m Matcher, opts Options) (*Report, error) {
	sorted := make([]string, len(paths))
	copy(sorted, paths)
	sort.Strings(sorted)

	files := make([]FileAnalysis, len(sorted))
	errs := make([]error, len(sorted))

	if opts.Workers < 2 {
		for i, p := range sorted {
			fa, err := analyzeFile(p, ex, m)
			if err != nil {
				return nil, err
			}
			files[i] = fa
			if opts.OnFile != nil {
				opts.OnFile(fa)
			}
		}
	} else {
		// Files after the lowest failing index are skipped. Files before
		// it always run, so the reported error does not depend on
		// scheduling.
		var (
			g      errgroup.Group
			mu     sync.Mutex
			failed = len(sorted)
		)
		g.SetLimit(opts.Workers)
		for i, p := range sorted {
			g.Go(func() error {
				mu.Lock()
				skip := i > failed
				mu.Unlock()
				if skip {
					return nil
				}
				fa, err := analyzeFile(p, ex, m)
				if err != nil {
					errs[i] = err
					mu.Lock()
					failed = min(failed, i)
					mu.Unlock()
					return err
				}
				files[i] = fa
				if opts.OnFile != nil {
					opts.OnFile(fa)
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			for _, err := range errs {
				if err != nil {
					return nil, err
				}
			}
		}
	}

	return &Report{
		Files:   files,
		Summary: buildSummary(files),
	}, nil
}

// analyzeFile counts the comments and cursed comments of one file.
func analyzeFile(path string, ex Extractor, m Matcher) (FileAnalysis, error) {
	comments, err := ex.Extract(path)
	if err != nil {
		return FileAnalysis{}, err
	}

	curse := 0
	for _, c := range comments {
		if m.Matches(c.Text) {
			curse++
		}
	}

	return FileAnalysis{
		Path:          path,
		Comments:      len(comments),
		CurseComments: curse,
		Coverage:      Formula(curse, len(comments)),
	}, nil
}

// buildSummary sums the per-file counts. The total coverage depends
// only on the sums, so file order never affects it.
func buildSummary(files []FileAnalysis) Summary {
	var comments, curse int
	for _, f := range files {
		comments += f.Comments
		curse += f.CurseComments
	}
	return Summary{
		Files:         len(files),
		Comments:      comments,
		CurseComments: curse,
		Coverage:      Formula(curse, comments),
	}
}
