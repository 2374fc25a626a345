package config

import "strings"

// Merge applies layers over base in order; later layers win.
func Merge(base Settings, layers ...Layer) Settings {
	out := base
	for _, layer := range layers {
		out.IncludePattern = resolve(out.IncludePattern, layer.IncludePattern)
		out.IgnorePattern = resolve(out.IgnorePattern, layer.IgnorePattern)
		out.MinCoverage = resolve(out.MinCoverage, layer.MinCoverage)
		out.Verbose = resolve(out.Verbose, layer.Verbose)
		out.Format = strings.ToLower(strings.TrimSpace(resolve(out.Format, layer.Format)))
		out.Jobs = resolve(out.Jobs, layer.Jobs)
	}
	if out.Format == "" {
		out.Format = FormatText
	}
	return out
}

func resolve[T any](def T, values ...*T) T {
	result := def
	for _, v := range values {
		if v != nil {
			result = *v
		}
	}
	return result
}
