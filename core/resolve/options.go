package resolve

import (
	"fmt"
	"sort"

	coreerrors "github.com/exomind/exomind/core/errors"
)

// Option names accepted on the command line. Values are file paths except
// for preset, which is a literal "exome" or "genome".
const (
	OptionAnalysis      = "analysis"
	OptionAnalysisBatch = "analysis-batch"
	OptionJob           = "job"
	OptionSample        = "sample"
	OptionPreset        = "preset"
	OptionOutput        = "output"
)

// OptionSet is the set of option names supplied in one invocation. It is
// derived once per invocation and read-only afterwards.
type OptionSet map[string]struct{}

func NewOptionSet(names ...string) OptionSet {
	set := make(OptionSet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

func (s OptionSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

func (s OptionSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s OptionSet) equals(names ...string) bool {
	if len(s) != len(names) {
		return false
	}
	for _, name := range names {
		if !s.Has(name) {
			return false
		}
	}
	return true
}

func (s OptionSet) subsetOf(names ...string) bool {
	allowed := NewOptionSet(names...)
	for name := range s {
		if !allowed.Has(name) {
			return false
		}
	}
	return true
}

// Path identifies which resolution path an option set routes to.
type Path int

const (
	PathUnknown Path = iota
	// PathLegacyAnalysis reads a single legacy-or-current job file. Kept for
	// backward compatibility with the pre-split schema.
	PathLegacyAnalysis
	// PathAnalysisBatch reads a batch file of paths, each resolved like
	// PathLegacyAnalysis.
	PathAnalysisBatch
	// PathJob reads a single current-shape job file with no legacy fallback.
	PathJob
	// PathSampleOptions assembles a job from independently supplied sample,
	// analysis, preset and output files.
	PathSampleOptions
)

// ClassifyOptions routes an option set to exactly one resolution path. The
// exact-match paths are checked before the sample-containing path, so a bare
// {analysis} invocation is never treated as a sample assembly.
func ClassifyOptions(set OptionSet) (Path, error) {
	switch {
	case set.equals(OptionAnalysis):
		return PathLegacyAnalysis, nil
	case set.equals(OptionAnalysisBatch):
		return PathAnalysisBatch, nil
	case set.equals(OptionJob):
		return PathJob, nil
	}
	if set.Has(OptionSample) && set.subsetOf(OptionSample, OptionAnalysis, OptionPreset, OptionOutput) {
		return PathSampleOptions, nil
	}
	return PathUnknown, coreerrors.Wrap(
		fmt.Errorf("no sample specified"),
		coreerrors.CategoryInvalidOptions,
		"no_sample_specified",
		"supply --sample (optionally with --analysis, --preset, --output), or exactly one of --analysis, --analysis-batch, --job",
	)
}
