// Package resolve turns one CLI invocation into one or more canonical job
// records. It routes the supplied option names to a resolution path, sniffs
// ambiguous descriptor files against the known shapes, merges partial
// descriptors into a job draft, and migrates the deprecated single-file
// analysis layout into the current sample/analysis split.
package resolve

import (
	"fmt"

	"github.com/phuslu/log"

	coreerrors "github.com/exomind/exomind/core/errors"
	"github.com/exomind/exomind/core/schema/v1/analysis"
	"github.com/exomind/exomind/core/schema/v1/job"
	"github.com/exomind/exomind/core/schema/v1/output"
	"github.com/exomind/exomind/core/schema/v1/sample"
)

// Lookup returns the raw string value supplied for an option name.
type Lookup func(name string) string

// Jobs resolves an invocation into an ordered, never-empty job list.
// Resolution is synchronous and stateless: every call starts from a fresh
// draft, and batch entries are processed strictly in file order.
func Jobs(options OptionSet, lookup Lookup) ([]job.Job, error) {
	path, err := ClassifyOptions(options)
	if err != nil {
		return nil, err
	}
	log.Debug().Strs("options", options.Names()).Msg("classified resolution path")

	switch path {
	case PathLegacyAnalysis:
		resolved, err := readJobOrLegacyAnalysis(lookup(OptionAnalysis))
		if err != nil {
			return nil, err
		}
		return []job.Job{resolved}, nil
	case PathAnalysisBatch:
		return resolveBatch(lookup(OptionAnalysisBatch))
	case PathJob:
		document, err := readJobDocument(lookup(OptionJob))
		if err != nil {
			return nil, err
		}
		return []job.Job{documentToJob(document)}, nil
	case PathSampleOptions:
		resolved, err := resolveSampleOptions(options, lookup)
		if err != nil {
			return nil, err
		}
		return []job.Job{resolved}, nil
	default:
		return nil, coreerrors.Wrap(fmt.Errorf("unhandled resolution path %d", path), coreerrors.CategoryInternalFailure, "unhandled_path", "")
	}
}

// JobsFromValues resolves from an option-name to value mapping, deriving the
// option set from the map keys.
func JobsFromValues(values map[string]string) ([]job.Job, error) {
	set := make(OptionSet, len(values))
	for name := range values {
		set[name] = struct{}{}
	}
	return Jobs(set, func(name string) string { return values[name] })
}

// readJobOrLegacyAnalysis reads a file that may be either a current-shape
// job document or a legacy analysis. A decoded document that already carries
// a sample input is the current shape; anything else is treated as legacy
// and migrated.
func readJobOrLegacyAnalysis(path string) (job.Job, error) {
	document, err := readJobDocument(path)
	if err != nil {
		return job.Job{}, err
	}
	return migrateLegacyAnalysis(documentToJob(document))
}

func resolveBatch(batchPath string) ([]job.Job, error) {
	paths, err := readBatchPaths(batchPath)
	if err != nil {
		return nil, err
	}
	// A failed entry fails the whole batch: a partial job list with silently
	// skipped entries is worse than a visible failure.
	jobs := make([]job.Job, 0, len(paths))
	for _, entry := range paths {
		resolved, err := readJobOrLegacyAnalysis(entry)
		if err != nil {
			return nil, fmt.Errorf("batch entry %s: %w", entry, err)
		}
		jobs = append(jobs, resolved)
	}
	if len(jobs) == 0 {
		return nil, coreerrors.Wrap(
			fmt.Errorf("batch file %s contains no entries", batchPath),
			coreerrors.CategoryUnparseable,
			"batch_empty",
			"list one descriptor path per line",
		)
	}
	return jobs, nil
}

// resolveSampleOptions assembles a job from up to four independently
// supplied values. Each option owns one draft slot and each option name is
// supplied at most once, so merges overwrite whole slots.
func resolveSampleOptions(options OptionSet, lookup Lookup) (job.Job, error) {
	current := defaultDraft()

	if options.Has(OptionSample) {
		input, err := readSampleInput(lookup(OptionSample))
		if err != nil {
			return job.Job{}, err
		}
		current = current.withInput(input)
	}
	if options.Has(OptionAnalysis) {
		configuration, err := readAnalysis(lookup(OptionAnalysis))
		if err != nil {
			return job.Job{}, err
		}
		current = current.withAnalysis(configuration)
	}
	if options.Has(OptionPreset) {
		preset, err := analysis.ParsePreset(lookup(OptionPreset))
		if err != nil {
			return job.Job{}, coreerrors.Wrap(err, coreerrors.CategoryUnknownPreset, "preset_unrecognized", `preset must be "exome" or "genome"`)
		}
		current = current.withPreset(preset)
	}
	if options.Has(OptionOutput) {
		outputOptions, err := readOutputOptions(lookup(OptionOutput))
		if err != nil {
			return job.Job{}, err
		}
		current = current.withOutput(outputOptions)
	}

	return current.finalize(), nil
}

// draft is an immutable job accumulator: merge methods return a new draft so
// merge order stays explicit and no builder state is shared.
type draft struct {
	preset         analysis.Preset
	outputOptions  output.Options
	analysisConfig *analysis.Analysis
	input          sample.Input
}

func defaultDraft() draft {
	return draft{
		preset:        analysis.PresetExome,
		outputOptions: output.Default(),
	}
}

func (d draft) withInput(input sample.Input) draft {
	d.input = input
	return d
}

func (d draft) withAnalysis(configuration *analysis.Analysis) draft {
	d.analysisConfig = configuration
	return d
}

func (d draft) withPreset(preset analysis.Preset) draft {
	d.preset = preset
	return d
}

func (d draft) withOutput(outputOptions output.Options) draft {
	d.outputOptions = outputOptions
	return d
}

func (d draft) finalize() job.Job {
	return job.Job{
		Preset:   d.preset,
		Input:    d.input,
		Analysis: d.analysisConfig,
		Output:   d.outputOptions,
	}
}

// documentToJob applies the invocation-level defaults to a decoded job
// document: preset EXOME and the default output options when absent.
func documentToJob(document job.Document) job.Job {
	resolved := job.Job{
		Preset:   analysis.PresetExome,
		Input:    document.SampleInput(),
		Analysis: document.Analysis,
		Output:   output.Default(),
	}
	if document.Preset != "" {
		resolved.Preset = document.Preset
	}
	if document.OutputOptions != nil && !document.OutputOptions.IsEmpty() {
		resolved.Output = *document.OutputOptions
	}
	return resolved
}
