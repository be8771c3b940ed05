package resolve

import (
	"fmt"
	"os"

	"github.com/phuslu/log"

	"github.com/exomind/exomind/core/descriptor"
	coreerrors "github.com/exomind/exomind/core/errors"
	"github.com/exomind/exomind/core/schema/v1/analysis"
	"github.com/exomind/exomind/core/schema/v1/job"
	"github.com/exomind/exomind/core/schema/v1/output"
	"github.com/exomind/exomind/core/schema/v1/sample"
)

// readSampleInput probes a file against the three sample-bearing shapes in
// fixed priority order: Sample, then Phenopacket, then Family. The first
// non-empty decode wins, so a document satisfying more than one shape always
// resolves to the earliest-tried one.
func readSampleInput(path string) (sample.Input, error) {
	// #nosec G304 -- sample path is explicit local user input.
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, coreerrors.Wrap(fmt.Errorf("read sample %s: %w", path, err), coreerrors.CategoryIOFailure, "sample_read_failed", "check the file exists and is readable")
	}
	if decoded := descriptor.Decode[sample.Sample](content); !decoded.IsEmpty() {
		log.Debug().Str("path", path).Str("shape", "sample").Msg("sample file sniffed")
		return &decoded, nil
	}
	if decoded := descriptor.Decode[sample.Phenopacket](content); !decoded.IsEmpty() {
		log.Debug().Str("path", path).Str("shape", "phenopacket").Msg("sample file sniffed")
		return &decoded, nil
	}
	if decoded := descriptor.Decode[sample.Family](content); !decoded.IsEmpty() {
		log.Debug().Str("path", path).Str("shape", "family").Msg("sample file sniffed")
		return &decoded, nil
	}
	return nil, unparseable("sample", path)
}

func readAnalysis(path string) (*analysis.Analysis, error) {
	decoded, err := descriptor.DecodeFile[analysis.Analysis](path)
	if err != nil {
		return nil, coreerrors.Wrap(err, coreerrors.CategoryIOFailure, "analysis_read_failed", "check the file exists and is readable")
	}
	if decoded.IsEmpty() {
		return nil, unparseable("analysis", path)
	}
	return &decoded, nil
}

func readOutputOptions(path string) (output.Options, error) {
	decoded, err := descriptor.DecodeFile[output.Options](path)
	if err != nil {
		return output.Options{}, coreerrors.Wrap(err, coreerrors.CategoryIOFailure, "output_read_failed", "check the file exists and is readable")
	}
	if decoded.IsEmpty() {
		return output.Options{}, unparseable("outputOptions", path)
	}
	return decoded, nil
}

func readJobDocument(path string) (job.Document, error) {
	decoded, err := descriptor.DecodeFile[job.Document](path)
	if err != nil {
		return job.Document{}, coreerrors.Wrap(err, coreerrors.CategoryIOFailure, "job_read_failed", "check the file exists and is readable")
	}
	if decoded.IsEmpty() {
		return job.Document{}, unparseable("job", path)
	}
	return decoded, nil
}

func unparseable(kind, path string) error {
	return coreerrors.Wrap(
		fmt.Errorf("unable to parse %s from file %s, please check the format", kind, path),
		coreerrors.CategoryUnparseable,
		kind+"_unparseable",
		"the file decoded to an empty "+kind+" descriptor",
	)
}
