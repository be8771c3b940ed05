package resolve

import (
	"fmt"

	"github.com/phuslu/log"

	coreerrors "github.com/exomind/exomind/core/errors"
	"github.com/exomind/exomind/core/schema/v1/job"
	"github.com/exomind/exomind/core/schema/v1/sample"
)

// migrateLegacyAnalysis rewrites a job whose analysis descriptor still embeds
// the sample fields of the 8.0.0-12.1.0 single-file layout. A job that
// already carries an input passes through unchanged. The newer analysis shape
// legitimately carries none of the embedded fields, so an extracted sample
// missing hpoIds or a vcf is the discriminator of last resort and fails the
// resolution.
func migrateLegacyAnalysis(resolved job.Job) (job.Job, error) {
	if resolved.HasInput() {
		return resolved, nil
	}

	extracted, err := extractSample(resolved)
	if err != nil {
		return job.Job{}, err
	}
	log.Debug().Str("vcf", extracted.VCF).Str("proband", extracted.Proband).Msg("migrated legacy analysis to sample")

	migrated := resolved
	migrated.Input = &extracted

	// The deprecated fields are accepted for input compatibility only; they
	// must not leak past this engine. Age and sex never existed in the legacy
	// layout, so there is nothing of theirs to carry over.
	cleared := *resolved.Analysis
	cleared.GenomeAssembly = ""
	cleared.VCF = ""
	cleared.Ped = ""
	cleared.Proband = ""
	cleared.HpoIDs = nil
	migrated.Analysis = &cleared

	return migrated, nil
}

func extractSample(resolved job.Job) (sample.Sample, error) {
	var extracted sample.Sample
	if resolved.Analysis != nil {
		extracted = sample.Sample{
			GenomeAssembly: resolved.Analysis.GenomeAssembly,
			VCF:            resolved.Analysis.VCF,
			Ped:            resolved.Analysis.Ped,
			Proband:        resolved.Analysis.Proband,
			HpoIDs:         append([]string(nil), resolved.Analysis.HpoIDs...),
		}
	}
	if len(extracted.HpoIDs) == 0 || extracted.VCF == "" {
		return sample.Sample{}, coreerrors.Wrap(
			fmt.Errorf("no sample specified"),
			coreerrors.CategoryIncompleteSample,
			"legacy_sample_incomplete",
			"a legacy analysis must embed both hpoIds and a vcf path; current-shape analyses need a separate sample file",
		)
	}
	return extracted, nil
}
