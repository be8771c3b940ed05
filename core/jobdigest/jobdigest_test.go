package jobdigest

import (
	"testing"

	"github.com/exomind/exomind/core/schema/v1/analysis"
	"github.com/exomind/exomind/core/schema/v1/job"
	"github.com/exomind/exomind/core/schema/v1/output"
	"github.com/exomind/exomind/core/schema/v1/sample"
)

func TestFromJSONIgnoresKeyOrder(t *testing.T) {
	first, err := FromJSON([]byte(`{"preset": "EXOME", "sample": {"vcf": "a.vcf"}}`))
	if err != nil {
		t.Fatalf("digest: %v", err)
	}
	second, err := FromJSON([]byte(`{"sample": {"vcf": "a.vcf"}, "preset": "EXOME"}`))
	if err != nil {
		t.Fatalf("digest: %v", err)
	}
	if first != second {
		t.Fatalf("digests differ across key order: %s vs %s", first, second)
	}
}

func TestFromJSONDistinguishesContent(t *testing.T) {
	first, err := FromJSON([]byte(`{"preset": "EXOME"}`))
	if err != nil {
		t.Fatalf("digest: %v", err)
	}
	second, err := FromJSON([]byte(`{"preset": "GENOME"}`))
	if err != nil {
		t.Fatalf("digest: %v", err)
	}
	if first == second {
		t.Fatalf("distinct documents share digest %s", first)
	}
}

func TestFromJSONRejectsInvalidJSON(t *testing.T) {
	if _, err := FromJSON([]byte(`{"preset":`)); err == nil {
		t.Fatalf("expected error for truncated json")
	}
}

func TestFromJobIsStable(t *testing.T) {
	resolved := job.Job{
		Preset: analysis.PresetExome,
		Input:  &sample.Sample{VCF: "a.vcf", HpoIDs: []string{"HP:0001156"}},
		Output: output.Default(),
	}
	first, err := FromJob(resolved)
	if err != nil {
		t.Fatalf("digest: %v", err)
	}
	second, err := FromJob(resolved)
	if err != nil {
		t.Fatalf("digest: %v", err)
	}
	if first != second {
		t.Fatalf("same job digested to %s then %s", first, second)
	}
	if len(first) != 64 {
		t.Fatalf("digest %q is not sha256 hex", first)
	}
}
