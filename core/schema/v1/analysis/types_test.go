package analysis

import "testing"

func TestParsePreset(t *testing.T) {
	cases := []struct {
		text string
		want Preset
	}{
		{text: "exome", want: PresetExome},
		{text: "EXOME", want: PresetExome},
		{text: "Genome", want: PresetGenome},
		{text: "genome", want: PresetGenome},
		{text: " genome ", want: PresetGenome},
	}
	for _, testCase := range cases {
		got, err := ParsePreset(testCase.text)
		if err != nil {
			t.Fatalf("parse %q: %v", testCase.text, err)
		}
		if got != testCase.want {
			t.Fatalf("parse %q: got %q, want %q", testCase.text, got, testCase.want)
		}
	}
}

func TestParsePresetRejectsUnknownText(t *testing.T) {
	for _, text := range []string{"", "transcriptome", "exomes"} {
		if _, err := ParsePreset(text); err == nil {
			t.Fatalf("parse %q: expected error", text)
		}
	}
}

func TestLegacyShaped(t *testing.T) {
	if (Analysis{AnalysisMode: "FULL"}).LegacyShaped() {
		t.Fatalf("current shape flagged legacy")
	}
	legacyVariants := []Analysis{
		{GenomeAssembly: "hg19"},
		{VCF: "a.vcf"},
		{Ped: "a.ped"},
		{Proband: "manuel"},
		{HpoIDs: []string{"HP:0001156"}},
	}
	for _, variant := range legacyVariants {
		if !variant.LegacyShaped() {
			t.Fatalf("variant %+v not flagged legacy", variant)
		}
	}
}

func TestIsEmpty(t *testing.T) {
	if !(Analysis{}).IsEmpty() {
		t.Fatalf("zero analysis should be empty")
	}
	if (Analysis{VCF: "a.vcf"}).IsEmpty() {
		t.Fatalf("legacy-bearing analysis should not be empty")
	}
	if (Analysis{FrequencySources: []string{"GNOMAD_E"}}).IsEmpty() {
		t.Fatalf("configured analysis should not be empty")
	}
}
