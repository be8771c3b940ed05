package output

import "testing"

func TestDefault(t *testing.T) {
	defaults := Default()
	if defaults.OutputPrefix != "" {
		t.Fatalf("default prefix %q, want empty", defaults.OutputPrefix)
	}
	if len(defaults.OutputFormats) != 2 || defaults.OutputFormats[0] != FormatHTML || defaults.OutputFormats[1] != FormatJSON {
		t.Fatalf("default formats %v, want [HTML JSON]", defaults.OutputFormats)
	}
	if defaults.NumGenes != 0 || defaults.OutputContributingVariantsOnly {
		t.Fatalf("unexpected defaults: %+v", defaults)
	}
}

func TestIsEmpty(t *testing.T) {
	if !(Options{}).IsEmpty() {
		t.Fatalf("zero options should be empty")
	}
	if Default().IsEmpty() {
		t.Fatalf("defaults should not be empty")
	}
	if (Options{OutputContributingVariantsOnly: true}).IsEmpty() {
		t.Fatalf("flagged options should not be empty")
	}
}
