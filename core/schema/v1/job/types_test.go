package job

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/exomind/exomind/core/schema/v1/analysis"
	"github.com/exomind/exomind/core/schema/v1/output"
	"github.com/exomind/exomind/core/schema/v1/sample"
)

func TestMarshalJSONEmitsExactlyOneInputKey(t *testing.T) {
	cases := []struct {
		name    string
		input   sample.Input
		wantKey string
	}{
		{name: "sample", input: &sample.Sample{VCF: "a.vcf", HpoIDs: []string{"HP:0001156"}}, wantKey: "sample"},
		{name: "phenopacket", input: &sample.Phenopacket{ID: "proband-1"}, wantKey: "phenopacket"},
		{name: "family", input: &sample.Family{ID: "family-1"}, wantKey: "family"},
	}
	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			encoded, err := json.Marshal(Job{
				Preset: analysis.PresetExome,
				Input:  testCase.input,
				Output: output.Default(),
			})
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			var decoded map[string]json.RawMessage
			if err := json.Unmarshal(encoded, &decoded); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if _, ok := decoded[testCase.wantKey]; !ok {
				t.Fatalf("missing %q key in %s", testCase.wantKey, encoded)
			}
			for _, other := range []string{"sample", "phenopacket", "family"} {
				if other != testCase.wantKey {
					if _, ok := decoded[other]; ok {
						t.Fatalf("unexpected %q key in %s", other, encoded)
					}
				}
			}
		})
	}
}

func TestDocumentIsEmpty(t *testing.T) {
	if !(Document{}).IsEmpty() {
		t.Fatalf("zero document should be empty")
	}
	if (Document{Preset: analysis.PresetGenome}).IsEmpty() {
		t.Fatalf("document with preset should not be empty")
	}
	if (Document{Analysis: &analysis.Analysis{}}).IsEmpty() {
		t.Fatalf("document with analysis key should not be empty")
	}
}

func TestDocumentSampleInputPrefersSample(t *testing.T) {
	document := Document{
		Sample:      &sample.Sample{VCF: "a.vcf"},
		Phenopacket: &sample.Phenopacket{ID: "p"},
		Family:      &sample.Family{ID: "f"},
	}
	if _, ok := document.SampleInput().(*sample.Sample); !ok {
		t.Fatalf("expected sample to win, got %T", document.SampleInput())
	}
	if (Document{}).SampleInput() != nil {
		t.Fatalf("empty document should have no input")
	}
}

func TestMarshalJSONOmitsMissingInput(t *testing.T) {
	encoded, err := json.Marshal(Job{Preset: analysis.PresetExome, Output: output.Default()})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{"sample", "phenopacket", "family"} {
		if strings.Contains(string(encoded), `"`+key+`"`) {
			t.Fatalf("unexpected %q key in %s", key, encoded)
		}
	}
}
