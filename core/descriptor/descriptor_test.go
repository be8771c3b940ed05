package descriptor

import (
	"path/filepath"
	"testing"

	"github.com/exomind/exomind/core/schema/v1/output"
	"github.com/exomind/exomind/core/schema/v1/sample"
	"github.com/exomind/exomind/internal/testutil"
)

func TestDecodeYAML(t *testing.T) {
	decoded := Decode[sample.Sample]([]byte("vcf: a.vcf\nhpoIds:\n  - HP:0001156\n"))
	if decoded.VCF != "a.vcf" || len(decoded.HpoIDs) != 1 {
		t.Fatalf("unexpected decode: %+v", decoded)
	}
}

func TestDecodeJSON(t *testing.T) {
	decoded := Decode[sample.Sample]([]byte(`{"vcf": "a.vcf", "hpoIds": ["HP:0001156"]}`))
	if decoded.VCF != "a.vcf" || len(decoded.HpoIDs) != 1 {
		t.Fatalf("json input did not decode: %+v", decoded)
	}
}

func TestDecodeWrongShapeYieldsEmptyValue(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{name: "unknown fields", content: "species: axolotl\n"},
		{name: "type mismatch", content: "vcf:\n  nested: map\n"},
		{name: "malformed document", content: "vcf: [unterminated\n"},
		{name: "known and unknown fields mixed", content: "vcf: a.vcf\nspecies: axolotl\n"},
	}
	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			decoded := Decode[sample.Sample]([]byte(testCase.content))
			if !decoded.IsEmpty() {
				t.Fatalf("expected empty value, got %+v", decoded)
			}
		})
	}
}

func TestDecodeEmptyContentIsEmpty(t *testing.T) {
	if decoded := Decode[output.Options](nil); !decoded.IsEmpty() {
		t.Fatalf("expected empty options, got %+v", decoded)
	}
}

func TestDecodeFile(t *testing.T) {
	path := testutil.TempFile(t, "options.yml", []byte("outputPrefix: results\n"))
	decoded, err := DecodeFile[output.Options](path)
	if err != nil {
		t.Fatalf("decode file: %v", err)
	}
	if decoded.OutputPrefix != "results" {
		t.Fatalf("unexpected decode: %+v", decoded)
	}
}

func TestDecodeFileMissing(t *testing.T) {
	if _, err := DecodeFile[output.Options](filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
