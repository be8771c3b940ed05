package analysis

import (
	"fmt"
	"strings"
)

// Preset selects a named default analysis profile.
type Preset string

const (
	PresetExome  Preset = "EXOME"
	PresetGenome Preset = "GENOME"
)

// ParsePreset accepts the textual aliases case-insensitively. Anything else
// is a fatal parse error.
func ParsePreset(text string) (Preset, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "exome":
		return PresetExome, nil
	case "genome":
		return PresetGenome, nil
	default:
		return "", fmt.Errorf("unrecognised preset option: %s", text)
	}
}

func (p *Preset) UnmarshalYAML(content []byte) error {
	parsed, err := ParsePreset(strings.Trim(string(content), "\"'"))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Analysis is the analysis configuration descriptor. The current shape
// carries no sample data; the deprecated single-file shape (8.0.0-12.1.0)
// additionally embedded the sample fields below, which mark a descriptor as
// legacy-shaped.
type Analysis struct {
	AnalysisMode         string             `yaml:"analysisMode" json:"analysisMode,omitempty"`
	InheritanceModes     map[string]float64 `yaml:"inheritanceModes" json:"inheritanceModes,omitempty"`
	FrequencySources     []string           `yaml:"frequencySources" json:"frequencySources,omitempty"`
	PathogenicitySources []string           `yaml:"pathogenicitySources" json:"pathogenicitySources,omitempty"`
	Steps                []map[string]any   `yaml:"steps" json:"steps,omitempty"`

	// Deprecated embedded-sample fields, accepted for backward compatibility
	// of input and cleared during migration.
	GenomeAssembly string   `yaml:"genomeAssembly" json:"genomeAssembly,omitempty"`
	VCF            string   `yaml:"vcf" json:"vcf,omitempty"`
	Ped            string   `yaml:"ped" json:"ped,omitempty"`
	Proband        string   `yaml:"proband" json:"proband,omitempty"`
	HpoIDs         []string `yaml:"hpoIds" json:"hpoIds,omitempty"`
}

// LegacyShaped reports whether any of the deprecated embedded-sample fields
// is populated.
func (a Analysis) LegacyShaped() bool {
	return a.GenomeAssembly != "" ||
		a.VCF != "" ||
		a.Ped != "" ||
		a.Proband != "" ||
		len(a.HpoIDs) > 0
}

func (a Analysis) IsEmpty() bool {
	return a.AnalysisMode == "" &&
		len(a.InheritanceModes) == 0 &&
		len(a.FrequencySources) == 0 &&
		len(a.PathogenicitySources) == 0 &&
		len(a.Steps) == 0 &&
		!a.LegacyShaped()
}
