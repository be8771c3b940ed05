package job

import (
	"encoding/json"

	"github.com/exomind/exomind/core/schema/v1/analysis"
	"github.com/exomind/exomind/core/schema/v1/output"
	"github.com/exomind/exomind/core/schema/v1/sample"
)

// Job is the canonical unit of resolved work handed to the execution
// subsystem. Input holds exactly one of Sample, Phenopacket or Family.
type Job struct {
	Preset   analysis.Preset
	Input    sample.Input
	Analysis *analysis.Analysis
	Output   output.Options
}

func (j Job) HasInput() bool {
	return j.Input != nil
}

// MarshalJSON emits the wire layout of a job document, populating exactly
// one of the sample/phenopacket/family keys from the input slot.
func (j Job) MarshalJSON() ([]byte, error) {
	document := Document{
		Analysis:      j.Analysis,
		Preset:        j.Preset,
		OutputOptions: &j.Output,
	}
	switch input := j.Input.(type) {
	case *sample.Sample:
		document.Sample = input
	case *sample.Phenopacket:
		document.Phenopacket = input
	case *sample.Family:
		document.Family = input
	}
	return json.Marshal(document)
}

// Document is the wire shape of a job file. Legacy analysis files decode
// into it as well, since their single top-level analysis key matches.
type Document struct {
	Sample        *sample.Sample      `yaml:"sample" json:"sample,omitempty"`
	Phenopacket   *sample.Phenopacket `yaml:"phenopacket" json:"phenopacket,omitempty"`
	Family        *sample.Family      `yaml:"family" json:"family,omitempty"`
	Analysis      *analysis.Analysis  `yaml:"analysis" json:"analysis,omitempty"`
	Preset        analysis.Preset     `yaml:"preset" json:"preset,omitempty"`
	OutputOptions *output.Options     `yaml:"outputOptions" json:"outputOptions,omitempty"`
}

func (d Document) IsEmpty() bool {
	return d.Sample == nil &&
		d.Phenopacket == nil &&
		d.Family == nil &&
		d.Analysis == nil &&
		d.Preset == "" &&
		d.OutputOptions == nil
}

// SampleInput returns the populated sample slot, preferring sample over
// phenopacket over family when a document carries more than one.
func (d Document) SampleInput() sample.Input {
	switch {
	case d.Sample != nil:
		return d.Sample
	case d.Phenopacket != nil:
		return d.Phenopacket
	case d.Family != nil:
		return d.Family
	default:
		return nil
	}
}
