package output

// Format names a writer for resolved analysis results.
type Format string

const (
	FormatHTML       Format = "HTML"
	FormatJSON       Format = "JSON"
	FormatTSVGene    Format = "TSV_GENE"
	FormatTSVVariant Format = "TSV_VARIANT"
	FormatVCF        Format = "VCF"
)

// Options is the output configuration descriptor.
type Options struct {
	OutputPrefix                   string   `yaml:"outputPrefix" json:"outputPrefix,omitempty"`
	OutputFormats                  []Format `yaml:"outputFormats" json:"outputFormats,omitempty"`
	NumGenes                       int      `yaml:"numGenes" json:"numGenes,omitempty"`
	OutputContributingVariantsOnly bool     `yaml:"outputContributingVariantsOnly" json:"outputContributingVariantsOnly,omitempty"`
}

// Default returns the options applied when an invocation supplies none:
// HTML and JSON writers, no gene cap, all variants.
func Default() Options {
	return Options{
		OutputPrefix:  "",
		OutputFormats: []Format{FormatHTML, FormatJSON},
		NumGenes:      0,
	}
}

func (o Options) IsEmpty() bool {
	return o.OutputPrefix == "" &&
		len(o.OutputFormats) == 0 &&
		o.NumGenes == 0 &&
		!o.OutputContributingVariantsOnly
}
