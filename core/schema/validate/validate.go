// Package validate checks descriptor files against the JSON Schemas shipped
// with the CLI. Validation is a pre-flight lint: the resolution engine itself
// detects shapes by empty-value probing, not by schema.
package validate

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/kaptinlin/jsonschema"

	"github.com/exomind/exomind/schemas"
)

// Kind names a descriptor schema shipped with the CLI.
type Kind string

const (
	KindSample        Kind = "sample"
	KindOutputOptions Kind = "output-options"
	KindJob           Kind = "job"
)

var schemaFiles = map[Kind]string{
	KindSample:        "v1/sample.schema.json",
	KindOutputOptions: "v1/output_options.schema.json",
	KindJob:           "v1/job.schema.json",
}

func ParseKind(text string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(text)))
	if _, ok := schemaFiles[kind]; !ok {
		return "", fmt.Errorf("unknown descriptor kind %q (expected sample, output-options or job)", text)
	}
	return kind, nil
}

// DescriptorFile validates one descriptor file, accepting JSON or YAML.
func DescriptorFile(kind Kind, path string) error {
	schema, err := loadSchema(kind)
	if err != nil {
		return err
	}
	// #nosec G304 -- descriptor path is explicit local user input.
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read descriptor: %w", err)
	}
	return Descriptor(kind, content, schema)
}

// Descriptor validates raw descriptor content against an already-compiled
// schema. YAML input is converted to JSON first; JSON input round-trips
// unchanged through the conversion.
func Descriptor(kind Kind, content []byte, schema *jsonschema.Schema) error {
	document, err := yaml.YAMLToJSON(content)
	if err != nil {
		return fmt.Errorf("convert %s descriptor to json: %w", kind, err)
	}
	result := schema.ValidateJSON(document)
	if result.IsValid() {
		return nil
	}
	return fmt.Errorf("%s schema validation failed: %v", kind, result.Errors)
}

func loadSchema(kind Kind) (*jsonschema.Schema, error) {
	file, ok := schemaFiles[kind]
	if !ok {
		return nil, fmt.Errorf("no schema registered for kind %q", kind)
	}
	data, err := schemas.FS.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read embedded schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	schema, err := compiler.Compile(data)
	if err != nil {
		return nil, fmt.Errorf("compile %s schema: %w", kind, err)
	}
	return schema, nil
}
