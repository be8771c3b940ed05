// Package descriptor decodes structured-document files (JSON or YAML) into
// typed descriptor shapes. A well-formed document that does not match the
// target shape decodes to that shape's empty value rather than an error, so
// callers can probe a file against several candidate shapes.
package descriptor

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Shape is any descriptor with an explicit emptiness predicate.
type Shape interface {
	IsEmpty() bool
}

// Decode parses content into T. Any unmarshalling failure, including a type
// mismatch or a field unknown to T's layout, yields T's empty value: a
// document carrying fields T does not declare is a different shape, not a
// partial match. JSON input parses as a YAML 1.2 subset, so both formats are
// handled by the one decoder.
func Decode[T Shape](content []byte) T {
	var value T
	if err := yaml.UnmarshalWithOptions(content, &value, yaml.DisallowUnknownField()); err != nil {
		var empty T
		return empty
	}
	return value
}

// DecodeFile reads path and decodes it. Only I/O failures surface as errors.
func DecodeFile[T Shape](path string) (T, error) {
	var empty T
	// #nosec G304 -- descriptor path is explicit local user input.
	content, err := os.ReadFile(path)
	if err != nil {
		return empty, fmt.Errorf("read descriptor %s: %w", path, err)
	}
	return Decode[T](content), nil
}
