// Package jobdigest produces stable fingerprints for resolved jobs so
// downstream systems can correlate and deduplicate job records.
package jobdigest

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/gowebpki/jcs"

	"github.com/exomind/exomind/core/schema/v1/job"
)

// FromJSON canonicalizes JSON input (RFC 8785) and returns a sha256 hex
// digest, so semantically equal documents digest identically regardless of
// key order.
func FromJSON(input []byte) (string, error) {
	canonical, err := jcs.Transform(input)
	if err != nil {
		return "", fmt.Errorf("canonicalize job json: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// FromJob digests the wire form of a resolved job.
func FromJob(resolved job.Job) (string, error) {
	encoded, err := json.Marshal(resolved)
	if err != nil {
		return "", fmt.Errorf("marshal job: %w", err)
	}
	return FromJSON(encoded)
}
