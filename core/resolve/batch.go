package resolve

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	coreerrors "github.com/exomind/exomind/core/errors"
)

// readBatchPaths reads a plain-text batch file into an ordered list of
// descriptor paths: one per non-empty line, #-prefixed lines skipped, input
// order preserved.
func readBatchPaths(path string) ([]string, error) {
	// #nosec G304 -- batch path is explicit local user input.
	file, err := os.Open(path)
	if err != nil {
		return nil, coreerrors.Wrap(fmt.Errorf("read batch file %s: %w", path, err), coreerrors.CategoryIOFailure, "batch_read_failed", "check the file exists and is readable")
	}
	defer func() { _ = file.Close() }()

	var paths []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, coreerrors.Wrap(fmt.Errorf("scan batch file %s: %w", path, err), coreerrors.CategoryIOFailure, "batch_read_failed", "check the file is readable")
	}
	return paths, nil
}
