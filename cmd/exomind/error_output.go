package main

import (
	"encoding/json"
	"fmt"

	coreerrors "github.com/exomind/exomind/core/errors"
)

func writeJSONOutput(output any, exitCode int) int {
	encoded, err := json.Marshal(output)
	if err != nil {
		fmt.Println(`{"ok":false,"error":"failed to encode output","error_code":"encode_failed","error_category":"internal_failure"}`)
		return exitInternalFailure
	}
	fmt.Println(string(encoded))
	return exitCode
}

func runError(err error) runOutput {
	return runOutput{
		OK:            false,
		Error:         err.Error(),
		ErrorCode:     coreerrors.CodeOf(err),
		ErrorCategory: string(coreerrors.CategoryOf(err)),
		Hint:          coreerrors.HintOf(err),
	}
}

func exitCodeForError(err error, fallbackExit int) int {
	if err == nil {
		return exitOK
	}
	switch coreerrors.CategoryOf(err) {
	case coreerrors.CategoryInvalidOptions:
		return exitInvalidInput
	case coreerrors.CategoryUnparseable, coreerrors.CategoryUnknownPreset, coreerrors.CategoryIncompleteSample:
		return exitResolveFailed
	case coreerrors.CategoryIOFailure, coreerrors.CategoryInternalFailure:
		return exitInternalFailure
	}
	return fallbackExit
}
