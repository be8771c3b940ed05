package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/exomind/exomind/core/schema/validate"
)

const (
	checkOutputSchemaID      = "exomind.check.output"
	checkOutputSchemaVersion = "1.0.0"
)

type checkOutput struct {
	SchemaID      string `json:"schema_id"`
	SchemaVersion string `json:"schema_version"`
	OK            bool   `json:"ok"`
	Kind          string `json:"kind,omitempty"`
	Path          string `json:"path,omitempty"`
	Error         string `json:"error,omitempty"`
}

func runCheck(arguments []string) int {
	arguments = reorderInterspersedFlags(arguments, map[string]bool{"kind": true, "file": true})
	flagSet := flag.NewFlagSet("check", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	var kindValue string
	var filePath string
	var jsonOutput bool
	var helpFlag bool

	flagSet.StringVar(&kindValue, "kind", "", "descriptor kind: sample|output-options|job")
	flagSet.StringVar(&filePath, "file", "", "descriptor file to validate")
	flagSet.BoolVar(&jsonOutput, "json", false, "emit JSON output")
	flagSet.BoolVar(&helpFlag, "help", false, "show help")

	if err := flagSet.Parse(arguments); err != nil {
		return writeCheckOutput(jsonOutput, checkOutput{OK: false, Error: err.Error()}, exitInvalidInput)
	}
	if helpFlag {
		printCheckUsage()
		return exitOK
	}
	if len(flagSet.Args()) > 0 {
		return writeCheckOutput(jsonOutput, checkOutput{OK: false, Error: "unexpected positional arguments"}, exitInvalidInput)
	}
	if filePath == "" {
		return writeCheckOutput(jsonOutput, checkOutput{OK: false, Error: "missing required --file <path>"}, exitInvalidInput)
	}

	kind, err := validate.ParseKind(kindValue)
	if err != nil {
		return writeCheckOutput(jsonOutput, checkOutput{OK: false, Path: filePath, Error: err.Error()}, exitInvalidInput)
	}
	if err := validate.DescriptorFile(kind, filePath); err != nil {
		return writeCheckOutput(jsonOutput, checkOutput{OK: false, Kind: string(kind), Path: filePath, Error: err.Error()}, exitResolveFailed)
	}
	return writeCheckOutput(jsonOutput, checkOutput{OK: true, Kind: string(kind), Path: filePath}, exitOK)
}

func writeCheckOutput(jsonOutput bool, output checkOutput, exitCode int) int {
	output.SchemaID = checkOutputSchemaID
	output.SchemaVersion = checkOutputSchemaVersion
	if jsonOutput {
		return writeJSONOutput(output, exitCode)
	}
	if !output.OK {
		fmt.Printf("check error: %s\n", output.Error)
		return exitCode
	}
	fmt.Printf("check ok: kind=%s path=%s\n", output.Kind, output.Path)
	return exitCode
}

func printCheckUsage() {
	fmt.Println("Usage:")
	fmt.Println("  exomind check --kind <sample|output-options|job> --file <file> [--json]")
}
