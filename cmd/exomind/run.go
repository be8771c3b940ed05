package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/phuslu/log"

	"github.com/exomind/exomind/core/jobdigest"
	"github.com/exomind/exomind/core/resolve"
	"github.com/exomind/exomind/core/schema/v1/job"
	"github.com/exomind/exomind/core/schema/v1/sample"
)

const (
	runOutputSchemaID      = "exomind.run.output"
	runOutputSchemaVersion = "1.0.0"
)

type runOutput struct {
	SchemaID      string        `json:"schema_id"`
	SchemaVersion string        `json:"schema_version"`
	OK            bool          `json:"ok"`
	Jobs          []resolvedJob `json:"jobs,omitempty"`
	Error         string        `json:"error,omitempty"`
	ErrorCode     string        `json:"error_code,omitempty"`
	ErrorCategory string        `json:"error_category,omitempty"`
	Hint          string        `json:"hint,omitempty"`
}

type resolvedJob struct {
	Input  string  `json:"input"`
	Digest string  `json:"digest"`
	Job    job.Job `json:"job"`
}

func runRun(arguments []string) int {
	arguments = reorderInterspersedFlags(arguments, map[string]bool{
		"analysis":       true,
		"analysis-batch": true,
		"job":            true,
		"sample":         true,
		"preset":         true,
		"output":         true,
	})
	flagSet := flag.NewFlagSet("run", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	var analysisPath string
	var analysisBatchPath string
	var jobPath string
	var samplePath string
	var presetValue string
	var outputPath string
	var verbose bool
	var jsonOutput bool
	var helpFlag bool

	flagSet.StringVar(&analysisPath, "analysis", "", "analysis descriptor path (alone: legacy-or-current job file)")
	flagSet.StringVar(&analysisBatchPath, "analysis-batch", "", "batch file listing one descriptor path per line")
	flagSet.StringVar(&jobPath, "job", "", "current-shape job descriptor path")
	flagSet.StringVar(&samplePath, "sample", "", "sample, phenopacket or family descriptor path")
	flagSet.StringVar(&presetValue, "preset", "", "analysis preset: exome|genome")
	flagSet.StringVar(&outputPath, "output", "", "output options descriptor path")
	flagSet.BoolVar(&verbose, "verbose", false, "enable debug logging")
	flagSet.BoolVar(&jsonOutput, "json", false, "emit JSON output")
	flagSet.BoolVar(&helpFlag, "help", false, "show help")

	if err := flagSet.Parse(arguments); err != nil {
		return writeRunOutput(jsonOutput, runError(err), exitInvalidInput)
	}
	if helpFlag {
		printRunUsage()
		return exitOK
	}
	if len(flagSet.Args()) > 0 {
		return writeRunOutput(jsonOutput, runOutput{OK: false, Error: "unexpected positional arguments"}, exitInvalidInput)
	}
	if verbose {
		log.DefaultLogger.Level = log.DebugLevel
	}

	// Only flags the user actually supplied participate in path routing;
	// flag.Visit walks exactly those.
	values := map[string]string{}
	flagSet.Visit(func(supplied *flag.Flag) {
		switch supplied.Name {
		case resolve.OptionAnalysis, resolve.OptionAnalysisBatch, resolve.OptionJob,
			resolve.OptionSample, resolve.OptionPreset, resolve.OptionOutput:
			values[supplied.Name] = supplied.Value.String()
		}
	})

	jobs, err := resolve.JobsFromValues(values)
	if err != nil {
		return writeRunOutput(jsonOutput, runError(err), exitCodeForError(err, exitResolveFailed))
	}

	records := make([]resolvedJob, 0, len(jobs))
	for _, resolved := range jobs {
		digest, err := jobdigest.FromJob(resolved)
		if err != nil {
			return writeRunOutput(jsonOutput, runError(err), exitInternalFailure)
		}
		records = append(records, resolvedJob{
			Input:  inputKind(resolved.Input),
			Digest: digest,
			Job:    resolved,
		})
	}
	return writeRunOutput(jsonOutput, runOutput{OK: true, Jobs: records}, exitOK)
}

func inputKind(input sample.Input) string {
	switch input.(type) {
	case *sample.Sample:
		return "sample"
	case *sample.Phenopacket:
		return "phenopacket"
	case *sample.Family:
		return "family"
	default:
		return "none"
	}
}

func writeRunOutput(jsonOutput bool, output runOutput, exitCode int) int {
	output.SchemaID = runOutputSchemaID
	output.SchemaVersion = runOutputSchemaVersion
	if jsonOutput {
		return writeJSONOutput(output, exitCode)
	}
	if !output.OK {
		fmt.Printf("run error: %s\n", output.Error)
		if output.Hint != "" {
			fmt.Printf("hint: %s\n", output.Hint)
		}
		return exitCode
	}
	for index, record := range output.Jobs {
		fmt.Printf("job %d: input=%s preset=%s digest=%s\n", index+1, record.Input, record.Job.Preset, record.Digest)
	}
	return exitCode
}

func printRunUsage() {
	fmt.Println("Usage:")
	fmt.Println("  exomind run --sample <file> [--analysis <file>] [--preset exome|genome] [--output <file>] [--json] [--verbose]")
	fmt.Println("  exomind run --analysis <legacy_or_job_file> [--json] [--verbose]")
	fmt.Println("  exomind run --analysis-batch <batch_file> [--json] [--verbose]")
	fmt.Println("  exomind run --job <job_file> [--json] [--verbose]")
}
