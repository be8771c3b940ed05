package main

import (
	"fmt"
	"os"
)

// version is stamped at release time via ldflags; default stays dev for local builds.
var version = "0.0.0-dev"

const (
	exitOK              = 0
	exitInvalidInput    = 2
	exitResolveFailed   = 3
	exitInternalFailure = 4
)

func main() {
	os.Exit(run(os.Args))
}

func run(arguments []string) int {
	if len(arguments) < 2 {
		fmt.Println("exomind", version)
		return exitOK
	}
	switch arguments[1] {
	case "run":
		return runRun(arguments[2:])
	case "check":
		return runCheck(arguments[2:])
	case "version", "--version", "-v":
		fmt.Println("exomind", version)
		return exitOK
	default:
		printUsage()
		return exitInvalidInput
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  exomind run [--sample <file> [--analysis <file>] [--preset exome|genome] [--output <file>]] [--json] [--verbose]")
	fmt.Println("  exomind run --analysis <file> | --analysis-batch <file> | --job <file> [--json] [--verbose]")
	fmt.Println("  exomind check --kind <sample|output-options|job> --file <file> [--json]")
	fmt.Println("  exomind version")
}
