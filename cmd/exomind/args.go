package main

import "strings"

// reorderInterspersedFlags moves flag tokens (and their values) ahead of
// positionals so stdlib flag parsing sees them all; everything after "--"
// stays positional.
func reorderInterspersedFlags(arguments []string, valueFlags map[string]bool) []string {
	if len(arguments) == 0 {
		return arguments
	}

	flags := make([]string, 0, len(arguments))
	positionals := make([]string, 0, len(arguments))

	for index := 0; index < len(arguments); index++ {
		argument := arguments[index]
		if argument == "--" {
			positionals = append(positionals, arguments[index+1:]...)
			break
		}
		if len(argument) < 2 || !strings.HasPrefix(argument, "-") {
			positionals = append(positionals, argument)
			continue
		}

		flags = append(flags, argument)
		if strings.Contains(argument, "=") {
			continue
		}
		name := strings.TrimLeft(argument, "-")
		if valueFlags[name] && index+1 < len(arguments) {
			index++
			flags = append(flags, arguments[index])
		}
	}

	return append(flags, positionals...)
}
