// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"

	"sentra/internal/ast"
	"sentra/internal/report"
	"sentra/internal/security"
)

const toolName = "sentra"

func main() {
	sarifOut := flag.Bool("sarif", false, "emit findings as SARIF 2.1.0 JSON on stdout")
	strict := flag.Bool("strict", false, "exit with status 1 when any warning is emitted")
	sourcePath := flag.String("source", "", "original source file, for diagnostic context lines")
	verbose := flag.Bool("verbose", false, "enable debug logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <ast.json>\n\n", toolName)
		fmt.Fprintf(os.Stderr, "Analyzes a frontend AST dump for security warning patterns.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	verbosity := 0
	if *verbose {
		verbosity = 1
	}
	commonlog.Configure(verbosity, nil)
	log := commonlog.GetLogger(toolName)

	startTime := time.Now()
	path := flag.Arg(0)

	dump, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read AST dump: %v\n", err)
		os.Exit(1)
	}

	program, err := ast.DecodeProgram(dump)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to decode AST dump: %v\n", err)
		os.Exit(1)
	}
	log.Debugf("decoded %d top-level items from %s", len(program.Items), path)

	analyzer := security.NewAnalyzer()
	analyzer.AnalyzeProgram(program)
	warnings := analyzer.Warnings()
	log.Debugf("analysis produced %d warnings", len(warnings))

	if *sarifOut {
		doc, err := report.ToSARIF(warnings, toolName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to serialize SARIF: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(doc))
	} else {
		var source string
		if *sourcePath != "" {
			data, err := os.ReadFile(*sourcePath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to read source file: %v\n", err)
				os.Exit(1)
			}
			source = string(data)
		}

		reporter := report.NewReporter(path, source)
		fmt.Print(reporter.FormatAll(warnings))

		duration := formatDuration(time.Since(startTime))
		if len(warnings) == 0 {
			color.Green("No security warnings in %s (%s)", path, duration)
		} else {
			color.Yellow("%d warning(s) in %s (%s)", len(warnings), path, duration)
		}
	}

	if analyzer.HasCriticalWarnings() || (*strict && len(warnings) > 0) {
		os.Exit(1)
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
