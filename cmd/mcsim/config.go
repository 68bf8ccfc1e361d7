package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// Config defines program configuration.
type Config struct {
	Source      string   // Assembly source file to build and run.
	Image       string   // Binary memory image to run.
	Input       string   // Tape input file; "-" is stdin.
	Output      string   // Tape output file; "-" is stdout.
	Save        string   // If set, write the binary image here and exit.
	Breakpoints []string // Labels or addresses to stop at.
	Verbose     bool     // Verbose logging.
	Trace       bool     // Trace each instruction to stderr.
	List        bool     // Print a disassembly listing and exit.
	Dump        bool     // Dump memory after the run.
	Rom         bool     // Run the program from write protected memory.
	RealTime    bool     // Pace execution to Hz.
	Hz          uint64   // Simulated clock frequency.
	MaxCycles   uint64   // Cycle limit; 0 is unlimited.
	StopOnInput bool     // Stop when input is exhausted or malformed.
}

// parseArgs parses command line arguments as applicable.
//
// If an error occurred, this exits the program with an appropriate message.
// When version information is requested, it is printed to stdout and the program ends cleanly.
func parseArgs() *Config {
	var c Config
	c.Input = "-"
	c.Output = "-"
	c.Hz = 1_000_000

	flag.Usage = func() {
		fmt.Printf("%s [options] [-c <source file> | <image file>]\n", os.Args[0])
		flag.PrintDefaults()
	}

	breaks := flag.String("break", "", "Comma-separated list of breakpoint labels or addresses.")
	flag.StringVar(&c.Source, "c", c.Source, "Assembly source file to build.")
	flag.StringVar(&c.Input, "i", c.Input, "Tape input.")
	flag.StringVar(&c.Output, "o", c.Output, "Tape output.")
	flag.StringVar(&c.Save, "s", c.Save, "Save the binary image to this file, do not execute.")
	flag.BoolVar(&c.Verbose, "v", c.Verbose, "Verbose mode.")
	flag.BoolVar(&c.Trace, "t", c.Trace, "Trace each instruction to stderr.")
	flag.BoolVar(&c.List, "l", c.List, "Print a disassembly listing, do not execute.")
	flag.BoolVar(&c.Dump, "m", c.Dump, "Dump memory after execution.")
	flag.BoolVar(&c.Rom, "rom", c.Rom, "Execute from write protected memory.")
	flag.BoolVar(&c.RealTime, "realtime", c.RealTime, "Pace execution to the clock frequency.")
	flag.Uint64Var(&c.Hz, "hz", c.Hz, "Clock frequency, for -realtime.")
	flag.Uint64Var(&c.MaxCycles, "max-cycles", c.MaxCycles, "Fail after this many cycles; 0 is unlimited.")
	flag.BoolVar(&c.StopOnInput, "stop-on-input", c.StopOnInput, "Stop when tape input is exhausted or malformed.")
	version := flag.Bool("version", false, "Display version information.")
	flag.Parse()

	if *version {
		fmt.Println(Version())
		os.Exit(0)
	}

	switch {
	case len(c.Source) != 0 && flag.NArg() == 0:
	case len(c.Source) == 0 && flag.NArg() == 1:
		c.Image = flag.Arg(0)
	default:
		flag.Usage()
		os.Exit(1)
	}

	if len(*breaks) > 0 {
		c.Breakpoints = filteredSplit(*breaks, ",")
	}

	return &c
}

// filteredSplit splits value by sep and returns the resulting list, minus empty entries.
func filteredSplit(value, sep string) (out []string) {
	for _, item := range strings.Split(value, sep) {
		item = strings.TrimSpace(item)
		if len(item) != 0 {
			out = append(out, item)
		}
	}
	return
}
