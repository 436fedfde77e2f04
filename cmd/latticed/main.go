// Command latticed runs the line-oriented decision-engine driver
// described in spec.md section 6.1 over standard input/output.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	flag "github.com/spf13/pflag"

	"github.com/katalvlaran/latticewalk/internal/cli"
	"github.com/katalvlaran/latticewalk/internal/tuning"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("latticed", flag.ContinueOnError)
	flags.SetOutput(stderr)
	tuningPath := flags.String("tuning", "", "path to a HuJSON tuning config file (optional)")
	logLevel := flags.String("log-level", "", "minimum log level: disabled, crit, err, warn, notice, info, debug, trace (default info)")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	positional := flags.Args()
	if len(positional) != 1 {
		fmt.Fprintln(stderr, "usage: latticed <N> [--tuning <path>] [--log-level <level>]")
		return 2
	}

	n, err := strconv.ParseUint(positional[0], 10, 64)
	if err != nil || n == 0 {
		fmt.Fprintln(stderr, "usage: latticed <N> [--tuning <path>] [--log-level <level>]: N must be a positive integer")
		return 2
	}

	cfg, err := tuning.Load(*tuningPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	level, err := cli.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	log := cli.NewLogger(stderr, level)
	driver := cli.New(uint(n), cfg, log, stdout)
	if err := driver.Run(stdin); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}
