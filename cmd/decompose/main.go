// Command decompose converts affine matrices (a, b, c, d, e, f)
// to their decomposed form (x, y, rotation, scaleX, scaleY, skewX, skewY,
// centerX, centerY), or the opposite with -compose.
//
// Tuples are read from the arguments or, if none is given, one per line
// from the standard input.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/benoitkugler/affinetransform/logger"
	"github.com/benoitkugler/affinetransform/matrix"
	"github.com/benoitkugler/affinetransform/transform"
	"github.com/benoitkugler/affinetransform/version"
)

type options struct {
	compose   bool
	degrees   bool
	roundtrip bool
	verbose   bool
	tuples    []string
}

func main() {
	opts, done := parseFlags()
	if done {
		return
	}

	var in io.Reader = os.Stdin
	if len(opts.tuples) != 0 {
		in = strings.NewReader(strings.Join(opts.tuples, "\n"))
	}
	if err := run(opts, in, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "decompose: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() (opts options, done bool) {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: decompose [flags] [tuple ...]\n")
		flag.PrintDefaults()
	}
	flag.BoolVar(&opts.compose, "compose", false, "Read decomposed tuples (9 fields) and print matrices (6 fields)")
	flag.BoolVar(&opts.degrees, "degrees", false, "Use degrees, with clockwise X skew, for decomposed tuples")
	flag.BoolVar(&opts.roundtrip, "roundtrip", false, "Also print the input converted back and forth")
	flag.BoolVar(&opts.verbose, "v", false, "Log progress")
	showVersion := flag.Bool("version", false, "Print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.VersionString)
		return opts, true
	}
	opts.tuples = flag.Args()
	return opts, false
}

// convert one line, returning the converted tuple,
// and optionally the input after a back and forth conversion
func convert(opts options, line string) (out, back string, finite bool, err error) {
	if opts.compose {
		var d transform.Decomposed
		if opts.degrees {
			var deg transform.Degrees
			deg, err = parseDegrees(line)
			d = deg.Radians()
		} else {
			d, err = transform.Parse(line)
		}
		if err != nil {
			return "", "", false, err
		}
		m := transform.Compose(d)
		dec := transform.Decompose(m)
		if opts.degrees {
			back = dec.Degrees().String()
		} else {
			back = dec.String()
		}
		return m.String(), back, dec.IsFinite(), nil
	}

	m, err := matrix.Parse(line)
	if err != nil {
		return "", "", false, err
	}
	dec := transform.Decompose(m)
	if opts.degrees {
		out = dec.Degrees().String()
	} else {
		out = dec.String()
	}
	return out, transform.Compose(dec).String(), dec.IsFinite(), nil
}

func parseDegrees(s string) (transform.Degrees, error) {
	d, err := transform.Parse(s)
	return transform.Degrees(d), err
}

// run converts each non empty line of `in`, writing the result to `out`.
// Invalid lines are reported and skipped.
func run(opts options, in io.Reader, out io.Writer) error {
	var (
		lineNumber, converted, invalid int
		scanner                        = bufio.NewScanner(in)
	)
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		res, back, finite, err := convert(opts, line)
		if err != nil {
			logger.WarningLogger.Printf("line %d: %s", lineNumber, err)
			invalid++
			continue
		}
		if !finite {
			logger.WarningLogger.Printf("line %d: non finite decomposition of %s", lineNumber, line)
		}

		if opts.roundtrip {
			_, err = fmt.Fprintf(out, "%s\t%s\n", res, back)
		} else {
			_, err = fmt.Fprintln(out, res)
		}
		if err != nil {
			return err
		}
		converted++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %s", err)
	}

	if opts.verbose {
		logger.ProgressLogger.Printf("%d tuple(s) converted, %d invalid", converted, invalid)
	}
	if invalid != 0 {
		return fmt.Errorf("%d invalid tuple(s)", invalid)
	}
	return nil
}
