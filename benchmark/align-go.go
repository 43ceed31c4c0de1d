// Command align-go is a small benchmarking harness for the seqalign library:
// it aligns sequence pairs from the command line or an input file, with
// optional CPU/memory profiling.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/profile"

	"github.com/katalvlaran/seqalign/gotoh"
	"github.com/katalvlaran/seqalign/scoring"
)

var version = "0.1.0"

func main() {
	app := filepath.Base(os.Args[0])
	usage := fmt.Sprintf(`
Global Gotoh alignment in Golang

Version: v%s

Input file format: one pair per two lines, ">" prefixes the query and "<"
the subject:
  >ACCATACTCG
  <AGGATGCTCG

Usage:
  1. Align two sequences from the positional arguments.

        %s [options] <query seq> <subject seq>

  2. Align sequence pairs from the input file (described above).

        %s [options] -i input.txt

Options:
`, version, app, app)

	input := flag.String("i", "", "input file with sequence pairs")
	matrixFile := flag.String("m", "", "substitution matrix file (default: identity +10/-20 over ACGTN)")
	gapOpen := flag.Int("o", -12, "gap open penalty")
	gapExt := flag.Int("e", -2, "gap extend penalty")
	repeats := flag.Int("n", 1, "repeat every alignment n times (for timing)")
	prof := flag.String("profile", "", `profiling mode: "cpu" or "mem"`)
	quiet := flag.Bool("q", false, "only print timing, not alignments")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	switch *prof {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	default:
		fmt.Fprintf(os.Stderr, "unknown profile mode: %s\n", *prof)
		os.Exit(1)
	}

	m := scoring.Identity([]byte("ACGTN"), 10, -20)
	if *matrixFile != "" {
		var err error
		if m, err = scoring.LoadFile(*matrixFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	p := &gotoh.Penalties{InsOpen: *gapOpen, InsExt: *gapExt, DelOpen: *gapOpen, DelExt: *gapExt}

	var pairs [][2]string
	switch {
	case *input != "":
		var err error
		if pairs, err = readPairs(*input); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	case flag.NArg() == 2:
		pairs = [][2]string{{flag.Arg(0), flag.Arg(1)}}
	default:
		flag.Usage()
		os.Exit(1)
	}

	start := time.Now()
	for _, pr := range pairs {
		var (
			res *gotoh.Result
			err error
		)
		for k := 0; k < *repeats; k++ {
			if res, err = gotoh.Align(pr[0], pr[1], m, p); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		}
		if !*quiet {
			fmt.Printf("score=%d cigar=%s\n%s\n\n", res.Score, res.CIGAR(), res)
		}
	}
	fmt.Fprintf(os.Stderr, "%d pair(s) × %d run(s) in %s\n", len(pairs), *repeats, time.Since(start))
}

// readPairs parses the ">query\n<subject" pair format.
func readPairs(path string) ([][2]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var (
		pairs [][2]string
		query string
		haveQ bool
	)
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 1<<20), 1<<30)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
		case strings.HasPrefix(line, ">"):
			query, haveQ = line[1:], true
		case strings.HasPrefix(line, "<"):
			if !haveQ {
				return nil, fmt.Errorf("%s: subject line without preceding query", path)
			}
			pairs = append(pairs, [2]string{query, line[1:]})
			haveQ = false
		}
	}
	if err = sc.Err(); err != nil {
		return nil, err
	}
	if haveQ {
		return nil, fmt.Errorf("%s: query line without subject", path)
	}

	return pairs, nil
}
