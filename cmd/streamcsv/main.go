// Command streamcsv is a small CLI front end over the streamcsv
// library: it streams a file (or stdin) through the parser and prints
// each row as a tab-joined line, mirroring the reference csv2py.c
// utility's -d/-q/-e/-n flag surface (plus -skip-header; -h is left to
// flag's built-in help).
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/cktan-csv/streamcsv"
	"github.com/cktan-csv/streamcsv/internal/feedio"
)

func bufferedStdout() *bufio.Writer {
	return bufio.NewWriter(os.Stdout)
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "streamcsv:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("streamcsv", flag.ContinueOnError)
	delim := fs.String("d", ",", "field delimiter byte")
	quote := fs.String("q", `"`, "quote byte")
	escape := fs.String("e", "", "escape byte (defaults to the quote byte)")
	nullstr := fs.String("n", "", "string that denotes SQL NULL in unquoted cells")
	skipHeader := fs.Bool("skip-header", false, "skip the first row (treat it as a header)")
	noUnquote := fs.Bool("raw", false, "deliver cells exactly as written, without unquoting")
	noProgress := fs.Bool("no-progress", false, "disable the stderr progress bar")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: streamcsv [-d delim] [-q quote] [-e escape] [-n nullstr] [-skip-header] [FILE]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := streamcsv.DefaultConfig()
	if err := setByte(&cfg.Delim, *delim, "delim"); err != nil {
		return err
	}
	if err := setByte(&cfg.Quote, *quote, "quote"); err != nil {
		return err
	}
	cfg.Escape = cfg.Quote
	if *escape != "" {
		if err := setByte(&cfg.Escape, *escape, "escape"); err != nil {
			return err
		}
	}
	cfg.NullString = []byte(*nullstr)
	cfg.SkipHeader = *skipHeader
	cfg.UnquoteValues = !*noUnquote

	var feed streamcsv.FeedFunc
	var closer func() error
	var size int64

	switch fs.NArg() {
	case 0:
		feed = feedio.Reader(os.Stdin)
		closer = func() error { return nil }
	case 1:
		path := fs.Arg(0)
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return fmt.Errorf("%s: not a regular file", path)
		}
		size = info.Size()
		f, c, err := feedio.File(path)
		if err != nil {
			return err
		}
		feed, closer = f, c
	default:
		fs.Usage()
		return fmt.Errorf("at most one FILE argument is accepted")
	}
	defer closer()

	if !*noProgress && size > 0 {
		feed = progressWrap(feed, size)
	}

	p, err := streamcsv.Open(&cfg)
	if err != nil {
		return err
	}
	defer p.Close()

	w := bufferedStdout()
	defer w.Flush()

	err = p.Parse(context.Background(), feed, func(_ context.Context, row []streamcsv.Value, lineno, rowno int64) error {
		return writeRow(w, row)
	})
	if err != nil {
		return err
	}
	return nil
}

func setByte(dst *byte, s, name string) error {
	if len(s) != 1 {
		return fmt.Errorf("-%s must be exactly one byte, got %q", name, s)
	}
	*dst = s[0]
	return nil
}

func writeRow(w io.Writer, row []streamcsv.Value) error {
	parts := make([]string, len(row))
	for i, v := range row {
		if v.Ptr == nil {
			parts[i] = "\\N"
		} else {
			parts[i] = string(v.Ptr)
		}
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, "\t"))
	return err
}

// progressWrap drives a progressbar/v3 bar off the byte count returned
// by the wrapped FeedFunc, matching the reference CLI's use of a known
// total file size to show ingestion progress on stderr.
func progressWrap(feed streamcsv.FeedFunc, total int64) streamcsv.FeedFunc {
	bar := progressbar.DefaultBytes(total, "parsing")
	return func(ctx context.Context, buf []byte) (int, error) {
		n, err := feed(ctx, buf)
		bar.Add(n)
		if err != nil {
			bar.Finish()
		}
		return n, err
	}
}
