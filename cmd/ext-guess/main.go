// Command ext-guess prints the media types guessed for file paths.
//
//	ext-guess /path/to/file.gif /path/to/file.md
//	ext-guess -reverse image/gif 'text/*'
//	ext-guess -table mime.lut -digest sha256:... photo.jpg
//
// Paths whose extension is unknown are reported and do not fail the command.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	digest "github.com/opencontainers/go-digest"

	"github.com/meigma/mimeguess"
	"github.com/meigma/mimeguess/lut"
)

type config struct {
	table   string
	digest  string
	reverse bool
	args    []string
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := run(cfg, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "ext-guess:", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("ext-guess", flag.ContinueOnError)
	fs.StringVar(&cfg.table, "table", "", "load the lookup table from an artifact `file` instead of the embedded one")
	fs.StringVar(&cfg.digest, "digest", "", "require the -table artifact to match this `digest`")
	fs.BoolVar(&cfg.reverse, "reverse", false, "treat arguments as media types and print their extensions")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if cfg.digest != "" && cfg.table == "" {
		return config{}, errors.New("ext-guess: -digest requires -table")
	}
	cfg.args = fs.Args()
	return cfg, nil
}

func loadTable(cfg config) (*lut.Table, error) {
	if cfg.table == "" {
		return mimeguess.Default(), nil
	}
	var opts []lut.DecodeOption
	if cfg.digest != "" {
		d, err := digest.Parse(cfg.digest)
		if err != nil {
			return nil, fmt.Errorf("parse digest: %w", err)
		}
		opts = append(opts, lut.DecodeWithDigest(d))
	}
	return lut.LoadFile(cfg.table, opts...)
}

func run(cfg config, w io.Writer) error {
	t, err := loadTable(cfg)
	if err != nil {
		return err
	}

	for _, arg := range cfg.args {
		if cfg.reverse {
			printExtensions(w, t, arg)
			continue
		}
		printGuess(w, t, arg)
	}
	return nil
}

func printGuess(w io.Writer, t *lut.Table, path string) {
	guess := mimeguess.FromPathIn(t, path)
	if guess.IsEmpty() {
		fmt.Fprintf(w, "unable to guess mime type from path: %s\n", path)
		return
	}
	fmt.Fprintf(w, "guessing from path: %s\n", path)
	for mime := range guess.All() {
		fmt.Fprintf(w, "  mime: %s\n", mime)
	}
}

func printExtensions(w io.Writer, t *lut.Table, mediaType string) {
	fmt.Fprintf(w, "extensions for %s:\n", mediaType)
	n := 0
	for ext := range mimeguess.ExtensionsForIn(t, mediaType) {
		fmt.Fprintf(w, "  ext: %s\n", ext)
		n++
	}
	if n == 0 {
		fmt.Fprintln(w, "  (none)")
	}
}
