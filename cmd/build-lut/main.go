// Command build-lut compiles a mime-db database into a packed lookup table.
//
// It reads one or more db.json files (or downloads a release), builds the
// table, and writes it as Go source, as a binary artifact, or both:
//
//	build-lut -db data/db.json -go table_data.go -pkg mimeguess -var defaultTable
//	build-lut -release v1.54.0 -artifact mime.lut -zstd
//
// When several -db files are given they are merged in flag order, so media
// types from earlier files are listed first for shared extensions.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/meigma/mimeguess/internal/mimedb"
	"github.com/meigma/mimeguess/lut"
)

// maxParallelParse bounds concurrent database parsing.
const maxParallelParse = 4

type config struct {
	dbFiles  stringList
	release  string
	source   string
	goOut    string
	pkg      string
	varName  string
	artifact string
	zstd     bool
	verbose  bool
}

// stringList collects a repeatable flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
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

	logger := newLogger(os.Stderr, cfg.verbose)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger, os.Stdout); err != nil {
		logger.Error("build failed", "error", err)
		stop()
		os.Exit(1) //nolint:gocritic // stop is called explicitly above
	}
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("build-lut", flag.ContinueOnError)
	fs.Var(&cfg.dbFiles, "db", "mime-db `db.json` file to read (repeatable)")
	fs.StringVar(&cfg.release, "release", "", "download this mime-db release `tag` instead of reading -db files")
	fs.StringVar(&cfg.source, "source", "", "data source named in the generated header (default: inputs)")
	fs.StringVar(&cfg.goOut, "go", "", "write generated Go source to `file`")
	fs.StringVar(&cfg.pkg, "pkg", "mimeguess", "package name for generated Go source")
	fs.StringVar(&cfg.varName, "var", "defaultTable", "variable name for generated Go source")
	fs.StringVar(&cfg.artifact, "artifact", "", "write a binary table artifact to `file`")
	fs.BoolVar(&cfg.zstd, "zstd", false, "compress the binary artifact with zstd")
	fs.BoolVar(&cfg.verbose, "v", false, "log debug output")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	switch {
	case cfg.release == "" && len(cfg.dbFiles) == 0:
		return config{}, errors.New("build-lut: one of -db or -release is required")
	case cfg.release != "" && len(cfg.dbFiles) > 0:
		return config{}, errors.New("build-lut: -db and -release are mutually exclusive")
	case cfg.goOut == "" && cfg.artifact == "":
		return config{}, errors.New("build-lut: nothing to write; set -go and/or -artifact")
	}
	if cfg.source == "" {
		cfg.source = cfg.defaultSource()
	}
	return cfg, nil
}

func (c config) defaultSource() string {
	if c.release != "" {
		return "mime-db " + c.release
	}
	return strings.Join(c.dbFiles, ", ")
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// run builds the table and writes the requested outputs. The artifact digest
// is printed to out.
func run(ctx context.Context, cfg config, logger *slog.Logger, out io.Writer) error {
	records, err := loadRecords(ctx, cfg, logger)
	if err != nil {
		return err
	}
	stats := mimedb.Summarize(records)
	logger.Debug("loaded records",
		"media_types", stats.MediaTypes,
		"with_extensions", stats.WithExtensions,
		"extensions", stats.Extensions,
	)

	t, err := lut.Build(records, lut.WithLogger(logger))
	if err != nil {
		return err
	}

	if cfg.goOut != "" {
		if err := writeGoSource(cfg, t); err != nil {
			return err
		}
		logger.Info("wrote go source", "path", cfg.goOut, "package", cfg.pkg, "var", cfg.varName)
	}

	if cfg.artifact != "" {
		compression := lut.CompressionNone
		if cfg.zstd {
			compression = lut.CompressionZstd
		}
		dgst, err := lut.SaveFile(cfg.artifact, t, lut.EncodeWithCompression(compression))
		if err != nil {
			return err
		}
		logger.Info("wrote artifact", "path", cfg.artifact, "compression", compression.String(), "digest", dgst)
		fmt.Fprintln(out, dgst)
	}
	return nil
}

// loadRecords downloads the configured release or parses every -db file
// concurrently, merging them in flag order.
func loadRecords(ctx context.Context, cfg config, logger *slog.Logger) ([]lut.Record, error) {
	if cfg.release != "" {
		return mimedb.FetchRecords(ctx, cfg.release, mimedb.WithLogger(logger))
	}

	sets := make([][]lut.Record, len(cfg.dbFiles))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelParse)
	for i, path := range cfg.dbFiles {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			records, err := mimedb.ParseFile(path)
			if err != nil {
				return err
			}
			logger.Debug("parsed database", "path", path, "media_types", len(records))
			sets[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return mimedb.Merge(sets...), nil
}

func writeGoSource(cfg config, t *lut.Table) error {
	var buf bytes.Buffer
	err := lut.WriteGoSource(&buf, t, lut.GoSource{
		Package: cfg.pkg,
		Var:     cfg.varName,
		Source:  cfg.source,
	})
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfg.goOut, buf.Bytes(), 0o644); err != nil { //nolint:gosec // generated source is world-readable
		return fmt.Errorf("write go source: %w", err)
	}
	return nil
}
