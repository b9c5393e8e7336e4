// gbfs inspects and unpacks GBFS asset archives.
//
// Usage:
//
//	gbfs info <archive>
//	gbfs ls [--output text|json|yaml] [--checksum] <archive>
//	gbfs cat <archive> <name>
//	gbfs extract [--dir DIR] <archive> [names...]
//
// Every command accepts -v/--verbose, --fixed-capacity N and
// --no-length-check.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/arloliu/gbfs/archive"
)

// errUsage marks errors caused by bad invocation; main exits with status 2.
var errUsage = errors.New("usage error")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// command is one gbfs subcommand.
type command struct {
	name    string
	usage   string
	summary string
	flags   func(fs *pflag.FlagSet, opts *cmdOptions)
	run     func(env *env, args []string) error
}

// cmdOptions holds every flag value across commands.
type cmdOptions struct {
	verbose       bool
	fixedCapacity int
	noLengthCheck bool

	output   string
	checksum bool
	dir      string
}

// env is what a command runs against.
type env struct {
	opts   *cmdOptions
	stdout io.Writer
	logger *slog.Logger
}

var commands = []command{
	{
		name:    "info",
		usage:   "info <archive>",
		summary: "print header fields, store kind, fingerprint and duplicate names",
		run:     runInfo,
	},
	{
		name:    "ls",
		usage:   "ls [--output text|json|yaml] [--checksum] <archive>",
		summary: "list directory entries in order",
		flags: func(fs *pflag.FlagSet, opts *cmdOptions) {
			fs.StringVarP(&opts.output, "output", "o", "text", "output format: text, json or yaml")
			fs.BoolVar(&opts.checksum, "checksum", false, "include the xxHash64 of each payload")
		},
		run: runList,
	},
	{
		name:    "cat",
		usage:   "cat <archive> <name>",
		summary: "write one payload to stdout",
		run:     runCat,
	},
	{
		name:    "extract",
		usage:   "extract [--dir DIR] <archive> [names...]",
		summary: "write payloads to files, all of them if no names are given",
		flags: func(fs *pflag.FlagSet, opts *cmdOptions) {
			fs.StringVarP(&opts.dir, "dir", "d", ".", "destination directory")
		},
		run: runExtract,
	},
}

func findCommand(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}

	return command{}, false
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		printHelp(stderr)
		return fmt.Errorf("%w: missing command", errUsage)
	}

	switch args[0] {
	case "-h", "--help", "help":
		printHelp(stdout)
		return nil
	}

	cmd, ok := findCommand(args[0])
	if !ok {
		printHelp(stderr)
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}

	opts := &cmdOptions{}
	flagSet := pflag.NewFlagSet("gbfs "+cmd.name, pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	flagSet.IntVar(&opts.fixedCapacity, "fixed-capacity", 0, "decode into a fixed-capacity store of N entries (0 uses a dynamic store)")
	flagSet.BoolVar(&opts.noLengthCheck, "no-length-check", false, "accept archives whose declared length exceeds the file size")
	if cmd.flags != nil {
		cmd.flags(flagSet, opts)
	}
	flagSet.Usage = func() {
		fmt.Fprintf(stderr, "Usage:\n  gbfs %s\n\nFlags:\n", cmd.usage)
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}

		return fmt.Errorf("%w: %w", errUsage, err)
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}

	e := &env{
		opts:   opts,
		stdout: stdout,
		logger: slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
	}

	return cmd.run(e, flagSet.Args())
}

func printHelp(w io.Writer) {
	fmt.Fprintf(w, "gbfs inspects GBFS asset archives.\n\nUsage:\n")
	for _, c := range commands {
		fmt.Fprintf(w, "  gbfs %-48s %s\n", c.usage, c.summary)
	}
	fmt.Fprintf(w, "\nCommon flags:\n"+
		"  -v, --verbose            enable debug logging\n"+
		"      --fixed-capacity N   decode into a fixed-capacity store\n"+
		"      --no-length-check    skip the declared length check\n")
}

// openArchive reads and parses the archive at path with the common flags applied.
func (e *env) openArchive(path string) (*archive.Filesystem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	opts := []archive.Option{
		archive.WithLogger(e.logger.With("archive", path)),
		archive.WithLengthCheck(!e.opts.noLengthCheck),
	}
	if e.opts.fixedCapacity != 0 {
		opts = append(opts, archive.WithFixedCapacity(e.opts.fixedCapacity))
	}

	fsys, err := archive.Open(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return fsys, nil
}
