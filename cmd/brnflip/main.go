// brnflip converts a MegaHALv8 brain file between big-endian and
// little-endian byte order.
//
// The byte order of the input is detected from the file itself, so the
// only thing to choose is the target:
//
//	brnflip megahal.brn --target big
//	brnflip old.brn -o new.brn --target other
//
// --detect and --inspect report on the input without writing anything.
// --force flips the file without detecting its order first.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/robert-malhotra/go-brnflip/brain"
	"github.com/robert-malhotra/go-brnflip/internal/brainfile"
	"github.com/robert-malhotra/go-brnflip/internal/cli"
	"github.com/robert-malhotra/go-brnflip/internal/config"
	"github.com/robert-malhotra/go-brnflip/internal/digest"
	"github.com/robert-malhotra/go-brnflip/internal/version"
)

const defaultInput = "megahal.brn"

const mismatchMessage = "input file does not appear to be a MegaHALv8 brain"

func main() {
	env := environment{
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		native:    brain.NativeOrder(),
		newLogger: cli.NewCommandLogger,
	}
	if err := run(os.Args[1:], env); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		var toolErr *cli.ToolError
		if errors.As(err, &toolErr) {
			if toolErr.Hint != "" {
				fmt.Fprintf(os.Stderr, "hint: %s\n", toolErr.Hint)
			}
			os.Exit(toolErr.ExitCode())
		}
		os.Exit(1)
	}
}

// environment holds what run needs from the process, so tests can
// substitute buffers and a fixed native order.
type environment struct {
	stdout    io.Writer
	stderr    io.Writer
	native    brain.Order
	newLogger func(slog.Leveler) *slog.Logger
}

type flags struct {
	output     string
	target     string
	force      bool
	detect     bool
	inspect    bool
	json       bool
	backup     bool
	configPath string
	logLevel   string
	version    bool
	help       bool
}

func run(args []string, env environment) error {
	var f flags
	flagSet := pflag.NewFlagSet("brnflip", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVarP(&f.output, "output", "o", "", "output file (default: the input file)")
	flagSet.StringVar(&f.target, "target", "", "target byte order: big, little, this or other (default: this)")
	flagSet.BoolVar(&f.force, "force", false, "flip the file without detecting its byte order")
	flagSet.BoolVar(&f.detect, "detect", false, "print the detected byte order and exit")
	flagSet.BoolVar(&f.inspect, "inspect", false, "print a structural report of the brain and exit")
	flagSet.BoolVar(&f.json, "json", false, "with --inspect, print the report as JSON")
	flagSet.BoolVar(&f.backup, "backup", false, "copy the output file to <output>.bak before overwriting it")
	flagSet.StringVar(&f.configPath, "config", "", "configuration file (default: $"+config.EnvVar+")")
	flagSet.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flagSet.BoolVar(&f.version, "version", false, "print version information and exit")
	flagSet.BoolVarP(&f.help, "help", "h", false, "show help")
	flagSet.VisitAll(func(flag *pflag.Flag) {
		flag.Value = &onceValue{Value: flag.Value, name: flag.Name}
	})

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			printHelp(env.stdout, flagSet)
			return nil
		}
		return cli.Validation("%w", err).WithHint("run brnflip --help for usage")
	}
	if f.help {
		printHelp(env.stdout, flagSet)
		return nil
	}
	if f.version {
		fmt.Fprintln(env.stdout, version.Full(env.native.String()))
		return nil
	}

	positional := flagSet.Args()
	if len(positional) > 1 {
		return cli.Validation("unexpected argument: %s", positional[1]).
			WithHint("each parameter may only be specified once")
	}
	if err := checkModes(f); err != nil {
		return err
	}

	cfg, err := loadConfig(f.configPath)
	if err != nil {
		return err
	}
	if flagSet.Changed("target") {
		cfg.Target = f.target
	}
	if flagSet.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if flagSet.Changed("backup") {
		cfg.Backup = f.backup
	}
	if err := cfg.Validate(); err != nil {
		return cli.Validation("invalid configuration: %w", err)
	}

	level, err := cli.ParseLevel(cfg.LogLevel)
	if err != nil {
		return cli.Validation("%w", err)
	}
	logger := env.newLogger(level)

	target, err := brain.ParseTarget(cfg.Target, env.native)
	if err != nil {
		return cli.Validation("%w", err)
	}

	input := defaultInput
	if len(positional) == 1 {
		input = positional[0]
	}
	output := f.output
	if output == "" {
		output = input
	}

	buf, err := brainfile.Read(input, cfg.MaxSize)
	if err != nil {
		return cli.Internal("unable to read input file: %w", err)
	}
	logger.Debug("read brain", "path", input, "size", len(buf))

	opts := []brain.Option{
		brain.WithNativeOrder(env.native),
		brain.WithMaxSize(cfg.MaxSize),
		brain.WithMaxDepth(cfg.MaxDepth),
		brain.WithLogger(logger),
	}

	switch {
	case f.detect:
		return detect(env.stdout, buf, opts)
	case f.inspect:
		return inspect(env.stdout, buf, f.json, opts)
	}

	c := conversion{
		input:  input,
		output: output,
		target: target,
		force:  f.force,
		backup: cfg.Backup,
		logger: logger,
	}
	if err := c.run(buf, opts); err != nil {
		return err
	}
	fmt.Fprintln(env.stdout, "Conversion completed successfully.")
	return nil
}

func checkModes(f flags) error {
	modes := 0
	for _, set := range []bool{f.detect, f.inspect, f.force} {
		if set {
			modes++
		}
	}
	if modes > 1 {
		return cli.Validation("--detect, --inspect and --force are mutually exclusive")
	}
	if f.json && !f.inspect {
		return cli.Validation("--json requires --inspect")
	}
	if (f.detect || f.inspect) && (f.output != "" || f.backup) {
		return cli.Validation("--detect and --inspect do not write files")
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, cli.Validation("%w", err)
	}
	return cfg, nil
}

func formatError(err error) error {
	if errors.Is(err, brain.ErrFormatMismatch) {
		return &cli.ToolError{Category: cli.CategoryFormat, Err: fmt.Errorf("%s: %w", mismatchMessage, err)}
	}
	return cli.Internal("%w", err)
}

func detect(w io.Writer, buf []byte, opts []brain.Option) error {
	order, err := brain.Detect(buf, opts...)
	if err != nil {
		return formatError(err)
	}
	fmt.Fprintln(w, order)
	return nil
}

type conversion struct {
	input  string
	output string
	target brain.Order
	force  bool
	backup bool
	logger *slog.Logger
}

func (c *conversion) run(buf []byte, opts []brain.Option) error {
	before := digest.Sum(buf)

	if c.force {
		if err := brain.ForceFlip(buf, opts...); err != nil {
			return formatError(err)
		}
		c.logger.Info("flipped brain without detection", "path", c.input)
	} else {
		detected, err := brain.Convert(buf, c.target, opts...)
		if err != nil {
			return formatError(err)
		}
		c.logger.Info("detected byte order", "path", c.input, "order", detected, "target", c.target)
	}

	after := digest.Sum(buf)
	c.logger.Debug("digests", "before", before, "after", after)

	if samePath(c.input, c.output) && before == after {
		c.logger.Info("brain already in target order, nothing to write", "path", c.output)
		return nil
	}

	if c.backup {
		if _, err := os.Stat(c.output); err == nil {
			backupPath, err := brainfile.Backup(c.output)
			if err != nil {
				return cli.Internal("backing up output file: %w", err)
			}
			c.logger.Info("wrote backup", "path", backupPath)
		}
	}

	mode := brainfile.Mode(c.output, brainfile.Mode(c.input, 0o644))
	if err := brainfile.Write(c.output, buf, mode); err != nil {
		return cli.Internal("unable to write output file: %w", err)
	}
	c.logger.Info("wrote brain", "path", c.output, "size", len(buf), "digest", after.Short())
	return nil
}

func samePath(a, b string) bool {
	if a == b {
		return true
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}

func inspect(w io.Writer, buf []byte, asJSON bool, opts []brain.Option) error {
	info, err := brain.Inspect(buf, opts...)
	report := struct {
		*brain.Info
		Digest digest.Digest `json:"digest"`
		Error  string        `json:"error,omitempty"`
	}{Info: info, Digest: digest.Sum(buf)}
	if err != nil {
		report.Error = err.Error()
	}

	if asJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if encodeErr := encoder.Encode(report); encodeErr != nil {
			return cli.Internal("encoding report: %w", encodeErr)
		}
	} else {
		printInfo(w, info, report.Digest)
	}

	if err != nil {
		return formatError(err)
	}
	return nil
}

func printInfo(w io.Writer, info *brain.Info, sum digest.Digest) {
	fmt.Fprintf(w, "Size:        %d bytes\n", info.Size)
	fmt.Fprintf(w, "BLAKE3:      %s\n", sum)
	fmt.Fprintf(w, "Byte order:  %s\n", info.Order)
	if info.DictionaryOffset == 0 {
		return
	}
	fmt.Fprintf(w, "Dictionary:  offset %d, %d words\n", info.DictionaryOffset, info.Words)
	fmt.Fprintf(w, "Declared:    %d (big-endian), %d (little-endian)\n", info.DeclaredBig, info.DeclaredLittle)
	for i, tree := range info.Trees {
		fmt.Fprintf(w, "Tree %d:      bytes %d-%d, %d nodes, %d leaves, depth %d\n",
			i, tree.Start, tree.End, tree.Nodes, tree.Leaves, tree.MaxDepth)
	}
	if len(info.Sample) > 0 {
		quoted := make([]string, len(info.Sample))
		for i, word := range info.Sample {
			quoted[i] = fmt.Sprintf("%q", word)
		}
		fmt.Fprintf(w, "Words:       %s\n", strings.Join(quoted, " "))
	}
}

// onceValue rejects a second occurrence of the same flag.
type onceValue struct {
	pflag.Value
	name string
	set  bool
}

func (v *onceValue) Set(s string) error {
	if v.set {
		return fmt.Errorf("--%s may only be specified once", v.name)
	}
	v.set = true
	return v.Value.Set(s)
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `brnflip converts MegaHALv8 brain files between big-endian and
little-endian byte order. The byte order of the input is detected
automatically.

Usage: brnflip [input] [-o output] [--target target] [flags]

The input defaults to %s and the output to the input file.
Each parameter may only be specified once.

Supported targets:
  big     big-endian
  little  little-endian
  this    your machine's byte order
  other   the opposite of your machine's byte order

Flags:
%s`, defaultInput, flagSet.FlagUsages())
}
