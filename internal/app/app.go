package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/mendelics/retrieveseq"
	"github.com/mendelics/retrieveseq/internal/config"
	"github.com/mendelics/retrieveseq/internal/logging"
)

// Version can be overridden at build time with -ldflags "-X github.com/mendelics/retrieveseq/internal/app.Version=...".
var Version = "0.1.0"

// Exit codes.
const (
	exitOK    = 0
	exitSetup = 1
	exitUsage = 2
)

var errUsage = errors.New(wrongInput)

type invocation struct {
	genome   string
	coords   string
	relative *retrieveseq.RelativeRequest
}

// parsePositionals reads "genome coords [-mode from to]".
func parsePositionals(args []string) (invocation, error) {
	var inv invocation

	switch len(args) {
	case 2, 5:
	default:
		return inv, errUsage
	}
	inv.genome, inv.coords = args[0], args[1]

	if len(args) == 2 {
		return inv, nil
	}

	mode, err := retrieveseq.ParseMode(args[2])
	if err != nil || args[2][0] != '-' {
		return inv, errUsage
	}
	from, err := strconv.Atoi(args[3])
	if err != nil {
		return inv, errUsage
	}
	to, err := strconv.Atoi(args[4])
	if err != nil {
		return inv, errUsage
	}
	inv.relative = &retrieveseq.RelativeRequest{Mode: mode, From: from, To: to}

	return inv, nil
}

// Run executes the command with argv (without the program name) and returns
// the process exit code.
func Run(argv []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("retrieve-seq", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	outPath := fs.String("o", "", "output FASTA path")
	cfgPath := fs.String("config", "", "path to JSON config (optional)")
	verbose := fs.Bool("verbose", false, "enable verbose (debug) logging")
	showVersion := fs.Bool("version", false, "print version and exit")

	if len(argv) == 0 {
		fmt.Fprintln(stderr, wrongInput)
		return exitUsage
	}

	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(stdout, fs)
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		fmt.Fprintln(stderr, wrongInput)
		return exitUsage
	}

	if *showVersion {
		fmt.Fprintf(stdout, "retrieve-seq version %s\n", Version)
		return exitOK
	}

	inv, err := parsePositionals(fs.Args())
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	cfg, err := config.LoadConfig(*cfgPath)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return exitSetup
	}

	logger, closeLog, err := logging.New(stderr, cfg.LogLevel, *verbose, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(stderr, "log file: %v\n", err)
		return exitSetup
	}
	defer func() { _ = closeLog() }()

	logger.Debug("loaded config", "log_level", cfg.LogLevel, "log_file", cfg.LogFile, "output_dir", cfg.OutputDir)

	if *outPath == "" {
		*outPath = retrieveseq.OutputName(inv.genome, inv.relative)
		if cfg.OutputDir != "" {
			*outPath = filepath.Join(cfg.OutputDir, filepath.Base(*outPath))
		}
	}

	if err := run(inv, *outPath, logger); err != nil {
		logger.Error("retrieve-seq stopped", "err", err)
		return exitSetup
	}

	return exitOK
}

func run(inv invocation, outPath string, logger *log.Logger) error {
	for _, name := range []string{inv.genome, inv.coords} {
		if _, err := os.Stat(name); err != nil {
			return fmt.Errorf("%s not found", name)
		}
	}

	if inv.relative != nil {
		if err := inv.relative.Validate(); err != nil {
			return err
		}
	}

	genome, err := retrieveseq.LoadGenome(inv.genome)
	if err != nil {
		return err
	}
	logger.Debug("genome loaded", "file", inv.genome, "name", genome.Name, "length", genome.Len())

	coords, err := os.Open(inv.coords)
	if err != nil {
		return err
	}
	defer coords.Close()

	out, err := os.OpenFile(outPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer out.Close()

	logger.Info("retrieving sequences", "genome", inv.genome, "coords", inv.coords, "output", outPath)

	sum, err := retrieveseq.Extract(genome, coords, out, retrieveseq.Options{
		Relative: inv.relative,
		Source:   inv.coords,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	logger.Info("done", "written", sum.Written, "skipped", sum.Skipped, "output", outPath)
	return nil
}
