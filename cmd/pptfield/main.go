package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/wippyai/pptfields/config"
	"github.com/wippyai/pptfields/docindex"
)

func main() {
	var (
		configFile  = flag.String("config", "", "Config file (.toml, .yaml or .yml)")
		kind        = flag.String("kind", "", "Decoder to run (see -list)")
		hexData     = flag.String("hex", "", "Input bytes as hex")
		count       = flag.Int("n", -1, "Byte count for string decoders (default: all input)")
		scan        = flag.Bool("scan", false, "Scan the record trees of the files given as arguments")
		dump        = flag.Bool("dump", false, "Dump decoded values in full")
		list        = flag.Bool("list", false, "List decoder kinds and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	cfg := config.Default()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	log, err := cfg.Log.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck
	docindex.SetLogger(log.Named("docindex"))

	p := printer{w: os.Stdout, color: useColor(cfg.Output.Color), dump: *dump}

	switch {
	case *list:
		listKinds(os.Stdout)
	case *interactive:
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case *scan:
		if flag.NArg() == 0 {
			usage()
			os.Exit(1)
		}
		ok, err := runScan(context.Background(), cfg, log, p, flag.Args())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if !ok {
			os.Exit(2)
		}
	case *kind != "":
		if err := runOne(p, *kind, *hexData, *count); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: pptfield -kind <decoder> -hex <bytes> [-n count] [-dump]")
	fmt.Fprintln(os.Stderr, "       pptfield -scan [-config file] [-dump] file...")
	fmt.Fprintln(os.Stderr, "       pptfield -list")
	fmt.Fprintln(os.Stderr, "       pptfield -i  (interactive mode)")
}

func listKinds(w io.Writer) {
	for _, k := range sortedKinds() {
		suffix := ""
		if k.sized {
			suffix = " (uses -n)"
		}
		fmt.Fprintf(w, "  %-20s %s%s\n", k.name, k.desc, suffix)
	}
}

func runOne(p printer, kindName, hexData string, n int) error {
	k, err := lookupKind(kindName)
	if err != nil {
		return err
	}
	data, err := parseHex(hexData)
	if err != nil {
		return err
	}
	p.result(k.name, runDecoder(k, data, n))
	return nil
}

// runScan prints one report per file and reports whether every file was
// free of problems.
func runScan(ctx context.Context, cfg config.Config, log *zap.Logger, p printer, paths []string) (bool, error) {
	reports, err := scanFiles(ctx, cfg, log, paths)
	if err != nil {
		return false, err
	}
	clean := true
	for _, rep := range reports {
		problems := multierr.Errors(rep.problems)
		fmt.Fprintf(p.w, "%s: %d records, %d decoded, %d skipped, %d problems\n",
			rep.path, rep.records, rep.decoded, rep.skipped, len(problems))
		for _, perr := range problems {
			fmt.Fprintf(p.w, "  %s\n", p.style(errorStyle, perr.Error()))
		}
		if p.dump {
			for _, a := range rep.atoms {
				p.dumpValue(a)
			}
		}
		if len(problems) > 0 {
			clean = false
		}
	}
	return clean, nil
}
