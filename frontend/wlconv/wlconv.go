// Copyright 2023~2024 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// wlconv converts legacy encoded files to UTF-8. The source code page
// comes from the -c flag; without it the charset of the native locale
// decides, the way the spreadsheet readers consume this library.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"log/slog"

	"github.com/ericwq/wlocale/codepage"
	"github.com/ericwq/wlocale/frontend"
	"github.com/ericwq/wlocale/locale"
	"github.com/ericwq/wlocale/util"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

var usage = `Usage:
  ` + frontend.CommandConvertName + ` [--version] [--help] [--list]
  ` + frontend.CommandConvertName + ` [--verbose] [--codepage ID] [--output DIR] [FILE ...]
Options:
  -h, --help      print this message
  -v, --version   print version information
  -l, --list      print the supported code pages
  -c, --codepage  source code page identifier (default: native locale charset)
  -o, --output    output directory (default: alongside input, .utf8 suffix)
      --verbose   verbose output mode
`

type Config struct {
	version  bool
	list     bool
	verbose  int
	codepage int
	output   string
	files    []string
}

// parseFlags parses the command-line arguments provided to the
// program. Typically os.Args[0] is provided as progname and os.Args[1:]
// as args.
func parseFlags(progname string, args []string) (config *Config, output string, err error) {
	flagSet := flag.NewFlagSet(progname, flag.ContinueOnError)
	var buf bytes.Buffer
	flagSet.SetOutput(&buf)

	var conf Config

	flagSet.IntVar(&conf.verbose, "verbose", 0, "verbose output")

	flagSet.BoolVar(&conf.version, "version", false, "print version information")
	flagSet.BoolVar(&conf.version, "v", false, "print version information")

	flagSet.BoolVar(&conf.list, "list", false, "print the supported code pages")
	flagSet.BoolVar(&conf.list, "l", false, "print the supported code pages")

	flagSet.IntVar(&conf.codepage, "codepage", 0, "source code page identifier")
	flagSet.IntVar(&conf.codepage, "c", 0, "source code page identifier")

	flagSet.StringVar(&conf.output, "output", "", "output directory")
	flagSet.StringVar(&conf.output, "o", "", "output directory")

	err = flagSet.Parse(args)
	if err != nil {
		return nil, buf.String(), err
	}

	conf.files = flagSet.Args()
	return &conf, buf.String(), nil
}

func printVersion() {
	fmt.Printf("%s\t\t: %s library %s, %s\n", frontend.PackageName,
		frontend.PackageName, locale.GetVersion(), frontend.CommandConvertName)
	frontend.PrintVersion()
}

func printUsage(hint string, usage string) {
	if hint != "" {
		fmt.Printf("Hints: %s\n", hint)
	}
	fmt.Printf("%s", usage)
}

func printCodepages() {
	for _, id := range codepage.IDs() {
		fmt.Printf("%5d\t%s\n", id, codepage.Name(id))
	}
}

// sourceCodepage decides the code page to decode from: the -c flag
// when given, otherwise the charset of the native locale.
func sourceCodepage(conf *Config) (uint16, error) {
	if conf.codepage != 0 {
		if conf.codepage < 0 || conf.codepage > 65535 {
			return 0, fmt.Errorf("code page out of range: %d", conf.codepage)
		}
		return uint16(conf.codepage), nil
	}

	if locale.SetNativeLocale() == "" {
		return 0, fmt.Errorf("can't set native locale, set LC_ALL or use -c")
	}
	return codepage.IDByName(locale.LocaleCharset())
}

// outputName places the converted file: into the output directory
// when one is given, otherwise alongside the input with a .utf8
// suffix.
func outputName(conf *Config, input string) string {
	if conf.output != "" {
		return filepath.Join(conf.output, filepath.Base(input))
	}
	return input + ".utf8"
}

// convertFile decodes one file from the given code page and writes
// the UTF-8 result.
func convertFile(cp uint16, input string, output string) error {
	in, err := os.Open(input)
	if err != nil {
		return err
	}
	defer in.Close()

	reader, err := codepage.NewReader(cp, in)
	if err != nil {
		return err
	}

	out, err := os.Create(output)
	if err != nil {
		return err
	}
	defer out.Close()

	n, err := io.Copy(out, reader)
	if err != nil {
		return fmt.Errorf("convert %s: %w", input, err)
	}
	util.Logger.Debug("converted", "input", input, "output", output, "bytes", n)
	return nil
}

// convertStream decodes stdin to stdout.
func convertStream(cp uint16) error {
	reader, err := codepage.NewReader(cp, os.Stdin)
	if err != nil {
		return err
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		util.Logger.Info("reading from terminal, EOF with ^D")
	}
	_, err = io.Copy(os.Stdout, reader)
	return err
}

func main() {
	conf, _, err := parseFlags(os.Args[0], os.Args[1:])
	if err == flag.ErrHelp {
		printUsage("", usage)
		return
	} else if err != nil {
		printUsage(err.Error(), usage)
		return
	}

	if conf.version {
		printVersion()
		return
	}

	if conf.list {
		printCodepages()
		return
	}

	if conf.verbose > 0 {
		util.Logger.SetLevel(slog.LevelDebug)
	} else {
		util.Logger.SetLevel(slog.LevelInfo)
	}
	util.Logger.SetOutput(os.Stderr)

	cp, err := sourceCodepage(conf)
	if err != nil {
		printUsage(err.Error(), usage)
		os.Exit(1)
	}
	util.Logger.Debug("source encoding", "codepage", cp, "charset", codepage.Name(cp))

	if len(conf.files) == 0 {
		if err := convertStream(cp); err != nil {
			util.Logger.Error("convert failed", "error", err)
			os.Exit(1)
		}
		return
	}

	eg := errgroup.Group{}
	for _, input := range conf.files {
		input := input
		eg.Go(func() error {
			return convertFile(cp, input, outputName(conf, input))
		})
	}
	if err := eg.Wait(); err != nil {
		util.Logger.Error("convert failed", "error", err)
		os.Exit(1)
	}
}
