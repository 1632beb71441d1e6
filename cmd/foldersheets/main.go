package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jonaslundjonas/foldersheets/commands"
)

var cli = []commands.Command{
	&commands.VersionCmd,
	&commands.AuthoriseCmd,
	&commands.ImportCmd,
	&commands.PushCmd,
}

var options = commands.Options{
	Config: "",
	Debug:  false,
}

func main() {
	flag.StringVar(&options.Config, "config", options.Config, "Path of the foldersheets.yaml defaults file")
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.Parse()

	commands.SetLogger(newLogger(options.Debug))

	cmd, err := parse(flag.Args())
	if err != nil {
		fmt.Printf("\nError parsing command line: %v\n\n", err)
		usage()
		os.Exit(1)
	}

	if cmd == nil {
		usage()
		os.Exit(1)
	}

	if err := cmd.FlagSet().Parse(flag.Args()[1:]); err != nil {
		fmt.Printf("\nError parsing command line: %v\n\n", err)
		os.Exit(1)
	}

	if err := cmd.Execute(&options); err != nil {
		if errors.Is(err, commands.ErrFatalReported) {
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "\n   *** ERROR: %v\n\n", err)
		os.Exit(1)
	}
}

func parse(args []string) (commands.Command, error) {
	if len(args) == 0 {
		return nil, nil
	}

	if args[0] == "help" {
		help(args[1:])
		os.Exit(0)
	}

	for _, cmd := range cli {
		if cmd.Name() == args[0] {
			return cmd, nil
		}
	}

	return nil, fmt.Errorf("unknown command '%s'", args[0])
}

func help(args []string) {
	if len(args) > 0 {
		for _, cmd := range cli {
			if cmd.Name() == args[0] {
				cmd.Help()
				return
			}
		}

		fmt.Printf("\nUnknown command '%s'\n", args[0])
	}

	usage()
}

func usage() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] <command> [options]\n", commands.APP)
	fmt.Println()
	fmt.Println("  Commands:")
	fmt.Println()

	for _, cmd := range cli {
		fmt.Printf("    %-10s %s\n", cmd.Name(), cmd.Description())
	}

	fmt.Println()
	fmt.Println("  Use 'foldersheets help <command>' for command-specific options")
	fmt.Println()
}

func newLogger(debug bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		panic(fmt.Sprintf("ERROR: %v", err))
	}

	return logger
}
