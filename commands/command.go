package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jonaslundjonas/foldersheets/config"
	"github.com/jonaslundjonas/foldersheets/sync"
)

const APP = "foldersheets"

const VERSION = "v0.1.0"

const (
	SHEETS = "https://www.googleapis.com/auth/spreadsheets"
	DRIVE  = "https://www.googleapis.com/auth/drive"
)

// ErrFatalReported marks a failure that has already been shown to the
// operator via the notification sink, so main only needs to set the exit
// code.
var ErrFatalReported = errors.New("fatal error reported")

// Options are the global command line options, shared by all subcommands.
type Options struct {
	Config string
	Debug  bool
}

// Command is a CLI subcommand.
type Command interface {
	Name() string
	Description() string
	Usage() string
	Help()
	FlagSet() *flag.FlagSet
	Execute(options *Options) error
}

// command holds the options common to the subcommands that talk to Google.
type command struct {
	workdir     string
	credentials string
	url         string
	worksheet   string
	folder      string
	debug       bool
}

func (c *command) flagset(name string) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&c.workdir, "workdir", c.workdir, "Directory for working files (cached tokens, etc)")
	flagset.StringVar(&c.credentials, "credentials", c.credentials, "Path for the 'credentials.json' file")
	flagset.StringVar(&c.url, "url", c.url, "Spreadsheet URL")
	flagset.StringVar(&c.worksheet, "worksheet", c.worksheet, "Worksheet name. Defaults to 'Folders'")
	flagset.StringVar(&c.folder, "folder", c.folder, "Google Drive folder ID or URL for the remote top-level folder")

	return flagset
}

// applyConfig fills in unset options from the defaults file. Flags take
// precedence over file values.
func (c *command) applyConfig(path string) error {
	if path == "" {
		path = DEFAULT_CONFIG
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if cfg.Workdir != "" && c.workdir == DEFAULT_WORKDIR {
		c.workdir = cfg.Workdir
	}

	if cfg.Credentials != "" && c.credentials == DEFAULT_CREDENTIALS {
		c.credentials = cfg.Credentials
	}

	if c.url == "" {
		c.url = cfg.Spreadsheet.URL
	}

	if c.worksheet == "" {
		c.worksheet = cfg.Spreadsheet.Worksheet
	}

	if c.folder == "" {
		c.folder = cfg.Drive.Folder
	}

	return nil
}

func helpOptions(flagset *flag.FlagSet) {
	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-12s %s\n", f.Name, f.Usage)
	})

	fmt.Println()
	fmt.Println("  Options:")
	fmt.Println()
	fmt.Println("    --debug   Displays internal information for diagnosing errors")
	fmt.Println("    --config  Path of the foldersheets.yaml defaults file")
}

var logger = zap.NewNop()

// SetLogger installs the process logger. main calls this once before
// dispatching a command.
func SetLogger(l *zap.Logger) {
	logger = l
}

func debugf(format string, args ...any) {
	logger.Sugar().Debugf(format, args...)
}

func infof(format string, args ...any) {
	logger.Sugar().Infof(format, args...)
}

func warnf(format string, args ...any) {
	logger.Sugar().Warnf(format, args...)
}

// notify is the operator notification sink consumed by import and push when
// root resolution fails.
var notify sync.Notifier = stderrNotifier{}

// stderrNotifier shows fatal failures on stderr regardless of log level or
// destination.
type stderrNotifier struct {
}

func (stderrNotifier) Fatal(message string) {
	fmt.Fprintf(os.Stderr, "\n   *** ERROR: %s\n\n", message)
	logger.Error(message)
}
