package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dimonomid/lineedit/clhistory"
	"github.com/dimonomid/lineedit/clipboard"
	"github.com/dimonomid/lineedit/editor"
	"github.com/dimonomid/lineedit/log"
	"github.com/dimonomid/lineedit/version"
	"github.com/spf13/pflag"
)

func main() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting home dir: %s\n", err)
		os.Exit(1)
	}

	var (
		flagFile        = pflag.StringP("file", "f", "", "File to edit; if not given (neither as a flag nor as an argument), it's asked interactively")
		flagConfig      = pflag.StringP("config", "c", "", "Config file in yaml format; if not given, "+filepath.Join(homeDir, ".lineedit.yaml")+" is used if it exists")
		flagHistoryFile = pflag.String("history-file", filepath.Join(homeDir, ".lineedit_history"), "Where to keep the history of entered commands; set to an empty string to keep it in memory only")
		flagLogFile     = pflag.String("logfile", filepath.Join(homeDir, ".lineedit.log"), "This is lineedit's own log, nothing from the edited file ever goes there")
		flagLogLevel    = pflag.String("loglevel", "error", "Valid values are: error, warning, info, verbose1, verbose2 or verbose3")
		flagVersion     = pflag.Bool("version", false, "Print version and exit")
	)

	pflag.Parse()

	sysClipboard := clipboard.NewSystem()

	if *flagVersion {
		fmt.Print(version.VersionFullDescr(sysClipboard.InitErr()))
		return
	}

	logLevel, err := log.ParseLogLevel(*flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid --loglevel: %s\n", err)
		os.Exit(1)
	}

	log.SetOutputFile(*flagLogFile)
	logger := log.NewLogger(logLevel)

	path := *flagFile
	if path == "" && pflag.NArg() > 0 {
		path = pflag.Arg(0)
	}

	cfg, err := loadConfig(*flagConfig, filepath.Join(homeDir, ".lineedit.yaml"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %s\n", err)
		os.Exit(1)
	}

	history, err := clhistory.New(clhistory.CLHistoryParams{
		Filename: *flagHistoryFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing command history: %s\n", err)
		os.Exit(1)
	}

	e, err := editor.New(editor.EditorParams{
		Config:    *cfg,
		Console:   editor.NewStdConsole(os.Stdin, os.Stdout),
		Path:      path,
		History:   history,
		Clipboard: sysClipboard,
		Logger:    logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	logger.Infof("Starting lineedit %s", version.Version())

	runErr := e.Run()
	log.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", runErr)
		os.Exit(1)
	}
}
