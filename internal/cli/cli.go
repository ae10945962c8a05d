package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"sessionsheets/config"
	"sessionsheets/internal/session"
	"sessionsheets/internal/setup"
)

type App struct {
	Program string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *zap.Logger
	Store   config.Store
	Open    session.Opener
}

type command int

const (
	cmdUsage command = iota
	cmdSetup
	cmdTest
	cmdEnable
	cmdDisable
	cmdSync
)

// Run executes one invocation. The returned error only selects the exit
// status; everything worth telling the user has been written already.
func (a *App) Run(ctx context.Context, args []string) error {
	cmd, csvPath := a.parse(args)

	switch cmd {
	case cmdSetup:
		return a.setup()
	case cmdTest:
		return a.test(ctx)
	case cmdEnable:
		return a.toggle(true)
	case cmdDisable:
		return a.toggle(false)
	case cmdSync:
		return a.sync(ctx, csvPath)
	default:
		a.usage()
		return nil
	}
}

func (a *App) parse(args []string) (command, string) {
	var setupFlag, testFlag, enableFlag, disableFlag bool

	fs := pflag.NewFlagSet(a.Program, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&setupFlag, "setup", false, "Initial setup")
	fs.BoolVar(&testFlag, "test", false, "Test connection")
	fs.BoolVar(&enableFlag, "enable", false, "Enable sync")
	fs.BoolVar(&disableFlag, "disable", false, "Disable sync")

	if err := fs.Parse(args); err != nil {
		a.Logger.Debug("unrecognized arguments", zap.Strings("args", args), zap.Error(err))
		return cmdUsage, ""
	}

	selected := []command{}
	for _, f := range []struct {
		set bool
		cmd command
	}{
		{setupFlag, cmdSetup},
		{testFlag, cmdTest},
		{enableFlag, cmdEnable},
		{disableFlag, cmdDisable},
	} {
		if f.set {
			selected = append(selected, f.cmd)
		}
	}

	switch {
	case len(selected) == 1 && fs.NArg() == 0:
		return selected[0], ""
	case len(selected) == 0 && fs.NArg() == 1:
		return cmdSync, fs.Arg(0)
	default:
		return cmdUsage, ""
	}
}

func (a *App) usage() {
	fmt.Fprintf(a.Stdout, `Usage:
  %[1]s --setup     # Initial setup
  %[1]s --test      # Test connection
  %[1]s --enable    # Enable sync
  %[1]s --disable   # Disable sync
  %[1]s <csv_file>  # Sync CSV to Google Sheets
`, a.Program)
}

func (a *App) setup() error {
	p := setup.NewLinePrompter(a.Stdin, a.Stdout)
	if _, err := setup.Run(p, a.Stdout, a.Store, a.Program); err != nil {
		fmt.Fprintf(a.Stderr, "Setup failed: %v\n", err)
		return err
	}
	return nil
}

func (a *App) test(ctx context.Context) error {
	cfg, err := a.Store.Load()
	if errors.Is(err, config.ErrNotConfigured) {
		fmt.Fprint(a.Stderr, a.Store.Guidance(a.Program))
		return err
	}
	if err != nil {
		fmt.Fprintf(a.Stderr, "Unable to read configuration: %v\n", err)
		return err
	}

	fmt.Fprintln(a.Stdout, "Testing connection to Google Sheets...")

	svc := session.NewServiceSync(a.Logger, a.Store, a.Open)
	report, err := svc.CheckConfig(ctx, cfg)
	if err != nil {
		fmt.Fprintf(a.Stdout, "Connection failed: %v\n", err)
		return err
	}

	fmt.Fprintf(a.Stdout, "Successfully connected to: %s\n", report.Title)
	fmt.Fprintf(a.Stdout, "   Worksheet: %s\n", report.Worksheet)
	fmt.Fprintf(a.Stdout, "   Rows: %d\n", report.Rows)
	fmt.Fprintf(a.Stdout, "   Columns: %d\n", report.Columns)
	return nil
}

// toggle always exits 0; a missing config only prints the guidance.
func (a *App) toggle(enabled bool) error {
	_, err := a.Store.SetEnabled(enabled)
	if errors.Is(err, config.ErrNotConfigured) {
		fmt.Fprint(a.Stderr, a.Store.Guidance(a.Program))
		return nil
	}
	if err != nil {
		fmt.Fprintf(a.Stderr, "Unable to update configuration: %v\n", err)
		return err
	}

	state := "disabled"
	if enabled {
		state = "enabled"
	}
	fmt.Fprintf(a.Stdout, "Google Sheets sync %s\n", state)
	return nil
}

func (a *App) sync(ctx context.Context, csvPath string) error {
	if _, err := os.Stat(csvPath); err != nil {
		fmt.Fprintf(a.Stderr, "CSV file not found: %s\n", csvPath)
		return err
	}

	svc := session.NewServiceSync(a.Logger, a.Store, a.Open)
	res := svc.SyncCSV(ctx, csvPath)

	switch res.Status {
	case session.StatusSynced:
		fmt.Fprintln(a.Stderr, res.Message())
		return nil
	case session.StatusNotConfigured:
		fmt.Fprint(a.Stderr, a.Store.Guidance(a.Program))
	case session.StatusFailed:
		fmt.Fprintln(a.Stderr, res.Message())
	}

	if res.Err != nil {
		return res.Err
	}
	return errors.New(res.Message())
}
