package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/five82/pinmon/internal/app"
)

var errNoTerminal = errors.New("stdout is not a terminal; use `pinmon snapshot` for non-interactive output")

// stdoutIsTerminal is a variable so tests can force either answer.
var stdoutIsTerminal = func() bool {
	return term.IsTerminal(os.Stdout.Fd())
}

// flags holds the options shared by the dashboard and snapshot commands.
type flags struct {
	configPath string
	prefsPath  string
	overrides  app.Overrides
}

func (f *flags) options() app.Options {
	return app.Options{
		ConfigPath: f.configPath,
		PrefsPath:  f.prefsPath,
		Overrides:  f.overrides,
	}
}

func newRootCommand(version, commit, date string) *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:   "pinmon",
		Short: "Live pin-resistance monitor",
		Long: `pinmon follows a pin-resistance measurement file and charts the most
recent samples of each selected category in the terminal.

Each line of the file is "<category_key>,<value>". The file is re-read
whenever its size changes.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !stdoutIsTerminal() {
				return errNoTerminal
			}
			return app.Run(cmd.Context(), f.options())
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "config file path (default ~/.config/pinmon/config.toml)")
	pf.StringVar(&f.prefsPath, "prefs", "", "preferences file path (default ~/.config/pinmon/prefs.toml)")
	pf.StringVarP(&f.overrides.Source, "file", "f", "", "measurement file to monitor")
	pf.IntVarP(&f.overrides.WindowSize, "window", "w", 0, "samples shown per category (default 10)")
	pf.Float64Var(&f.overrides.MaxValue, "max", 0, "upper bound of the value axis (default 20)")
	pf.StringArrayVar(&f.overrides.Categories, "category", nil, "category label to show, repeatable (e.g. --category 0% --category -25%)")
	pf.DurationVar(&f.overrides.PollInterval, "poll", 0, "poll interval (default 1s)")
	pf.BoolVar(&f.overrides.NoWatch, "no-watch", false, "disable filesystem notifications and rely on polling only")

	rootCmd.AddCommand(newSnapshotCommand(f))
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displayVersion := version
			displayCommit := commit
			displayDate := date

			if version == "dev" || version == "" {
				displayVersion = "development"
			}
			if commit == "none" || commit == "" {
				displayCommit = "local-build"
			}
			if date == "unknown" || date == "" {
				displayDate = "local-build"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "pinmon %s (%s) built on %s\n", displayVersion, displayCommit, displayDate)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
