// Copyright
// SPDX-License-Identifier: MIT
// click-to-edit: inline title editor for the terminal
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"click-to-edit/internal/config"
	"click-to-edit/internal/logging"
	"click-to-edit/internal/project"
	"click-to-edit/internal/tui"
)

const Version = "0.1.0"

type flags struct {
	configPath  string
	placeholder string
	maxLength   int
	noButtons   bool
	stateFile   string
	logFile     string
	debug       bool
	noColor     bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:           "click-to-edit",
		Short:         "Edit a project name in place",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := settings(cmd, f, false)
			if err != nil {
				return err
			}
			log, err := openLog(s, nil)
			if err != nil {
				return err
			}
			defer log.Close()
			logging.SetGlobal(log)
			defer logging.SetGlobal(nil)

			store, err := openStore(s, log)
			if err != nil {
				return err
			}
			log.Info("starting with project %q", store.Name())

			name, err := tui.Run(tui.Options{
				Store:    store,
				Settings: s,
				NoColor:  f.noColor,
				Logger:   log,
			})
			if err != nil {
				return fmt.Errorf("tui: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "path to a JSON settings file (default: user config dir)")
	pf.StringVar(&f.placeholder, "placeholder", "", "text shown when the name is empty")
	pf.IntVar(&f.maxLength, "max-length", 0, "maximum name length (0 = unlimited)")
	pf.BoolVar(&f.noButtons, "no-buttons", false, "hide the save/cancel controls")
	pf.StringVar(&f.stateFile, "state", "", "JSON file holding the project name")
	pf.StringVar(&f.logFile, "log", "", "write diagnostics to this file")
	pf.BoolVar(&f.debug, "debug", false, "include debug diagnostics in the log")

	root.Flags().BoolVar(&f.noColor, "no-color", false, "disable colors")

	root.AddCommand(newVersionCmd(), newResetCmd(f), newInitCmd(f))
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "click-to-edit %s\n", Version)
		},
	}
}

func newResetCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the stored project name to its default",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := settings(cmd, f, false)
			if err != nil {
				return err
			}
			if s.StateFile == "" {
				return errors.New("reset: no state file (use --state or stateFile)")
			}
			log, err := openLog(s, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer log.Close()

			store, err := openStore(s, log)
			if err != nil {
				return err
			}
			if err := store.Reset(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Project name reset to %q\n", store.Name())
			return nil
		},
	}
}

func newInitCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the effective settings to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := settings(cmd, f, true)
			if err != nil {
				return err
			}
			path := f.configPath
			if path == "" {
				path = config.DefaultPath()
			}
			if path == "" {
				return errors.New("init: no config path (use --config)")
			}
			if err := config.Save(path, s); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Settings written to %s\n", path)
			return nil
		},
	}
}

// settings loads the settings file and applies flags the user set. An
// explicit --config file must exist unless missingOK.
func settings(cmd *cobra.Command, f *flags, missingOK bool) (*config.Settings, error) {
	var (
		s   *config.Settings
		err error
	)
	if f.configPath != "" && !missingOK {
		s, err = config.Load(f.configPath)
	} else if f.configPath != "" {
		s, err = config.LoadOrDefault(f.configPath)
	} else if path := config.DefaultPath(); path != "" {
		s, err = config.LoadOrDefault(path)
	} else {
		s = config.Default()
	}
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("placeholder") {
		s.Placeholder = f.placeholder
	}
	if changed("max-length") {
		s.MaxLength = f.maxLength
	}
	if changed("no-buttons") {
		show := !f.noButtons
		s.ShowButtons = &show
	}
	if changed("state") {
		s.StateFile = f.stateFile
	}
	if changed("log") {
		s.LogFile = f.logFile
	}
	if changed("debug") {
		s.Debug = f.debug
	}
	return s, s.Validate()
}

// openLog writes to the log file when one is set. Otherwise debug output
// goes to stderr, if given; the TUI passes nil since it owns the terminal.
func openLog(s *config.Settings, stderr io.Writer) (logging.Logger, error) {
	if s.LogFile == "" {
		if s.Debug && stderr != nil {
			return logging.NewWriter(stderr, true), nil
		}
		return logging.Discard(), nil
	}
	log, err := logging.New(s.LogFile, s.Debug)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return log, nil
}

func openStore(s *config.Settings, log logging.Logger) (*project.Store, error) {
	if s.StateFile == "" {
		return project.NewStore(log), nil
	}
	return project.Open(s.StateFile, log)
}
