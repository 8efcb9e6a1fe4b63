package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"leapview/internal/buffer"
	"leapview/internal/config"
	"leapview/internal/eventbus"
	"leapview/internal/ui"
)

// Version is overridden at build time with -ldflags
var Version = "dev"

// overrides holds the command line settings that win over the config file
type overrides struct {
	labels        string
	ignoreCase    bool
	bidirectional bool
	noDim         bool
}

// apply copies the flags the user actually set onto cfg
func (o overrides) apply(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("labels") {
		cfg.Jump.Labels = o.labels
	}
	if flags.Changed("ignore-case") {
		cfg.Jump.IgnoreCase = o.ignoreCase
	}
	if flags.Changed("bidirectional") {
		cfg.Jump.Bidirectional = o.bidirectional
	}
	if flags.Changed("no-dim") {
		cfg.Jump.Dim = !o.noDim
	}
}

func main() {
	var ov overrides

	rootCmd := &cobra.Command{
		Use:   "leapview [file]",
		Short: "A modal text viewer with jump-label motions",
		Long: `leapview opens a file in a modal viewer. Press s (or x for an exclusive
reach), type a few characters of the place you want to go, then press the
label shown next to it.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runViewer(cmd, args, ov)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (default: "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().String("log-file", "leapview.log", "Log file")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.Flags().StringVar(&ov.labels, "labels", config.DefaultLabels, "Label alphabet")
	rootCmd.Flags().BoolVar(&ov.ignoreCase, "ignore-case", false, "Match case-insensitively")
	rootCmd.Flags().BoolVar(&ov.bidirectional, "bidirectional", false, "Label matches on both sides of the cursor")
	rootCmd.Flags().BoolVar(&ov.noDim, "no-dim", false, "Do not dim the text while jumping")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}

	configInitCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := newConfigService(cmd, nil)
			force, _ := cmd.Flags().GetBool("force")
			if _, err := os.Stat(svc.Path()); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", svc.Path())
			}
			if err := svc.Save(config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Println(svc.Path())
			return nil
		},
	}
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing file")

	configShowCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective config",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := newConfigService(cmd, nil)
			cfg, err := svc.Load()
			if err != nil {
				return err
			}
			data, err := toml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			fmt.Printf("# %s\n%s", svc.Path(), data)
			return nil
		},
	}

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of leapview",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(Version)
		},
	}

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newConfigService(cmd *cobra.Command, bus eventbus.EventBus) config.ConfigService {
	path, _ := cmd.Flags().GetString("config")
	return config.NewConfigServiceAt(path, bus)
}

// setupLogging points logrus at the log file so it never draws over the TUI
func setupLogging(cmd *cobra.Command) (func(), error) {
	logPath, _ := cmd.Flags().GetString("log-file")
	levelName, _ := cmd.Flags().GetString("log-level")

	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("could not open log file: %w", err)
	}

	logrus.SetOutput(logFile)
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	return func() { logFile.Close() }, nil
}

func runViewer(cmd *cobra.Command, args []string, ov overrides) error {
	closeLog, err := setupLogging(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := eventbus.New()
	defer bus.Close()

	configSvc := newConfigService(cmd, bus)
	cfg, err := configSvc.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	ov.apply(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	var buf *buffer.Buffer
	if len(args) == 1 {
		buf, err = buffer.ReadFile(args[0])
		if err != nil {
			return err
		}
	} else {
		buf = buffer.New("[scratch]", "")
	}
	logrus.Infof("Opening %s (%d lines)", buf.Name(), buf.LineCount())

	uiModel := ui.NewModel(bus, cfg, buf)
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Forward the events the UI reacts to
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigChangedEvent); ok {
			if next, ok := event.Config.(*config.Config); ok {
				ov.apply(cmd, next)
				if err := next.Validate(); err != nil {
					forward(eventbus.ErrorEvent{Message: "config reload rejected", Err: err})
					return
				}
			}
		}
		forward(e)
	})
	bus.Subscribe(eventbus.EventConfigSaved, forward)
	bus.Subscribe(eventbus.EventError, forward)

	bus.Subscribe(eventbus.EventJumped, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.JumpedEvent); ok {
			logrus.WithField("session", event.SessionID).Infof("jumped %q from %v to %v", event.Search, event.From, event.To)
		}
	})
	bus.Subscribe(eventbus.EventJumpCancelled, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.JumpCancelledEvent); ok {
			logrus.WithField("session", event.SessionID).Debugf("jump cancelled: %s", event.Reason)
		}
	})

	if watcher, err := config.NewWatcher(configSvc, bus); err != nil {
		logrus.Warnf("Config reload disabled: %v", err)
	} else {
		defer watcher.Close()
		go watcher.Run(ctx)
	}

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			p.Quit()
		case <-ctx.Done():
		}
	}()

	logrus.Info("Starting UI")
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	logrus.Info("UI exited normally")
	return nil
}
