package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/summa/foundation/core/error"
	"github.com/msto63/summa/foundation/core/i18n"
	mdwlog "github.com/msto63/summa/foundation/core/log"
	"github.com/msto63/summa/foundation/summa"
	"github.com/msto63/summa/internal/printer"
	"github.com/msto63/summa/pkg/core/config"
	"github.com/msto63/summa/pkg/core/logging"
)

// app holds what every command needs after setup
type app struct {
	cfg      *config.Config
	logger   *mdwlog.Logger
	engine   *summa.Engine
	messages *i18n.Manager
}

var current *app

// setup loads configuration, applies flags and builds the engine
func setup(cmd *cobra.Command, args []string) error {
	// Diagnostics about the configuration itself use the default catalog
	current = &app{
		cfg:      config.Default(),
		logger:   mdwlog.NewNop(),
		messages: i18n.MustNew(i18n.Options{}),
	}

	cfg, err := loadConfig()
	if err != nil {
		return current.report(cmd, err)
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return current.report(cmd, err)
	}

	logger := logging.Setup(cfg, cmd.ErrOrStderr()).WithFields(mdwlog.Fields{
		"component": "summa-cli",
		"command":   cmd.Name(),
	})

	messages, err := i18n.New(i18n.Options{LocalesDir: cfg.General.LocalesDir})
	if err != nil {
		return current.report(cmd, err)
	}
	if err := messages.SetLocale(resolveLocale(cfg.General.Locale)); err != nil {
		logger.WarnWithErr("locale not available, using default", err, mdwlog.Fields{
			"locale":  cfg.General.Locale,
			"default": messages.GetDefaultLocale(),
		})
	}

	current = &app{
		cfg:    cfg,
		logger: logger,
		engine: summa.New(summa.Options{
			Logger:         logger,
			MaxInputLength: cfg.Parser.MaxInputLength,
			SlowThreshold:  cfg.Parser.SlowThreshold.Duration,
		}),
		messages: messages,
	}

	logger.Debug("configuration loaded", mdwlog.Fields{
		"locale":           messages.GetCurrentLocale(),
		"output":           cfg.Output.Mode,
		"max_input_length": cfg.Parser.MaxInputLength,
	})
	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.LoadFromEnv()
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	return cfg, cfg.ApplyEnv(os.Getenv)
}

// applyFlags overrides configuration values with explicitly given flags
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("locale") {
		cfg.General.Locale = locale
	}
	if flags.Changed("output") {
		cfg.Output.Mode = strings.ToLower(outputMode)
	}
	if flags.Changed("log-level") {
		cfg.General.LogLevel = logLevel
	}
	if flags.Changed("color") {
		cfg.Output.Color = color
	}
	return cfg.Validate()
}

// resolveLocale maps "auto" onto the POSIX environment
func resolveLocale(configured string) string {
	if configured != "auto" {
		return configured
	}
	if detected := i18n.DetectLocale(os.Getenv); detected != "" {
		return detected
	}
	return i18n.DefaultLocale
}

// report prints the localized diagnostic and returns errDiagnostic
func (a *app) report(cmd *cobra.Command, err error) error {
	if a.logger.IsLevelEnabled(mdwlog.LevelDebug) {
		a.logger.LogError(err)
	}
	fmt.Fprintln(cmd.ErrOrStderr(), a.messages.Localize(err))
	return errDiagnostic
}

func (a *app) printer(cmd *cobra.Command) *printer.Printer {
	return printer.New(cmd.OutOrStdout(), a.cfg.Output.Color)
}

func ioFailure(err error) error {
	return mdwerror.Wrap(err, "failed to read input").
		WithCode(mdwerror.CodeIOError).
		WithOperation("cmd.readInput").
		WithDetail("reason", err.Error())
}
