package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"GPAConverter/internal/cli"
	"GPAConverter/internal/config"
	"GPAConverter/internal/infrastructure/cache"
	"GPAConverter/internal/infrastructure/cagr"
	"GPAConverter/internal/infrastructure/export"
	"GPAConverter/internal/infrastructure/terminal"
	"GPAConverter/internal/infrastructure/translation"
	"GPAConverter/internal/logging"
	"GPAConverter/internal/ports"
	"GPAConverter/internal/usecase"
	"GPAConverter/pkg/gradescale"
)

// Application wires configuration and flags into the reporting use case.
type Application struct {
	cfg      config.Config
	opts     cli.Options
	logger   *slog.Logger
	client   *cagr.Client
	reporter *usecase.Reporter
	prompter ports.CredentialPrompter
}

// New builds a runnable application instance.
func New(cfg config.Config, opts cli.Options, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	registry, err := gradescale.NewRegistry(cfg.ScaleSet()...)
	if err != nil {
		return nil, fmt.Errorf("scale configuration: %w", err)
	}

	client := cagr.New(cfg.Portal, nil, baseLogger.With("component", "cagr"))
	source := cache.NewSource(client, cfg.Cache.TTL(), baseLogger.With("component", "cache"))

	var translations ports.TranslationSource
	var exporter ports.TranscriptExporter
	if opts.Export {
		translations, err = translationSource(opts, cfg, baseLogger)
		if err != nil {
			return nil, err
		}

		path := opts.OutputPath
		if path == "" {
			path = cfg.Export.Path
		}
		exporter, err = export.ForPath(path)
		if err != nil {
			return nil, err
		}
	}

	reporter := usecase.NewReporter(usecase.ReporterDeps{
		Source:       source,
		Translations: translations,
		Exporter:     exporter,
		Registry:     registry,
		Logger:       baseLogger.With("component", "reporter"),
	})

	return &Application{
		cfg:      cfg,
		opts:     opts,
		logger:   baseLogger,
		client:   client,
		reporter: reporter,
		prompter: terminal.Prompter{},
	}, nil
}

// translationSource resolves the catalog to use for export. An explicitly
// flagged spreadsheet must exist; the configured default is optional and is
// skipped with a note when absent.
func translationSource(opts cli.Options, cfg config.Config, log *slog.Logger) (ports.TranslationSource, error) {
	if opts.Translations != "" {
		if _, err := os.Stat(opts.Translations); err != nil {
			return nil, fmt.Errorf("translation spreadsheet: %w", err)
		}
		return translation.NewSpreadsheetSource(opts.Translations), nil
	}

	path := cfg.Export.Translations
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		log.Debug("no translation spreadsheet found, exporting without translations", "path", path)
		return nil, nil
	}
	return translation.NewSpreadsheetSource(path), nil
}

// Run resolves credentials, logs into the portal, and produces the report.
func (a *Application) Run(ctx context.Context) (usecase.Report, error) {
	username, password, err := a.credentials()
	if err != nil {
		return usecase.Report{}, err
	}

	if err := a.client.Login(ctx, username, password); err != nil {
		return usecase.Report{}, fmt.Errorf("portal login: %w", err)
	}

	return a.reporter.BuildReport(ctx, usecase.Params{
		ScaleID:   a.opts.ScaleID,
		Simulated: a.opts.Simulated,
		Export:    a.opts.Export,
	})
}

// credentials prefers the -username flag, then the environment, and prompts
// for anything still missing.
func (a *Application) credentials() (string, string, error) {
	username := a.opts.Username
	if username == "" {
		username = a.cfg.Credentials.Username
	}
	password := a.cfg.Credentials.Password

	if username != "" && password != "" {
		return username, password, nil
	}

	a.logger.Debug("credentials incomplete, prompting")
	return a.prompter.Prompt()
}
