package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"GPAConverter/internal/domain"
	"GPAConverter/internal/ports"
	"GPAConverter/internal/transcript"
	"GPAConverter/pkg/gradescale"
)

// ReporterDeps wires all driven adapters into the reporting use case.
type ReporterDeps struct {
	Source       ports.TranscriptSource
	Translations ports.TranslationSource
	Exporter     ports.TranscriptExporter
	Registry     *gradescale.Registry
	Logger       *slog.Logger
}

// Params selects what one run computes.
type Params struct {
	ScaleID   int
	Simulated []domain.CourseRecord
	Export    bool
}

// Report carries the numeric results of a run. Formatting and rounding
// belong to the caller.
type Report struct {
	ScaleID        int
	ScaleName      string
	Records        int
	TotalCredits   float64
	DecimalAverage float64
	GPAAverage     float64
	ExportedTo     string
}

// Reporter turns a scraped transcript into credit-weighted averages and,
// optionally, an exported spreadsheet.
type Reporter struct {
	source       ports.TranscriptSource
	translations ports.TranslationSource
	exporter     ports.TranscriptExporter
	registry     *gradescale.Registry
	logger       *slog.Logger
}

// NewReporter constructs the orchestration component.
func NewReporter(deps ReporterDeps) *Reporter {
	return &Reporter{
		source:       deps.Source,
		translations: deps.Translations,
		exporter:     deps.Exporter,
		registry:     deps.Registry,
		logger:       deps.Logger,
	}
}

// BuildReport fetches the transcript, merges in simulated courses, and
// computes both averages under the requested scale. With Params.Export set
// it also writes the enriched spreadsheet and records its path.
func (r *Reporter) BuildReport(ctx context.Context, params Params) (Report, error) {
	if r.source == nil {
		return Report{}, fmt.Errorf("transcript source is not configured")
	}

	scale, err := r.registry.Lookup(params.ScaleID)
	if err != nil {
		return Report{}, err
	}

	scraped, err := r.source.FetchTranscript(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("fetch transcript: %w", err)
	}

	records := transcript.Merge(scraped, params.Simulated...)
	if len(params.Simulated) > 0 {
		r.debug("simulated courses merged", "count", len(params.Simulated))
	}

	report := Report{
		ScaleID:      scale.ID,
		ScaleName:    scale.Name,
		Records:      len(records),
		TotalCredits: transcript.TotalCredits(records),
	}

	report.DecimalAverage, err = transcript.DecimalAverage(records)
	if err != nil {
		return Report{}, fmt.Errorf("decimal average: %w", err)
	}

	report.GPAAverage, err = transcript.GPAAverage(records, scale)
	if err != nil {
		return Report{}, fmt.Errorf("gpa average: %w", err)
	}

	r.debug("averages computed",
		"records", report.Records,
		"credits", report.TotalCredits,
		"scale", scale.ID)

	if !params.Export {
		return report, nil
	}
	if r.exporter == nil {
		return Report{}, fmt.Errorf("export requested without a configured exporter")
	}

	translations := domain.Translations{}
	if r.translations != nil {
		translations, err = r.translations.Load(ctx)
		if err != nil {
			return Report{}, fmt.Errorf("load translations: %w", err)
		}
	}

	enriched, err := transcript.Enrich(records, scale, translations)
	if err != nil {
		return Report{}, fmt.Errorf("enrich transcript: %w", err)
	}

	report.ExportedTo, err = r.exporter.Export(ctx, enriched)
	if err != nil {
		return Report{}, fmt.Errorf("export transcript: %w", err)
	}

	r.debug("transcript exported", "path", report.ExportedTo)
	return report, nil
}

func (r *Reporter) debug(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Debug(msg, args...)
	}
}
