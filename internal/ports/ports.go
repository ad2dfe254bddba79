package ports

import (
	"context"

	"GPAConverter/internal/domain"
)

// TranscriptSource pulls the student's graded course records from the
// academic records portal (or a cache in front of it).
type TranscriptSource interface {
	FetchTranscript(ctx context.Context) (domain.Transcript, error)
}

// TranslationSource loads the course-code to translated-description table
// used by spreadsheet export.
type TranslationSource interface {
	Load(ctx context.Context) (domain.Translations, error)
}

// TranscriptExporter serializes an enriched transcript and reports the path
// it was written to.
type TranscriptExporter interface {
	Export(ctx context.Context, records []domain.EnrichedRecord) (string, error)
}

// CredentialPrompter collects portal credentials interactively when flags
// and the environment supply none.
type CredentialPrompter interface {
	Prompt() (username, password string, err error)
}
