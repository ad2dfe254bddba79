package domain

// CourseRecord is one validated transcript row: a completed course with a
// numeric decimal grade and a positive credit weight.
type CourseRecord struct {
	Code    string
	Name    string
	Credits float64
	Grade   float64
}

// Transcript is the student's set of graded courses for one run. It is
// passed by value between collaborators; nothing holds it as shared state.
type Transcript []CourseRecord

// EnrichedRecord extends a CourseRecord with the values spreadsheet export
// needs: the converted GPA and the translated course description.
type EnrichedRecord struct {
	CourseRecord
	GPA            float64
	TranslatedName string
}

// Translations maps course codes to translated descriptions. Partial
// coverage is expected; codes without an entry translate to the empty
// string.
type Translations map[string]string
