package models

// ProgramRecord mirrors one FileMaker layout record for a learning program.
// English and Japanese fields arrive side by side; Localize projects the
// pair for one locale at the boundary.
type ProgramRecord struct {
	RecordID    string `json:"recordId"`
	Code        string `json:"LearningProgramCode"`
	NameEN      string `json:"LearningProgramNameE"`
	NameJA      string `json:"LearningProgramNameJ"`
	SummaryEN   string `json:"LearningProgramSummaryE"`
	SummaryJA   string `json:"LearningProgramSummaryJ"`
	DetailEN    string `json:"LearningProgramDetailE"`
	DetailJA    string `json:"LearningProgramDetailJ"`
	Category    string `json:"LearningProgramCategory"`
	DurationDay string `json:"LearningProgramDurationDays"`
}

// LocalizedProgram is the core's clean, single-locale view of a program.
type LocalizedProgram struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Summary      string `json:"summary"`
	Detail       string `json:"detail"`
	Category     string `json:"category"`
	DurationDays string `json:"durationDays"`
	Locale       string `json:"locale"`
}
