package records

import "bizschool/models"

// Localize projects a bilingual program record onto a single locale. The
// EN/JA field choice happens here and nowhere else.
func Localize(rec models.ProgramRecord, locale string) models.LocalizedProgram {
	p := models.LocalizedProgram{
		Code:         rec.Code,
		Category:     rec.Category,
		DurationDays: rec.DurationDay,
		Locale:       "ja",
	}
	if locale == "en" {
		p.Locale = "en"
		p.Name = rec.NameEN
		p.Summary = rec.SummaryEN
		p.Detail = rec.DetailEN
		return p
	}
	p.Name = rec.NameJA
	p.Summary = rec.SummaryJA
	p.Detail = rec.DetailJA
	// Japanese layouts are filled inconsistently; fall back to English
	// rather than presenting blanks.
	if p.Name == "" {
		p.Name = rec.NameEN
	}
	if p.Summary == "" {
		p.Summary = rec.SummaryEN
	}
	if p.Detail == "" {
		p.Detail = rec.DetailEN
	}
	return p
}
