package extraction

import (
	"unicode/utf8"

	"github.com/jonathan/talent-screen/internal/skills"
	"github.com/jonathan/talent-screen/internal/types"
)

// AssembleProfile runs all four extractors against the same normalized
// text and composes a complete candidate profile. The profile is built
// wholesale; identical text and vocabulary always yield an identical
// profile. No cross-extractor validation is performed (a work-history
// duration is not checked against the experience-years figure).
func AssembleProfile(text string, vocab skills.Vocabulary) (types.CandidateProfile, error) {
	if !utf8.ValidString(text) {
		return types.CandidateProfile{}, &ValidationError{Message: "document text is not valid UTF-8"}
	}

	return types.CandidateProfile{
		Skills:          ExtractSkills(text, vocab),
		ExperienceYears: ExtractExperienceYears(text),
		Education:       ExtractEducation(text),
		WorkHistory:     ExtractWorkHistory(text),
	}, nil
}
