package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-screen/internal/skills"
)

func TestAssembleProfile_EndToEnd(t *testing.T) {
	profile, err := AssembleProfile(sampleResume, skills.Default())
	require.NoError(t, err)

	assert.Equal(t, []string{"Python", "AWS", "SQL"}, profile.Skills)
	assert.Equal(t, 5, profile.ExperienceYears)

	require.Len(t, profile.Education, 1)
	assert.Equal(t, "Bachelor of Science", profile.Education[0].Degree)
	assert.Equal(t, "MIT", profile.Education[0].Institution)
	assert.Equal(t, 2015, profile.Education[0].Year)

	require.Len(t, profile.WorkHistory, 2)
	assert.Equal(t, "Google", profile.WorkHistory[0].Company)
	assert.Equal(t, "Senior Developer", profile.WorkHistory[0].Role)
}

func TestAssembleProfile_Deterministic(t *testing.T) {
	vocab := skills.Default()
	first, err := AssembleProfile(sampleResume, vocab)
	require.NoError(t, err)
	second, err := AssembleProfile(sampleResume, vocab)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAssembleProfile_EmptyText(t *testing.T) {
	profile, err := AssembleProfile("", skills.Default())
	require.NoError(t, err)

	assert.Empty(t, profile.Skills)
	assert.Zero(t, profile.ExperienceYears)
	assert.Empty(t, profile.Education)
	assert.Empty(t, profile.WorkHistory)
}

func TestAssembleProfile_InvalidUTF8(t *testing.T) {
	_, err := AssembleProfile(string([]byte{0xff, 0xfe}), skills.Default())

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}
