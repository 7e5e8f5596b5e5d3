package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArrived(t *testing.T) {
	partial := `{"summary": "...", "careerTeamFeedback": {"overallImpression": "..."},
		"skillsToDevelop": ["AWS"], "phases": [{"title": "Found`

	seen := Arrived(partial)
	assert.True(t, seen["careerTeamFeedback"])
	assert.True(t, seen["skillsToDevelop"])
	assert.True(t, seen["phases"])
	assert.False(t, seen["recommendedCourses"])
	assert.False(t, seen["certifications"])
	assert.False(t, seen["companyProspects"])
}

func TestArrivedRequiresQuotedKey(t *testing.T) {
	// Bare mentions in narrative text do not count; the probe looks for the
	// quoted key, so only a quoted occurrence can false-positive.
	seen := Arrived(`working on phases and certifications now`)
	assert.Empty(t, seen)

	seen = Arrived(`the "phases" section`)
	assert.True(t, seen["phases"])
}

func TestArrivedStateless(t *testing.T) {
	assert.True(t, Arrived(`"phases"`)["phases"])
	assert.False(t, Arrived(``)["phases"])
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, Percent(""))
	assert.Equal(t, 100/len(Sections), Percent(`"phases"`))

	full := ""
	for _, s := range Sections {
		full += `"` + s.Key + `": null,`
	}
	assert.Equal(t, 100, Percent(full))
}
