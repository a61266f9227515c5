package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wellFormedResponse = `HEADLINE: Premium comfort, zero compromise
HOOK: You deserve better than average.
BODY:
- Feels premium from the first touch
- Battery that actually lasts
- Reviewers call it their favorite purchase
CTA: Grab yours before the next restock.`

func TestParseSections_WellFormed(t *testing.T) {
	out, err := ParseSections(wellFormedResponse)
	require.NoError(t, err)
	assert.Equal(t, "Premium comfort, zero compromise", out.Headline)
	assert.Equal(t, "You deserve better than average.", out.Hook)
	assert.Contains(t, out.Body, "Battery that actually lasts")
	assert.Equal(t, "Grab yours before the next restock.", out.CTA)
}

func TestParseSections_ToleratesFencesAndBold(t *testing.T) {
	response := "```\n**HEADLINE:** Shine brighter\nHOOK: A hook line.\nBODY: one bullet\nCTA: Buy now.\n```"

	out, err := ParseSections(response)
	require.NoError(t, err)
	assert.Equal(t, "Shine brighter", out.Headline)
	assert.Equal(t, "Buy now.", out.CTA)
}

func TestParseSections_LowercaseHeaders(t *testing.T) {
	response := "headline: a\nhook: b\nbody: c\ncta: d"

	out, err := ParseSections(response)
	require.NoError(t, err)
	assert.Equal(t, "a", out.Headline)
	assert.Equal(t, "d", out.CTA)
}

func TestParseSections_MissingSection(t *testing.T) {
	response := "HEADLINE: a\nHOOK: b\nBODY: c"

	_, err := ParseSections(response)
	require.Error(t, err)

	var genErr *GenerationError
	assert.ErrorAs(t, err, &genErr)
	assert.Contains(t, err.Error(), "CTA")
}

func TestParseSections_EmptyResponse(t *testing.T) {
	_, err := ParseSections("")
	require.Error(t, err)

	var genErr *GenerationError
	assert.ErrorAs(t, err, &genErr)
}

func TestParseSections_MultilineBodyAccumulates(t *testing.T) {
	out, err := ParseSections(wellFormedResponse)
	require.NoError(t, err)
	assert.Contains(t, out.Body, "Feels premium")
	assert.Contains(t, out.Body, "favorite purchase")
}
