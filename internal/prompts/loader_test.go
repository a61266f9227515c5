package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_CopywriterPrompt(t *testing.T) {
	prompt, err := Get("script.json", "copywriter")
	require.NoError(t, err)
	assert.Contains(t, prompt, "HEADLINE:")
	assert.Contains(t, prompt, "CTA:")
	assert.Contains(t, prompt, "{{.ProductName}}")
}

func TestGet_MissingKey(t *testing.T) {
	_, err := Get("script.json", "does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist")
}

func TestGet_MissingFile(t *testing.T) {
	_, err := Get("nope.json", "copywriter")
	require.Error(t, err)
}

func TestFormat(t *testing.T) {
	out := Format("Product {{.ProductName}} sentiment {{.Sentiment}}", map[string]string{
		"ProductName": "Widget",
		"Sentiment":   "0.4",
	})
	assert.Equal(t, "Product Widget sentiment 0.4", out)
}

func TestFormat_UnknownPlaceholderLeftIntact(t *testing.T) {
	out := Format("{{.Missing}}", map[string]string{"Other": "x"})
	assert.Equal(t, "{{.Missing}}", out)
}
