package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderWelcome(t *testing.T) {
	data := ToMap(EmailData{
		UserID:      "8c0f3b1e-5a7d-4d1c-9a0b-2f4e6c8d0a1b",
		Name:        "Alice",
		Email:       "alice@example.com",
		AppName:     "Identity",
		CompanyName: "Acme",
	})

	subject, text, html, err := Render(Welcome, data)
	require.NoError(t, err)

	assert.Equal(t, "Welcome to Identity, Alice", subject)
	assert.Contains(t, text, "8c0f3b1e-5a7d-4d1c-9a0b-2f4e6c8d0a1b")
	assert.Contains(t, text, "our support team")
	assert.Contains(t, html, "alice@example.com")
	assert.Contains(t, html, "Acme")
}

func TestRenderEscapesHTML(t *testing.T) {
	_, _, html, err := Render(Welcome, map[string]any{"Name": "<b>x</b>"})
	require.NoError(t, err)
	assert.False(t, strings.Contains(html, "<b>x</b>"))
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, _, _, err := Render("missing", nil)
	assert.Error(t, err)
}
