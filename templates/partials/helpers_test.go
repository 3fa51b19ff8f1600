package partials

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		cents    int64
		expected string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{4500, "$45.00"},
		{123456, "$1,234.56"},
		{2850000, "$28,500.00"},
		{-1999, "-$19.99"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatMoney(tt.cents))
	}
}

func TestFormatDays(t *testing.T) {
	assert.Equal(t, "0 days", FormatDays(0))
	assert.Equal(t, "1 day", FormatDays(1))
	assert.Equal(t, "14 days", FormatDays(14))
}

func TestDateField(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, DateField("from", "Pick-up", "2024-01-01", "2023-12-31").Render(&buf))

	html := buf.String()
	assert.Contains(t, html, `<label for="from">Pick-up</label>`)
	assert.Contains(t, html, `type="date"`)
	assert.Contains(t, html, `value="2024-01-01"`)
	assert.Contains(t, html, `min="2023-12-31"`)
}
