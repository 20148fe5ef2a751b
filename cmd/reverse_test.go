package cmd

import (
	"testing"

	"github.com/picrasm/picrasm/pkg/isa"
	"github.com/stretchr/testify/assert"
)

func TestMatchLocale(t *testing.T) {
	assert.Equal(t, isa.Slovenian, matchLocale([]string{"sl-SI"}))
	assert.Equal(t, isa.Slovenian, matchLocale([]string{"sl"}))
	assert.Equal(t, isa.English, matchLocale([]string{"en-US"}))

	// Anything that is neither English nor Slovenian falls back to English.
	assert.Equal(t, isa.English, matchLocale([]string{"de-DE"}))
	assert.Equal(t, isa.English, matchLocale(nil))
}
