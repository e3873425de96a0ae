package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubTranslation struct {
	lang string
	name string
}

func (s stubTranslation) Locale() string { return s.lang }

var _ Entry = stubTranslation{}

func TestSupported(t *testing.T) {
	for _, code := range []string{Hindi, English, Kannada, Malayalam, Tamil} {
		assert.True(t, Supported(code), code)
	}
	for _, code := range []string{"", "fr", "EN", "hindi"} {
		assert.False(t, Supported(code), code)
	}
}

func TestPick(t *testing.T) {
	entries := []stubTranslation{
		{lang: Hindi, name: "मंदिर"},
		{lang: English, name: "Temple"},
		{lang: Tamil, name: "கோயில்"},
	}

	t.Run("exact match wins", func(t *testing.T) {
		got := Pick(entries, Tamil)
		assert.Equal(t, "கோயில்", got.name)
	})

	t.Run("missing language falls back to the first entry", func(t *testing.T) {
		got := Pick(entries, Kannada)
		assert.Equal(t, "मंदिर", got.name)
	})

	t.Run("empty list yields the zero value", func(t *testing.T) {
		got := Pick([]stubTranslation{}, English)
		assert.Equal(t, stubTranslation{}, got)
	})
}
