// Package i18n selects the translation record matching a requested
// language, with the fallback chain the mobile clients rely on.
package i18n

// Supported language codes, mirroring the Language enum in the database.
const (
	Hindi     = "hi"
	English   = "en"
	Kannada   = "kn"
	Malayalam = "ml"
	Tamil     = "ta"
)

var supported = map[string]bool{
	Hindi:     true,
	English:   true,
	Kannada:   true,
	Malayalam: true,
	Tamil:     true,
}

// Supported reports whether code is a language the catalog carries.
func Supported(code string) bool {
	return supported[code]
}

// Entry is a per-language record, e.g. a destination or event translation.
type Entry interface {
	Locale() string
}

// Pick returns the entry whose language matches lang. If none matches, the
// first entry is returned; an empty list yields the zero value, and callers
// render a placeholder for the missing text.
func Pick[E Entry](entries []E, lang string) E {
	for _, entry := range entries {
		if entry.Locale() == lang {
			return entry
		}
	}
	if len(entries) > 0 {
		return entries[0]
	}
	var zero E
	return zero
}
