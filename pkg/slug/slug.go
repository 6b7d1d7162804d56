package slug

import (
	"regexp"
	"strings"
)

var slugRegexp = regexp.MustCompile(`[^a-z0-9]+`)

// Generate creates a URL-friendly slug from the given title. Accented Latin
// characters common in Portuguese titles are transliterated to ASCII.
//
// Examples:
//   - "Introdução à Programação" → "introducao-a-programacao"
//   - "Hello   World!" → "hello-world"
func Generate(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))

	replacer := strings.NewReplacer(
		"á", "a", "à", "a", "â", "a", "ã", "a",
		"é", "e", "ê", "e",
		"í", "i",
		"ó", "o", "ô", "o", "õ", "o",
		"ú", "u", "ü", "u",
		"ç", "c",
	)
	s = replacer.Replace(s)

	s = slugRegexp.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}

	return s
}
