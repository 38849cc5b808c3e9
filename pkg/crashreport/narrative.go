package crashreport

import (
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// CleanNarrative strips the <cr> markers and HTML-ish tags the OCR layer
// leaves in narrative text and normalizes all whitespace runs to single
// spaces.
func CleanNarrative(narrative string) string {
	if narrative == "" {
		return ""
	}
	cleaned := strings.ReplaceAll(narrative, "<cr>", " ")
	cleaned = tagPattern.ReplaceAllString(cleaned, " ")
	return strings.Join(strings.Fields(cleaned), " ")
}
