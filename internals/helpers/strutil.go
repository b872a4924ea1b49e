package helper

import "strings"

// ConvertSnakeToCamel: "question_format" → "QuestionFormat". Dipakai
// endpoint referential untuk menerjemahkan segmen path ke nama resource.
func ConvertSnakeToCamel(text string) string {
	parts := strings.Split(text, "_")
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}
