package form

import (
	"strings"
	"unicode"
)

// DomID converts "Model.field_name" into "ModelFieldName".
func DomID(fieldName string) string {
	var builder strings.Builder
	for _, segment := range splitField(fieldName) {
		builder.WriteString(camelize(segment))
	}
	return builder.String()
}

// InputName converts "Model.field" into "data[Model][field]".
func InputName(fieldName string) string {
	segments := splitField(fieldName)
	if len(segments) == 0 {
		return ""
	}
	var builder strings.Builder
	builder.WriteString("data")
	for _, segment := range segments {
		builder.WriteByte('[')
		builder.WriteString(segment)
		builder.WriteByte(']')
	}
	return builder.String()
}

// Humanize derives a label from the last segment of a field name, dropping a
// trailing "_id".
func Humanize(fieldName string) string {
	segments := splitField(fieldName)
	if len(segments) == 0 {
		return ""
	}
	last := strings.TrimSuffix(segments[len(segments)-1], "_id")
	words := strings.FieldsFunc(last, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	})
	for i, word := range words {
		words[i] = upperFirst(word)
	}
	return strings.Join(words, " ")
}

func splitField(fieldName string) []string {
	fieldName = strings.ReplaceAll(strings.TrimSpace(fieldName), "/", ".")
	parts := strings.Split(fieldName, ".")
	out := parts[:0]
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func camelize(segment string) string {
	words := strings.FieldsFunc(segment, func(r rune) bool {
		return r == '_' || r == '-'
	})
	var builder strings.Builder
	for _, word := range words {
		builder.WriteString(upperFirst(word))
	}
	return builder.String()
}

func upperFirst(word string) string {
	if word == "" {
		return ""
	}
	runes := []rune(word)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
