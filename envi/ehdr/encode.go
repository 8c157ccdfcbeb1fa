package ehdr

import (
	"strings"
)

var tidyReplacer = strings.NewReplacer(
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
	"{", "(",
	"}", ")",
)

// Tidy makes s safe to write as a single header value: line breaks and braces,
// which would end or open a value early, are replaced and whitespace runs are
// collapsed. With wrapInBraces the result is enclosed in "{...}".
func Tidy(s string, wrapInBraces bool) string {
	tidied := strings.Join(strings.Fields(tidyReplacer.Replace(s)), " ")
	if wrapInBraces {
		return "{" + tidied + "}"
	}
	return tidied
}

// Dump renders every entry as a "key = value" line, in the order keys first
// appeared, using each key's original case.
func (r *Store) Dump() string {
	builder := strings.Builder{}
	for _, entry := range r.Entries() {
		builder.WriteString(Tidy(entry.Key, false))
		builder.WriteString(" " + Delimiter + " ")
		builder.WriteString(tidyValue(entry.Value))
		builder.WriteString("\n")
	}
	return builder.String()
}

// tidyValue keeps a single outer brace pair, which is how list values are written.
func tidyValue(value string) string {
	trimmed := strings.TrimSpace(value)
	if strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}") {
		return Tidy(trimmed[1:len(trimmed)-1], true)
	}
	return Tidy(trimmed, false)
}
