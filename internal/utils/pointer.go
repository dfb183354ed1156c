package utils

import (
	"strconv"
	"strings"
)

// JSONPointerToPath renders an RFC 6901 pointer, as found in schema
// validation errors, in the dotted form used by parse errors:
// "/0/due_date" becomes "[0].due_date". A leading "#" is ignored.
func JSONPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(strings.TrimPrefix(ptr, "#"), "/")
	if ptr == "" {
		return ""
	}

	unescape := strings.NewReplacer("~1", "/", "~0", "~")
	var b strings.Builder
	for _, token := range strings.Split(ptr, "/") {
		token = unescape.Replace(token)
		switch {
		case token == "":
		case isIndex(token):
			b.WriteString("[" + token + "]")
		default:
			if b.Len() > 0 {
				b.WriteByte('.')
			}
			b.WriteString(token)
		}
	}
	return b.String()
}

func isIndex(token string) bool {
	n, err := strconv.Atoi(token)
	return err == nil && n >= 0 && strconv.Itoa(n) == token
}
