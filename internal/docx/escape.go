package docx

import "strings"

// EscapeXML escapes text for use in XML character data and attribute values.
// Characters that XML 1.0 cannot represent are dropped.
func EscapeXML(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) + len(text)/8)

	for _, r := range text {
		switch {
		case r == '&':
			result.WriteString("&amp;")
		case r == '<':
			result.WriteString("&lt;")
		case r == '>':
			result.WriteString("&gt;")
		case r == '"':
			result.WriteString("&quot;")
		case r == '\'':
			result.WriteString("&apos;")
		case !isXMLChar(r):
			// dropped
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}

func isXMLChar(r rune) bool {
	switch {
	case r == '\t' || r == '\n' || r == '\r':
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	default:
		return false
	}
}
