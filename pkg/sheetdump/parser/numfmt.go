package parser

import "strings"

// builtinDateFormats lists the built-in number format ids that display dates or times.
var builtinDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true, 21: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true, 32: true, 33: true, 34: true, 35: true, 36: true,
	45: true, 46: true, 47: true,
	50: true, 51: true, 52: true, 53: true, 54: true, 55: true, 56: true, 57: true, 58: true,
}

// isDateFormat reports whether a number format displays a date or time.
// numFmtID is consulted first; code is the format string, if any.
func isDateFormat(numFmtID int, code string) bool {
	if builtinDateFormats[numFmtID] {
		return true
	}
	return isDateFormatCode(code)
}

// isDateFormatCode inspects a format code, ignoring quoted literals,
// escaped characters and bracketed sections such as colors and locales.
func isDateFormatCode(code string) bool {
	code = strings.ToLower(code)
	if code == "" || code == "general" || code == "@" {
		return false
	}
	// Only the first section applies to positive numbers.
	if idx := strings.Index(code, ";"); idx >= 0 {
		code = code[:idx]
	}

	inQuote := false
	for i := 0; i < len(code); i++ {
		ch := code[i]
		switch {
		case inQuote:
			if ch == '"' {
				inQuote = false
			}
		case ch == '"':
			inQuote = true
		case ch == '[':
			end := strings.IndexByte(code[i:], ']')
			if end < 0 {
				return false
			}
			// [h], [mm] and [ss] are elapsed time
			if isElapsedToken(code[i+1 : i+end]) {
				return true
			}
			i += end
		case ch == '\\' || ch == '_' || ch == '*':
			i++
		case ch == 'y' || ch == 'd' || ch == 'h' || ch == 's' || ch == 'm':
			return true
		}
	}
	return false
}

func isElapsedToken(tok string) bool {
	if tok == "" {
		return false
	}
	return strings.Trim(tok, string(tok[0])) == "" && strings.ContainsRune("hms", rune(tok[0]))
}
