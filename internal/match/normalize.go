package match

import "strings"

// NormalizeIdent folds an identifier for fuzzy comparison: ASCII letters are
// lowered and the separators '_' and '-' are dropped, so "LEFT_DRIVE",
// "left-drive" and "LeftDrive" all normalize to "leftdrive".
func NormalizeIdent(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch {
		case isSeparator(c):
			continue
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c + 'a' - 'A')
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

func isSeparator(c byte) bool {
	return c == '_' || c == '-'
}
