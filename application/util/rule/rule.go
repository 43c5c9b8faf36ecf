package rule

func IsAlpha(r rune) bool { return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') }
func IsDigit(r rune) bool { return '0' <= r && r <= '9' }
func IsHex(r rune) bool {
	return IsDigit(r) || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}

// IsDotDecimal reports whether s is one or more runs of DIGIT joined by '.',
// with at least one '.'. ("1.1", "2.0", "1.0.3")
func IsDotDecimal(s string) bool {
	dots := 0
	digits := 0
	for _, c := range s {
		switch {
		case IsDigit(c):
			digits++
		case c == '.':
			if digits == 0 {
				return false
			}
			dots++
			digits = 0
		default:
			return false
		}
	}

	return dots > 0 && digits > 0
}
