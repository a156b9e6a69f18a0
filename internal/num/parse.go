package num

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// skipSign returns the index of the first byte after an optional leading sign.
func skipSign(b []byte) int {
	if len(b) > 0 && (b[0] == '+' || b[0] == '-') {
		return 1
	}
	return 0
}

// skipDigits returns the index of the first non-digit at or after i.
func skipDigits(b []byte, i int) int {
	for i < len(b) && isDigit(b[i]) {
		i++
	}
	return i
}
