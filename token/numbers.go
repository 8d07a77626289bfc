package token

func asciiDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func asciiLetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func asciiAlnum(c rune) bool {
	return asciiLetter(c) || asciiDigit(c)
}

func isSpace(c rune) bool {
	switch c {
	case ' ', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}

func numberStart(c rune) bool {
	return asciiDigit(c) || c == '.' || c == '-'
}
