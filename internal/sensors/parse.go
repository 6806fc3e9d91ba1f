package sensors

// ParseLeadingInt parses an integer the way C's atoi does: leading whitespace
// is skipped, an optional sign is accepted and parsing stops at the first
// non-digit. ok is false if no digit was found, the value is 0 in that case.
func ParseLeadingInt(data []byte) (value int, ok bool) {
	i := 0
	for i < len(data) && isSpace(data[i]) {
		i++
	}

	negative := false
	if i < len(data) && (data[i] == '+' || data[i] == '-') {
		negative = data[i] == '-'
		i++
	}

	for ; i < len(data) && data[i] >= '0' && data[i] <= '9'; i++ {
		value = value*10 + int(data[i]-'0')
		ok = true
	}

	if negative {
		value = -value
	}
	return value, ok
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
