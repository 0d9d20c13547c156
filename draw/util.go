package draw

// atoi parses a decimal integer from a string, ignoring leading/trailing
// whitespace. Used to parse ctl-record fields (§6).
func atoi(s string) int {
	s = trimSpace(s)
	n := 0
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	for _, c := range s {
		if c >= '0' && c <= '9' {
			n = n*10 + int(c-'0')
		} else {
			break
		}
	}
	if neg {
		return -n
	}
	return n
}

// trimSpace trims leading and trailing spaces and tabs.
func trimSpace(s string) string {
	start := 0
	for start < len(s) && (s[start] == ' ' || s[start] == '\t') {
		start++
	}
	end := len(s)
	for end > start && (s[end-1] == ' ' || s[end-1] == '\t') {
		end--
	}
	return s[start:end]
}

// unitsPerLine returns the number of units of bitsperunit bits needed
// to cover pixels from r.Min.X to r.Max.X at depth d.
func unitsPerLine(r Rectangle, d int, bitsperunit int) int {
	if d <= 0 || d > 32 {
		return 0
	}
	return (r.Max.X*d - (r.Min.X * d & -bitsperunit) + bitsperunit - 1) / bitsperunit
}

// wordsPerLine returns 32-bit words per scan line.
func wordsPerLine(r Rectangle, d int) int {
	return unitsPerLine(r, d, 32)
}

// bytesPerLine returns bytes per scan line at the given channel depth,
// counting from the byte boundary at or below r.Min.X (so a sub-byte
// depth with an unaligned r.Min.X can need one byte more than the
// pixel count alone), used by load/unload (§4.3).
func bytesPerLine(r Rectangle, d int) int {
	return unitsPerLine(r, d, 8)
}
