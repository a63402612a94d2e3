package parser

import "strings"

// DateFormat classifies a number format by how its values should be read.
type DateFormat int

const (
	// NotDate formats show plain numbers.
	NotDate DateFormat = iota
	// DateTimeFormat formats show a calendar date, optionally with a time.
	DateTimeFormat
	// ClockFormat formats show only a time of day or a duration.
	ClockFormat
)

// ClassifyBuiltinNumFmt classifies a built-in number format ID.
// IDs 27-36 and 50-58 are the East Asian locale date formats.
func ClassifyBuiltinNumFmt(id int) DateFormat {
	switch {
	case id >= 14 && id <= 17, id == 22:
		return DateTimeFormat
	case id >= 18 && id <= 21, id >= 45 && id <= 47:
		return ClockFormat
	case id >= 32 && id <= 35:
		return ClockFormat
	case id >= 27 && id <= 36, id >= 50 && id <= 58:
		return DateTimeFormat
	}
	return NotDate
}

// ClassifyNumFmtCode classifies a custom number format code such as
// "yyyy-mm-dd" or "[h]:mm". Only the first section (positive numbers) is
// inspected; quoted literals, escaped characters and bracketed colour or
// condition blocks are ignored.
func ClassifyNumFmtCode(code string) DateFormat {
	if code == "" || strings.EqualFold(code, "general") {
		return NotDate
	}

	var hasDate, hasClock, hasMonth bool
	inQuote := false
	for i := 0; i < len(code); i++ {
		ch := code[i]
		if inQuote {
			if ch == '"' {
				inQuote = false
			}
			continue
		}
		switch ch {
		case '"':
			inQuote = true
		case '\\', '_', '*':
			i++
		case ';':
			i = len(code)
		case '[':
			end := strings.IndexByte(code[i:], ']')
			if end < 0 {
				i = len(code)
				continue
			}
			block := strings.ToLower(code[i+1 : i+end])
			if isElapsedBlock(block) {
				hasClock = true
			}
			i += end
		case 'y', 'Y', 'd', 'D':
			hasDate = true
		case 'm', 'M':
			hasMonth = true
		case 'h', 'H', 's', 'S':
			hasClock = true
		}
	}

	switch {
	case hasDate:
		return DateTimeFormat
	case hasClock:
		return ClockFormat
	case hasMonth:
		return DateTimeFormat
	}
	return NotDate
}

func isElapsedBlock(block string) bool {
	if block == "" {
		return false
	}
	for _, r := range block {
		if r != 'h' && r != 'm' && r != 's' {
			return false
		}
	}
	return true
}
