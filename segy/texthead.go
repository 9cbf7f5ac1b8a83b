package segy

import "strings"

// The 3200-byte textual header is 40 card images of 80 columns, usually
// EBCDIC-encoded. Headers written by some vendors are plain ASCII; those
// are detected by their leading 'C' card marker and passed through.

const (
	textCards   = 40
	cardColumns = 80
)

// decodeTextHeader renders the raw textual header as 40 newline-joined
// lines of 80 columns.
func decodeTextHeader(raw []byte) string {
	ascii := make([]byte, len(raw))
	if len(raw) > 0 && raw[0] == 'C' {
		copy(ascii, raw)
	} else {
		for i, b := range raw {
			ascii[i] = ebcdicToASCII(b)
		}
	}

	lines := make([]string, 0, textCards)
	for i := 0; i+cardColumns <= len(ascii); i += cardColumns {
		lines = append(lines, string(ascii[i:i+cardColumns]))
	}
	return strings.Join(lines, "\n")
}

// ebcdicToASCII maps one EBCDIC (code page 037) byte to its ASCII
// equivalent. Bytes outside the printable set map to a space.
func ebcdicToASCII(b byte) byte {
	switch {
	case b >= 0x81 && b <= 0x89:
		return 'a' + b - 0x81
	case b >= 0x91 && b <= 0x99:
		return 'j' + b - 0x91
	case b >= 0xA2 && b <= 0xA9:
		return 's' + b - 0xA2
	case b >= 0xC1 && b <= 0xC9:
		return 'A' + b - 0xC1
	case b >= 0xD1 && b <= 0xD9:
		return 'J' + b - 0xD1
	case b >= 0xE2 && b <= 0xE9:
		return 'S' + b - 0xE2
	case b >= 0xF0 && b <= 0xF9:
		return '0' + b - 0xF0
	}

	switch b {
	case 0x40:
		return ' '
	case 0x4B:
		return '.'
	case 0x4C:
		return '<'
	case 0x4D:
		return '('
	case 0x4E:
		return '+'
	case 0x4F:
		return '|'
	case 0x50:
		return '&'
	case 0x5A:
		return '!'
	case 0x5B:
		return '$'
	case 0x5C:
		return '*'
	case 0x5D:
		return ')'
	case 0x5E:
		return ';'
	case 0x60:
		return '-'
	case 0x61:
		return '/'
	case 0x6B:
		return ','
	case 0x6C:
		return '%'
	case 0x6D:
		return '_'
	case 0x6E:
		return '>'
	case 0x6F:
		return '?'
	case 0x7A:
		return ':'
	case 0x7B:
		return '#'
	case 0x7C:
		return '@'
	case 0x7D:
		return '\''
	case 0x7E:
		return '='
	case 0x7F:
		return '"'
	}
	return ' '
}
