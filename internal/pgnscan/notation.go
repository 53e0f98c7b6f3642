package pgnscan

import "strings"

// decomposeNotation splits a SAN-shaped move token into its syntactic
// pieces, the same fig/col/row/disc/promotion/drop decomposition the
// tree builder's fallback resolver needs. It never touches a Board:
// destination squares, disambiguation text and promotion letters are
// read straight off the token text, exactly as a human reads SAN.
func decomposeNotation(text string) (fig string, col, row byte, disc string, promotion string, drop bool) {
	switch text {
	case "O-O", "0-0", "O-O-O", "0-0-0", "--", "Z0":
		return "", 0, 0, "", "", false
	}

	trimmed := strings.TrimRight(text, "+#!?")
	trimmed = strings.TrimSuffix(trimmed, "e.p.")

	if idx := strings.IndexByte(trimmed, '@'); idx >= 0 {
		if idx > 0 {
			fig = trimmed[:idx]
		}
		sq := trimmed[idx+1:]
		if len(sq) == 2 {
			col, row = sq[0], sq[1]
		}
		return fig, col, row, "", "", true
	}

	rest := trimmed
	if len(rest) > 0 && rest[0] >= 'A' && rest[0] <= 'Z' {
		fig = string(rest[0])
		rest = rest[1:]
	}
	if idx := strings.IndexByte(rest, '='); idx >= 0 {
		if idx+1 < len(rest) {
			promotion = rest[idx+1:]
		}
		rest = rest[:idx]
	}
	rest = strings.ReplaceAll(rest, "x", "")

	if len(rest) < 2 {
		return fig, 0, 0, "", promotion, false
	}
	dest := rest[len(rest)-2:]
	col, row = dest[0], dest[1]
	disc = rest[:len(rest)-2]
	return fig, col, row, disc, promotion, false
}
