package ebmldecode

import "fmt"

// VIntLength returns the total length, in bytes, of the VINT whose
// first byte is firstByte: 1 plus the count of leading zero bits, per
// EBML's big-endian length-marker encoding (RFC 8794). A zero first
// byte carries no marker bit at all and is malformed.
func VIntLength(firstByte byte) (int, error) {
	if firstByte == 0 {
		return 0, fmt.Errorf("ebmldecode: malformed VINT: leading byte is 0")
	}
	length := 1
	mask := byte(0x80)
	for firstByte&mask == 0 {
		length++
		mask >>= 1
	}
	return length, nil
}

// StripMarker clears the highest set bit of firstByte — the VINT
// length marker — leaving only the value bits that byte contributes.
func StripMarker(firstByte byte) byte {
	mask := byte(0x80)
	for firstByte&mask == 0 {
		mask >>= 1
	}
	return firstByte &^ mask
}
