// Package payload renders the dash runs written on the wire.
package payload

import "bytes"

// Width is the number of distinct dash run lengths a sender cycles through.
const Width = 8

// Build renders the payload for the n-th packet: a run of dashes whose
// length follows the counter, terminated by CRLF. The run length cycles
// through 1..Width and is never zero.
func Build(n uint64) []byte {
	dashes := 1 + int(n%Width)
	return append(bytes.Repeat([]byte{'-'}, dashes), "\r\n"...)
}
