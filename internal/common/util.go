package common

// WipeByteArray zeroes the buffer in place. Password bytes read from the
// terminal should be wiped as soon as they have been sent.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
