package wideint

// Literal length caps. A hex digit carries 4 bits and an octal digit 3; a
// decimal digit carries log10(2) ~= 0.30103 bits, kept as a ratio so the cap
// can be computed without floats.
const (
	hexDigitBits = 4
	octDigitBits = 3

	log2Num = 30103
	log2Den = 100000
)
