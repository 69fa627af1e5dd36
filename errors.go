package seqbytes

import "fmt"

var (
	ErrUnexpectedEOF = fmt.Errorf("unexpected end of source")
	ErrInvalidWidth  = fmt.Errorf("byte length does not match type width")
	ErrNegativeCount = fmt.Errorf("negative byte count")
)
