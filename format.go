package bitset

import "fmt"

// Reader is the read-only part of the contract consumed by formatting.
// Every backend except Sparse satisfies it with a finite length; all
// provided backends report lengths that are multiples of 8, which the
// chunked renderers below rely on.
type Reader interface {
	Len() int
	Test(bit int) bool
}

const (
	hexUpper = "0123456789ABCDEF"
	hexLower = "0123456789abcdef"
)

// checkBounded rejects unbounded readers, which have no finite text
// representation.
func checkBounded(r Reader) int {
	n := r.Len()
	if n == Unbounded {
		panic(fmt.Errorf("%w: cannot format", ErrUnbounded))
	}
	return n
}

// AppendBinary appends the bits of r as '0'/'1' digits in 8-bit chunks,
// low-index chunk first with the first-addressed bit leftmost within its
// chunk. Chunks after the first are preceded by sep.
func AppendBinary(dst []byte, r Reader, sep byte) []byte {
	n := checkBounded(r)
	for i := 0; i < n; i += 8 {
		if i > 0 {
			dst = append(dst, sep)
		}
		for j := 0; j < 8; j++ {
			if r.Test(i + j) {
				dst = append(dst, '1')
			} else {
				dst = append(dst, '0')
			}
		}
	}
	return dst
}

// BinaryString renders r as binary digit chunks separated by '_'.
func BinaryString(r Reader) string {
	return string(AppendBinary(nil, r, '_'))
}

// AppendHex appends the bits of r as two hex digits per 8-bit chunk,
// low-index chunk first. Within a chunk the first-addressed bit is the
// high bit of the rendered value.
func AppendHex(dst []byte, r Reader, upper bool) []byte {
	alphabet := hexLower
	if upper {
		alphabet = hexUpper
	}
	n := checkBounded(r)
	for i := 0; i < n; i += 8 {
		var chunk byte
		for j := 0; j < 8; j++ {
			if r.Test(i + j) {
				chunk |= 1 << (7 - j)
			}
		}
		dst = append(dst, alphabet[chunk>>4], alphabet[chunk&0xf])
	}
	return dst
}

// HexString renders r as uppercase hex digits.
func HexString(r Reader) string {
	return string(AppendHex(nil, r, true))
}

// HexStringLower renders r as lowercase hex digits.
func HexStringLower(r Reader) string {
	return string(AppendHex(nil, r, false))
}

// Fmt adapts a Reader to package fmt. The verbs mirror the string
// helpers: %s and %v render binary, %x and %X hex, and %q quoted
// uppercase hex.
type Fmt struct {
	r Reader
}

// Format returns a fmt adapter for r:
//
//	fmt.Printf("%s", bitset.Format(bits))  // 00100100
//	fmt.Printf("%X", bitset.Format(bits))  // 24
func Format(r Reader) Fmt {
	return Fmt{r: r}
}

// Format implements fmt.Formatter.
func (f Fmt) Format(state fmt.State, verb rune) {
	switch verb {
	case 'x':
		state.Write(AppendHex(nil, f.r, false))
	case 'X':
		state.Write(AppendHex(nil, f.r, true))
	case 'q':
		buf := append([]byte{'"'}, AppendHex(nil, f.r, true)...)
		state.Write(append(buf, '"'))
	default:
		state.Write(AppendBinary(nil, f.r, '_'))
	}
}
