package base64

import "github.com/ericlagergren/payload"

// StdPadding is the padding character.
const StdPadding = '='

// alphabet maps 6-bit values to symbols.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	"+/"

// The decode table only covers ['+', 'z']. Every symbol in the
// alphabet, and the padding character, is inside that range.
const (
	tableLo = '+'
	tableHi = 'z'
)

type symbolKind uint8

const (
	symInvalid symbolKind = iota
	symPad
	symValue
)

// symbol is a decode table entry.
type symbol struct {
	kind symbolKind
	val  byte // set iff kind == symValue
}

var decodeTable = buildDecodeTable()

func buildDecodeTable() (t [tableHi - tableLo + 1]symbol) {
	for i := 0; i < len(alphabet); i++ {
		t[alphabet[i]-tableLo] = symbol{kind: symValue, val: byte(i)}
	}
	t[StdPadding-tableLo] = symbol{kind: symPad}
	return t
}

// lookup returns the decode table entry for c.
//
// c must be in [tableLo, tableHi].
func lookup(c byte) symbol {
	return decodeTable[c-tableLo]
}

// StdEncoding is the standard Base64 encoding.
//
// It uses the following table:
//
//	ABCDEFGHIJKLMNOPQRSTUVWXYZ
//	abcdefghijklmnopqrstuvwxyz
//	0123456789
//	+/
var StdEncoding = &Encoding{}

// Encoding is a particular Base64 encoding.
//
// Encodings are immutable and safe for concurrent use.
//
// See the package docs for how decoding treats whitespace, NUL
// and padding.
type Encoding struct {
	strict bool
}

// Strict returns an identical Encoding that operates in "strict"
// mode.
//
// In strict mode, decoding additionally fails with
// ErrBadPadding when
//
//   - the final group ends without the padding it needs,
//   - the final group has non-zero padding bits (see section
//     3.5 of RFC 4648), or
//   - the padding is shorter than the group requires.
//
// and with ErrBadCharacter when anything but whitespace follows
// the padding.
//
// Encoding is unaffected.
func (e Encoding) Strict() *Encoding {
	e.strict = true
	return &e
}

// IsStrict reports whether e operates in strict mode.
func (e *Encoding) IsStrict() bool {
	return e.strict
}

// EncodedLen returns the size in bytes of the Base64 encoding
// of n source bytes.
func (e *Encoding) EncodedLen(n int) int {
	return (n + 2) / 3 * 4
}

// Encode encodes src into dst and returns EncodedLen(len(src)).
//
// If dst is nil Encode only returns the length, so it can be
// called once to size dst and again to fill it. Otherwise dst
// must have room for EncodedLen(len(src)) bytes.
func (e *Encoding) Encode(dst, src []byte) int {
	n := e.EncodedLen(len(src))
	if dst == nil {
		return n
	}
	if len(dst) < n {
		panic("base64: dst too short")
	}

	for len(src) >= 3 {
		v := uint(src[0])<<16 | uint(src[1])<<8 | uint(src[2])
		dst[0] = alphabet[v>>18&0x3f]
		dst[1] = alphabet[v>>12&0x3f]
		dst[2] = alphabet[v>>6&0x3f]
		dst[3] = alphabet[v&0x3f]
		src = src[3:]
		dst = dst[4:]
	}

	switch len(src) {
	case 2:
		v := uint(src[0])<<16 | uint(src[1])<<8
		dst[0] = alphabet[v>>18&0x3f]
		dst[1] = alphabet[v>>12&0x3f]
		dst[2] = alphabet[v>>6&0x3f]
		dst[3] = StdPadding
	case 1:
		v := uint(src[0]) << 16
		dst[0] = alphabet[v>>18&0x3f]
		dst[1] = alphabet[v>>12&0x3f]
		dst[2] = StdPadding
		dst[3] = StdPadding
	}
	return n
}

// EncodeToString encodes src.
func (e *Encoding) EncodeToString(src []byte) string {
	dst := make([]byte, e.EncodedLen(len(src)))
	e.Encode(dst, src)
	return string(dst)
}

// AppendEncode appends the encoding of src to dst and returns
// the extended slice.
func (e *Encoding) AppendEncode(dst, src []byte) []byte {
	n := e.EncodedLen(len(src))
	if cap(dst)-len(dst) < n {
		tmp := make([]byte, len(dst), len(dst)+n)
		copy(tmp, dst)
		dst = tmp
	}
	e.Encode(dst[len(dst):len(dst)+n], src)
	return dst[:len(dst)+n]
}

// Encode encodes src into dst using StdEncoding.
//
// See Encoding.Encode.
func Encode(dst, src []byte) int {
	return StdEncoding.Encode(dst, src)
}

// Decode decodes src using StdEncoding and returns a buffer
// that owns the result.
//
// See Encoding.DecodeBuffer.
func Decode(src []byte) (*payload.Buffer, error) {
	return StdEncoding.DecodeBuffer(src)
}
