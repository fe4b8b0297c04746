// Package base64 implements the base64 encoding used to embed
// binary payloads (images, fonts) inside text-based resource
// formats.
//
// It uses the standard RFC 4648 alphabet with '=' padding.
//
// Comparison to encoding/base64
//
// Decoding is lenient about the text surrounding
// the payload:
//
//   - Every byte <= ' ' (space, tab, newline, other control
//     characters) is skipped, wherever it appears.
//   - A NUL byte ends the input, so C-style strings can be
//     passed without trimming.
//   - Decoding stops at the first padding character. Anything
//     after it is ignored.
//   - A final group of 2 or 3 symbols with no padding decodes
//     to 1 or 2 bytes.
//
// Encoding.Strict returns an Encoding that rejects the last two.
//
// Decoding is a two-pass operation. The first pass validates
// the input and measures the decoded length without writing
// anything; the second pass writes exactly that many bytes. Both
// passes run the same code, so they can never disagree:
//
//	n, err := base64.StdEncoding.DecodedLen(src)
//	if err != nil {
//	    return err
//	}
//	dst := make([]byte, n)
//	base64.StdEncoding.Decode(dst, src)
//
// Decode and DecodeBuffer perform both passes and return a
// payload.Buffer that owns the result.
package base64
