package base64

import (
	"io"

	"github.com/ericlagergren/payload"
)

// DecodedLen validates src and returns the exact number of bytes
// it decodes to.
//
// It does not write anything. If DecodedLen returns a nil error,
// Decode with a dst of at least that length is guaranteed to
// succeed with the same result.
func (e *Encoding) DecodedLen(src []byte) (int, error) {
	return e.decode(nil, src, false)
}

// Decode decodes src into dst and returns the number of bytes
// written.
//
// dst must have room for DecodedLen(src) bytes. If it does not,
// Decode returns io.ErrShortBuffer along with the number of
// bytes written so far.
//
// If src is invalid Decode returns a *CorruptInputError. Any
// bytes written before the error was detected must be
// discarded.
func (e *Encoding) Decode(dst, src []byte) (int, error) {
	return e.decode(dst, src, true)
}

// DecodeBuffer decodes src into a newly allocated buffer of
// exactly the decoded length.
//
// src is validated before anything is allocated. On error the
// returned buffer is nil.
func (e *Encoding) DecodeBuffer(src []byte) (*payload.Buffer, error) {
	n, err := e.DecodedLen(src)
	if err != nil {
		return nil, err
	}
	buf := payload.NewBuffer(n)
	if _, err := e.Decode(buf.Bytes(), src); err != nil {
		// Unreachable: both passes run the same code.
		buf.Release()
		return nil, err
	}
	return buf, nil
}

// DecodeString decodes s.
func (e *Encoding) DecodeString(s string) ([]byte, error) {
	src := []byte(s)
	n, err := e.DecodedLen(src)
	if err != nil {
		return nil, err
	}
	dst := make([]byte, n)
	if _, err := e.Decode(dst, src); err != nil {
		return nil, err
	}
	return dst, nil
}

// decode runs the decoder over src.
//
// If commit is false nothing is written to dst and the result is
// the length Decode would produce. The control flow must not
// depend on commit except for the writes themselves.
func (e *Encoding) decode(dst, src []byte, commit bool) (n int, err error) {
	var (
		grp  [4]byte // 6-bit values of the current group
		nsym int     // number of symbols in grp
		i    int
	)
	for ; i < len(src); i++ {
		c := src[i]
		if c == 0 {
			// NUL terminates the input.
			break
		}
		if c <= ' ' {
			continue
		}
		if c < tableLo || c > tableHi {
			return n, corrupt(i, ErrBadCharacter)
		}
		switch s := lookup(c); s.kind {
		case symValue:
			grp[nsym] = s.val
			nsym++
			if nsym == len(grp) {
				if n, err = e.flush(dst, n, &grp, nsym, commit); err != nil {
					return n, err
				}
				nsym = 0
			}
		case symPad:
			if nsym < 2 {
				return n, corrupt(i, ErrBadPadding)
			}
			if e.strict {
				if err := checkBits(&grp, nsym, i); err != nil {
					return n, err
				}
				if err := checkTrailer(src, i+1, 3-nsym); err != nil {
					return n, err
				}
			}
			return e.flush(dst, n, &grp, nsym, commit)
		default:
			return n, corrupt(i, ErrBadCharacter)
		}
	}

	// End of input, either len(src) or a NUL at i.
	switch nsym {
	case 0:
		return n, nil
	case 1:
		// A single symbol has only 6 bits, not enough for a
		// byte.
		return n, corrupt(i, ErrBadPadding)
	}
	if e.strict {
		return n, corrupt(i, ErrBadPadding)
	}
	return e.flush(dst, n, &grp, nsym, commit)
}

// flush converts a group of nsym symbols into nsym-1 bytes,
// writing them to dst[n:] if commit is set, and returns the new
// output length.
func (e *Encoding) flush(dst []byte, n int, grp *[4]byte, nsym int, commit bool) (int, error) {
	m := nsym - 1
	if commit {
		if len(dst)-n < m {
			return n, io.ErrShortBuffer
		}
		b := [3]byte{
			grp[0]<<2 | grp[1]>>4,
			grp[1]<<4 | grp[2]>>2,
			grp[2]<<6 | grp[3],
		}
		copy(dst[n:], b[:m])
	}
	*grp = [4]byte{}
	return n + m, nil
}

// checkBits reports an error if the bits of a padded group that
// do not make it into the output are non-zero.
//
// off is the offset of the first padding character.
func checkBits(grp *[4]byte, nsym, off int) error {
	var extra byte
	switch nsym {
	case 2:
		extra = grp[1] & 0x0f
	case 3:
		extra = grp[2] & 0x03
	}
	if extra != 0 {
		return corrupt(off, ErrBadPadding)
	}
	return nil
}

// checkTrailer checks that src[i:] consists of exactly npad
// padding characters followed by nothing but whitespace, up to
// the end of src or a NUL.
func checkTrailer(src []byte, i, npad int) error {
	for ; i < len(src); i++ {
		c := src[i]
		switch {
		case c == 0:
			return checkPadCount(npad, i)
		case c <= ' ':
			// Whitespace.
		case c == StdPadding && npad > 0:
			npad--
		default:
			return corrupt(i, ErrBadCharacter)
		}
	}
	return checkPadCount(npad, i)
}

func checkPadCount(npad, off int) error {
	if npad != 0 {
		return corrupt(off, ErrBadPadding)
	}
	return nil
}
