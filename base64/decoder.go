package base64

import (
	"errors"

	"go.uber.org/zap"

	"github.com/ericlagergren/payload"
)

// Decoder decodes a Base64 payload into a buffer that it owns.
//
// The zero value is not usable; use NewDecoder. A Decoder must
// not be used concurrently.
type Decoder struct {
	enc *Encoding
	buf *payload.Buffer
}

// NewDecoder returns an empty Decoder that decodes using enc.
//
// If enc is nil StdEncoding is used.
func NewDecoder(enc *Encoding) *Decoder {
	if enc == nil {
		enc = StdEncoding
	}
	return &Decoder{enc: enc}
}

// Decode decodes src.
//
// Any buffer owned from a previous call is released first. On
// success the Decoder owns a buffer of exactly the decoded
// length. On error the Decoder is left empty and nothing is
// allocated.
func (d *Decoder) Decode(src []byte) error {
	d.Release()

	buf, err := d.enc.DecodeBuffer(src)
	if err != nil {
		fields := []zap.Field{
			zap.Int("src_len", len(src)),
			zap.Stringer("code", ErrorCode(err)),
		}
		var cerr *CorruptInputError
		if errors.As(err, &cerr) {
			fields = append(fields, zap.Int("offset", cerr.Offset))
		}
		Logger().Debug("base64: decode failed", fields...)
		return err
	}
	Logger().Debug("base64: decoded",
		zap.Int("src_len", len(src)),
		zap.Int("len", buf.Len()),
		zap.Bool("strict", d.enc.strict),
	)
	d.buf = buf
	return nil
}

// Bytes returns the decoded bytes.
//
// The slice is valid until the next call to Decode or Release.
func (d *Decoder) Bytes() []byte {
	return d.buf.Bytes()
}

// Len returns the decoded length, or zero if the Decoder is
// empty.
func (d *Decoder) Len() int {
	return d.buf.Len()
}

// Release releases the decoded buffer, leaving the Decoder
// empty.
//
// It is safe to call Release more than once.
func (d *Decoder) Release() {
	d.buf.Release()
	d.buf = nil
}
