package base64

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDecoderLifecycle(t *testing.T) {
	d := NewDecoder(nil)
	if d.Len() != 0 || d.Bytes() != nil {
		t.Fatal("new Decoder is not empty")
	}

	if err := d.Decode([]byte("Zm9v\nYmFy\x00")); err != nil {
		t.Fatal(err)
	}
	if d.Len() != 6 {
		t.Fatalf("expected 6, got %d", d.Len())
	}
	got := d.Bytes()
	if want := []byte("foobar"); !cmp.Equal(want, got) {
		t.Fatalf("mismatch: %s", cmp.Diff(want, got))
	}

	// Reuse releases the previous buffer.
	if err := d.Decode([]byte("AA==")); err != nil {
		t.Fatal(err)
	}
	if want := make([]byte, 6); !cmp.Equal(want, got) {
		t.Fatalf("previous buffer not wiped: %s", cmp.Diff(want, got))
	}
	if want := []byte{0}; !cmp.Equal(want, d.Bytes()) {
		t.Fatalf("mismatch: %s", cmp.Diff(want, d.Bytes()))
	}

	d.Release()
	d.Release()
	if d.Len() != 0 || d.Bytes() != nil {
		t.Fatal("released Decoder is not empty")
	}
}

func TestDecoderError(t *testing.T) {
	d := NewDecoder(StdEncoding)
	if err := d.Decode([]byte("AAEC")); err != nil {
		t.Fatal(err)
	}
	err := d.Decode([]byte("A==="))
	if !errors.Is(err, ErrBadPadding) {
		t.Fatalf("expected ErrBadPadding, got %v", err)
	}
	if d.Len() != 0 || d.Bytes() != nil {
		t.Fatal("Decoder not empty after an error")
	}
	if got := ErrorCode(d.Decode([]byte("AB%D"))); got != BadCharacterError {
		t.Fatalf("expected %s, got %s", BadCharacterError, got)
	}
}

func TestDecoderStrict(t *testing.T) {
	d := NewDecoder(StdEncoding.Strict())
	if err := d.Decode([]byte("AAE")); !errors.Is(err, ErrBadPadding) {
		t.Fatalf("expected ErrBadPadding, got %v", err)
	}
	if err := d.Decode([]byte("AAE=")); err != nil {
		t.Fatal(err)
	}
	if d.Len() != 2 {
		t.Fatalf("expected 2, got %d", d.Len())
	}
}

func TestDecoderLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	d := NewDecoder(nil)
	defer d.Release()
	if err := d.Decode([]byte("AAEC")); err != nil {
		t.Fatal(err)
	}
	d.Decode([]byte("AB%D"))

	ok := logs.FilterMessage("base64: decoded").All()
	if len(ok) != 1 {
		t.Fatalf("expected 1 success entry, got %d", len(ok))
	}
	if got := ok[0].ContextMap()["len"]; got != int64(3) {
		t.Fatalf("expected len 3, got %v", got)
	}

	failed := logs.FilterMessage("base64: decode failed").All()
	if len(failed) != 1 {
		t.Fatalf("expected 1 failure entry, got %d", len(failed))
	}
	want := map[string]interface{}{
		"src_len": int64(4),
		"code":    "BadCharacterError",
		"offset":  int64(2),
	}
	if got := failed[0].ContextMap(); !cmp.Equal(want, got) {
		t.Fatalf("mismatch: %s", cmp.Diff(want, got))
	}
}

func TestLoggerDefault(t *testing.T) {
	if Logger() == nil {
		t.Fatal("nil default logger")
	}
	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("nil logger after SetLogger(nil)")
	}
}
