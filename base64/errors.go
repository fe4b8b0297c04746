package base64

import (
	"errors"
	"strconv"
)

var (
	// ErrBadCharacter is returned when the input contains a
	// byte that is neither in the alphabet, padding, nor
	// whitespace.
	ErrBadCharacter = errors.New("base64: bad character")
	// ErrBadPadding is returned when padding appears after
	// fewer than two symbols of a group, or when a group is
	// otherwise too short to decode.
	ErrBadPadding = errors.New("base64: bad padding")
)

// CorruptInputError describes where decoding failed.
//
// Err is either ErrBadCharacter or ErrBadPadding.
type CorruptInputError struct {
	// Offset is the offset of the offending byte in the input,
	// or the length of the input if the input ended early.
	Offset int
	Err    error
}

func corrupt(off int, err error) error {
	return &CorruptInputError{Offset: off, Err: err}
}

func (e *CorruptInputError) Error() string {
	return e.Err.Error() + " at input byte " + strconv.Itoa(e.Offset)
}

func (e *CorruptInputError) Unwrap() error {
	return e.Err
}

// Code is a coarse classification of a decoding result.
type Code int

const (
	NoError           Code = iota // decoding succeeded
	BadCharacterError             // see ErrBadCharacter
	BadPaddingError               // see ErrBadPadding
	UnknownError                  // any other error
)

var codeNames = [...]string{
	NoError:           "NoError",
	BadCharacterError: "BadCharacterError",
	BadPaddingError:   "BadPaddingError",
	UnknownError:      "UnknownError",
}

func (c Code) String() string {
	if c >= 0 && int(c) < len(codeNames) {
		return codeNames[c]
	}
	return "Code(" + strconv.Itoa(int(c)) + ")"
}

// ErrorCode classifies err.
func ErrorCode(err error) Code {
	switch {
	case err == nil:
		return NoError
	case errors.Is(err, ErrBadCharacter):
		return BadCharacterError
	case errors.Is(err, ErrBadPadding):
		return BadPaddingError
	default:
		return UnknownError
	}
}
