// Package payload holds binary payloads decoded from text-based
// resource formats.
//
// A Buffer is a uniquely-owned allocation sized exactly to its
// contents. It is released once, after which it reads as empty:
//
//	buf, err := base64.Decode(src)
//	if err != nil {
//	    return err
//	}
//	defer buf.Release()
//
// The codecs themselves live in subpackages.
package payload
