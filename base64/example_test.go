package base64_test

import (
	"fmt"

	"github.com/ericlagergren/payload/base64"
)

func ExampleEncode() {
	src := []byte{0x00, 0x01, 0x02, 0x03}
	dst := make([]byte, base64.Encode(nil, src))
	base64.Encode(dst, src)
	fmt.Println(string(dst))
	// Output: AAECAw==
}

func ExampleDecode() {
	buf, err := base64.Decode([]byte("aGVs\n bG8=\x00trailing"))
	if err != nil {
		fmt.Println(err)
		return
	}
	defer buf.Release()
	fmt.Printf("%s\n", buf.Bytes())
	// Output: hello
}

func ExampleEncoding_DecodedLen() {
	_, err := base64.StdEncoding.DecodedLen([]byte("A==="))
	fmt.Println(err)
	fmt.Println(base64.ErrorCode(err))
	// Output:
	// base64: bad padding at input byte 1
	// BadPaddingError
}
