package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/qmlon/ir"
)

func MustString(v *ir.Value, opts ...EncodeOption) string {
	s, err := String(v, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// String is Encode into a string, without the trailing newline.
func String(v *ir.Value, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(v, buf, opts...); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}
