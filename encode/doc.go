// Package encode writes ir values as QMLON text.
//
// # Usage
//
//	err := encode.Encode(v, os.Stdout)
//
//	// single line
//	err = encode.Encode(v, w, encode.EncodeWire(true))
//
// Output is canonical: properties are written in sorted key order before
// children, children keep their order, and floats always carry a decimal
// point so that parsing the output yields an equal tree.
//
// # Related Packages
//
//   - github.com/signadot/qmlon/ir - Document model
//   - github.com/signadot/qmlon/parse - Parse text to ir
package encode
