package crypt

import (
	"encoding/hex"
	"fmt"
	"io"
)

// Diag receives verbose dumps of the buffers flowing through a primitive
// operation, for protocol debugging. It is strictly additive: a Diag never
// sees anything the returned error does not already convey, and never
// replaces it. A nil Diag is valid and silent.
//
// Note key material is among the buffers dumped; wire a Diag only while
// debugging.
type Diag interface {
	Dump(label string, data []byte)
}

// WriterDiag returns a Diag that hex dumps each labelled buffer to w, in the
// style of hexdump -C.
func WriterDiag(w io.Writer) Diag {
	return writerDiag{w}
}

type writerDiag struct {
	w io.Writer
}

func (d writerDiag) Dump(label string, data []byte) {
	fmt.Fprintf(d.w, "%s (%d bytes)\n%s", label, len(data), hex.Dump(data))
}

func dump(d Diag, label string, data []byte) {
	if d != nil {
		d.Dump(label, data)
	}
}
