// Package lbytes decodes fixed-width numbers from byte slices and builds typed
// values from tables of read instructions.
package lbytes

import (
	"bytes"
	"encoding/binary"
)

type (
	Reader struct {
		bytes.Reader
		order binary.ByteOrder
	}
	Instruction struct {
		Key          string
		ReadFunction ReadFunction
	}
	ReadFunction func() (any, error)
)
