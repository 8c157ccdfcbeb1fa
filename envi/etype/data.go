// Package etype maps ENVI "data type" codes to element sizes and decodes
// single elements to float64.
package etype

// Code is the value of the "data type" header key.
type Code int

const (
	CodeUint8      Code = 1
	CodeInt16      Code = 2
	CodeInt32      Code = 3
	CodeFloat32    Code = 4
	CodeFloat64    Code = 5
	CodeComplex64  Code = 6
	CodeComplex128 Code = 9
	CodeUint16     Code = 12
	CodeUint32     Code = 13
	CodeInt64      Code = 14
	CodeUint64     Code = 15
)

type Info struct {
	Name string
	Size uint64
}

var infoByCode = map[Code]Info{
	CodeUint8:      {"uint8", 1},
	CodeInt16:      {"int16", 2},
	CodeInt32:      {"int32", 4},
	CodeFloat32:    {"float32", 4},
	CodeFloat64:    {"float64", 8},
	CodeComplex64:  {"complex64", 8},
	CodeComplex128: {"complex128", 16},
	CodeUint16:     {"uint16", 2},
	CodeUint32:     {"uint32", 4},
	CodeInt64:      {"int64", 8},
	CodeUint64:     {"uint64", 8},
}

// ByteOrder is the value of the "byte order" header key.
type ByteOrder int

const (
	ByteOrderNative ByteOrder = iota - 1
	ByteOrderLittle
	ByteOrderBig
)
