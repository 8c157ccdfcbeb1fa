package etype

import (
	"encoding/binary"
	"slices"
	"strconv"

	"envi-binreader/ds"
	"envi-binreader/envi/eerr"
	"envi-binreader/envi/lbytes"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

func (r Code) Info() (Info, bool) {
	info, ok := infoByCode[r]
	return info, ok
}

func (r Code) String() string {
	if info, ok := r.Info(); ok {
		return info.Name
	}
	return "unknown(" + strconv.Itoa(int(r)) + ")"
}

func (r Code) IsComplex() bool {
	return r == CodeComplex64 || r == CodeComplex128
}

// Size returns the byte size of one element of code.
func Size(code Code) (uint64, error) {
	info, ok := code.Info()
	if !ok {
		return 0, eerr.ErrUnknownDataType{Code: int(code)}
	}
	return info.Size, nil
}

// Codes returns every supported code in ascending order.
func Codes() []Code {
	codes := lo.Keys(infoByCode)
	slices.Sort(codes)
	return codes
}

func (r ByteOrder) Binary() binary.ByteOrder {
	switch r {
	case ByteOrderLittle:
		return binary.LittleEndian
	case ByteOrderBig:
		return binary.BigEndian
	default:
		return binary.NativeEndian
	}
}

func (r ByteOrder) String() string {
	switch r {
	case ByteOrderLittle:
		return "little-endian"
	case ByteOrderBig:
		return "big-endian"
	default:
		return "native"
	}
}

// Decode interprets bs, which must be exactly one element long, as a value of
// code in the given byte order.
func Decode(code Code, order binary.ByteOrder, bs []byte) (float64, error) {
	size, err := Size(code)
	if err != nil {
		return 0, err
	}
	if uint64(len(bs)) != size {
		return 0, eerr.ErrShortRead{Requested: size, Available: uint64(len(bs))}
	}
	if code.IsComplex() {
		return 0, eerr.ErrUnsupportedConversion{Code: int(code)}
	}
	reader := lbytes.NewBytesReader(bs, order)

	value := float64(0)
	switch code {
	case CodeUint8:
		v, err := reader.ReadUint8()
		value = float64(v)
		return value, errors.Wrap(err, "etype.Decode error")
	case CodeInt16:
		v, err := reader.ReadInt16()
		value = float64(v)
		return value, errors.Wrap(err, "etype.Decode error")
	case CodeUint16:
		v, err := reader.ReadUint16()
		value = float64(v)
		return value, errors.Wrap(err, "etype.Decode error")
	case CodeInt32:
		v, err := reader.ReadInt32()
		value = float64(v)
		return value, errors.Wrap(err, "etype.Decode error")
	case CodeUint32:
		v, err := reader.ReadUint32()
		value = float64(v)
		return value, errors.Wrap(err, "etype.Decode error")
	case CodeInt64:
		v, err := reader.ReadInt64()
		value = float64(v)
		return value, errors.Wrap(err, "etype.Decode error")
	case CodeUint64:
		v, err := reader.ReadUint64()
		value = float64(v)
		return value, errors.Wrap(err, "etype.Decode error")
	case CodeFloat32:
		v, err := reader.ReadFloat32()
		value = float64(v)
		return value, errors.Wrap(err, "etype.Decode error")
	case CodeFloat64:
		v, err := reader.ReadFloat64()
		return v, errors.Wrap(err, "etype.Decode error")
	default:
		return 0, ds.ErrUnreachableCode{Caller: "etype.Decode", Value: code}
	}
}
