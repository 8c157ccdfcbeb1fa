package lbytes

import (
	"encoding/binary"
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_ReadInt32(t *testing.T) {
	reader := NewBytesReader(
		[]byte{
			3, 1, 4, 3,
			12, 34, 56, 78,
		},
		binary.LittleEndian,
	)

	resultInt1, err := reader.ReadInt32()
	assert.NoError(t, err)
	assert.Equal(t, int32(50594051), resultInt1)

	resultInt2, err := reader.ReadInt32()
	assert.NoError(t, err)
	assert.Equal(t, int32(1312301580), resultInt2)

	_, err = reader.ReadInt32()
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
}

func TestReader_ByteOrder(t *testing.T) {
	bs := []byte{0x3F, 0x80, 0x00, 0x00}

	big, err := NewBytesReader(bs, binary.BigEndian).ReadFloat32()
	require.NoError(t, err)
	assert.Equal(t, float32(1.0), big)

	little, err := NewBytesReader(bs, binary.LittleEndian).ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x0000803F), little)
}

func TestReader_Widths(t *testing.T) {
	reader := NewBytesReader(
		[]byte{
			0xFF,
			0xFE, 0xFF,
			0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x08, 0x40,
			0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
		},
		binary.LittleEndian,
	)
	u8, err := reader.ReadUint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(255), u8)

	i16, err := reader.ReadInt16()
	require.NoError(t, err)
	assert.Equal(t, int16(-2), i16)

	f64, err := reader.ReadFloat64()
	require.NoError(t, err)
	assert.Equal(t, 3.0, f64)

	i64, err := reader.ReadInt64()
	require.NoError(t, err)
	assert.Equal(t, int64(-1), i64)

	empty, err := reader.ReadBytes(0)
	assert.NoError(t, err)
	assert.Len(t, empty, 0)
}

func TestExecuteInstructions(t *testing.T) {
	type layout struct {
		Lines   uint64 `json:"lines"`
		Samples uint64 `json:"samples"`
	}
	reader := NewBytesReader([]byte{2, 0, 3, 0}, binary.LittleEndian)
	readUint16 := func() (any, error) {
		return reader.ReadUint16()
	}

	result, err := ExecuteInstructions[layout](
		[]Instruction{
			{"lines", readUint16},
			{"samples", readUint16},
		},
	)
	require.NoError(t, err)
	assert.Equal(t, layout{Lines: 2, Samples: 3}, *result)

	_, err = ExecuteInstructions[layout]([]Instruction{{"lines", readUint16}})
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
}
