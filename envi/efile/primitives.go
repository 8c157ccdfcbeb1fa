package efile

import (
	"io"

	"envi-binreader/ds"
	"envi-binreader/envi/eerr"
	"envi-binreader/envi/etype"
	"github.com/pkg/errors"
)

func (r *File) checkOpen(operation string) error {
	if r.closed || r.file == nil {
		return eerr.ErrUseAfterClose{Operation: operation}
	}
	return nil
}

func (r *File) checkReadable(operation string) error {
	if err := r.checkOpen(operation); err != nil {
		return err
	}
	if r.header == nil {
		return eerr.ErrUndefinedOperation{Operation: operation}
	}
	return nil
}

// Seek moves the file position to the absolute offset.
func (r *File) Seek(offset int64) error {
	if err := r.checkOpen("Seek"); err != nil {
		return err
	}
	if _, err := r.file.Seek(offset, io.SeekStart); err != nil {
		r.lastErr = err
		err := errors.Wrapf(err, "efile.Seek error seeking to %d", offset)
		return err
	}
	r.eof = false
	return nil
}

// Tell returns the current absolute file position.
func (r *File) Tell() (int64, error) {
	if err := r.checkOpen("Tell"); err != nil {
		return 0, err
	}
	position, err := r.file.Seek(0, io.SeekCurrent)
	if err != nil {
		r.lastErr = err
		err := errors.Wrap(err, "efile.Tell error")
		return 0, err
	}
	return position, nil
}

func (r *File) remaining(position int64) uint64 {
	if position < 0 || uint64(position) >= r.fileSize {
		return 0
	}
	return r.fileSize - uint64(position)
}

// CheckCapacity reports whether at least numBytes remain between the current
// position and the end of the file. It never moves the position.
func (r *File) CheckCapacity(numBytes uint64) bool {
	position, err := r.Tell()
	if err != nil {
		return false
	}
	return r.remaining(position) >= numBytes
}

// SavePositionAndSeek remembers the current position for
// RestorePreviousPosition and then seeks to offset. It is meant for a read out
// of the sequential order.
func (r *File) SavePositionAndSeek(offset int64) error {
	position, err := r.Tell()
	if err != nil {
		return err
	}
	r.prevPosition = position
	r.hasPrevPosition = true
	return r.Seek(offset)
}

// RestorePreviousPosition seeks back to the position saved by the most recent
// SavePositionAndSeek. Without one it fails with eerr.ErrNoSavedPosition.
func (r *File) RestorePreviousPosition() error {
	if err := r.checkOpen("RestorePreviousPosition"); err != nil {
		return err
	}
	if !r.hasPrevPosition {
		return eerr.ErrNoSavedPosition{}
	}
	return r.Seek(r.prevPosition)
}

// ReadRawBytes reads exactly count bytes from the current position. When fewer
// remain it fails with eerr.ErrShortRead and leaves the position untouched.
func (r *File) ReadRawBytes(count uint64) ([]byte, error) {
	if err := r.checkReadable("ReadRawBytes"); err != nil {
		return nil, err
	}
	position, err := r.Tell()
	if err != nil {
		return nil, err
	}
	available := r.remaining(position)
	if available < count {
		return nil, eerr.ErrShortRead{Offset: position, Requested: count, Available: available}
	}

	bs := make([]byte, count)
	n, err := io.ReadFull(r.file, bs)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			r.eof = true
			return nil, eerr.ErrShortRead{Offset: position, Requested: count, Available: uint64(n)}
		}
		r.lastErr = err
		err := errors.Wrapf(err, "efile.ReadRawBytes error reading %d bytes at %d", count, position)
		return nil, err
	}
	return bs, nil
}

// BytesToDouble converts one element, laid out as the header's data type and
// byte order, to float64. Without a "byte order" key the platform order is assumed.
func (r *File) BytesToDouble(bs []byte) (float64, error) {
	if err := r.checkReadable("BytesToDouble"); err != nil {
		return 0, err
	}
	value, err := etype.Decode(r.dataType, r.byteOrder.Binary(), bs)
	if err != nil {
		err := errors.Wrap(err, "efile.BytesToDouble error")
		return 0, err
	}
	return value, nil
}

// BytesToDoubles converts a buffer holding a whole number of elements.
func (r *File) BytesToDoubles(bs []byte) ([]float64, error) {
	if err := r.checkReadable("BytesToDoubles"); err != nil {
		return nil, err
	}
	if uint64(len(bs))%r.dataSize != 0 {
		remainder := uint64(len(bs)) % r.dataSize
		return nil, eerr.ErrShortRead{Requested: r.dataSize, Available: remainder}
	}
	chunks := ds.MakeChunks(bs, int(r.dataSize))
	values := make([]float64, 0, len(chunks))
	for _, chunk := range chunks {
		value, err := r.BytesToDouble(chunk)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}
