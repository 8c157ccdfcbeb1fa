package ereader

import (
	"envi-binreader/envi/eerr"
	"envi-binreader/envi/efile"
	"github.com/pkg/errors"
)

func checkIndex(operation string, index uint64, limit uint64) error {
	if index >= limit {
		return eerr.ErrOutOfBounds{Operation: operation, Index: index, Limit: limit}
	}
	return nil
}

func checkCell(operation string, file *efile.File, band uint64, line uint64, col uint64) error {
	if err := checkIndex(operation, band, file.NumBands()); err != nil {
		return err
	}
	if err := checkIndex(operation, line, file.NumLines()); err != nil {
		return err
	}
	return checkIndex(operation, col, file.NumSamples())
}

func checkLines(operation string, file *efile.File, start uint64, count uint64) error {
	if count == 0 {
		return checkIndex(operation, start, file.NumLines()+1)
	}
	if err := checkIndex(operation, start, file.NumLines()); err != nil {
		return err
	}
	if count > file.NumLines()-start {
		return eerr.ErrOutOfBounds{Operation: operation, Index: count, Limit: file.NumLines() - start + 1}
	}
	return nil
}

func lineBytes(file *efile.File) uint64 {
	return file.NumSamples() * file.DataSize()
}

// readAt reads count bytes at offset and leaves the sequential position where it was.
func readAt(file *efile.File, offset uint64, count uint64) ([]byte, error) {
	if err := file.SavePositionAndSeek(int64(offset)); err != nil {
		return nil, err
	}
	bs, readErr := file.ReadRawBytes(count)
	if err := file.RestorePreviousPosition(); err != nil && readErr == nil {
		return nil, err
	}
	if readErr != nil {
		err := errors.Wrapf(readErr, "ereader.readAt error at offset %d", offset)
		return nil, err
	}
	return bs, nil
}

func readCell(file *efile.File, offset uint64) (float64, error) {
	bs, err := readAt(file, offset, file.DataSize())
	if err != nil {
		return 0, err
	}
	return file.BytesToDouble(bs)
}
