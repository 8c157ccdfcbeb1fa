package ereader

import (
	"envi-binreader/ds"
	"github.com/pkg/errors"
)

// offset of (band, line, col) when each line holds every band in turn.
func (r *RowMajor) offset(band uint64, line uint64, col uint64) uint64 {
	f := r.file
	return f.HeaderOffset() + ((line*f.NumBands()+band)*f.NumSamples()+col)*f.DataSize()
}

func (r *RowMajor) ReadLines(start uint64, count uint64) ([]byte, error) {
	if err := checkLines("ReadLines", r.file, start, count); err != nil {
		return nil, err
	}
	return readAt(r.file, r.offset(0, start, 0), count*r.file.NumBands()*lineBytes(r.file))
}

// ReadNextLine reads the line starting at the current file position and
// advances past it.
func (r *RowMajor) ReadNextLine() ([]byte, error) {
	bs, err := r.file.ReadRawBytes(r.file.NumBands() * lineBytes(r.file))
	if err != nil {
		err := errors.Wrap(err, "ereader.RowMajor.ReadNextLine error")
		return nil, err
	}
	return bs, nil
}

// Rewind moves the sequential position to the first line.
func (r *RowMajor) Rewind() error {
	return r.file.Seek(int64(r.file.HeaderOffset()))
}

func (r *RowMajor) ReadBandLine(band uint64, line uint64) ([]byte, error) {
	if err := checkCell("ReadBandLine", r.file, band, line, 0); err != nil {
		return nil, err
	}
	return readAt(r.file, r.offset(band, line, 0), lineBytes(r.file))
}

func (r *RowMajor) ReadBand(band uint64) ([]byte, error) {
	if err := checkIndex("ReadBand", band, r.file.NumBands()); err != nil {
		return nil, err
	}
	bs := make([]byte, 0, r.file.NumLines()*lineBytes(r.file))
	for _, line := range ds.MakeRange[uint64](0, r.file.NumLines(), 1) {
		lineBs, err := r.ReadBandLine(band, line)
		if err != nil {
			err := errors.Wrap(err, "ereader.RowMajor.ReadBand error")
			return nil, err
		}
		bs = append(bs, lineBs...)
	}
	return bs, nil
}

func (r *RowMajor) ReadCell(band uint64, line uint64, col uint64) (float64, error) {
	if err := checkCell("ReadCell", r.file, band, line, col); err != nil {
		return 0, err
	}
	return readCell(r.file, r.offset(band, line, col))
}

func (r *RowMajor) ReadLineToDoubles(line uint64) ([]float64, error) {
	bs, err := r.ReadLines(line, 1)
	if err != nil {
		return nil, err
	}
	return r.file.BytesToDoubles(bs)
}

var _ Reader = (*RowMajor)(nil)
