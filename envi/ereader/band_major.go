package ereader

import (
	"envi-binreader/ds"
	"github.com/pkg/errors"
)

// offset of (band, line, col) when each band is stored whole before the next.
func (r *BandMajor) offset(band uint64, line uint64, col uint64) uint64 {
	f := r.file
	return f.HeaderOffset() + ((band*f.NumLines()+line)*f.NumSamples()+col)*f.DataSize()
}

// ReadLines gathers every band of each line, returning them band-interleaved
// like a BIL file would store them.
func (r *BandMajor) ReadLines(start uint64, count uint64) ([]byte, error) {
	if err := checkLines("ReadLines", r.file, start, count); err != nil {
		return nil, err
	}
	bs := make([]byte, 0, count*r.file.NumBands()*lineBytes(r.file))
	for _, line := range ds.MakeRange(start, start+count, 1) {
		for _, band := range ds.MakeRange[uint64](0, r.file.NumBands(), 1) {
			lineBs, err := readAt(r.file, r.offset(band, line, 0), lineBytes(r.file))
			if err != nil {
				err := errors.Wrap(err, "ereader.BandMajor.ReadLines error")
				return nil, err
			}
			bs = append(bs, lineBs...)
		}
	}
	return bs, nil
}

func (r *BandMajor) ReadBandLine(band uint64, line uint64) ([]byte, error) {
	if err := checkCell("ReadBandLine", r.file, band, line, 0); err != nil {
		return nil, err
	}
	return readAt(r.file, r.offset(band, line, 0), lineBytes(r.file))
}

func (r *BandMajor) ReadBand(band uint64) ([]byte, error) {
	if err := checkIndex("ReadBand", band, r.file.NumBands()); err != nil {
		return nil, err
	}
	return readAt(r.file, r.offset(band, 0, 0), r.file.NumLines()*lineBytes(r.file))
}

func (r *BandMajor) ReadCell(band uint64, line uint64, col uint64) (float64, error) {
	if err := checkCell("ReadCell", r.file, band, line, col); err != nil {
		return 0, err
	}
	return readCell(r.file, r.offset(band, line, col))
}

func (r *BandMajor) ReadLineToDoubles(line uint64) ([]float64, error) {
	bs, err := r.ReadLines(line, 1)
	if err != nil {
		return nil, err
	}
	return r.file.BytesToDoubles(bs)
}

var _ Reader = (*BandMajor)(nil)
