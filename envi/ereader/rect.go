package ereader

import (
	"envi-binreader/ds"
	"envi-binreader/envi/eerr"
	"github.com/pkg/errors"
)

// ReadRect reads the inclusive window [minRow, maxRow] x [minCol, maxCol] of
// one band, row by row. Bounds are checked against the file's lines and
// samples before anything is read.
func ReadRect(reader Reader, band uint64, minRow uint64, maxRow uint64, minCol uint64, maxCol uint64) ([]byte, error) {
	file := reader.File()
	if minRow > maxRow {
		return nil, eerr.ErrOutOfBounds{Operation: "ReadRect", Index: minRow, Limit: maxRow + 1}
	}
	if minCol > maxCol {
		return nil, eerr.ErrOutOfBounds{Operation: "ReadRect", Index: minCol, Limit: maxCol + 1}
	}
	if err := checkCell("ReadRect", file, band, maxRow, maxCol); err != nil {
		return nil, err
	}

	dataSize := file.DataSize()
	from := minCol * dataSize
	to := (maxCol + 1) * dataSize
	bs := make([]byte, 0, (maxRow-minRow+1)*(to-from))
	for _, row := range ds.MakeRange(minRow, maxRow+1, 1) {
		lineBs, err := reader.ReadBandLine(band, row)
		if err != nil {
			err := errors.Wrap(err, "ereader.ReadRect error")
			return nil, err
		}
		bs = append(bs, lineBs[from:to]...)
	}
	return bs, nil
}
