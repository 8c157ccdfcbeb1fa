package ereader

import (
	"envi-binreader/envi/eerr"
)

// undefinedReader lets a *StyleProbe stand in where a Reader is expected.
type undefinedReader struct {
	*StyleProbe
}

func (r undefinedReader) ReadLines(uint64, uint64) ([]byte, error) {
	return nil, eerr.ErrUndefinedOperation{Operation: "ReadLines"}
}

func (r undefinedReader) ReadBandLine(uint64, uint64) ([]byte, error) {
	return nil, eerr.ErrUndefinedOperation{Operation: "ReadBandLine"}
}

func (r undefinedReader) ReadBand(uint64) ([]byte, error) {
	return nil, eerr.ErrUndefinedOperation{Operation: "ReadBand"}
}

func (r undefinedReader) ReadCell(uint64, uint64, uint64) (float64, error) {
	return 0, eerr.ErrUndefinedOperation{Operation: "ReadCell"}
}

func (r undefinedReader) ReadLineToDoubles(uint64) ([]float64, error) {
	return nil, eerr.ErrUndefinedOperation{Operation: "ReadLineToDoubles"}
}
