// Package ereader dispatches an ENVI binary file to the reader matching its
// interleave. A file whose interleave cannot be told is returned as a
// StyleProbe, which offers no read methods.
package ereader

import (
	"envi-binreader/envi/efile"
)

type (
	// Variant is one of *StyleProbe, *RowMajor or *BandMajor.
	Variant interface {
		File() *efile.File
		Close() error
		variant()
	}
	// Reader is implemented by the variants that can read raster data.
	// Byte slices are returned in the file's data type and byte order;
	// multi-band lines are always band-interleaved-by-line.
	Reader interface {
		Variant
		ReadLines(start uint64, count uint64) ([]byte, error)
		ReadBandLine(band uint64, line uint64) ([]byte, error)
		ReadBand(band uint64) ([]byte, error)
		ReadCell(band uint64, line uint64, col uint64) (float64, error)
		ReadLineToDoubles(line uint64) ([]float64, error)
	}

	StyleProbe struct {
		file *efile.File
	}
	// RowMajor reads BIL files.
	RowMajor struct {
		file *efile.File
	}
	// BandMajor reads BSQ files.
	BandMajor struct {
		file *efile.File
	}
)

func (r *StyleProbe) File() *efile.File { return r.file }
func (r *RowMajor) File() *efile.File   { return r.file }
func (r *BandMajor) File() *efile.File  { return r.file }

func (r *StyleProbe) Close() error { return r.file.Close() }
func (r *RowMajor) Close() error   { return r.file.Close() }
func (r *BandMajor) Close() error  { return r.file.Close() }

func (r *StyleProbe) variant() {}
func (r *RowMajor) variant()   {}
func (r *BandMajor) variant()  {}
