package efile

import (
	"envi-binreader/envi/ehdr"
	"envi-binreader/envi/etype"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

func (r *File) FileName() string       { return r.fileName }
func (r *File) HeaderFileName() string { return r.headerFileName }
func (r *File) FileSize() uint64       { return r.fileSize }
func (r *File) Style() Style           { return r.style }
func (r *File) NumLines() uint64       { return r.numRows }
func (r *File) NumSamples() uint64     { return r.numSamples }
func (r *File) NumBands() uint64       { return r.numBands }
func (r *File) DataType() etype.Code   { return r.dataType }
func (r *File) DataSize() uint64       { return r.dataSize }
func (r *File) HeaderOffset() uint64   { return r.headerOffset }

func (r *File) ByteOrder() etype.ByteOrder { return r.byteOrder }

// Header returns the parsed header, or nil for a File opened without one.
// It stays available after Close.
func (r *File) Header() *ehdr.Store { return r.header }

// HasHeader reports whether the File was opened with OpenWithHeader.
func (r *File) HasHeader() bool { return r.header != nil }

func (r *File) IsOpen() bool {
	return r.file != nil && !r.closed
}

// IsGood is false once the file is closed, an I/O error occurred or a read hit
// the end of the file. A successful Seek clears the end-of-file condition.
func (r *File) IsGood() bool {
	return r.IsOpen() && r.lastErr == nil && !r.eof
}

func (r *File) LastError() error { return r.lastErr }
func (r *File) LastEOF() bool    { return r.eof }

// Diagnostics returns the non-fatal conditions found while opening, such as
// eerr.ErrFileSizeMismatch.
func (r *File) Diagnostics() []error {
	return append([]error(nil), r.diagnostics...)
}

// MissingHeaderItems lists the optional header keys that were absent or empty.
func (r *File) MissingHeaderItems() []string {
	return append([]string(nil), r.missingHeaderItems...)
}

func (r *File) Metadata() Metadata {
	return Metadata{
		FileName:       r.fileName,
		HeaderFileName: r.headerFileName,
		FileSize:       r.fileSize,
		Style:          r.style.String(),
		Lines:          r.numRows,
		Samples:        r.numSamples,
		Bands:          r.numBands,
		DataType:       int(r.dataType),
		DataTypeName:   r.dataType.String(),
		DataSize:       r.dataSize,
		HeaderOffset:   r.headerOffset,
		ByteOrder:      r.byteOrder.String(),
		Header:         r.header,
	}
}

// Close releases the file handle. Metadata and the header remain readable.
// Closing twice is a no-op.
func (r *File) Close() error {
	if r.closed || r.file == nil {
		return nil
	}
	r.closed = true
	err := r.file.Close()
	level.Debug(r.logger).Log("msg", "closed binary file", "path", r.fileName)
	if err != nil {
		err := errors.Wrap(err, "efile.Close error")
		return err
	}
	return nil
}
