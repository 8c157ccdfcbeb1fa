package ereader

import (
	"envi-binreader/ds"
	"envi-binreader/envi/eerr"
	"envi-binreader/envi/efile"
	"github.com/pkg/errors"
)

// Open probes the style of path from its extension and opens it together with
// its header. The "interleave" header key has the last word on the layout; for
// an extension that tells nothing and no readable header, the file is
// returned as a *StyleProbe.
func Open(path string, opts ...efile.Option) (Variant, error) {
	probe, err := efile.Open(path, opts...)
	if err != nil {
		err := errors.Wrap(err, "ereader.Open error")
		return nil, err
	}

	file, err := efile.OpenWithHeader(path, opts...)
	switch probe.Style() {
	case efile.StyleBIL, efile.StyleBSQ:
		probe.Close()
		if err != nil {
			err := errors.Wrap(err, "ereader.Open error")
			return nil, err
		}
		return FromFile(file), nil
	case efile.StyleUnknown:
		if eerr.KindOf(err) == eerr.KindHeaderRead {
			return &StyleProbe{file: probe}, nil
		}
		probe.Close()
		if err != nil {
			err := errors.Wrap(err, "ereader.Open error")
			return nil, err
		}
		return FromFile(file), nil
	default:
		probe.Close()
		if file != nil {
			file.Close()
		}
		return nil, ds.ErrUnreachableCode{Caller: "ereader.Open", Value: probe.Style()}
	}
}

// OpenRowMajor opens path as BIL and fails when its header says otherwise.
func OpenRowMajor(path string, opts ...efile.Option) (*RowMajor, error) {
	file, err := openStyle(path, efile.StyleBIL, opts...)
	if err != nil {
		err := errors.Wrap(err, "ereader.OpenRowMajor error")
		return nil, err
	}
	return &RowMajor{file: file}, nil
}

// OpenBandMajor opens path as BSQ and fails when its header says otherwise.
func OpenBandMajor(path string, opts ...efile.Option) (*BandMajor, error) {
	file, err := openStyle(path, efile.StyleBSQ, opts...)
	if err != nil {
		err := errors.Wrap(err, "ereader.OpenBandMajor error")
		return nil, err
	}
	return &BandMajor{file: file}, nil
}

func openStyle(path string, style efile.Style, opts ...efile.Option) (*efile.File, error) {
	file, err := efile.OpenWithHeader(path, opts...)
	if err != nil {
		return nil, err
	}
	if file.Style() != style {
		file.Close()
		return nil, eerr.ErrInvalidHeaderValue{Key: "interleave", Value: file.Style().String()}
	}
	return file, nil
}

// FromFile wraps an already opened file in the variant matching its style.
// A file opened without a header is always a *StyleProbe.
func FromFile(file *efile.File) Variant {
	if !file.HasHeader() {
		return &StyleProbe{file: file}
	}
	switch file.Style() {
	case efile.StyleBIL:
		return &RowMajor{file: file}
	case efile.StyleBSQ:
		return &BandMajor{file: file}
	default:
		return &StyleProbe{file: file}
	}
}

// AsReader returns v as a Reader. A *StyleProbe becomes a Reader whose every
// method fails with eerr.ErrUndefinedOperation naming that method.
func AsReader(v Variant) Reader {
	switch variant := v.(type) {
	case *RowMajor:
		return variant
	case *BandMajor:
		return variant
	case *StyleProbe:
		return undefinedReader{StyleProbe: variant}
	default:
		panic(ds.ErrUnreachableCode{Caller: "ereader.AsReader", Value: v})
	}
}
