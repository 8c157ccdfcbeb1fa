package efile

import (
	"math/bits"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"envi-binreader/ds"
	"envi-binreader/envi/eerr"
	"envi-binreader/envi/ehdr"
	"envi-binreader/envi/etype"
	"envi-binreader/envi/lbytes"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Open opens path without a header. The returned File only knows its style,
// taken from the file extension; every read fails with eerr.ErrUndefinedOperation.
func Open(path string, opts ...Option) (*File, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return open(path, o)
}

func open(path string, o *options) (*File, error) {
	file, err := os.Open(path)
	if err != nil {
		err := errors.Wrapf(err, `efile.Open error opening "%s"`, path)
		return nil, err
	}
	stat, err := file.Stat()
	if err != nil {
		file.Close()
		err := errors.Wrapf(err, `efile.Open error reading size of "%s"`, path)
		return nil, err
	}

	f := &File{
		file:      file,
		fileName:  path,
		fileSize:  uint64(stat.Size()),
		style:     StyleFromFileName(path),
		byteOrder: etype.ByteOrderNative,
		logger:    o.logger,
	}
	level.Debug(f.logger).Log("msg", "opened binary file", "path", path, "style", f.style, "size", f.fileSize)
	return f, nil
}

// OpenWithHeader opens path and the header paired with it, derives the raster
// layout and checks it against the file size. A size mismatch is recorded in
// Diagnostics unless WithStrictSize is given. On any other failure the file is
// closed and no File is returned.
func OpenWithHeader(path string, opts ...Option) (*File, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	f, err := open(path, o)
	if err != nil {
		return nil, err
	}
	if err := f.loadHeader(o); err != nil {
		f.Close()
		err := errors.Wrap(err, "efile.OpenWithHeader error")
		return nil, err
	}
	if err := f.checkFileSize(o.strictSize); err != nil {
		f.Close()
		err := errors.Wrap(err, "efile.OpenWithHeader error")
		return nil, err
	}
	level.Debug(f.logger).Log("msg", "derived raster layout", "metadata", ds.DumpJSON(f.Metadata()))
	return f, nil
}

func (r *File) loadHeader(o *options) error {
	headerPath := o.headerPath
	if headerPath == "" {
		headerPath = ResolveHeaderFileName(r.fileName, o.headerNaming)
	}
	store, err := ehdr.Load(headerPath)
	if err != nil {
		return err
	}
	r.header = store
	r.headerFileName = headerPath

	l, err := lbytes.ExecuteInstructions[layout](
		[]lbytes.Instruction{
			{Key: KeyLines, ReadFunction: r.createUintReadFunction(KeyLines, true, 0)},
			{Key: KeySamples, ReadFunction: r.createUintReadFunction(KeySamples, true, 0)},
			{Key: KeyBands, ReadFunction: r.createUintReadFunction(KeyBands, true, 0)},
			{Key: KeyDataType, ReadFunction: r.createIntReadFunction(KeyDataType, true, 0)},
			{Key: KeyHeaderOffset, ReadFunction: r.createUintReadFunction(KeyHeaderOffset, false, 0)},
			{Key: KeyByteOrder, ReadFunction: r.createIntReadFunction(KeyByteOrder, false, int(etype.ByteOrderNative))},
			{Key: KeyInterleave, ReadFunction: r.createStringReadFunction(KeyInterleave)},
		},
	)
	if err != nil {
		return err
	}

	r.numRows = l.Lines
	r.numSamples = l.Samples
	r.numBands = l.Bands
	r.headerOffset = l.HeaderOffset
	r.dataType = etype.Code(l.DataType)
	r.dataSize, err = etype.Size(r.dataType)
	if err != nil {
		return err
	}

	// Only an absent key means native; the header itself may say 0 or 1.
	switch {
	case lo.Contains(r.missingHeaderItems, KeyByteOrder):
		r.byteOrder = etype.ByteOrderNative
	case l.ByteOrder == int(etype.ByteOrderLittle), l.ByteOrder == int(etype.ByteOrderBig):
		r.byteOrder = etype.ByteOrder(l.ByteOrder)
	default:
		return eerr.ErrInvalidHeaderValue{Key: KeyByteOrder, Value: strconv.Itoa(l.ByteOrder)}
	}
	if o.byteOrder != nil {
		r.byteOrder = *o.byteOrder
	}

	if l.Interleave != "" {
		r.style = StyleFromInterleave(l.Interleave)
	}
	return nil
}

func (r *File) lookupOptional(key string, required bool) (string, bool, error) {
	value, err := r.header.Lookup(key, required)
	if err != nil {
		return "", false, err
	}
	value = strings.TrimSpace(value)
	if value == "" {
		r.missingHeaderItems = append(r.missingHeaderItems, key)
		return "", false, nil
	}
	return value, true, nil
}

func (r *File) createUintReadFunction(key string, required bool, fallback uint64) lbytes.ReadFunction {
	return func() (any, error) {
		value, ok, err := r.lookupOptional(key, required)
		if err != nil {
			return nil, err
		}
		if !ok {
			if required {
				return nil, eerr.ErrMissingHeaderItem{Key: key, Index: -1}
			}
			return fallback, nil
		}
		parsed, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return nil, eerr.ErrInvalidHeaderValue{Key: key, Value: value}
		}
		return parsed, nil
	}
}

func (r *File) createIntReadFunction(key string, required bool, fallback int) lbytes.ReadFunction {
	return func() (any, error) {
		value, ok, err := r.lookupOptional(key, required)
		if err != nil {
			return nil, err
		}
		if !ok {
			if required {
				return nil, eerr.ErrMissingHeaderItem{Key: key, Index: -1}
			}
			return fallback, nil
		}
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return nil, eerr.ErrInvalidHeaderValue{Key: key, Value: value}
		}
		return parsed, nil
	}
}

func (r *File) createStringReadFunction(key string) lbytes.ReadFunction {
	return func() (any, error) {
		value, _, err := r.lookupOptional(key, false)
		return value, err
	}
}

// ExpectedFileSize is header offset + lines * samples * bands * data size.
// ok is false when the product does not fit in 64 bits.
func (r *File) ExpectedFileSize() (uint64, bool) {
	size := r.headerOffset
	product := uint64(1)
	for _, factor := range []uint64{r.numRows, r.numSamples, r.numBands, r.dataSize} {
		hi, low := bits.Mul64(product, factor)
		if hi != 0 {
			return 0, false
		}
		product = low
	}
	size, carry := bits.Add64(size, product, 0)
	return size, carry == 0
}

func (r *File) checkFileSize(strict bool) error {
	expected, ok := r.ExpectedFileSize()
	if ok && expected == r.fileSize {
		return nil
	}
	mismatch := eerr.ErrFileSizeMismatch{
		Path:     r.fileName,
		Expected: expected,
		Actual:   r.fileSize,
	}
	if strict {
		return mismatch
	}
	r.diagnostics = append(r.diagnostics, mismatch)
	level.Warn(r.logger).Log(
		"msg", "file size does not match header",
		"path", r.fileName,
		"expected", expected,
		"actual", r.fileSize,
	)
	return nil
}

// StyleFromFileName recognises the .bil and .bsq extensions, ignoring case.
func StyleFromFileName(path string) Style {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bil":
		return StyleBIL
	case ".bsq":
		return StyleBSQ
	default:
		return StyleUnknown
	}
}

// StyleFromInterleave maps the "interleave" header value to a Style. BIP has
// no reader and is reported as StyleUnknown.
func StyleFromInterleave(value string) Style {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "bil":
		return StyleBIL
	case "bsq":
		return StyleBSQ
	default:
		return StyleUnknown
	}
}

// HeaderFileNames lists the header paths naming allows for path, in the order
// they are tried.
func HeaderFileNames(path string, naming HeaderNaming) []string {
	replaced := strings.TrimSuffix(path, filepath.Ext(path)) + ehdr.Extension
	appended := path + ehdr.Extension
	switch naming {
	case NamingReplace:
		return []string{replaced}
	case NamingAppend:
		return []string{appended}
	default:
		return lo.Uniq([]string{replaced, appended})
	}
}

// ResolveHeaderFileName returns the first existing candidate of
// HeaderFileNames, or the first candidate when none exists so that the
// subsequent load reports it.
func ResolveHeaderFileName(path string, naming HeaderNaming) string {
	candidates := HeaderFileNames(path, naming)
	existing, ok := lo.Find(
		candidates,
		func(candidate string) bool {
			stat, err := os.Stat(candidate)
			return err == nil && !stat.IsDir()
		},
	)
	if ok {
		return existing
	}
	return candidates[0]
}
