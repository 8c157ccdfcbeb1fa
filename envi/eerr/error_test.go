package eerr

import (
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := map[string]struct {
		in  error
		out Kind
	}{
		"plain":       {ErrMissingHeaderItem{Key: "Lines", Index: -1}, KindMissingHeaderItem},
		"wrapped":     {errors.Wrap(ErrShortRead{Requested: 4}, "efile.ReadRawBytes error"), KindShortRead},
		"twice":       {errors.Wrap(errors.Wrap(ErrUseAfterClose{Operation: "Seek"}, "a"), "b"), KindUseAfterClose},
		"foreign":     {io.EOF, KindUnknown},
		"nil":         {nil, KindUnknown},
		"header read": {ErrHeaderRead{Path: "x.hdr", Cause: io.ErrUnexpectedEOF}, KindHeaderRead},
	}
	for name, test := range tests {
		assert.Equal(t, test.out, KindOf(test.in), name)
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Contains(t, ErrMissingHeaderItem{Key: "Data Type", Index: -1}.Error(), `"Data Type"`)
	assert.Contains(t, ErrMissingHeaderItem{Key: "wavelength", Index: 3}.Error(), "item 3")
	assert.Contains(t, ErrUndefinedOperation{Operation: "ReadBand"}.Error(), "ReadBand")
	assert.Equal(t, "FileSizeMismatch", KindFileSizeMismatch.String())
	assert.Equal(t, "Unknown", Kind(99).String())
}

func TestErrHeaderRead_Unwrap(t *testing.T) {
	err := errors.Wrap(ErrHeaderRead{Path: "a.hdr", Cause: io.ErrUnexpectedEOF}, "ehdr.Load error")
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
}
