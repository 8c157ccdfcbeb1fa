// Package eerr holds the closed set of error kinds reported while reading ENVI files.
package eerr

import (
	"fmt"

	"github.com/pkg/errors"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindHeaderRead
	KindMissingHeaderItem
	KindInvalidHeaderValue
	KindUnknownDataType
	KindUnsupportedConversion
	KindFileSizeMismatch
	KindShortRead
	KindUndefinedOperation
	KindUseAfterClose
	KindNoSavedPosition
	KindOutOfBounds
)

var kindNames = []string{
	"Unknown",
	"HeaderRead",
	"MissingHeaderItem",
	"InvalidHeaderValue",
	"UnknownDataType",
	"UnsupportedConversion",
	"FileSizeMismatch",
	"ShortRead",
	"UndefinedOperation",
	"UseAfterClose",
	"NoSavedPosition",
	"OutOfBounds",
}

func (r Kind) String() string {
	if int(r) < 0 || int(r) >= len(kindNames) {
		return kindNames[KindUnknown]
	}
	return kindNames[r]
}

type (
	// Error is implemented by every error of this package.
	Error interface {
		error
		Kind() Kind
	}
	ErrHeaderRead struct {
		Path  string
		Cause error
	}
	ErrMissingHeaderItem struct {
		Key string
		// Index is -1 for whole-value lookups.
		Index int
	}
	ErrInvalidHeaderValue struct {
		Key   string
		Value string
	}
	ErrUnknownDataType struct {
		Code int
	}
	ErrUnsupportedConversion struct {
		Code int
	}
	ErrFileSizeMismatch struct {
		Path     string
		Expected uint64
		Actual   uint64
	}
	ErrShortRead struct {
		Offset    int64
		Requested uint64
		Available uint64
	}
	ErrUndefinedOperation struct {
		Operation string
	}
	ErrUseAfterClose struct {
		Operation string
	}
	ErrNoSavedPosition struct{}
	ErrOutOfBounds struct {
		Operation string
		Index     uint64
		Limit     uint64
	}
)

func (r ErrHeaderRead) Error() string {
	if r.Cause != nil {
		return fmt.Sprintf(`unable to read header file "%s": %v`, r.Path, r.Cause)
	}
	return fmt.Sprintf(`unable to read header file "%s"`, r.Path)
}
func (r ErrHeaderRead) Kind() Kind    { return KindHeaderRead }
func (r ErrHeaderRead) Unwrap() error { return r.Cause }

func (r ErrMissingHeaderItem) Error() string {
	if r.Index >= 0 {
		return fmt.Sprintf(`header has no item %d for key "%s"`, r.Index, r.Key)
	}
	return fmt.Sprintf(`trying to read a key from header which does not exist: "%s"`, r.Key)
}
func (r ErrMissingHeaderItem) Kind() Kind { return KindMissingHeaderItem }

func (r ErrInvalidHeaderValue) Error() string {
	return fmt.Sprintf(`header value "%s" for key "%s" is not valid`, r.Value, r.Key)
}
func (r ErrInvalidHeaderValue) Kind() Kind { return KindInvalidHeaderValue }

func (r ErrUnknownDataType) Error() string {
	return fmt.Sprintf("unknown data type code %d", r.Code)
}
func (r ErrUnknownDataType) Kind() Kind { return KindUnknownDataType }

func (r ErrUnsupportedConversion) Error() string {
	return fmt.Sprintf("data type code %d has no scalar conversion", r.Code)
}
func (r ErrUnsupportedConversion) Kind() Kind { return KindUnsupportedConversion }

func (r ErrFileSizeMismatch) Error() string {
	return fmt.Sprintf(
		`file size of "%s" does not match header: expected %d bytes, found %d`,
		r.Path, r.Expected, r.Actual,
	)
}
func (r ErrFileSizeMismatch) Kind() Kind { return KindFileSizeMismatch }

func (r ErrShortRead) Error() string {
	return fmt.Sprintf(
		"short read at offset %d: requested %d bytes, %d available",
		r.Offset, r.Requested, r.Available,
	)
}
func (r ErrShortRead) Kind() Kind { return KindShortRead }

func (r ErrUndefinedOperation) Error() string {
	return fmt.Sprintf("undefined function call: %s", r.Operation)
}
func (r ErrUndefinedOperation) Kind() Kind { return KindUndefinedOperation }

func (r ErrUseAfterClose) Error() string {
	return fmt.Sprintf("%s called on a closed file", r.Operation)
}
func (r ErrUseAfterClose) Kind() Kind { return KindUseAfterClose }

func (r ErrNoSavedPosition) Error() string {
	return "no previous position has been saved"
}
func (r ErrNoSavedPosition) Kind() Kind { return KindNoSavedPosition }

func (r ErrOutOfBounds) Error() string {
	return fmt.Sprintf("%s: index %d out of bounds (limit %d)", r.Operation, r.Index, r.Limit)
}
func (r ErrOutOfBounds) Kind() Kind { return KindOutOfBounds }

// KindOf unwraps err and reports the kind of the first Error found in its chain.
func KindOf(err error) Kind {
	var e Error
	if errors.As(err, &e) {
		return e.Kind()
	}
	return KindUnknown
}
