// Package efile opens the binary file of an ENVI BIL or BSQ raster together
// with its header, checks the declared dimensions against the file size and
// exposes the seek and read primitives that row- and band-ordered readers
// are built on.
//
// A File is not safe for concurrent use. The file position is shared state,
// and SavePositionAndSeek followed by RestorePreviousPosition must not be
// interleaved with other reads on the same File.
package efile

import (
	"os"

	"envi-binreader/envi/ehdr"
	"envi-binreader/envi/etype"
	"github.com/go-kit/log"
)

// Style is the interleave of a binary file.
type Style int

const (
	StyleBSQ Style = iota
	StyleBIL
	StyleUnknown
)

// HeaderNaming selects how a header path is derived from a binary file path.
type HeaderNaming int

const (
	// NamingAuto tries NamingReplace, then NamingAppend, and uses the first
	// candidate that exists.
	NamingAuto HeaderNaming = iota
	// NamingReplace swaps the extension: scene.bil -> scene.hdr
	NamingReplace
	// NamingAppend adds the extension: scene.bil -> scene.bil.hdr
	NamingAppend
)

type (
	File struct {
		file           *os.File
		fileName       string
		headerFileName string
		fileSize       uint64
		style          Style

		// header is nil for a File opened with Open, which can only report its style.
		header       *ehdr.Store
		numRows      uint64
		numSamples   uint64
		numBands     uint64
		dataType     etype.Code
		dataSize     uint64
		headerOffset uint64
		byteOrder    etype.ByteOrder

		// prevPosition is only meaningful once hasPrevPosition is set.
		prevPosition    int64
		hasPrevPosition bool

		lastErr            error
		eof                bool
		closed             bool
		diagnostics        []error
		missingHeaderItems []string
		logger             log.Logger
	}
	// Metadata is a snapshot of what a File derived from its header.
	Metadata struct {
		FileName       string `json:"file_name"`
		HeaderFileName string `json:"header_file_name,omitempty"`
		FileSize       uint64 `json:"file_size"`
		Style          string `json:"style"`
		Lines          uint64 `json:"lines"`
		Samples        uint64 `json:"samples"`
		Bands          uint64 `json:"bands"`
		DataType       int    `json:"data_type"`
		DataTypeName   string `json:"data_type_name"`
		DataSize       uint64 `json:"data_size"`
		HeaderOffset   uint64 `json:"header_offset"`
		ByteOrder      string `json:"byte_order"`

		// Header is nil for a file opened without one.
		Header *ehdr.Store `json:"header,omitempty"`
	}
	// layout is filled from header lookups by lbytes.ExecuteInstructions.
	layout struct {
		Lines        uint64 `json:"lines"`
		Samples      uint64 `json:"samples"`
		Bands        uint64 `json:"bands"`
		DataType     int    `json:"data type"`
		HeaderOffset uint64 `json:"header offset"`
		ByteOrder    int    `json:"byte order"`
		Interleave   string `json:"interleave"`
	}
)

const (
	KeyLines        = "lines"
	KeySamples      = "samples"
	KeyBands        = "bands"
	KeyDataType     = "data type"
	KeyHeaderOffset = "header offset"
	KeyByteOrder    = "byte order"
	KeyInterleave   = "interleave"
)

var styleNames = []string{"BSQ", "BIL", "UNKNOWN"}

func (r Style) String() string {
	if r < StyleBSQ || r > StyleUnknown {
		return styleNames[StyleUnknown]
	}
	return styleNames[r]
}
