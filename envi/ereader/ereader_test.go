package ereader

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"envi-binreader/envi/eerr"
	"envi-binreader/envi/efile"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	numLines   = 3
	numSamples = 4
	numBands   = 2
)

// cellValue is what every synthetic raster stores at (band, line, col).
func cellValue(band uint64, line uint64, col uint64) int16 {
	return int16(100*band + 10*line + col)
}

func putCell(bs []byte, index uint64, value int16) {
	binary.LittleEndian.PutUint16(bs[index*2:], uint16(value))
}

func writeRaster(dir string, name string, interleave string) (string, error) {
	bs := make([]byte, numLines*numSamples*numBands*2)
	for band := uint64(0); band < numBands; band++ {
		for line := uint64(0); line < numLines; line++ {
			for col := uint64(0); col < numSamples; col++ {
				index := (line*numBands+band)*numSamples + col
				if interleave == "bsq" {
					index = (band*numLines+line)*numSamples + col
				}
				putCell(bs, index, cellValue(band, line, col))
			}
		}
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, bs, 0644); err != nil {
		return "", err
	}
	header := fmt.Sprintf(
		"ENVI\nsamples = %d\nlines = %d\nbands = %d\ndata type = 2\nbyte order = 0\ninterleave = %s\n",
		numSamples, numLines, numBands, interleave,
	)
	headerPath := path + ".hdr"
	return path, os.WriteFile(headerPath, []byte(header), 0644)
}

type ReaderTestSuite struct {
	Dir     string
	BILPath string
	BSQPath string
	Readers []Reader
	R       *require.Assertions
	suite.Suite
}

func (suite *ReaderTestSuite) SetupTest() {
	suite.R = suite.Require()
	suite.Dir = suite.T().TempDir()

	var err error
	suite.BILPath, err = writeRaster(suite.Dir, "scene.bil", "bil")
	suite.R.NoError(err)
	suite.BSQPath, err = writeRaster(suite.Dir, "scene.bsq", "bsq")
	suite.R.NoError(err)

	suite.Readers = lo.Map(
		[]string{suite.BILPath, suite.BSQPath},
		func(path string, _ int) Reader {
			variant, err := Open(path)
			suite.R.NoError(err)
			return AsReader(variant)
		},
	)
}

func (suite *ReaderTestSuite) TearDownTest() {
	for _, reader := range suite.Readers {
		suite.R.NoError(reader.Close())
	}
}

func (suite *ReaderTestSuite) TestVariants() {
	suite.IsType(&RowMajor{}, suite.Readers[0])
	suite.IsType(&BandMajor{}, suite.Readers[1])
	suite.Empty(suite.Readers[0].File().Diagnostics())
	suite.Empty(suite.Readers[1].File().Diagnostics())
}

func (suite *ReaderTestSuite) TestReadCell() {
	for _, reader := range suite.Readers {
		for band := uint64(0); band < numBands; band++ {
			for line := uint64(0); line < numLines; line++ {
				for col := uint64(0); col < numSamples; col++ {
					value, err := reader.ReadCell(band, line, col)
					suite.R.NoError(err)
					suite.Equal(float64(cellValue(band, line, col)), value)
				}
			}
		}
	}
}

func (suite *ReaderTestSuite) TestReadLinesAgree() {
	bil, err := suite.Readers[0].ReadLines(1, 2)
	suite.R.NoError(err)
	bsq, err := suite.Readers[1].ReadLines(1, 2)
	suite.R.NoError(err)
	suite.Equal(bil, bsq)
	suite.Len(bil, 2*numBands*numSamples*2)

	for _, reader := range suite.Readers {
		values, err := reader.ReadLineToDoubles(2)
		suite.R.NoError(err)
		suite.Equal([]float64{20, 21, 22, 23, 120, 121, 122, 123}, values)
	}
}

func (suite *ReaderTestSuite) TestReadBand() {
	bil, err := suite.Readers[0].ReadBand(1)
	suite.R.NoError(err)
	bsq, err := suite.Readers[1].ReadBand(1)
	suite.R.NoError(err)
	suite.Equal(bil, bsq)

	values, err := suite.Readers[0].File().BytesToDoubles(bil)
	suite.R.NoError(err)
	suite.Equal(
		[]float64{100, 101, 102, 103, 110, 111, 112, 113, 120, 121, 122, 123},
		values,
	)
}

func (suite *ReaderTestSuite) TestReadBandLine() {
	for _, reader := range suite.Readers {
		bs, err := reader.ReadBandLine(1, 2)
		suite.R.NoError(err)
		values, err := reader.File().BytesToDoubles(bs)
		suite.R.NoError(err)
		suite.Equal([]float64{120, 121, 122, 123}, values)
	}
}

func (suite *ReaderTestSuite) TestReadRect() {
	for _, reader := range suite.Readers {
		bs, err := ReadRect(reader, 0, 1, 2, 1, 2)
		suite.R.NoError(err)
		values, err := reader.File().BytesToDoubles(bs)
		suite.R.NoError(err)
		suite.Equal([]float64{11, 12, 21, 22}, values)

		_, err = ReadRect(reader, 0, 0, numLines, 0, 1)
		suite.Equal(eerr.KindOutOfBounds, eerr.KindOf(err))
		_, err = ReadRect(reader, 0, 2, 1, 0, 1)
		suite.Equal(eerr.KindOutOfBounds, eerr.KindOf(err))
	}
}

func (suite *ReaderTestSuite) TestOutOfBounds() {
	for _, reader := range suite.Readers {
		_, err := reader.ReadCell(numBands, 0, 0)
		bounds := eerr.ErrOutOfBounds{}
		suite.R.True(errors.As(err, &bounds))
		suite.Equal("ReadCell", bounds.Operation)
		suite.Equal(uint64(numBands), bounds.Limit)

		_, err = reader.ReadLines(numLines-1, 2)
		suite.Equal(eerr.KindOutOfBounds, eerr.KindOf(err))
		_, err = reader.ReadBand(numBands)
		suite.Equal(eerr.KindOutOfBounds, eerr.KindOf(err))
		_, err = reader.ReadBandLine(0, numLines)
		suite.Equal(eerr.KindOutOfBounds, eerr.KindOf(err))

		_, err = reader.ReadLines(2, math.MaxUint64)
		suite.Equal(eerr.KindOutOfBounds, eerr.KindOf(err))
		_, err = reader.ReadLines(numLines, 0)
		suite.NoError(err)
	}
}

func (suite *ReaderTestSuite) TestOutOfOrderReadKeepsPosition() {
	rowMajor := suite.Readers[0].(*RowMajor)
	suite.R.NoError(rowMajor.Rewind())

	first, err := rowMajor.ReadNextLine()
	suite.R.NoError(err)
	_, err = rowMajor.ReadCell(1, 2, 3)
	suite.R.NoError(err)
	second, err := rowMajor.ReadNextLine()
	suite.R.NoError(err)

	expected, err := rowMajor.ReadLines(0, 2)
	suite.R.NoError(err)
	suite.Equal(expected, append(first, second...))

	position, err := rowMajor.File().Tell()
	suite.R.NoError(err)
	suite.Equal(int64(2*numBands*numSamples*2), position)
}

func (suite *ReaderTestSuite) TestStyleProbe() {
	path := filepath.Join(suite.Dir, "scene.raw")
	suite.R.NoError(os.WriteFile(path, make([]byte, 8), 0644))

	variant, err := Open(path)
	suite.R.NoError(err)
	defer variant.Close()
	probe, ok := variant.(*StyleProbe)
	suite.R.True(ok)
	suite.Equal(efile.StyleUnknown, probe.File().Style())

	reader := AsReader(variant)
	calls := map[string]func() error{
		"ReadLines": func() error {
			_, err := reader.ReadLines(0, 1)
			return err
		},
		"ReadBandLine": func() error {
			_, err := reader.ReadBandLine(0, 0)
			return err
		},
		"ReadBand": func() error {
			_, err := reader.ReadBand(0)
			return err
		},
		"ReadCell": func() error {
			_, err := reader.ReadCell(0, 0, 0)
			return err
		},
		"ReadLineToDoubles": func() error {
			_, err := reader.ReadLineToDoubles(0)
			return err
		},
	}
	for operation, call := range calls {
		undefined := eerr.ErrUndefinedOperation{}
		suite.R.True(errors.As(call(), &undefined), operation)
		suite.Equal(operation, undefined.Operation)
	}
}

func (suite *ReaderTestSuite) TestOpen_InterleaveFromHeader() {
	bs, err := os.ReadFile(suite.BSQPath)
	suite.R.NoError(err)
	header, err := os.ReadFile(suite.BSQPath + ".hdr")
	suite.R.NoError(err)

	path := filepath.Join(suite.Dir, "scene.img")
	suite.R.NoError(os.WriteFile(path, bs, 0644))
	suite.R.NoError(os.WriteFile(path+".hdr", header, 0644))

	variant, err := Open(path)
	suite.R.NoError(err)
	defer variant.Close()
	suite.IsType(&BandMajor{}, variant)
}

func (suite *ReaderTestSuite) TestOpen_InterleaveOverridesExtension() {
	bs, err := os.ReadFile(suite.BSQPath)
	suite.R.NoError(err)
	header, err := os.ReadFile(suite.BSQPath + ".hdr")
	suite.R.NoError(err)

	path := filepath.Join(suite.Dir, "mislabeled.bil")
	suite.R.NoError(os.WriteFile(path, bs, 0644))
	suite.R.NoError(os.WriteFile(path+".hdr", header, 0644))

	variant, err := Open(path)
	suite.R.NoError(err)
	defer variant.Close()
	suite.R.IsType(&BandMajor{}, variant)
	suite.Equal(efile.StyleBSQ, variant.File().Style())

	value, err := AsReader(variant).ReadCell(1, 0, 0)
	suite.R.NoError(err)
	suite.Equal(float64(cellValue(1, 0, 0)), value)

	_, err = OpenRowMajor(path)
	suite.Equal(eerr.KindInvalidHeaderValue, eerr.KindOf(err))
	bandMajor, err := OpenBandMajor(path)
	suite.R.NoError(err)
	suite.R.NoError(bandMajor.Close())
}

func (suite *ReaderTestSuite) TestFromFile() {
	file, err := efile.Open(suite.BILPath)
	suite.R.NoError(err)
	defer file.Close()
	suite.IsType(&StyleProbe{}, FromFile(file))
}

func TestReaderTestSuite(t *testing.T) {
	suite.Run(t, new(ReaderTestSuite))
}
