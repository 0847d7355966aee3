package importer

import (
	"io"

	"github.com/MrJamesThe3rd/verhuizer/internal/importer/splitcsv"
)

type Format string

const (
	FormatSplitCSV Format = "splitcsv"
)

type Importer interface {
	Parse(r io.Reader) ([]splitcsv.Row, error)
}
