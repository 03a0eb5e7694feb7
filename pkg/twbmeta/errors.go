package twbmeta

import (
	"errors"

	"github.com/metagraph-io/twbmeta/pkg/twbmeta/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFileType indicates the input is neither .twb nor .twbx.
var ErrUnsupportedFileType = errors.New("unsupported file type")

// ErrNoWorkbookEntry indicates a .twbx archive contains no .twb entry.
var ErrNoWorkbookEntry = errors.New("no .twb entry found in archive")

// MalformedDocumentError is the fatal whole-parse failure returned when the
// input is not well-formed markup or lacks the workbook root element.
type MalformedDocumentError = parser.MalformedDocumentError

// IsMalformedDocument reports whether err is the fatal malformed-document
// classification.
func IsMalformedDocument(err error) bool {
	var me *MalformedDocumentError
	return errors.As(err, &me)
}
