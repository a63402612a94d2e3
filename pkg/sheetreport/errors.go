package sheetreport

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist or cannot be accessed.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a readable xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrWriteFailed indicates an export file could not be written.
var ErrWriteFailed = errors.New("write failed")

// ErrSerialization indicates records could not be serialized.
var ErrSerialization = errors.New("serialization failed")

// Stages reported by SheetError.
const (
	StageRows      = "rows"
	StageSerialize = "serialize"
	StageWrite     = "write"
)

// SheetError represents an error while processing one sheet.
type SheetError struct {
	SheetName string
	Stage     string // StageRows, StageSerialize or StageWrite
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q (%s): %v", e.SheetName, e.Stage, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheetName, stage string, err error) *SheetError {
	return &SheetError{
		SheetName: sheetName,
		Stage:     stage,
		Err:       err,
	}
}

// ErrorKind classifies a run failure.
type ErrorKind int

const (
	// KindNone means no error.
	KindNone ErrorKind = iota
	// KindInputNotFound means the input path is missing or inaccessible.
	KindInputNotFound
	// KindFormatInvalid means the input is not a readable workbook.
	KindFormatInvalid
	// KindIO means an export file could not be written.
	KindIO
	// KindSerialization means records could not be serialized.
	KindSerialization
	// KindUnknown is any other failure.
	KindUnknown
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInputNotFound:
		return "input-not-found"
	case KindFormatInvalid:
		return "format-invalid"
	case KindIO:
		return "io-failure"
	case KindSerialization:
		return "serialization-failure"
	default:
		return "unknown"
	}
}

// KindOf returns the kind of err.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrFileNotFound):
		return KindInputNotFound
	case errors.Is(err, ErrInvalidFormat):
		return KindFormatInvalid
	case errors.Is(err, ErrWriteFailed):
		return KindIO
	case errors.Is(err, ErrSerialization):
		return KindSerialization
	}
	return KindUnknown
}
