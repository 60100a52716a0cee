package models

import (
	"errors"
	"fmt"
)

const (
	TableClients     = "clients"
	TableProducts    = "products"
	TableInvestments = "investments"
)

var (
	ErrInputFormat       = errors.New("input format error")
	ErrMissingKey        = errors.New("missing key")
	ErrMissingColumn     = errors.New("missing column")
	ErrNotANumber        = errors.New("value is not numeric")
	ErrDuplicateKey      = errors.New("duplicated key")
	ErrNegativeAmount    = errors.New("amount must not be negative")
	ErrInvalidSerialDate = errors.New("invalid serial date")
)

// InputFormatError reports a malformed input table. Row is the 1-based line
// number in the source (the header is line 1); zero means the table as a whole.
type InputFormatError struct {
	Table  string
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *InputFormatError) Error() string {
	msg := fmt.Sprintf("%s: table %s", ErrInputFormat, e.Table)
	if e.Row > 0 {
		msg += fmt.Sprintf(", row %d", e.Row)
	}
	if e.Column != "" {
		msg += fmt.Sprintf(", column %s", e.Column)
	}
	if e.Value != "" {
		msg += fmt.Sprintf(", value %q", e.Value)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InputFormatError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInputFormat}
	}
	return []error{ErrInputFormat, e.Err}
}

// MissingKeyError reports an investment referencing an id absent from a
// reference table.
type MissingKeyError struct {
	Table        string
	Key          int
	InvestmentID int
}

func (e *MissingKeyError) Error() string {
	if e.InvestmentID != 0 {
		return fmt.Sprintf("%s: %s id %d referenced by investment %d", ErrMissingKey, e.Table, e.Key, e.InvestmentID)
	}
	return fmt.Sprintf("%s: %s id %d", ErrMissingKey, e.Table, e.Key)
}

func (e *MissingKeyError) Unwrap() error {
	return ErrMissingKey
}
