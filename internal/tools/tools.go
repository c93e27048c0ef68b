// Package tools holds the small calculators and text utilities of the
// toolbox. Every function is pure apart from GeneratePassword, which reads
// the system random source.
package tools

import (
	"errors"

	"github.com/tartampluch/go-toolbox/internal/config"
)

// Sentinel errors, matched with errors.Is by the HTTP layer and the CLI.
var (
	ErrUnknownUnit     = errors.New(config.ErrUnknownUnit)
	ErrUnitMismatch    = errors.New(config.ErrUnitMismatch)
	ErrBase64          = errors.New(config.ErrBase64Decode)
	ErrUnknownCase     = errors.New(config.ErrUnknownCase)
	ErrPasswordLength  = errors.New(config.ErrPasswordLength)
	ErrPasswordClasses = errors.New(config.ErrPasswordClasses)
	ErrBMIInput        = errors.New(config.ErrBMIInput)
	ErrTimezone        = errors.New(config.ErrTimezone)
)
