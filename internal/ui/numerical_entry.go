package ui

import (
	"errors"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// NumericalEntry is an Entry that only accepts digits from the keyboard.
// Pasted text is not filtered; Int and the validator catch it.
type NumericalEntry struct {
	widget.Entry
}

// NewNumericalEntry creates a NumericalEntry holding value.
func NewNumericalEntry(value int) *NumericalEntry {
	e := &NumericalEntry{}
	e.ExtendBaseWidget(e)
	e.SetText(strconv.Itoa(value))
	return e
}

// TypedRune drops everything but 0-9.
func (e *NumericalEntry) TypedRune(r rune) {
	if r >= '0' && r <= '9' {
		e.Entry.TypedRune(r)
	}
}

// Keyboard asks mobile drivers for the numeric keypad.
func (e *NumericalEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}

// Int parses the current text.
func (e *NumericalEntry) Int() (int, error) {
	return strconv.Atoi(strings.TrimSpace(e.Text))
}

// rangeValidator accepts integers in [lo, hi] and reports msg otherwise.
func rangeValidator(lo, hi int, msg string) fyne.StringValidator {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || n < lo || n > hi {
			return errors.New(msg)
		}
		return nil
	}
}
