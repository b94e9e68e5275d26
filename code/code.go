/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package code

import (
	"encoding"
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Layout constants of a packed code.
const (
	// PrefixLen is the number of characters that encode the status.
	PrefixLen = 3

	// MinStatus and MaxStatus bound the statuses a prefix may encode.
	MinStatus = 100
	MaxStatus = 599

	// FallbackStatus is used whenever a status cannot be derived from a prefix.
	// It corresponds to http.StatusInternalServerError.
	FallbackStatus = 500
)

var (
	// ErrTooShort is returned when a packed code has fewer than PrefixLen characters.
	ErrTooShort = errors.New("errcode: code shorter than status prefix")

	// ErrStatusInvalid is the common parent of all status prefix failures.
	// Both ErrStatusNotNumeric and ErrStatusOutOfRange match it via errors.Is.
	ErrStatusInvalid = errors.New("errcode: invalid status prefix")

	// ErrStatusNotNumeric is returned when the prefix is not 3 decimal digits.
	ErrStatusNotNumeric = fmt.Errorf("%w: not numeric", ErrStatusInvalid)

	// ErrStatusOutOfRange is returned when the prefix (or a status passed to
	// New / WithStatus) lies outside MinStatus..MaxStatus.
	ErrStatusOutOfRange = fmt.Errorf("%w: out of range", ErrStatusInvalid)

	// ErrStatusWidth is returned when a status does not render to exactly
	// PrefixLen decimal digits.
	ErrStatusWidth = fmt.Errorf("%w: rendering is not %d digits", ErrStatusInvalid, PrefixLen)
)

var (
	_ encoding.TextMarshaler   = Code{}
	_ encoding.TextUnmarshaler = (*Code)(nil)
	_ fmt.Stringer             = Code{}
)

// Code is a packed error code split into its status prefix and sub-code.
//
// The zero value has an empty prefix; its Status fails with ErrTooShort.
type Code struct {
	prefix string
	sub    string
}

// Parse splits s into prefix and sub-code.
//
// Only the length is checked: s must contain at least PrefixLen characters.
// The prefix itself is NOT validated, see Validate.
func Parse(s string) (Code, error) {
	i, ok := prefixEnd(s)
	if !ok {
		return Code{}, fmt.Errorf("%w: %q", ErrTooShort, s)
	}
	return Code{prefix: s[:i], sub: s[i:]}, nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// package-level sentinel values.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// New builds a code from a status and a sub-code. The status must be in
// MinStatus..MaxStatus.
func New(status int, sub string) (Code, error) {
	p, err := Format(status)
	if err != nil {
		return Code{}, err
	}
	return Code{prefix: p, sub: sub}, nil
}

// MustNew is the panic-on-error variant of New.
func MustNew(status int, sub string) Code {
	c, err := New(status, sub)
	if err != nil {
		panic(err)
	}
	return c
}

// Format renders status as a prefix. It fails when the status is outside
// MinStatus..MaxStatus or does not render to exactly PrefixLen digits.
func Format(status int) (string, error) {
	s := strconv.Itoa(status)
	if len(s) != PrefixLen {
		return "", fmt.Errorf("%w: %d", ErrStatusWidth, status)
	}
	if !ValidStatus(status) {
		return "", fmt.Errorf("%w: %d", ErrStatusOutOfRange, status)
	}
	return s, nil
}

// ValidStatus reports whether status lies in MinStatus..MaxStatus.
func ValidStatus(status int) bool {
	return status >= MinStatus && status <= MaxStatus
}

// Validate checks that c has a well-formed status prefix.
func Validate(c Code) error {
	_, err := c.Status()
	return err
}

// Status parses the prefix as a decimal status.
//
// The prefix must consist of exactly PrefixLen ASCII digits and encode a
// value in MinStatus..MaxStatus. Signs, spaces and non-ASCII digits are
// rejected.
func (c Code) Status() (int, error) {
	if c.prefix == "" {
		return 0, fmt.Errorf("%w: %q", ErrTooShort, c.sub)
	}
	// Multi-byte runes in the prefix can never be digits.
	if len(c.prefix) != PrefixLen {
		return 0, fmt.Errorf("%w: %q", ErrStatusNotNumeric, c.prefix)
	}
	n := 0
	for i := 0; i < PrefixLen; i++ {
		d := c.prefix[i]
		if d < '0' || d > '9' {
			return 0, fmt.Errorf("%w: %q", ErrStatusNotNumeric, c.prefix)
		}
		n = n*10 + int(d-'0')
	}
	if !ValidStatus(n) {
		return 0, fmt.Errorf("%w: %d", ErrStatusOutOfRange, n)
	}
	return n, nil
}

// Prefix returns the raw status prefix as received.
func (c Code) Prefix() string { return c.prefix }

// Sub returns the sub-code suffix.
func (c Code) Sub() string { return c.sub }

// IsZero reports whether c is the zero Code.
func (c Code) IsZero() bool { return c.prefix == "" && c.sub == "" }

// String returns the packed form: prefix followed by sub-code.
func (c Code) String() string { return c.prefix + c.sub }

// WithStatus returns a copy of c whose prefix renders status.
// The receiver is never modified; on error the zero Code is returned.
func (c Code) WithStatus(status int) (Code, error) {
	p, err := Format(status)
	if err != nil {
		return Code{}, err
	}
	c.prefix = p
	return c, nil
}

// WithSub returns a copy of c with the sub-code replaced. Any length is
// accepted; the prefix is kept as is.
func (c Code) WithSub(sub string) Code {
	c.sub = sub
	return c
}

// MarshalText implements encoding.TextMarshaler.
func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It uses Parse, so a
// malformed prefix is accepted but a too short value is not.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// prefixEnd returns the byte offset just past the first PrefixLen runes.
func prefixEnd(s string) (int, bool) {
	off := 0
	for n := 0; n < PrefixLen; n++ {
		if off >= len(s) {
			return 0, false
		}
		_, size := utf8.DecodeRuneInString(s[off:])
		off += size
	}
	return off, true
}
