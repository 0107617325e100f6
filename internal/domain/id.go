package domain

import (
	"fmt"
	"strconv"
)

// ID is a 64-bit database identifier. It serializes to JSON as a decimal
// string so that clients working with double-precision numbers never lose
// precision on large identifiers. Unmarshalling accepts both a quoted
// decimal string and a plain JSON number, since foreign-key fields arrive
// in either form depending on the client.
type ID int64

// Int64 returns the identifier as a plain int64.
func (id ID) Int64() int64 {
	return int64(id)
}

// String returns the decimal representation of the identifier.
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// MarshalJSON encodes the identifier as a quoted decimal string.
func (id ID) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, strconv.FormatInt(int64(id), 10)), nil
}

// UnmarshalJSON decodes a quoted decimal string or a plain JSON number.
func (id *ID) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidID, s)
		}
		s = unquoted
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidID, s)
	}

	*id = ID(n)
	return nil
}

// ParseID parses a decimal string (e.g. a URL path segment) into an ID.
func ParseID(s string) (ID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return ID(n), nil
}
