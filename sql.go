package charabia

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"encoding/json"
	"fmt"
)

// Sheltered is a plaintext string whose external representations (SQL
// values, JSON, text) are encoded under the Default codec while the
// in-memory value stays raw. Encoding is deterministic (EncodeFixed) so
// equal values compare equal in the database. Every conversion fails with
// ErrNotConfigured until Configure has been called.
type Sheltered string

// Compile-time interface checks for Sheltered
var (
	_ driver.Valuer            = Sheltered("")
	_ sql.Scanner              = (*Sheltered)(nil)
	_ encoding.TextMarshaler   = Sheltered("")
	_ encoding.TextUnmarshaler = (*Sheltered)(nil)
	_ json.Marshaler           = Sheltered("")
	_ json.Unmarshaler         = (*Sheltered)(nil)
)

// Value implements driver.Valuer; the database stores the encoded form.
func (s Sheltered) Value() (driver.Value, error) {
	encoded, err := EncodeFixed(string(s))
	if err != nil {
		return nil, err
	}
	return encoded, nil
}

// Scan implements sql.Scanner, decoding the stored representation.
func (s *Sheltered) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*s = ""
		return nil
	case string:
		return s.decodeInto(v)
	case []byte:
		return s.decodeInto(string(v))
	default:
		return fmt.Errorf("charabia: cannot scan %T", src)
	}
}

func (s *Sheltered) decodeInto(encoded string) error {
	decoded, err := Decode(encoded)
	if err != nil {
		return err
	}
	*s = Sheltered(decoded)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Sheltered) MarshalText() ([]byte, error) {
	encoded, err := EncodeFixed(string(s))
	if err != nil {
		return nil, err
	}
	return []byte(encoded), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Sheltered) UnmarshalText(b []byte) error {
	return s.decodeInto(string(b))
}

// MarshalJSON marshals the encoded form as a JSON string. Encoded text is
// letters plus alphanumeric separators, so it never needs escaping.
func (s Sheltered) MarshalJSON() ([]byte, error) {
	encoded, err := EncodeFixed(string(s))
	if err != nil {
		return nil, err
	}
	return []byte(`"` + encoded + `"`), nil
}

// UnmarshalJSON unmarshals and decodes a JSON string.
func (s *Sheltered) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*s = ""
		return nil
	}
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("%w: invalid JSON string", ErrMalformedInput)
	}
	return s.decodeInto(string(b[1 : len(b)-1]))
}

// NullSheltered can be used with the standard sql package to represent a
// Sheltered value that can be NULL in the database.
type NullSheltered struct {
	Sheltered Sheltered
	Valid     bool
}

// Compile-time interface checks for NullSheltered
var (
	_ driver.Valuer            = NullSheltered{}
	_ sql.Scanner              = (*NullSheltered)(nil)
	_ json.Marshaler           = NullSheltered{}
	_ json.Unmarshaler         = (*NullSheltered)(nil)
	_ encoding.TextMarshaler   = NullSheltered{}
	_ encoding.TextUnmarshaler = (*NullSheltered)(nil)
)

// Value implements the driver.Valuer interface.
func (n NullSheltered) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Sheltered.Value()
}

// Scan implements the sql.Scanner interface.
func (n *NullSheltered) Scan(src interface{}) error {
	if src == nil {
		n.Sheltered, n.Valid = "", false
		return nil
	}
	err := n.Sheltered.Scan(src)
	n.Valid = (err == nil)
	return err
}

var nullJSON = []byte("null")

// MarshalJSON marshals the NullSheltered as null or the encoded string.
func (n NullSheltered) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return nullJSON, nil
	}
	return n.Sheltered.MarshalJSON()
}

// UnmarshalJSON unmarshals a NullSheltered.
func (n *NullSheltered) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		n.Sheltered, n.Valid = "", false
		return nil
	}
	err := n.Sheltered.UnmarshalJSON(b)
	n.Valid = (err == nil)
	return err
}

// MarshalText implements encoding.TextMarshaler.
func (n NullSheltered) MarshalText() ([]byte, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Sheltered.MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *NullSheltered) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		n.Sheltered, n.Valid = "", false
		return nil
	}
	err := n.Sheltered.UnmarshalText(b)
	n.Valid = (err == nil)
	return err
}
