package snowflake

import (
	"database/sql/driver"
	"encoding/hex"
	"fmt"
	"time"

	"lukechampine.com/uint128"
)

// ID is a 128-bit snowflake. The zero value is a valid ID: a Generator for
// node 0 and API version 0 issues it for entity type 0 in the Epoch
// millisecond. Check the error, not IsNil, to tell whether Generate failed.
type ID uint128.Uint128

// maxDecimalLen is the length of the largest 128-bit value in base 10.
const maxDecimalLen = 39

// Nil is the zero ID, returned alongside errors.
var Nil ID

// String returns the base-10 representation of the ID.
func (id ID) String() string {
	return uint128.Uint128(id).String()
}

// Hex returns the 32-character lowercase hexadecimal form of the ID.
func (id ID) Hex() string {
	return hex.EncodeToString(id.Bytes())
}

// Bytes returns the ID as 16 big-endian bytes. Byte-wise comparison of the
// result orders IDs the same way Compare does.
func (id ID) Bytes() []byte {
	b := make([]byte, 16)
	uint128.Uint128(id).PutBytesBE(b)
	return b
}

// Fields decodes the ID.
func (id ID) Fields() Fields {
	return Decode(id)
}

// Timestamp returns the milliseconds since Epoch carried by the ID.
func (id ID) Timestamp() uint64 {
	return id.Hi
}

// Time returns the wall-clock time at which the ID was generated.
func (id ID) Time() time.Time {
	return Time(id.Hi)
}

// IsNil reports whether id is the zero ID.
func (id ID) IsNil() bool {
	return id == Nil
}

// Compare returns -1, 0 or +1 depending on whether id is less than, equal to
// or greater than other.
func (id ID) Compare(other ID) int {
	return uint128.Uint128(id).Cmp(uint128.Uint128(other))
}

// Parse parses the base-10 form produced by String.
func Parse(s string) (ID, error) {
	if len(s) == 0 || len(s) > maxDecimalLen || !isDecimal([]byte(s)) {
		return Nil, ErrInvalidFormat
	}
	v, err := uint128.FromString(s)
	if err != nil {
		return Nil, ErrInvalidFormat
	}
	return ID(v), nil
}

func isDecimal(b []byte) bool {
	for _, c := range b {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// MustParse is like Parse but panics if the string cannot be parsed.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("snowflake: Parse(%q): %v", s, err))
	}
	return id
}

// ParseHex parses the 32-character hexadecimal form produced by Hex.
func ParseHex(s string) (ID, error) {
	if len(s) != 32 {
		return Nil, ErrInvalidFormat
	}
	var b [16]byte
	if _, err := hex.Decode(b[:], []byte(s)); err != nil {
		return Nil, ErrInvalidFormat
	}
	return ID(uint128.FromBytesBE(b[:])), nil
}

// FromBytes creates an ID from 16 big-endian bytes.
func FromBytes(b []byte) (ID, error) {
	if len(b) != 16 {
		return Nil, ErrInvalidLength
	}
	return ID(uint128.FromBytesBE(b)), nil
}

// MarshalText implements the encoding.TextMarshaler interface. JSON encodes
// IDs as decimal strings because most JSON consumers cannot hold 128-bit
// numbers.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface
func (id *ID) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (id ID) MarshalBinary() ([]byte, error) {
	return id.Bytes(), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (id *ID) UnmarshalBinary(data []byte) error {
	parsed, err := FromBytes(data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Scan implements the sql.Scanner interface. It accepts the decimal form,
// the 16-byte binary form, and non-negative integers. A 16-byte value made
// only of ASCII digits is read as decimal.
func (id *ID) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		*id = Nil
		return nil
	case string:
		return id.UnmarshalText([]byte(src))
	case []byte:
		if len(src) == 16 && !isDecimal(src) {
			return id.UnmarshalBinary(src)
		}
		if len(src) == 0 {
			*id = Nil
			return nil
		}
		return id.UnmarshalText(src)
	case int64:
		if src < 0 {
			return fmt.Errorf("snowflake: cannot scan negative integer %d into ID", src)
		}
		*id = ID(uint128.From64(uint64(src)))
		return nil
	default:
		return fmt.Errorf("snowflake: cannot scan type %T into ID", src)
	}
}

// Value implements the driver.Valuer interface. IDs are stored in their
// decimal form, which fits NUMERIC(39) and text columns alike.
func (id ID) Value() (driver.Value, error) {
	return id.String(), nil
}
