package fakegen

import (
	"database/sql/driver"
	"encoding/hex"
	"fmt"
	"strings"
)

// RFC4122Template is the layout filled by Random.UUID. Each x is a random hex
// digit and y is a random digit with its two high bits forced to 10.
const RFC4122Template = "xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx"

// UUID is the 16-byte form of a generated identifier.
type UUID [16]byte

// Variant represents the UUID variant
type Variant byte

const (
	VariantNCS Variant = iota
	VariantRFC4122
	VariantMicrosoft
	VariantFuture
)

// Nil is the nil UUID (all zeros)
var Nil UUID

// UUID returns a version 4, variant 1 UUID in canonical lowercase form,
// e.g. "49e71c40-9b21-4371-9699-2def33f62e66".
func (r *Random) UUID() string {
	return r.UUIDv4().String()
}

// UUIDv4 draws the same nibbles as UUID, in template order, and returns them
// as a UUID value.
func (r *Random) UUIDv4() UUID {
	var u UUID
	nibble := 0
	for _, c := range RFC4122Template {
		var v byte
		switch c {
		case '-':
			continue
		case 'x':
			v = byte(r.mt.Float64() * 16)
		case 'y':
			v = byte(r.mt.Float64()*16)&0x3 | 0x8
		default:
			v = byte(c - '0')
		}
		if nibble%2 == 0 {
			u[nibble/2] = v << 4
		} else {
			u[nibble/2] |= v
		}
		nibble++
	}
	return u
}

// Version returns the version nibble of the UUID
func (u UUID) Version() byte {
	return u[6] >> 4
}

// Variant returns the variant of the UUID
func (u UUID) Variant() Variant {
	switch {
	case (u[8] & 0x80) == 0x00:
		return VariantNCS
	case (u[8] & 0xc0) == 0x80:
		return VariantRFC4122
	case (u[8] & 0xe0) == 0xc0:
		return VariantMicrosoft
	default:
		return VariantFuture
	}
}

// String returns the canonical string representation of the UUID
// in the format: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
func (u UUID) String() string {
	var buf [36]byte
	encodeHex(buf[:], u)
	return string(buf[:])
}

func encodeHex(dst []byte, u UUID) {
	hex.Encode(dst[0:8], u[0:4])
	dst[8] = '-'
	hex.Encode(dst[9:13], u[4:6])
	dst[13] = '-'
	hex.Encode(dst[14:18], u[6:8])
	dst[18] = '-'
	hex.Encode(dst[19:23], u[8:10])
	dst[23] = '-'
	hex.Encode(dst[24:36], u[10:16])
}

// ParseUUID parses a canonical UUID, optionally wrapped as urn:uuid:... or
// {...}.
func ParseUUID(s string) (UUID, error) {
	var u UUID

	s = strings.TrimPrefix(s, "urn:uuid:")
	s = strings.TrimPrefix(s, "{")
	s = strings.TrimSuffix(s, "}")

	if len(s) != 36 {
		return u, ErrInvalidFormat
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return u, ErrInvalidFormat
	}
	segments := [...]struct{ dst, src [2]int }{
		{[2]int{0, 4}, [2]int{0, 8}},
		{[2]int{4, 6}, [2]int{9, 13}},
		{[2]int{6, 8}, [2]int{14, 18}},
		{[2]int{8, 10}, [2]int{19, 23}},
		{[2]int{10, 16}, [2]int{24, 36}},
	}
	for _, seg := range segments {
		if _, err := hex.Decode(u[seg.dst[0]:seg.dst[1]], []byte(s[seg.src[0]:seg.src[1]])); err != nil {
			return u, ErrInvalidFormat
		}
	}
	return u, nil
}

// MustParseUUID is like ParseUUID but panics if the string cannot be parsed.
func MustParseUUID(s string) UUID {
	u, err := ParseUUID(s)
	if err != nil {
		panic(fmt.Sprintf("fakegen: ParseUUID(%q): %v", s, err))
	}
	return u
}

// UUIDFromBytes creates a UUID from a 16-byte slice
func UUIDFromBytes(b []byte) (UUID, error) {
	var u UUID
	if len(b) != 16 {
		return u, ErrInvalidLength
	}
	copy(u[:], b)
	return u, nil
}

// IsNil returns true if the UUID is the nil UUID (all zeros)
func (u UUID) IsNil() bool {
	return u == Nil
}

// MarshalText implements the encoding.TextMarshaler interface
func (u UUID) MarshalText() ([]byte, error) {
	var buf [36]byte
	encodeHex(buf[:], u)
	return buf[:], nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface
func (u *UUID) UnmarshalText(data []byte) error {
	id, err := ParseUUID(string(data))
	if err != nil {
		return err
	}
	*u = id
	return nil
}

// Scan implements the sql.Scanner interface. It accepts the canonical text
// form or 16 raw bytes.
func (u *UUID) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		return u.UnmarshalText([]byte(src))
	case []byte:
		if id, err := UUIDFromBytes(src); err == nil {
			*u = id
			return nil
		}
		return u.UnmarshalText(src)
	default:
		return fmt.Errorf("fakegen: cannot scan type %T into UUID", src)
	}
}

// Value implements the driver.Valuer interface
func (u UUID) Value() (driver.Value, error) {
	return u.String(), nil
}
