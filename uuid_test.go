package fakegen

import (
	"encoding/json"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rfc4122v4 = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func TestRandom_UUIDDeterministic(t *testing.T) {
	r := NewWithSeed(42)
	assert.Equal(t, "5cf2bc99-2721-407d-992b-a00fbdf302f2", r.UUID())
	assert.Equal(t, "94980604-8962-404f-9371-c9368f970d9a", r.UUID())
}

func TestRandom_UUIDConformance(t *testing.T) {
	r := NewWithSeed(2)
	for i := 0; i < 1000; i++ {
		s := r.UUID()
		require.Regexp(t, rfc4122v4, s)

		parsed, err := uuid.Parse(s)
		require.NoError(t, err)
		require.Equal(t, uuid.Version(4), parsed.Version())
		require.Equal(t, uuid.RFC4122, parsed.Variant())
	}
}

func TestRandom_UUIDv4MatchesString(t *testing.T) {
	a, b := NewWithSeed(77), NewWithSeed(77)
	for i := 0; i < 100; i++ {
		u := a.UUIDv4()
		require.Equal(t, b.UUID(), u.String())
		require.Equal(t, byte(4), u.Version())
		require.Equal(t, VariantRFC4122, u.Variant())
		require.False(t, u.IsNil())
	}
}

func TestParseUUID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:  "canonical format",
			input: "f47ac10b-58cc-4372-a567-0e02b2c3d479",
		},
		{
			name:  "with URN prefix",
			input: "urn:uuid:f47ac10b-58cc-4372-a567-0e02b2c3d479",
		},
		{
			name:  "with braces",
			input: "{f47ac10b-58cc-4372-a567-0e02b2c3d479}",
		},
		{
			name:    "wrong length",
			input:   "f47ac10b-58cc-4372-a567",
			wantErr: true,
		},
		{
			name:    "invalid hex",
			input:   "g47ac10b-58cc-4372-a567-0e02b2c3d479",
			wantErr: true,
		},
		{
			name:    "wrong hyphen position",
			input:   "f47ac10b58cc-4372-a567-0e02b2c3d4799",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := ParseUUID(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "f47ac10b-58cc-4372-a567-0e02b2c3d479", u.String())
		})
	}
}

func TestMustParseUUID(t *testing.T) {
	assert.NotPanics(t, func() { MustParseUUID("f47ac10b-58cc-4372-a567-0e02b2c3d479") })
	assert.Panics(t, func() { MustParseUUID("nope") })
}

func TestUUIDFromBytes(t *testing.T) {
	_, err := UUIDFromBytes([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidLength)

	u, err := UUIDFromBytes(make([]byte, 16))
	require.NoError(t, err)
	assert.True(t, u.IsNil())
}

func TestUUID_JSON(t *testing.T) {
	u := NewWithSeed(42).UUIDv4()

	data, err := json.Marshal(struct{ ID UUID }{u})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ID":"5cf2bc99-2721-407d-992b-a00fbdf302f2"}`, string(data))

	var back struct{ ID UUID }
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, u, back.ID)
}

func TestUUID_ScanValue(t *testing.T) {
	u := NewWithSeed(42).UUIDv4()

	v, err := u.Value()
	require.NoError(t, err)
	assert.Equal(t, "5cf2bc99-2721-407d-992b-a00fbdf302f2", v)

	tests := []struct {
		name    string
		src     interface{}
		want    UUID
		wantErr bool
	}{
		{name: "string", src: u.String(), want: u},
		{name: "text bytes", src: []byte(u.String()), want: u},
		{name: "raw bytes", src: u[:], want: u},
		{name: "nil", src: nil, want: Nil},
		{name: "unsupported type", src: 42, wantErr: true},
		{name: "bad string", src: "xyz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got UUID
			err := got.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUUID_Variant(t *testing.T) {
	tests := []struct {
		b8   byte
		want Variant
	}{
		{0x00, VariantNCS},
		{0x80, VariantRFC4122},
		{0xc0, VariantMicrosoft},
		{0xe0, VariantFuture},
	}
	for _, tt := range tests {
		var u UUID
		u[8] = tt.b8
		assert.Equal(t, tt.want, u.Variant(), "byte 8 = %#x", tt.b8)
	}
}
