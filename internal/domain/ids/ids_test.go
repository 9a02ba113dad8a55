package ids

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewULIDProducesValidULID(t *testing.T) {
	value, err := NewULID()
	require.NoError(t, err)
	require.Len(t, value, 26)
	require.NoError(t, ValidateULID(value))
}

func TestValidateULID(t *testing.T) {
	cases := []struct {
		name  string
		value string
		valid bool
	}{
		{"valid uppercase", "01HQZX3Y4K6F7G8H9J0K1M2N3P", true},
		{"valid lowercase", "01hqzx3y4k6f7g8h9j0k1m2n3p", true},
		{"valid with whitespace", "  01HQZX3Y4K6F7G8H9J0K1M2N3P  ", true},
		{"empty", "", false},
		{"too short", "01HQZX3Y4K", false},
		{"invalid characters", "01HQZX3Y4K6F7G8H9J0K1M2NIL", false},
		{"uuid", "6ba7b810-9dad-11d1-80b4-00c04fd430c8", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateULID(tc.value)
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrInvalidULID)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	require.Equal(t, "01HQZX3Y4K6F7G8H9J0K1M2N3P", Normalize(" 01hqzx3y4k6f7g8h9j0k1m2n3p "))
}
