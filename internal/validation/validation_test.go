package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckEnums(t *testing.T) {
	tests := []struct {
		name   string
		fields Fields
		want   error
	}{
		{"all empty", Fields{}, nil},
		{"all valid", Fields{Status: "IN PROGRESS", Priority: "MEDIUM", Category: "HOME"}, nil},
		{"bad status", Fields{Status: "DOING"}, ErrInvalidStatus},
		{"lowercase status", Fields{Status: "done"}, ErrInvalidStatus},
		{"bad priority", Fields{Priority: "URGENT"}, ErrInvalidPriority},
		{"bad category", Fields{Category: "GARDEN"}, ErrInvalidCategory},
		{"status checked first", Fields{Status: "x", Priority: "y", Category: "z"}, ErrInvalidStatus},
		{"priority before category", Fields{Priority: "y", Category: "z"}, ErrInvalidPriority},
		{"enum before date", Fields{Category: "z", DueDate: "not-a-date"}, ErrInvalidCategory},
		{"bad date", Fields{DueDate: "not-a-date"}, ErrInvalidDueDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.fields
			err := Check(&f)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestCheckRewritesDueDate(t *testing.T) {
	f := Fields{DueDate: "2021-1-21"}

	require.NoError(t, Check(&f))
	assert.Equal(t, "2021-01-21", f.DueDate)
}

func TestErrorCarriesField(t *testing.T) {
	var verr *Error
	require.True(t, errors.As(Check(&Fields{Priority: "NOPE"}), &verr))
	assert.Equal(t, "priority", verr.Field)
	assert.Equal(t, "Invalid Todo Priority", verr.Error())
}

func TestCanonicalDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2021-02-22", "2021-02-22"},
		{"2021-2-2", "2021-02-02"},
		{"2021/12/05", "2021-12-05"},
		{" 2021-04-02 ", "2021-04-02"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := CanonicalDate(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanonicalDateIdempotent(t *testing.T) {
	for _, in := range []string{"2020-01-01", "2021-12-31", "1999-07-04"} {
		once, err := CanonicalDate(in)
		require.NoError(t, err)
		twice, err := CanonicalDate(once)
		require.NoError(t, err)
		assert.Equal(t, in, once)
		assert.Equal(t, once, twice)
	}
}

func TestCanonicalDateRejects(t *testing.T) {
	for _, in := range []string{"", "   ", "not-a-date"} {
		_, err := CanonicalDate(in)
		assert.ErrorIs(t, err, ErrInvalidDueDate, "input %q", in)
	}
}
