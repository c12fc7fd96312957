package engine

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/teamfinder/internal/bot/config"
)

func defaultLimits() config.Limits {
	c := &config.Config{}
	c.LoadDefaults()
	return c.Limits
}

func TestValidateRiotID(t *testing.T) {
	l := defaultLimits()

	tests := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{"simple", "Player123#EUW", "Player123#EUW", nil},
		{"trimmed", "  Player#1  ", "Player#1", nil},
		{"spaces in name", "Big Boss#EU1", "Big Boss#EU1", nil},
		{"unicode name", "Гравець#UA", "Гравець#UA", nil},
		{"no tag", "Player", "", errFormat},
		{"empty tag", "Player#", "", errFormat},
		{"empty name", "#EUW", "", errFormat},
		{"two hashes", "Pl#ay#er", "", errFormat},
		{"space in tag", "Player#E UW", "", errFormat},
		{"too long", strings.Repeat("a", 46) + "#EUWW", "", errTooLong},
		{"at limit", strings.Repeat("a", 45) + "#EUWW", strings.Repeat("a", 45) + "#EUWW", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validateRiotID(tt.in, l)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateAge(t *testing.T) {
	l := defaultLimits()

	for age := -5; age <= 130; age++ {
		got, err := validateAge(strconv.Itoa(age), l)
		if age >= 13 && age <= 100 {
			require.NoError(t, err, "age %d", age)
			assert.Equal(t, age, got)
		} else {
			assert.ErrorIs(t, err, errRange, "age %d", age)
		}
	}

	_, err := validateAge("twenty", l)
	assert.ErrorIs(t, err, errFormat)
	_, err = validateAge("", l)
	assert.ErrorIs(t, err, errFormat)

	got, err := validateAge(" 20 ", l)
	require.NoError(t, err)
	assert.Equal(t, 20, got)
}

func TestValidateBio(t *testing.T) {
	l := defaultLimits()

	got, err := validateBio(" - ", l)
	require.NoError(t, err)
	assert.Equal(t, bioPlaceholder, got)

	got, err = validateBio("Граю на Sentinel", l)
	require.NoError(t, err)
	assert.Equal(t, "Граю на Sentinel", got)

	// Rune counting: 500 Cyrillic letters is within the limit.
	_, err = validateBio(strings.Repeat("ж", 500), l)
	assert.NoError(t, err)
	_, err = validateBio(strings.Repeat("ж", 501), l)
	assert.ErrorIs(t, err, errTooLong)
}

func TestValidateContact(t *testing.T) {
	l := defaultLimits()

	_, err := validateContact("   ", l)
	assert.ErrorIs(t, err, errEmpty)

	_, err = validateContact(strings.Repeat("x", 26), l)
	assert.ErrorIs(t, err, errTooLong)

	got, err := validateContact(" @user ", l)
	require.NoError(t, err)
	assert.Equal(t, "@user", got)
}

func TestValidateRoles(t *testing.T) {
	l := defaultLimits()

	assert.ErrorIs(t, validateRoles(nil, l), errEmpty)
	assert.NoError(t, validateRoles([]string{"Дуелянт", "Контролер"}, l))

	l.RolesTextMax = 10
	assert.ErrorIs(t, validateRoles([]string{"Дуелянт", "Контролер"}, l), errTooLong)
}

func TestToggleBounded(t *testing.T) {
	set, err := toggleBounded(nil, "a", 2)
	require.NoError(t, err)
	set, err = toggleBounded(set, "b", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, set)

	full, err := toggleBounded(set, "c", 2)
	assert.ErrorIs(t, err, errTooMany)
	assert.Equal(t, set, full)

	// Removing is allowed at the limit.
	set, err = toggleBounded(set, "a", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, set)

	// Toggling twice leaves the set unchanged.
	twice, _ := toggleBounded(set, "z", 5)
	twice, _ = toggleBounded(twice, "z", 5)
	assert.Equal(t, set, twice)
}
