package engine

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/teamfinder/internal/bot/config"
	"github.com/dmitrijs2005/teamfinder/internal/bot/session"
)

// riotIDPattern is name#tag: a name without '#' and a tag without '#' or whitespace.
var riotIDPattern = regexp.MustCompile(`^[^#]+#[^#\s]+$`)

var (
	errFormat  = errors.New("bad format")
	errTooLong = errors.New("too long")
	errRange   = errors.New("out of range")
	errEmpty   = errors.New("empty")
	errTooMany = errors.New("too many")
)

// validateRiotID returns the trimmed id.
func validateRiotID(s string, l config.Limits) (string, error) {
	s = strings.TrimSpace(s)
	if !riotIDPattern.MatchString(s) {
		return "", errFormat
	}
	if utf8.RuneCountInString(s) > l.RiotIDMax {
		return "", errTooLong
	}
	return s, nil
}

func validateAge(s string, l config.Limits) (int, error) {
	age, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errFormat, err)
	}
	if age < l.AgeMin || age > l.AgeMax {
		return 0, errRange
	}
	return age, nil
}

// validateBio maps "-" to the placeholder.
func validateBio(s string, l config.Limits) (string, error) {
	s = strings.TrimSpace(s)
	if s == "-" {
		return bioPlaceholder, nil
	}
	if utf8.RuneCountInString(s) > l.BioMax {
		return "", errTooLong
	}
	return s, nil
}

func validateContact(s string, l config.Limits) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errEmpty
	}
	if utf8.RuneCountInString(s) > l.ContactMax {
		return "", errTooLong
	}
	return s, nil
}

// validateRoles checks the selection before leaving the roles step.
func validateRoles(roles []string, l config.Limits) error {
	if len(roles) == 0 {
		return errEmpty
	}
	if utf8.RuneCountInString(strings.Join(roles, ", ")) > l.RolesTextMax {
		return errTooLong
	}
	return nil
}

// toggleBounded flips v in set. Adding beyond limit fails and leaves set as is.
func toggleBounded(set []string, v string, limit int) ([]string, error) {
	if !slices.Contains(set, v) && len(set) >= limit {
		return set, errTooMany
	}
	return session.Toggle(set, v), nil
}
