// Package apiversion describes API versions and the descriptions that drive per-version documentation.
package apiversion

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidVersion is returned when an API version string can not be parsed.
var ErrInvalidVersion = errors.New("invalid API version")

// Version identifies a revision of the API surface.
type Version struct {
	Major  int
	Minor  int
	Status string // Optional, e.g. "beta".
}

// New creates a version without status.
func New(major, minor int) Version {
	return Version{Major: major, Minor: minor}
}

// Parse reads version from "1", "1.0", "v2.1" or "1.0-beta" forms.
func Parse(s string) (Version, error) {
	var v Version

	raw := strings.TrimSpace(s)
	if strings.HasPrefix(raw, "v") || strings.HasPrefix(raw, "V") {
		raw = raw[1:]
	}

	if raw == "" {
		return v, fmt.Errorf("%w: empty value", ErrInvalidVersion)
	}

	if num, status, ok := strings.Cut(raw, "-"); ok {
		if status == "" {
			return v, fmt.Errorf("%w: %q has empty status", ErrInvalidVersion, s)
		}

		raw = num
		v.Status = status
	}

	majorPart, minorPart, hasMinor := strings.Cut(raw, ".")

	major, err := parsePart(majorPart)
	if err != nil {
		return Version{}, fmt.Errorf("%w: %q major: %v", ErrInvalidVersion, s, err)
	}

	v.Major = major

	if hasMinor {
		minor, err := parsePart(minorPart)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q minor: %v", ErrInvalidVersion, s, err)
		}

		v.Minor = minor
	}

	return v, nil
}

// MustParse parses version or panics.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return v
}

func parsePart(s string) (int, error) {
	if s == "" {
		return 0, errors.New("empty number")
	}

	// Atoi accepts a leading sign.
	if strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return 0, fmt.Errorf("%q is not a non-negative number", s)
	}

	return strconv.Atoi(s)
}

// String returns canonical form, e.g. "1.0" or "2.0-beta".
func (v Version) String() string {
	s := strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor)

	if v.Status != "" {
		s += "-" + v.Status
	}

	return s
}

// Compare returns -1, 0 or 1 when v is less than, equal to or greater than other.
//
// Version with status precedes the same version without status.
func (v Version) Compare(other Version) int {
	switch {
	case v.Major != other.Major:
		return cmpInt(v.Major, other.Major)
	case v.Minor != other.Minor:
		return cmpInt(v.Minor, other.Minor)
	case v.Status == other.Status:
		return 0
	case v.Status == "":
		return 1
	case other.Status == "":
		return -1
	default:
		return strings.Compare(v.Status, other.Status)
	}
}

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}

	return 1
}

// MarshalText implements encoding.TextMarshaler.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Version) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}

// ParseVersions parses a list of version strings, empty values are skipped.
func ParseVersions(values []string) ([]Version, error) {
	res := make([]Version, 0, len(values))

	for _, s := range values {
		if strings.TrimSpace(s) == "" {
			continue
		}

		v, err := Parse(s)
		if err != nil {
			return nil, err
		}

		res = append(res, v)
	}

	return res, nil
}
