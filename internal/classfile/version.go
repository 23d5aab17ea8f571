package classfile

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a class-file format version.
type Version struct {
	Major uint16
	Minor uint16
}

// DefaultVersion is 52.0, the Java 8 class-file level.
var DefaultVersion = Version{Major: 52, Minor: 0}

// firstReleaseMajor is the major version of Java 5; later releases add one.
const firstReleaseMajor = 49

// ParseVersion parses "major" or "major.minor".
func ParseVersion(s string) (Version, error) {
	majorStr, minorStr, hasMinor := strings.Cut(strings.TrimSpace(s), ".")

	major, err := strconv.ParseUint(majorStr, 10, 16)
	if err != nil {
		return Version{}, fmt.Errorf("invalid class version %q: bad major version", s)
	}

	var minor uint64
	if hasMinor {
		minor, err = strconv.ParseUint(minorStr, 10, 16)
		if err != nil {
			return Version{}, fmt.Errorf("invalid class version %q: bad minor version", s)
		}
	}

	return Version{Major: uint16(major), Minor: uint16(minor)}, nil
}

// String returns "major.minor".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// JavaRelease returns the Java SE release that introduced the major
// version, or 0 for versions older than Java 5.
func (v Version) JavaRelease() int {
	if v.Major < firstReleaseMajor {
		return 0
	}

	return int(v.Major) - firstReleaseMajor + 5
}
