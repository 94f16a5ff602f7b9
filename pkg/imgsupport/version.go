package imgsupport

import "strconv"

// MaxVersionComponent is the value at which a version component saturates.
const MaxVersionComponent = 999999

// Version is a "major[.minor]" browser version. The zero value is the absent
// version.
type Version struct {
	Major uint32
	Minor uint32
	valid bool
}

// V returns a present version with the given components.
func V(major, minor uint32) Version {
	return Version{Major: min(major, MaxVersionComponent), Minor: min(minor, MaxVersionComponent), valid: true}
}

// Valid reports whether the version was present in the input.
func (v Version) Valid() bool { return v.valid }

// Compare returns -1, 0 or +1 comparing major first and then minor. An absent
// version sorts below every present one.
func (v Version) Compare(o Version) int {
	switch {
	case v.valid != o.valid:
		if v.valid {
			return 1
		}
		return -1
	case v.Major != o.Major:
		if v.Major < o.Major {
			return -1
		}
		return 1
	case v.Minor != o.Minor:
		if v.Minor < o.Minor {
			return -1
		}
		return 1
	}
	return 0
}

// AtLeast reports whether v is present and greater than or equal to threshold.
func (v Version) AtLeast(threshold Version) bool {
	return v.valid && v.Compare(threshold) >= 0
}

// String formats the version as "major.minor", or "" when absent.
func (v Version) String() string {
	if !v.valid {
		return ""
	}
	return strconv.FormatUint(uint64(v.Major), 10) + "." + strconv.FormatUint(uint64(v.Minor), 10)
}

// ParseVersion reads "digits[.digits]" starting at offset. Any further dotted
// components are ignored. When no digit is found at offset the absent version
// is returned.
func ParseVersion(ua []byte, offset int) Version {
	if offset < 0 || offset >= len(ua) {
		return Version{}
	}
	major, n := readNumber(ua[offset:])
	if n == 0 {
		return Version{}
	}
	v := Version{Major: major, valid: true}
	rest := ua[offset+n:]
	if len(rest) > 1 && rest[0] == '.' {
		v.Minor, _ = readNumber(rest[1:])
	}
	return v
}

// readNumber consumes a run of ASCII digits, saturating at
// MaxVersionComponent, and returns the value with the number of bytes read.
func readNumber(b []byte) (uint32, int) {
	var n uint32
	i := 0
	for ; i < len(b); i++ {
		c := b[i]
		if c < '0' || c > '9' {
			break
		}
		if n < MaxVersionComponent {
			n = n*10 + uint32(c-'0')
			if n > MaxVersionComponent {
				n = MaxVersionComponent
			}
		}
	}
	return n, i
}
