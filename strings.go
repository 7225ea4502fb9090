package fakegen

import "strings"

const (
	digits           = "0123456789"
	lowercaseLetters = "abcdefghijklmnopqrstuvwxyz"
	uppercaseLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

var (
	lowerAlpha        = split(lowercaseLetters)
	upperAlpha        = split(uppercaseLetters)
	lowerAlphaNumeric = split(digits + lowercaseLetters)
	upperAlphaNumeric = split(digits + uppercaseLetters)
	lowerHexadecimal  = split(digits + lowercaseLetters[:6])
	upperHexadecimal  = split(digits + uppercaseLetters[:6])
)

func split(s string) []string {
	return strings.Split(s, "")
}

// Alpha returns Count letters, lowercase unless Uppercase is set.
//
//	r.Alpha()                              // "b"
//	r.Alpha(Count(2), Uppercase(true))     // "CD"
func (r *Random) Alpha(opts ...StringOption) string {
	spec := resolveString(opts)
	if spec.Uppercase {
		return r.draw(upperAlpha, spec.Count)
	}
	return r.draw(lowerAlpha, spec.Count)
}

// AlphaNumeric returns Count characters drawn from digits and letters.
func (r *Random) AlphaNumeric(opts ...StringOption) string {
	spec := resolveString(opts)
	if spec.Uppercase {
		return r.draw(upperAlphaNumeric, spec.Count)
	}
	return r.draw(lowerAlphaNumeric, spec.Count)
}

// Hexadecimal returns Count hex digits, prefixed with 0x (0X when uppercase)
// unless Prefix(false) is given.
func (r *Random) Hexadecimal(opts ...StringOption) string {
	spec := resolveString(opts)

	alphabet, prefix := lowerHexadecimal, "0x"
	if spec.Uppercase {
		alphabet, prefix = upperHexadecimal, "0X"
	}
	s := r.draw(alphabet, spec.Count)
	if !spec.Prefix {
		return s
	}
	return prefix + s
}

func (r *Random) draw(alphabet []string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(r.ArrayElement(alphabet...))
	}
	return sb.String()
}
