package contacts

import "strings"

// MaxPhoneDigits is the most digits kept from any phone input.
const MaxPhoneDigits = 11

// NormalizeDigits strips everything that isn't a decimal digit & keeps at most
// MaxPhoneDigits of what's left. Extra trailing digits are dropped silently so
// the input can be fed one keystroke at a time.
func NormalizeDigits(input string) string {
	var b strings.Builder
	b.Grow(MaxPhoneDigits)

	for _, r := range input {
		if b.Len() == MaxPhoneDigits {
			break
		}
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// FormatPhoneNumber groups 11 digits as 3-4-4 and 10 digits as 3-3-4.
// Any other length is returned unchanged.
func FormatPhoneNumber(digits string) string {
	switch len(digits) {
	case 11:
		return digits[:3] + "-" + digits[3:7] + "-" + digits[7:]
	case 10:
		return digits[:3] + "-" + digits[3:6] + "-" + digits[6:]
	default:
		return digits
	}
}

// PreviewPhoneNumber returns the number as it would be stored & whether
// it has enough digits to be saved.
func PreviewPhoneNumber(raw string) (string, bool) {
	digits := NormalizeDigits(raw)
	return FormatPhoneNumber(digits), validPhoneLength(digits)
}

func validPhoneLength(digits string) bool {
	return len(digits) == 10 || len(digits) == 11
}
