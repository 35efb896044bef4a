package validators

import (
	"errors"
	"strings"
	"unicode"
)

// BrazilCountryCode is prefixed to every normalized WhatsApp number.
const BrazilCountryCode = "55"

var (
	// ErrPhoneEmpty is returned when the number has no digits at all.
	ErrPhoneEmpty = errors.New("phone number is empty")
	// ErrPhoneLength is returned when the national number is not 10 or 11 digits.
	ErrPhoneLength = errors.New("phone number must have 10 or 11 national digits")
)

// Digits strips every non digit rune from value.
func Digits(value string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) && r <= unicode.MaxASCII {
			return r
		}
		return -1
	}, value)
}

// NormalizeWhatsApp reduces raw to "55" followed by the 10 or 11 digit
// national number. An international "00" prefix and a "55" country code
// are accepted.
func NormalizeWhatsApp(raw string) (string, error) {
	digits := Digits(strings.TrimSpace(raw))
	if digits == "" {
		return "", ErrPhoneEmpty
	}
	digits = strings.TrimPrefix(digits, "00")
	national := strings.TrimPrefix(digits, BrazilCountryCode)
	if len(national) != 10 && len(national) != 11 {
		return "", ErrPhoneLength
	}
	return BrazilCountryCode + national, nil
}

// MobilePhone returns the last eleven digits of a stored WhatsApp number, or
// an empty string when it is shorter.
func MobilePhone(whatsapp string) string {
	digits := Digits(whatsapp)
	if len(digits) < 11 {
		return ""
	}
	return digits[len(digits)-11:]
}
