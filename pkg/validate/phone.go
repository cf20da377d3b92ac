package validate

import (
	"regexp"
	"strings"
)

var (
	phonePattern = regexp.MustCompile(`^(\+7|7|8)?[\s\-]?\(?[489][0-9]{2}\)?[\s\-]?[0-9]{3}[\s\-]?[0-9]{2}[\s\-]?[0-9]{2}$`)
	nonDigits    = regexp.MustCompile(`\D`)
)

func IsPhone(s string) bool {
	return phonePattern.MatchString(strings.TrimSpace(s))
}

// NormalizePhone brings a valid phone number to the +7XXXXXXXXXX form.
func NormalizePhone(s string) string {
	digits := nonDigits.ReplaceAllString(s, "")
	switch {
	case strings.HasPrefix(digits, "8") && len(digits) == 11:
		digits = "7" + digits[1:]
	case len(digits) == 10:
		digits = "7" + digits
	}
	return "+" + digits
}
