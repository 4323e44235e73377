package payment

import (
	"strings"

	"github.com/mssola/useragent"
)

// IsMobileUserAgent reports whether a User-Agent belongs to a phone or tablet.
// Crawlers are never mobile.
func IsMobileUserAgent(ua string) bool {
	parsed := useragent.New(ua)
	return parsed.Mobile() && !parsed.Bot()
}

// IsLandlineNumber classifies Pakistani numbers. Mobile numbers are
// 03XXXXXXXXX, optionally written with a 92/+92/0092 country prefix;
// anything else is treated as a landline and cannot receive wallet payments.
func IsLandlineNumber(phone string) bool {
	digits := normalizePhone(phone)
	switch {
	case strings.HasPrefix(digits, "00923"):
		digits = "0" + digits[4:]
	case strings.HasPrefix(digits, "923"):
		digits = "0" + digits[2:]
	}
	return !(len(digits) == 11 && strings.HasPrefix(digits, "03"))
}

func normalizePhone(phone string) string {
	var sb strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
