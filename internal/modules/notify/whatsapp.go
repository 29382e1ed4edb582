package notify

import (
	"net/url"
	"strings"
)

// WhatsAppLink builds a wa.me deep link for a phone number and message. The
// number is reduced to digits only; wa.me rejects anything else. Spaces are
// encoded as %20, not "+", so WhatsApp renders them literally.
func WhatsAppLink(phone, message string) string {
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + digitsOnly(phone) + "?text=" + text
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
