package sms

import (
	"net/url"
	"strings"
)

// Platform selects the sms: URI dialect of the receiving device.
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
)

// ComposeURI builds the platform-specific bulk-SMS deep link. iOS separates
// recipients with commas and appends the body after '&'; Android (and any
// unknown platform) uses semicolons and '?'. Phone numbers are reduced to
// digits. This is pure string construction: handing the URI to the OS gives
// no feedback about delivery and must never be treated as a send receipt.
func ComposeURI(platform Platform, phones []string, body string) string {
	numbers := make([]string, 0, len(phones))
	for _, phone := range phones {
		if digits := digitsOnly(phone); digits != "" {
			numbers = append(numbers, digits)
		}
	}

	var sb strings.Builder
	sb.WriteString("sms:")

	if platform == PlatformIOS {
		sb.WriteString(strings.Join(numbers, ","))
		sb.WriteString("&body=")
	} else {
		sb.WriteString(strings.Join(numbers, ";"))
		sb.WriteString("?body=")
	}

	sb.WriteString(url.QueryEscape(body))
	return sb.String()
}

func digitsOnly(phone string) string {
	var sb strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
