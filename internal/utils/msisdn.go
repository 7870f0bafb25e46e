package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// mobilePattern matches Kenyan Safaricom/Airtel subscriber numbers after the
// country code and leading zero are stripped: 7XXXXXXXX or 1XXXXXXXX.
var mobilePattern = regexp.MustCompile(`^(7|1)\d{8}$`)

// NormalizeMSISDN validates a phone number and returns it in the canonical
// international format 2547XXXXXXXX / 2541XXXXXXXX.
func NormalizeMSISDN(msisdn string) (string, error) {
	// Clean the input by removing separator characters
	stripped := strings.ReplaceAll(msisdn, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.ReplaceAll(stripped, "+", "")

	// Remove the country code or the local leading zero
	if strings.HasPrefix(stripped, "254") {
		stripped = stripped[3:]
	} else if strings.HasPrefix(stripped, "0") {
		stripped = stripped[1:]
	}

	if !mobilePattern.MatchString(stripped) {
		return "", fmt.Errorf("invalid MSISDN format: %q is not a Kenyan mobile number", msisdn)
	}

	return "254" + stripped, nil
}

// IsValidMSISDN reports whether a phone number normalizes to the canonical format
func IsValidMSISDN(msisdn string) bool {
	_, err := NormalizeMSISDN(msisdn)
	return err == nil
}
