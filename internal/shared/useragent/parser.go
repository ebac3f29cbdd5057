// Package useragent derives a human-readable device label from a User-Agent
// header, e.g. "Chrome on Windows" or "Chrome on SM-G991B".
package useragent

import (
	"strings"

	ua "github.com/mileusna/useragent"
)

// DeviceLabel returns a "Browser on OS" label. Mobile and tablet clients show
// the device model instead of the OS when the user agent carries one. Empty or
// unrecognized user agents label as "Unknown device".
func DeviceLabel(userAgent string) string {
	if strings.TrimSpace(userAgent) == "" {
		return "Unknown device"
	}

	parsed := ua.Parse(userAgent)
	if parsed.Name == "" {
		return "Unknown device"
	}

	switch {
	case (parsed.Mobile || parsed.Tablet) && parsed.Device != "":
		return parsed.Name + " on " + parsed.Device
	case parsed.OS != "":
		return parsed.Name + " on " + parsed.OS
	default:
		return parsed.Name
	}
}
