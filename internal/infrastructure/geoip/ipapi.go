// Package geoip resolves a coarse geographic label for an IP address using
// the ip-api.com JSON endpoint. Lookups are best effort: every failure path
// degrades to a label, never an error the login flow would see.
package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"sitios/internal/shared/logger"
)

const (
	defaultBaseURL = "http://ip-api.com/json"
	// Maximum response body size for the lookup API (16KB)
	maxResponseSize = 16 << 10

	// LabelLocal is used for loopback and private addresses that an external
	// lookup cannot resolve.
	LabelLocal = "Local Network"
	// LabelUnknown is used when the lookup fails or returns nothing useful.
	LabelUnknown = "Unknown location"
)

type lookupResponse struct {
	Status  string `json:"status"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// Resolver looks up a human-readable location for an IP.
type Resolver interface {
	Locate(ctx context.Context, ip string) string
}

// IPAPIResolver implements Resolver against ip-api.com.
type IPAPIResolver struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Interface
}

func NewIPAPIResolver(baseURL string, timeout time.Duration, logger logger.Interface) *IPAPIResolver {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &IPAPIResolver{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

var _ Resolver = (*IPAPIResolver)(nil)

// Locate returns "City, Country" for the IP, LabelLocal for loopback and
// private ranges, and LabelUnknown on any failure.
func (r *IPAPIResolver) Locate(ctx context.Context, ip string) string {
	if isLocalAddress(ip) {
		return LabelLocal
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s", r.baseURL, ip), nil)
	if err != nil {
		return LabelUnknown
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.logger.Warnw("geoip lookup failed", "ip", ip, "error", err)
		return LabelUnknown
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.logger.Warnw("geoip lookup returned non-OK status", "ip", ip, "status", resp.StatusCode)
		return LabelUnknown
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return LabelUnknown
	}

	var result lookupResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return LabelUnknown
	}

	if result.Status != "success" {
		return LabelUnknown
	}

	label := strings.TrimSpace(strings.Trim(fmt.Sprintf("%s, %s", result.City, result.Country), ", "))
	if label == "" {
		return LabelUnknown
	}
	return label
}

// isLocalAddress reports whether the IP is loopback, private, or unparseable.
func isLocalAddress(ip string) bool {
	if ip == "" || ip == "::1" || strings.HasPrefix(ip, "127.") {
		return true
	}
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return true
	}
	return parsed.IsLoopback() || parsed.IsPrivate() || parsed.IsLinkLocalUnicast()
}
