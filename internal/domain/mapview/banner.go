package mapview

import (
	"strings"
	"time"
)

// BannerKind classifies a transient banner layered over the map.
type BannerKind string

const (
	BannerLoading BannerKind = "loading"
	BannerNoRoute BannerKind = "no_route"
	BannerError   BannerKind = "error"
)

// Banner display durations. Loading banners have no expiry; they are replaced
// when the planning cycle that created them finishes.
const (
	NoRouteBannerTTL = 5 * time.Second
	ErrorBannerTTL   = 7 * time.Second
)

// Banner is a transient, auto-dismissing message layered over the map.
type Banner struct {
	Kind      BannerKind `json:"kind"`
	Message   string     `json:"message"`
	Help      string     `json:"help,omitempty"`
	ExpiresAt time.Time  `json:"expires_at,omitempty"`
}

// Active returns true if the banner should still be shown at the given time.
func (b Banner) Active(now time.Time) bool {
	return b.ExpiresAt.IsZero() || now.Before(b.ExpiresAt)
}

// NewLoadingBanner creates the "planning route" indicator.
func NewLoadingBanner() Banner {
	return Banner{Kind: BannerLoading, Message: "Planning route..."}
}

// NewNoRouteBanner creates the advisory shown when endpoints resolved but no
// path was found. Dismisses after 5 seconds.
func NewNoRouteBanner(now time.Time) Banner {
	return Banner{
		Kind:      BannerNoRoute,
		Message:   "Could not find a route between these locations",
		Help:      "Try locations that are closer together or on the same continent.",
		ExpiresAt: now.Add(NoRouteBannerTTL),
	}
}

// NewErrorBanner creates the error banner for a failed planning cycle, with
// help text chosen by matching keywords in the failure message. Dismisses
// after 7 seconds.
func NewErrorBanner(now time.Time, message string) Banner {
	return Banner{
		Kind:      BannerError,
		Message:   "Error planning route: " + message,
		Help:      helpTextFor(message),
		ExpiresAt: now.Add(ErrorBannerTTL),
	}
}

func helpTextFor(message string) string {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "source or destination"):
		return "Please enter both starting point and destination."
	case strings.Contains(lower, "coordinate"):
		return "Try entering more specific location names."
	case strings.Contains(lower, "timed out"), strings.Contains(lower, "timeout"):
		return "The routing service is taking too long to respond. Please try again."
	default:
		return "Please try different locations or check your connection."
	}
}
