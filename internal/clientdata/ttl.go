package clientdata

import "time"

// TTL constants for different data types.
// These are added to time.Now() when storing to calculate expires_at.
const (
	// Static company classification (sector/industry) rarely changes.
	TTLSecurityMetadata = 30 * 24 * time.Hour

	// Quotes are short-lived; a fresh cached quote only smooths bursts of
	// holdings requests, and a stale one is used solely as a fallback.
	TTLQuote = 10 * time.Minute
)
