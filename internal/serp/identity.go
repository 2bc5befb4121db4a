package serp

import (
	"math/rand"
	"net/http"
)

// identityProfile is one browser-like header set. Engines throttle repeat
// identities aggressively, so each request picks a fresh profile.
type identityProfile struct {
	userAgent      string
	acceptLanguage string
	accept         string
}

func (p identityProfile) apply(req *http.Request) {
	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept-Language", p.acceptLanguage)
	req.Header.Set("Accept", p.accept)
	req.Header.Set("Cache-Control", "no-cache")
}

type identityPool struct {
	profiles []identityProfile
}

func (ip *identityPool) pick() identityProfile {
	return ip.profiles[rand.Intn(len(ip.profiles))]
}

const htmlAccept = "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8"

func defaultIdentities() *identityPool {
	return &identityPool{profiles: []identityProfile{
		{
			userAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36",
			acceptLanguage: "en-US,en;q=0.9",
			accept:         htmlAccept,
		},
		{
			userAgent:      "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.3 Safari/605.1.15",
			acceptLanguage: "en-US,en;q=0.8",
			accept:         htmlAccept,
		},
		{
			userAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:123.0) Gecko/20100101 Firefox/123.0",
			acceptLanguage: "en-GB,en;q=0.9",
			accept:         htmlAccept,
		},
		{
			userAgent:      "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36",
			acceptLanguage: "en-US,en;q=0.7",
			accept:         htmlAccept,
		},
		{
			userAgent:      "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36",
			acceptLanguage: "en-US,en;q=0.9,de;q=0.5",
			accept:         htmlAccept,
		},
	}}
}
