package useragent

import (
	"net/http"
	"strings"
)

type match struct {
	token   string
	exclude string
	name    string
}

// Order matters: Edge and Chrome both announce Safari.
var browsers = []match{
	{token: "Edg/", name: "Edge"},
	{token: "Firefox/", name: "Firefox"},
	{token: "Chrome/", name: "Chrome"},
	{token: "Safari/", exclude: "Chrome", name: "Safari"},
}

var systems = []match{
	{token: "Android", name: "Android"},
	{token: "iPhone", name: "iOS"},
	{token: "iPad", name: "iOS"},
	{token: "Windows", name: "Windows"},
	{token: "Mac OS X", name: "macOS"},
	{token: "Linux", name: "Linux"},
}

// Describe names the client behind a request, e.g. "Firefox 128 on Linux".
// Non-browser renderers are reported by their product token ("Go-http-client").
func Describe(r *http.Request) string {
	ua := r.Header.Get("User-Agent")
	if ua == "" {
		return "unknown client"
	}

	browser, version := "", ""
	for _, m := range browsers {
		idx := strings.Index(ua, m.token)
		if idx == -1 || (m.exclude != "" && strings.Contains(ua, m.exclude)) {
			continue
		}
		browser = m.name
		version = majorVersion(ua[idx+len(m.token):])
		break
	}
	if browser == "" {
		product, _, _ := strings.Cut(ua, "/")
		return strings.TrimSpace(product)
	}

	os := "unknown OS"
	for _, m := range systems {
		if strings.Contains(ua, m.token) {
			os = m.name
			break
		}
	}

	if version != "" {
		return browser + " " + version + " on " + os
	}
	return browser + " on " + os
}

func majorVersion(s string) string {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[:end]
}

// ClientIP returns the caller address, trusting X-Forwarded-For and
// X-Real-IP when a proxy set them.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}
