package httputil

import (
	"errors"
	"net/http"
	"strings"
	"time"
)

const TableCookieName = "table_token"

var ErrNoToken = errors.New("no table token found in cookie, header or query")

func SetTableCookie(w http.ResponseWriter, token string, ttl time.Duration, isProduction bool) {
	cookie := &http.Cookie{
		Name:     TableCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   isProduction, // Only require HTTPS in production
	}

	// SameSite=None requires Secure=true, so use Lax for development
	if isProduction {
		cookie.SameSite = http.SameSiteNoneMode
	} else {
		cookie.SameSite = http.SameSiteLaxMode // Works for localhost without HTTPS
	}

	http.SetCookie(w, cookie)
}

func ClearTableCookie(w http.ResponseWriter) {
	cookie := &http.Cookie{
		Name:     TableCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	}

	http.SetCookie(w, cookie)
}

// GetTokenFromCookie extracts the table token from its cookie
func GetTokenFromCookie(r *http.Request) (string, error) {
	cookie, err := r.Cookie(TableCookieName)
	if err != nil {
		return "", errors.New("table cookie not found")
	}

	if cookie.Value == "" {
		return "", errors.New("table cookie is empty")
	}

	return cookie.Value, nil
}

// GetTokenFromRequest looks at the cookie, then the Authorization header, then
// the token query parameter (browsers cannot set headers on a WebSocket upgrade).
func GetTokenFromRequest(r *http.Request) (string, error) {
	token, err := GetTokenFromCookie(r)
	if err == nil && token != "" {
		return token, nil
	}

	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		// Support "Bearer <token>" format
		if strings.HasPrefix(authHeader, "Bearer ") {
			return strings.TrimPrefix(authHeader, "Bearer "), nil
		}
		return authHeader, nil
	}

	if token := r.URL.Query().Get("token"); token != "" {
		return token, nil
	}

	return "", ErrNoToken
}
