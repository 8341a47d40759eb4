package web

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/oakleafmed/medterm/internal/services/web/platform/requestmeta"
)

// ClientCookieName identifies one browser page session so lookups are
// serialized per client rather than across the whole process.
const ClientCookieName = "mt_client"

func clientID(r *http.Request) string {
	if r == nil {
		return ""
	}
	cookie, err := r.Cookie(ClientCookieName)
	if err != nil || cookie == nil {
		return ""
	}
	return strings.TrimSpace(cookie.Value)
}

// ensureClientID returns the request's client identity, minting and setting
// a new one when the request carries none.
func ensureClientID(w http.ResponseWriter, r *http.Request) string {
	if id := clientID(r); id != "" {
		return id
	}
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return ""
	}
	id := hex.EncodeToString(buf)
	http.SetCookie(w, &http.Cookie{
		Name:     ClientCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
