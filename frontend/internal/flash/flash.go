// Package flash carries one-shot notifications across a redirect in cookies.
package flash

import (
	"encoding/base64"
	"net/http"
)

// Kind selects the cookie a message travels in.
type Kind string

// Success is rendered as a toast on the next page.
const Success Kind = "flash_success"

const maxAge = 300 // seconds, enough for the redirect round trip

type Flash struct {
	SecureCookies bool
}

// Set stores msg for the next page render. The value is base64 encoded so
// any message survives cookie syntax.
func (f Flash) Set(w http.ResponseWriter, kind Kind, msg string) {
	http.SetCookie(w, &http.Cookie{
		Name:     string(kind),
		Value:    base64.StdEncoding.EncodeToString([]byte(msg)),
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   f.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// Pop returns the pending message of the given kind and expires its cookie.
// It returns "" when there is none or the cookie is not valid base64.
func (f Flash) Pop(w http.ResponseWriter, r *http.Request, kind Kind) string {
	cookie, err := r.Cookie(string(kind))
	if err != nil {
		return ""
	}
	http.SetCookie(w, &http.Cookie{
		Name:     string(kind),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   f.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	msg, err := base64.StdEncoding.DecodeString(cookie.Value)
	if err != nil {
		return ""
	}
	return string(msg)
}
