package server

import (
	"context"
	"net/http"

	"github.com/shahar-caura/triage/internal/session"
)

// SessionCookie names the cookie that binds a browser to its session.
const SessionCookie = "triage_session"

type sessionKey struct{}

// withSession attaches the caller's session to the request. Only a
// classification starts a new session; every other request sees the existing
// one, or none.
func withSession(store *session.Store, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id string
		if c, err := r.Cookie(SessionCookie); err == nil {
			id = c.Value
		}

		var sess *session.Session
		if startsSession(r) {
			s, created := store.GetOrCreate(id)
			if created {
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookie,
					Value:    s.ID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			sess = s
		} else if s, err := store.Get(id); err == nil {
			sess = s
		}

		if sess == nil {
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey{}, sess)))
	})
}

func startsSession(r *http.Request) bool {
	return r.Method == http.MethodPost && r.URL.Path == "/api/classify"
}

func sessionFrom(ctx context.Context) *session.Session {
	s, _ := ctx.Value(sessionKey{}).(*session.Session)
	return s
}
