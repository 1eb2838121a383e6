package middleware

import (
	"context"
	"net/http"

	"shelter-admin/internal/ports/auth"

	"github.com/gorilla/sessions"
)

const sessionName = "shelter_admin"

type ctxKey string

const identityKey ctxKey = "identity"

// SessionManager envuelve el cookie store firmado. Solo login/logout
// mutan la sesión; RequireSession únicamente la lee.
type SessionManager struct {
	store sessions.Store
}

func NewSessionManager(secret string) *SessionManager {
	store := sessions.NewCookieStore([]byte(secret))
	// El default del store es Secure+SameSite=None y el sitio se sirve
	// por HTTP plano: el navegador nunca reenviaría la cookie y ninguna
	// ruta gateada sería alcanzable tras el login.
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionManager{store: store}
}

func (m *SessionManager) SignIn(w http.ResponseWriter, r *http.Request, username string) error {
	s, _ := m.store.Get(r, sessionName)
	s.Values["user"] = username
	return s.Save(r, w)
}

func (m *SessionManager) SignOut(w http.ResponseWriter, r *http.Request) error {
	s, _ := m.store.Get(r, sessionName)
	delete(s.Values, "user")
	s.Options.MaxAge = -1
	return s.Save(r, w)
}

// RequireSession corta con redirect a /login si la sesión no trae
// usuario; si lo trae, deja la identidad en el contexto del request.
func (m *SessionManager) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := m.currentUser(r)
		if !ok {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, auth.Identity{Username: user})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *SessionManager) currentUser(r *http.Request) (string, bool) {
	s, err := m.store.Get(r, sessionName)
	if err != nil {
		// Cookie ilegible o mal firmada: tratar como no autenticado.
		return "", false
	}
	user, ok := s.Values["user"].(string)
	if !ok || user == "" {
		return "", false
	}
	return user, true
}

func GetIdentity(ctx context.Context) (auth.Identity, bool) {
	v := ctx.Value(identityKey)
	if v == nil {
		return auth.Identity{}, false
	}
	id, ok := v.(auth.Identity)
	return id, ok
}
