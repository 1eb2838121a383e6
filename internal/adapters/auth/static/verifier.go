package static

import "shelter-admin/internal/ports/auth"

// Verifier compara contra exactamente una credencial configurada.
// Sin hashing ni lockout: el sitio es interno para staff y la
// credencial llega por configuración.
type Verifier struct {
	username string
	password string
}

func NewVerifier(username, password string) *Verifier {
	return &Verifier{username: username, password: password}
}

var _ auth.LoginVerifier = (*Verifier)(nil)

func (v *Verifier) Verify(username, password string) bool {
	if username == "" || password == "" {
		return false
	}
	return username == v.username && password == v.password
}
