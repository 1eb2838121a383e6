package auth

// LoginVerifier valida un intento de login. Devuelve false ante
// cualquier mismatch o campo vacío (falla cerrado).
type LoginVerifier interface {
	Verify(username, password string) bool
}
