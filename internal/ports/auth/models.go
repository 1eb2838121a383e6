package auth

// Identity representa al usuario autenticado guardado en la sesión.
type Identity struct {
	Username string
}
