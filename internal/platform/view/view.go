package view

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
)

//go:embed templates/*.tmpl
var files embed.FS

// Renderer ejecuta los templates embebidos. Los templates se parsean
// una vez al construir el router; un error acá es error de programa,
// de ahí el Must.
type Renderer struct {
	tmpl *template.Template
}

func New() *Renderer {
	return &Renderer{
		tmpl: template.Must(template.ParseFS(files, "templates/*.tmpl")),
	}
}

// Render bufferiza antes de escribir: si el template falla a mitad de
// ejecución todavía podemos responder un 500 limpio.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
