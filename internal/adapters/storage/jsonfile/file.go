package jsonfile

import (
	"fmt"
	"os"
	"sync"

	json "github.com/goccy/go-json"
)

// collection es un archivo JSON con un array de registros, reescrito
// completo en cada mutación. La contrapartida del read-modify-write
// total es que el archivo es la única fuente de verdad: no hay caché
// entre requests ni nada que invalidar. El mutex serializa llamadas
// dentro del proceso; entre procesos no hay locking y gana el último
// que escribe.
type collection[T any] struct {
	mu   sync.Mutex
	path string
}

// load lee el array completo. Si el archivo no existe todavía, lo crea
// con un array vacío antes de leer. JSON corrupto es error: se propaga,
// nunca se resetea el archivo en silencio.
func (c *collection[T]) load() ([]T, error) {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("jsonfile: read %s: %w", c.path, err)
		}
		if err := os.WriteFile(c.path, []byte("[]"), 0o644); err != nil {
			return nil, fmt.Errorf("jsonfile: bootstrap %s: %w", c.path, err)
		}
		raw = []byte("[]")
	}

	items := make([]T, 0)
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("jsonfile: parse %s: %w", c.path, err)
	}
	return items, nil
}

func (c *collection[T]) save(items []T) error {
	raw, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonfile: marshal %s: %w", c.path, err)
	}
	if err := os.WriteFile(c.path, raw, 0o644); err != nil {
		return fmt.Errorf("jsonfile: write %s: %w", c.path, err)
	}
	return nil
}
