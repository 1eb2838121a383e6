package idgen

import (
	"sync"
	"time"
)

var (
	mu   sync.Mutex
	last int64
)

// NextMillis devuelve el instante actual en milisegundos desde epoch.
// Si dos llamadas caen en el mismo milisegundo, la segunda avanza en 1:
// los IDs de registro derivan de aquí y deben ser únicos dentro del proceso.
func NextMillis() int64 {
	mu.Lock()
	defer mu.Unlock()

	now := time.Now().UnixMilli()
	if now <= last {
		now = last + 1
	}
	last = now
	return now
}
