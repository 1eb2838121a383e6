package postgres

import (
	json "github.com/goccy/go-json"
)

// Los campos multivalor (health, preferences...) van como JSON en una
// columna TEXT; son listas chicas y nunca se consultan por elemento.

func encodeList(in []string) string {
	if len(in) == 0 {
		return "[]"
	}
	raw, err := json.Marshal(in)
	if err != nil {
		return "[]"
	}
	return string(raw)
}

func decodeList(raw string) ([]string, error) {
	if raw == "" || raw == "[]" {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, err
	}
	return out, nil
}
