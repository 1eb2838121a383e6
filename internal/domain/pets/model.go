package pets

// Pet representa un animal del refugio disponible para adopción.
// El ID es el instante de alta en milisegundos; también hace de
// "fecha de creación" para las estadísticas del dashboard.
type Pet struct {
	ID int64 `json:"id"`

	Name   string `json:"name"`
	Type   string `json:"type"` // dog, cat... texto libre
	Breed  string `json:"breed,omitempty"`
	Age    string `json:"age,omitempty"`
	Gender string `json:"gender,omitempty"`
	Weight string `json:"weight,omitempty"`
	Photo  string `json:"photo,omitempty"`
	About  string `json:"about,omitempty"`

	Health       []string `json:"health,omitempty"`
	SpecialNeeds []string `json:"specialNeeds,omitempty"`
}
