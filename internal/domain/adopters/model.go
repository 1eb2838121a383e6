package adopters

// Adopter es una persona registrada como adoptante.
type Adopter struct {
	ID int64 `json:"id"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	Zip       string `json:"zip,omitempty"`
	About     string `json:"about,omitempty"`

	Preferences []string `json:"preferences,omitempty"`
}
