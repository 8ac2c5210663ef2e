package dto

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type ContactResponse struct {
	Sent bool `json:"sent"`
}

// UpdatesResponse responde el chequeo de contenido nuevo.
// HasUpdates es false ante cualquier error interno (fail-open).
type UpdatesResponse struct {
	HasUpdates bool   `json:"hasUpdates"`
	Revision   string `json:"revision,omitempty"` // RFC3339 del último cambio
}
