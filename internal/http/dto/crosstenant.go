package dto

// CrossTenantResponse es la respuesta de un fetch cross-tenant.
// Data es null cuando el ID pedido no existe en el tenant opuesto:
// el fetch es best-effort, no un error.
type CrossTenantResponse struct {
	SourceTenant string `json:"sourceTenant"`
	TargetTenant string `json:"targetTenant"`
	EntityType   string `json:"entityType"`
	Data         any    `json:"data"`
}

// ConflictResponse reporta si un nombre ya existe en el tenant destino.
type ConflictResponse struct {
	EntityType string `json:"entityType"`
	Name       string `json:"name"`
	Conflict   bool   `json:"conflict"`
	Existing   any    `json:"existing,omitempty"`
}

// ResolveRequest pide copiar una entidad del tenant opuesto al actual.
type ResolveRequest struct {
	EntityType string `json:"entityType"`
	SourceID   int64  `json:"sourceId"`
	// Resolution: skip | replace | create-new
	Resolution string `json:"resolution"`
	// NewName solo aplica con create-new; vacío = sufijo automático.
	NewName string `json:"newName,omitempty"`
}

// ResolveResponse es el resultado de una resolución.
type ResolveResponse struct {
	Applied    bool   `json:"applied"`
	Resolution string `json:"resolution"`
	EntityType string `json:"entityType"`
	TargetID   int64  `json:"targetId,omitempty"`
}
