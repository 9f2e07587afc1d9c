package dto

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse error 422 con los mensajes por campo.
// En un borrador las claves externas son IDs de línea.
type ValidationErrorResponse struct {
	Code       string                       `json:"code"`
	Message    string                       `json:"message"`
	Violations map[string]map[string]string `json:"violations"`
}
