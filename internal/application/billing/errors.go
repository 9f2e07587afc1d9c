package billing

import (
	"fmt"

	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/domain"
	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/domain/lineitem"
)

// ValidationError el borrador tiene líneas que no pasan la validación; no se emite.
// Lines va indexado por ID de línea.
type ValidationError struct {
	Lines map[string]lineitem.Violations
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("borrador con %d línea(s) inválida(s)", len(e.Lines))
}

// Unwrap permite tratarlo como domain.ErrInvalidInput.
func (e *ValidationError) Unwrap() error { return domain.ErrInvalidInput }
