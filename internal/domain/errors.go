package domain

import "errors"

// Errores de dominio (sin dependencias externas). El gateway de persistencia
// traduce los fallos del store a estos kinds; la capa HTTP los mapea a códigos
// de estado. Nunca se reintenta: una violación de unicidad o referencial no es
// transitoria.
var (
	// ErrNotFound el id referenciado no existe.
	ErrNotFound = errors.New("recurso no encontrado")
	// ErrConstraintViolation unicidad, campo requerido o longitud máxima violados en el store.
	ErrConstraintViolation = errors.New("violación de restricción")
	// ErrReferentialBlock borrado bloqueado por una fila dependiente (RESTRICT).
	ErrReferentialBlock = errors.New("borrado bloqueado por referencias")
	// ErrValidation valor del llamador falla una regla de formato/rango antes de llegar al store.
	ErrValidation = errors.New("entrada inválida")
)
