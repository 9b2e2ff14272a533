package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE que el gateway traduce a errores de dominio. Las reglas de
// unicidad y referenciales viven como constraints en la BD: el gateway escribe
// y deja que el commit decida, sin check-then-act (dos escritores compitiendo
// por el mismo SKU deben resolverse en el constraint, no en una pre-consulta).
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeNotNullViolation    = "23502"
	codeStringTooLong       = "22001"
)

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation violación de índice único (username, email, sku, invoice_number).
func isUniqueViolation(err error) bool {
	return pgErrCode(err) == codeUniqueViolation
}

// isForeignKeyViolation referencia requerida inexistente en escritura, o fila
// dependiente que bloquea un borrado RESTRICT.
func isForeignKeyViolation(err error) bool {
	return pgErrCode(err) == codeForeignKeyViolation
}

// isConstraintViolation cualquier regla de integridad de escritura: unicidad,
// NOT NULL o longitud máxima de columna.
func isConstraintViolation(err error) bool {
	switch pgErrCode(err) {
	case codeUniqueViolation, codeForeignKeyViolation, codeNotNullViolation, codeStringTooLong:
		return true
	}
	return false
}
