package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrUserNotFound         = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists   = errors.New("el email ya está registrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrMontoInvalido        = errors.New("monto inválido: debe ser un número no negativo")
	ErrEventoBloqueado      = errors.New("el evento está bloqueado y no admite cambios")
	ErrMusicoInactivo       = errors.New("el músico no está activo")
	ErrBalanceInconsistente = errors.New("balance inconsistente con price - advance")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrForbidden            = errors.New("acceso denegado")
	ErrConflict             = errors.New("conflicto con el estado actual")
)
