package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Andryxsh/sabor-real-api/internal/application/dto"
	"github.com/Andryxsh/sabor-real-api/internal/domain"
)

// pageParams lee limit/offset de la query con los topes de siempre.
func pageParams(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", 20)
	offset = c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// mapDomainError traduce errores de dominio a códigos HTTP. Lo que no sea de
// dominio sale como 500.
func mapDomainError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	case domain.ErrMontoInvalido:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_AMOUNT", Message: "monto inválido"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case domain.ErrDuplicate:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "recurso duplicado"})
	case domain.ErrEventoBloqueado:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EVENT_LOCKED", Message: "el evento está bloqueado"})
	case domain.ErrMusicoInactivo:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "MUSICIAN_INACTIVE", Message: "el integrante no está activo"})
	case domain.ErrBalanceInconsistente:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "BALANCE_MISMATCH", Message: "balance inconsistente con price y advance"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
