package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Andryxsh/sabor-real-api/internal/application/dto"
	"github.com/Andryxsh/sabor-real-api/internal/application/usecase"
	"github.com/Andryxsh/sabor-real-api/internal/domain"
)

// MusicianHandler maneja las peticiones HTTP del roster (protegido).
type MusicianHandler struct {
	uc    *usecase.MusicianUseCase
	debts *usecase.DebtUseCase
	stmt  *usecase.StatementUseCase
}

// NewMusicianHandler construye el handler.
func NewMusicianHandler(uc *usecase.MusicianUseCase, debts *usecase.DebtUseCase, stmt *usecase.StatementUseCase) *MusicianHandler {
	return &MusicianHandler{uc: uc, debts: debts, stmt: stmt}
}

// Create godoc
// @Summary      Dar de alta un integrante del roster
// @Tags         musicians
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMusicianRequest  true  "Datos del integrante"
// @Success      201   {object}  dto.MusicianResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/musicians [post]
func (h *MusicianHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMusicianRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y category son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener integrante por ID
// @Tags         musicians
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del integrante"
// @Success      200  {object}  dto.MusicianResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/musicians/{id} [get]
func (h *MusicianHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "integrante no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar el roster
// @Tags         musicians
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Param        search  query  string  false  "Filtro por nombre o apodo (ignora acentos)"
// @Success      200     {object}  dto.MusicianListResponse
// @Router       /api/musicians [get]
func (h *MusicianHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset, c.Query("search"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar integrante
// @Tags         musicians
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del integrante"
// @Param        body  body  dto.UpdateMusicianRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.MusicianResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/musicians/{id} [put]
func (h *MusicianHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateMusicianRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return mapDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "integrante no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar integrante
// @Tags         musicians
// @Security     Bearer
// @Param        id  path  string  true  "ID del integrante"
// @Success      204
// @Router       /api/musicians/{id} [delete]
func (h *MusicianHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetDebt godoc
// @Summary      Deuda actual de un integrante (ganado - pagado)
// @Tags         musicians
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del integrante"
// @Success      200  {object}  dto.DebtResponse
// @Router       /api/musicians/{id}/debt [get]
func (h *MusicianHandler) GetDebt(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	return c.JSON(h.debts.GetDebt(id))
}

// Ranking godoc
// @Summary      Ranking de deudores (deuda > 0, mayor a menor)
// @Tags         musicians
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.DebtorDTO
// @Router       /api/musicians/debtors [get]
func (h *MusicianHandler) Ranking(c *fiber.Ctx) error {
	return c.JSON(h.debts.Ranking())
}

// Statement godoc
// @Summary      Estado de cuenta del integrante en PDF
// @Tags         musicians
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del integrante"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/musicians/{id}/statement [get]
func (h *MusicianHandler) Statement(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	pdf, err := h.stmt.Generate(id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "integrante no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="estado-de-cuenta.pdf"`)
	return c.Send(pdf)
}
