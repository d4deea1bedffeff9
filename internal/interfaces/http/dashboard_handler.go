package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Andryxsh/sabor-real-api/internal/application/usecase"
)

// DashboardHandler maneja el endpoint de la pantalla principal.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSnapshot devuelve la composición de vistas derivadas del dashboard.
// GET /api/dashboard/snapshot
//
// Respuesta: DashboardSnapshotDTO (upcoming_events[3], totales de dinero,
// top_debtors[5]). Se recalcula desde cero sobre el snapshot vigente del
// estado; no recibe parámetros.
func (h *DashboardHandler) GetSnapshot(c *fiber.Ctx) error {
	return c.JSON(h.uc.BuildSnapshot())
}
