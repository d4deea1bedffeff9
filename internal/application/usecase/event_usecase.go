package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Andryxsh/sabor-real-api/internal/application/dto"
	"github.com/Andryxsh/sabor-real-api/internal/domain"
	"github.com/Andryxsh/sabor-real-api/internal/domain/booking"
	"github.com/Andryxsh/sabor-real-api/internal/domain/entity"
	"github.com/Andryxsh/sabor-real-api/internal/domain/finance"
	"github.com/Andryxsh/sabor-real-api/internal/domain/repository"
)

// EventUseCase flujos de eventos: CRUD, asignación de crew con resolución de
// tarifas, asistencia, anticipos y bloqueo. Toda validación ocurre antes de
// llamar a persistencia; si persistencia falla no queda estado parcial en
// memoria (el evento se reconstruye del repo en cada flujo).
type EventUseCase struct {
	events    repository.EventRepository
	musicians repository.MusicianRepository
}

// NewEventUseCase construye el caso de uso.
func NewEventUseCase(events repository.EventRepository, musicians repository.MusicianRepository) *EventUseCase {
	return &EventUseCase{events: events, musicians: musicians}
}

// Create da de alta un evento. El crew indicado se asigna con la tarifa del
// resolver salvo override manual; solo músicos activos son asignables.
func (uc *EventUseCase) Create(in dto.CreateEventRequest) (*dto.EventResponse, error) {
	eventType := entity.EventType(in.Type)
	if !entity.ValidEventType(eventType) {
		return nil, domain.ErrInvalidInput
	}
	date, err := entity.NewISODate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	status := entity.EventStatus(in.Status)
	if in.Status == "" {
		status = entity.EventPending
	} else if !entity.ValidEventStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() || in.Advance.IsNegative() {
		return nil, domain.ErrMontoInvalido
	}
	expenses, err := toEventExpenses(in.Expenses)
	if err != nil {
		return nil, err
	}

	// La regla de chofer mira "otro evento del mismo día": la agenda completa
	// sin el evento que se está creando.
	agenda, err := uc.events.ListAll()
	if err != nil {
		return nil, err
	}
	crew, err := uc.buildCrew(in.Crew, eventType, date, agenda)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	e := &entity.Event{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Type:         eventType,
		Date:         date,
		Status:       status,
		Price:        in.Price,
		Advance:      in.Advance,
		Balance:      in.Price.Sub(in.Advance),
		Expenses:     expenses,
		AssignedCrew: crew,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.events.Create(e); err != nil {
		return nil, err
	}
	return toEventResponse(e), nil
}

// GetByID obtiene un evento.
func (uc *EventUseCase) GetByID(id string) (*dto.EventResponse, error) {
	e, err := uc.events.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	return toEventResponse(e), nil
}

// List lista eventos con paginación.
func (uc *EventUseCase) List(limit, offset int) (*dto.EventListResponse, error) {
	list, err := uc.events.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EventResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEventResponse(e))
	}
	return &dto.EventListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualización parcial. Un evento bloqueado no admite ningún cambio.
// Si cambia Price, el balance se recalcula contra el anticipo vigente.
func (uc *EventUseCase) Update(id string, in dto.UpdateEventRequest) (*dto.EventResponse, error) {
	e, err := uc.mutableEvent(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	if in.Name != nil {
		e.Name = *in.Name
	}
	if in.Type != nil {
		eventType := entity.EventType(*in.Type)
		if !entity.ValidEventType(eventType) {
			return nil, domain.ErrInvalidInput
		}
		e.Type = eventType
	}
	if in.Date != nil {
		date, err := entity.NewISODate(*in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		e.Date = date
	}
	if in.Status != nil {
		status := entity.EventStatus(*in.Status)
		if !entity.ValidEventStatus(status) {
			return nil, domain.ErrInvalidInput
		}
		e.Status = status
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrMontoInvalido
		}
		e.Price = *in.Price
		e.Balance = e.Price.Sub(e.Advance)
	}
	if in.Expenses != nil {
		expenses, err := toEventExpenses(in.Expenses)
		if err != nil {
			return nil, err
		}
		e.Expenses = expenses
	}
	e.UpdatedAt = time.Now()
	if err := uc.events.Update(e); err != nil {
		return nil, err
	}
	return toEventResponse(e), nil
}

// Delete elimina un evento. Los bloqueados no se borran.
func (uc *EventUseCase) Delete(id string) error {
	e, err := uc.events.GetByID(id)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrNotFound
	}
	if e.Locked {
		return domain.ErrEventoBloqueado
	}
	return uc.events.Delete(id)
}

// AssignCrew agrega asignaciones al evento. La tarifa se resuelve al momento
// de asignar y queda congelada; un monto manual siempre gana (esperado en
// eventos travel). Músicos ya asignados se rechazan como duplicado.
func (uc *EventUseCase) AssignCrew(eventID string, in []dto.CrewAssignmentRequest) (*dto.EventResponse, error) {
	e, err := uc.mutableEvent(eventID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	for _, a := range in {
		if e.HasCrew(a.MusicianID) {
			return nil, domain.ErrDuplicate
		}
	}
	agenda, err := uc.events.ListAll()
	if err != nil {
		return nil, err
	}
	// Excluir el propio evento: la regla de chofer cuenta solo OTROS eventos.
	agenda = withoutEvent(agenda, e.ID)
	crew, err := uc.buildCrew(in, e.Type, e.Date, agenda)
	if err != nil {
		return nil, err
	}
	e.AssignedCrew = append(e.AssignedCrew, crew...)
	e.UpdatedAt = time.Now()
	if err := uc.events.Update(e); err != nil {
		return nil, err
	}
	return toEventResponse(e), nil
}

// SetAttendance marca asistencia de un asignado. Solo los que asistieron
// generan costo de crew y ganancia en el ledger.
func (uc *EventUseCase) SetAttendance(eventID string, in dto.AttendanceRequest) (*dto.EventResponse, error) {
	return uc.patchCrew(eventID, in.MusicianID, func(c *entity.CrewMember) {
		c.Attended = in.Attended
	})
}

// MarkCrewPaid marca una asignación como pagada (control operativo; el ledger
// usa los Payment, no este flag).
func (uc *EventUseCase) MarkCrewPaid(eventID string, in dto.CrewPaidRequest) (*dto.EventResponse, error) {
	return uc.patchCrew(eventID, in.MusicianID, func(c *entity.CrewMember) {
		c.Paid = in.Paid
	})
}

// ApplyAdvance aplica un anticipo (add o fix) y persiste advance y balance en
// la misma actualización. Montos negativos se rechazan antes de persistir.
func (uc *EventUseCase) ApplyAdvance(eventID string, in dto.ApplyAdvanceRequest) (*dto.EventResponse, error) {
	e, err := uc.mutableEvent(eventID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	updated, err := finance.ApplyAdvance(e, in.Amount, finance.AdvanceMode(in.Mode))
	if err != nil {
		return nil, err
	}
	updated.UpdatedAt = time.Now()
	if err := uc.events.Update(updated); err != nil {
		return nil, err
	}
	return toEventResponse(updated), nil
}

// SetLocked bloquea o desbloquea un evento. Bloquear congela toda mutación.
func (uc *EventUseCase) SetLocked(eventID string, locked bool) (*dto.EventResponse, error) {
	e, err := uc.events.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	e.Locked = locked
	e.UpdatedAt = time.Now()
	if err := uc.events.Update(e); err != nil {
		return nil, err
	}
	return toEventResponse(e), nil
}

// Summarize devuelve el resumen financiero del evento.
func (uc *EventUseCase) Summarize(eventID string) (*dto.EventSummaryResponse, error) {
	e, err := uc.events.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	s, err := finance.Summarize(e)
	if err != nil {
		return nil, err
	}
	return &dto.EventSummaryResponse{
		EventID:      e.ID,
		CrewCost:     s.CrewCost,
		NetProfit:    s.NetProfit,
		IsProfitable: s.IsProfitable,
		Balance:      e.Balance,
	}, nil
}

// mutableEvent carga un evento verificando que no esté bloqueado.
func (uc *EventUseCase) mutableEvent(id string) (*entity.Event, error) {
	e, err := uc.events.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	if e.Locked {
		return nil, domain.ErrEventoBloqueado
	}
	return e, nil
}

// buildCrew resuelve la tarifa de cada asignación. El filtro a músicos activos
// es responsabilidad de este flujo, no del resolver.
func (uc *EventUseCase) buildCrew(in []dto.CrewAssignmentRequest, eventType entity.EventType, date entity.ISODate, agenda []*entity.Event) ([]entity.CrewMember, error) {
	crew := make([]entity.CrewMember, 0, len(in))
	for _, a := range in {
		m, err := uc.musicians.GetByID(a.MusicianID)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, domain.ErrNotFound
		}
		if !m.IsActive() {
			return nil, domain.ErrMusicoInactivo
		}
		var amount decimal.Decimal
		if a.Amount != nil {
			if a.Amount.IsNegative() {
				return nil, domain.ErrMontoInvalido
			}
			amount = *a.Amount
		} else {
			amount = booking.ResolveRate(m, eventType, date, agenda)
		}
		crew = append(crew, entity.CrewMember{
			MusicianID:  m.ID,
			AmountToPay: amount,
		})
	}
	return crew, nil
}

func (uc *EventUseCase) patchCrew(eventID, musicianID string, patch func(*entity.CrewMember)) (*dto.EventResponse, error) {
	e, err := uc.mutableEvent(eventID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	found := false
	for i := range e.AssignedCrew {
		if e.AssignedCrew[i].MusicianID == musicianID {
			patch(&e.AssignedCrew[i])
			found = true
			break
		}
	}
	if !found {
		return nil, domain.ErrNotFound
	}
	e.UpdatedAt = time.Now()
	if err := uc.events.Update(e); err != nil {
		return nil, err
	}
	return toEventResponse(e), nil
}

func withoutEvent(events []*entity.Event, id string) []*entity.Event {
	out := make([]*entity.Event, 0, len(events))
	for _, e := range events {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return out
}

func toEventExpenses(in []dto.EventExpenseDTO) ([]entity.EventExpense, error) {
	out := make([]entity.EventExpense, 0, len(in))
	for _, x := range in {
		if x.Amount.IsNegative() {
			return nil, domain.ErrMontoInvalido
		}
		out = append(out, entity.EventExpense{Concept: x.Concept, Amount: x.Amount, Category: x.Category})
	}
	return out, nil
}

func toEventResponse(e *entity.Event) *dto.EventResponse {
	if e == nil {
		return nil
	}
	expenses := make([]dto.EventExpenseDTO, 0, len(e.Expenses))
	for _, x := range e.Expenses {
		expenses = append(expenses, dto.EventExpenseDTO{Concept: x.Concept, Amount: x.Amount, Category: x.Category})
	}
	crew := make([]dto.CrewMemberDTO, 0, len(e.AssignedCrew))
	for _, c := range e.AssignedCrew {
		crew = append(crew, dto.CrewMemberDTO{
			MusicianID:  c.MusicianID,
			Attended:    c.Attended,
			AmountToPay: c.AmountToPay,
			Paid:        c.Paid,
		})
	}
	return &dto.EventResponse{
		ID:           e.ID,
		Name:         e.Name,
		Type:         string(e.Type),
		Date:         e.Date.String(),
		Status:       string(e.Status),
		Locked:       e.Locked,
		Price:        e.Price,
		Advance:      e.Advance,
		Balance:      e.Balance,
		Expenses:     expenses,
		AssignedCrew: crew,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
