package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/Andryxsh/sabor-real-api/internal/application/dto"
	"github.com/Andryxsh/sabor-real-api/internal/domain"
	"github.com/Andryxsh/sabor-real-api/internal/domain/entity"
	"github.com/Andryxsh/sabor-real-api/internal/domain/repository"
)

// PaymentUseCase registro de pagos a músicos. Cada pago reduce la deuda en el
// ledger; el vínculo con un evento es opcional y no se exige que exista.
type PaymentUseCase struct {
	payments  repository.PaymentRepository
	musicians repository.MusicianRepository
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(payments repository.PaymentRepository, musicians repository.MusicianRepository) *PaymentUseCase {
	return &PaymentUseCase{payments: payments, musicians: musicians}
}

// Create registra un pago. Monto negativo se rechaza antes de persistir.
func (uc *PaymentUseCase) Create(in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if in.Amount.IsNegative() {
		return nil, domain.ErrMontoInvalido
	}
	paymentType := entity.PaymentType(in.Type)
	if !entity.ValidPaymentType(paymentType) {
		return nil, domain.ErrInvalidInput
	}
	method := entity.PaymentMethod(in.Method)
	if !entity.ValidPaymentMethod(method) {
		return nil, domain.ErrInvalidInput
	}
	date, err := entity.NewISODate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	m, err := uc.musicians.GetByID(in.MusicianID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	p := &entity.Payment{
		ID:         uuid.New().String(),
		MusicianID: in.MusicianID,
		EventID:    in.EventID,
		Amount:     in.Amount,
		Type:       paymentType,
		Date:       date,
		Method:     method,
		Note:       in.Note,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.payments.Create(p); err != nil {
		return nil, err
	}
	return toPaymentResponse(p), nil
}

// GetByID obtiene un pago.
func (uc *PaymentUseCase) GetByID(id string) (*dto.PaymentResponse, error) {
	p, err := uc.payments.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toPaymentResponse(p), nil
}

// List lista pagos con paginación.
func (uc *PaymentUseCase) List(limit, offset int) (*dto.PaymentListResponse, error) {
	list, err := uc.payments.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toPaymentList(list, limit, offset), nil
}

// ListByMusician historial de pagos de un músico.
func (uc *PaymentUseCase) ListByMusician(musicianID string) (*dto.PaymentListResponse, error) {
	list, err := uc.payments.ListByMusician(musicianID)
	if err != nil {
		return nil, err
	}
	return toPaymentList(list, len(list), 0), nil
}

// Update actualización parcial.
func (uc *PaymentUseCase) Update(id string, in dto.UpdatePaymentRequest) (*dto.PaymentResponse, error) {
	p, err := uc.payments.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.Amount != nil {
		if in.Amount.IsNegative() {
			return nil, domain.ErrMontoInvalido
		}
		p.Amount = *in.Amount
	}
	if in.Type != nil {
		paymentType := entity.PaymentType(*in.Type)
		if !entity.ValidPaymentType(paymentType) {
			return nil, domain.ErrInvalidInput
		}
		p.Type = paymentType
	}
	if in.Method != nil {
		method := entity.PaymentMethod(*in.Method)
		if !entity.ValidPaymentMethod(method) {
			return nil, domain.ErrInvalidInput
		}
		p.Method = method
	}
	if in.Date != nil {
		date, err := entity.NewISODate(*in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		p.Date = date
	}
	if in.EventID != nil {
		p.EventID = *in.EventID
	}
	if in.Note != nil {
		p.Note = *in.Note
	}
	p.UpdatedAt = time.Now()
	if err := uc.payments.Update(p); err != nil {
		return nil, err
	}
	return toPaymentResponse(p), nil
}

// Delete elimina un pago.
func (uc *PaymentUseCase) Delete(id string) error {
	return uc.payments.Delete(id)
}

func toPaymentList(list []*entity.Payment, limit, offset int) *dto.PaymentListResponse {
	items := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPaymentResponse(p))
	}
	return &dto.PaymentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}

func toPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	if p == nil {
		return nil
	}
	return &dto.PaymentResponse{
		ID:         p.ID,
		MusicianID: p.MusicianID,
		EventID:    p.EventID,
		Amount:     p.Amount,
		Type:       string(p.Type),
		Date:       p.Date.String(),
		Method:     string(p.Method),
		Note:       p.Note,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
