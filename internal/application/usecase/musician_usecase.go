package usecase

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/Andryxsh/sabor-real-api/internal/application/dto"
	"github.com/Andryxsh/sabor-real-api/internal/domain"
	"github.com/Andryxsh/sabor-real-api/internal/domain/entity"
	"github.com/Andryxsh/sabor-real-api/internal/domain/repository"
)

// MusicianUseCase casos de uso del roster. La deuda de un músico nunca se
// guarda aquí: es una proyección (ver DebtUseCase).
type MusicianUseCase struct {
	repo repository.MusicianRepository
}

// NewMusicianUseCase construye el caso de uso.
func NewMusicianUseCase(repo repository.MusicianRepository) *MusicianUseCase {
	return &MusicianUseCase{repo: repo}
}

// Create da de alta un integrante. Valida enums y tarifas no negativas;
// ChoferExtra solo es válido para categoría driver.
func (uc *MusicianUseCase) Create(in dto.CreateMusicianRequest) (*dto.MusicianResponse, error) {
	category := entity.MusicianCategory(in.Category)
	if !entity.ValidCategory(category) {
		return nil, domain.ErrInvalidInput
	}
	status := entity.MusicianStatus(in.Status)
	if in.Status == "" {
		status = entity.MusicianActive
	} else if !entity.ValidMusicianStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	rates := entity.RateCard(in.Rates)
	if !rates.Valid() {
		return nil, domain.ErrMontoInvalido
	}
	if in.ChoferExtra != nil {
		if category != entity.CategoryDriver || in.ChoferExtra.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}
	method := entity.PaymentMethod(in.PaymentMethod)
	if in.PaymentMethod != "" && !entity.ValidPaymentMethod(method) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	m := &entity.Musician{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Nickname:      in.Nickname,
		Role:          in.Role,
		Category:      category,
		Status:        status,
		Rates:         rates,
		ChoferExtra:   in.ChoferExtra,
		PaymentMethod: method,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(m); err != nil {
		return nil, err
	}
	return toMusicianResponse(m), nil
}

// GetByID obtiene un integrante por ID.
func (uc *MusicianUseCase) GetByID(id string) (*dto.MusicianResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	return toMusicianResponse(m), nil
}

// List lista el roster con paginación y filtro opcional por nombre/apodo.
// La búsqueda ignora mayúsculas y acentos ("monica" encuentra a "Mónica").
func (uc *MusicianUseCase) List(limit, offset int, search string) (*dto.MusicianListResponse, error) {
	var (
		list []*entity.Musician
		err  error
	)
	if search == "" {
		list, err = uc.repo.List(limit, offset)
	} else {
		// Con filtro se pagina en memoria: el roster de una agencia es chico.
		list, err = uc.repo.ListAll()
	}
	if err != nil {
		return nil, err
	}
	if search != "" {
		needle := normalizeName(search)
		filtered := list[:0]
		for _, m := range list {
			if strings.Contains(normalizeName(m.Name), needle) ||
				strings.Contains(normalizeName(m.Nickname), needle) {
				filtered = append(filtered, m)
			}
		}
		list = paginate(filtered, limit, offset)
	}
	items := make([]dto.MusicianResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMusicianResponse(m))
	}
	return &dto.MusicianListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualización parcial. Cambiar Rates o ChoferExtra NUNCA reescribe
// AmountToPay de asignaciones existentes: quedó congelado al asignar.
func (uc *MusicianUseCase) Update(id string, in dto.UpdateMusicianRequest) (*dto.MusicianResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	if in.Name != nil {
		m.Name = *in.Name
	}
	if in.Nickname != nil {
		m.Nickname = *in.Nickname
	}
	if in.Role != nil {
		m.Role = *in.Role
	}
	if in.Category != nil {
		category := entity.MusicianCategory(*in.Category)
		if !entity.ValidCategory(category) {
			return nil, domain.ErrInvalidInput
		}
		m.Category = category
	}
	if in.Status != nil {
		status := entity.MusicianStatus(*in.Status)
		if !entity.ValidMusicianStatus(status) {
			return nil, domain.ErrInvalidInput
		}
		m.Status = status
	}
	if in.Rates != nil {
		rates := entity.RateCard(in.Rates)
		if !rates.Valid() {
			return nil, domain.ErrMontoInvalido
		}
		m.Rates = rates
	}
	if in.ChoferExtra != nil {
		if m.Category != entity.CategoryDriver || in.ChoferExtra.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		m.ChoferExtra = in.ChoferExtra
	}
	if in.PaymentMethod != nil {
		method := entity.PaymentMethod(*in.PaymentMethod)
		if !entity.ValidPaymentMethod(method) {
			return nil, domain.ErrInvalidInput
		}
		m.PaymentMethod = method
	}
	m.UpdatedAt = time.Now()
	if err := uc.repo.Update(m); err != nil {
		return nil, err
	}
	return toMusicianResponse(m), nil
}

// Delete elimina un integrante. Las asignaciones históricas que lo referencien
// se saltan en los agregados (referencia obsoleta, no error fatal).
func (uc *MusicianUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// normalizeName pasa a minúsculas y elimina marcas diacríticas (NFD + runes).
func normalizeName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

func paginate[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list
}

func toMusicianResponse(m *entity.Musician) *dto.MusicianResponse {
	if m == nil {
		return nil
	}
	return &dto.MusicianResponse{
		ID:            m.ID,
		Name:          m.Name,
		Nickname:      m.Nickname,
		Role:          m.Role,
		Category:      string(m.Category),
		Status:        string(m.Status),
		Rates:         m.Rates,
		ChoferExtra:   m.ChoferExtra,
		PaymentMethod: string(m.PaymentMethod),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
