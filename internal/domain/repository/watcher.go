package repository

import "github.com/Andryxsh/sabor-real-api/internal/domain/entity"

// Unsubscribe cancela una suscripción. Idempotente.
type Unsubscribe func()

// Watcher puerto de notificación de cambios del colaborador de persistencia.
//
// Cada suscripción entrega snapshots COMPLETOS de la colección: primero el
// estado actual al suscribirse y luego uno nuevo ante cada cambio. El núcleo
// recalcula sus vistas derivadas desde cero con cada snapshot; un recálculo
// superado por un snapshot más nuevo simplemente se descarta (gana el último).
//
// Los callbacks son tipados por colección: nada de formas `any`.
type Watcher interface {
	SubscribeEvents(fn func([]*entity.Event)) (Unsubscribe, error)
	SubscribeMusicians(fn func([]*entity.Musician)) (Unsubscribe, error)
	SubscribePayments(fn func([]*entity.Payment)) (Unsubscribe, error)
	SubscribeExpenses(fn func([]*entity.Expense)) (Unsubscribe, error)
}
