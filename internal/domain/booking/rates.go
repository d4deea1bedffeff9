// Package booking implementa la resolución de tarifas al asignar crew a un
// evento (servicio de dominio puro, sin I/O).
//
// Regla base: la tarifa es Rates[tipo] del músico, cero si no está definida.
//
// Regla de chofer: para un chofer en un evento NO-travel, si ese mismo día ya
// tiene otra asignación en un evento no cancelado, la tarifa se reemplaza por
// ChoferExtra (o 100 si no la tiene configurada). Modela la salida local del
// mismo día a tarifa reducida; se re-dispara en cada contratación adicional
// del día, no solo en la segunda.
//
// Los eventos de la familia travel nunca pasan por la regla de chofer: su pago
// se negocia por contratación y el resultado del resolver es solo una
// sugerencia que el flujo de asignación puede reemplazar por un monto manual.
package booking

import (
	"github.com/shopspring/decimal"

	"github.com/Andryxsh/sabor-real-api/internal/domain/entity"
)

// Tarifa de segunda salida por defecto cuando el chofer no tiene ChoferExtra.
var defaultChoferExtra = decimal.NewFromInt(100)

// ResolveRate calcula el monto a pagar a un músico por una asignación, al
// momento de asignar. Es una función pura: no muta nada; el llamador persiste
// el resultado (congelado) en AssignedCrew.
//
// allEvents debe contener el resto de la agenda SIN el evento que se está
// creando o editando: la regla de chofer busca "otro evento del mismo día".
//
// La regla cuenta cualquier asignación del día en eventos no cancelados, sin
// importar si `attended` ya fue determinado (estado previo al evento incluido).
func ResolveRate(m *entity.Musician, eventType entity.EventType, eventDate entity.ISODate, allEvents []*entity.Event) decimal.Decimal {
	base := m.Rates.For(eventType)

	if !m.IsDriver() || eventType.IsTravel() {
		return base
	}
	if !hasSameDayBooking(m.ID, eventDate, allEvents) {
		return base
	}
	if m.ChoferExtra != nil {
		return *m.ChoferExtra
	}
	return defaultChoferExtra
}

// hasSameDayBooking indica si el músico ya tiene una asignación ese día en
// algún evento no cancelado.
func hasSameDayBooking(musicianID string, date entity.ISODate, events []*entity.Event) bool {
	for _, e := range events {
		if e.Date != date || e.Status == entity.EventCancelled {
			continue
		}
		if e.HasCrew(musicianID) {
			return true
		}
	}
	return false
}
