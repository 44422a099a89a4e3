// Package memory implementa los puertos de persistencia sobre colecciones en
// memoria propias de cada store, con ciclo de vida explícito: se construyen una
// vez por proceso (o por test), nunca son estado global ambiente.
package memory

import "time"

// dateOnly normaliza a fecha calendario UTC para comparaciones de rango.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// inDateRange compara la fecha de negocio contra límites inclusivos de calendario.
func inDateRange(date time.Time, from, to *time.Time) bool {
	d := dateOnly(date)
	if from != nil && d.Before(dateOnly(*from)) {
		return false
	}
	if to != nil && d.After(dateOnly(*to)) {
		return false
	}
	return true
}
