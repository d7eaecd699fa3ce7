package get_available_slots

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// forEachLabel перечисляет метки слотов интервала, обрезанного окном дня
// Метки идут с шагом 30 минут от max(start, dayStart), пока t < min(end, dayEnd).
func forEachLabel(window domain.DayWindow, interval *domain.WorkInterval, fn func(types.TimeString)) {
	start := interval.StartTime
	if start.Before(window.Start) {
		start = window.Start
	}
	end := interval.EndTime
	if end.After(window.End) {
		end = window.End
	}

	loc := window.Location()
	for t := start; t.Before(end); t = t.Add(domain.SlotDuration) {
		fn(types.NewTimeString(t.In(loc)))
	}
}

// buildStylistSlots строит множество меток по интервалам одного мастера
func buildStylistSlots(window domain.DayWindow, intervals []*domain.WorkInterval) map[types.TimeString]struct{} {
	lattice := make(map[types.TimeString]struct{})
	for _, interval := range intervals {
		forEachLabel(window, interval, func(label types.TimeString) {
			lattice[label] = struct{}{}
		})
	}
	return lattice
}

// buildCapacity считает ёмкость каждой метки: число разных мастеров, работающих в этот слот
// Пересекающиеся интервалы одного мастера учитываются один раз.
func buildCapacity(window domain.DayWindow, intervals []*domain.WorkInterval) map[types.TimeString]int {
	type stylistLabel struct {
		stylistID uuid.UUID
		label     types.TimeString
	}

	seen := make(map[stylistLabel]struct{})
	capacity := make(map[types.TimeString]int)
	for _, interval := range intervals {
		stylistID := interval.StylistID
		forEachLabel(window, interval, func(label types.TimeString) {
			key := stylistLabel{stylistID: stylistID, label: label}
			if _, ok := seen[key]; ok {
				return
			}
			seen[key] = struct{}{}
			capacity[label]++
		})
	}
	return capacity
}

// resolveStylistSlots метки мастера минус занятые им
func resolveStylistSlots(
	lattice map[types.TimeString]struct{},
	appointments []*domain.Appointment,
	stylistID uuid.UUID,
	loc *time.Location,
) []types.TimeString {
	booked := make(map[types.TimeString]struct{}, len(appointments))
	for _, a := range appointments {
		if a.BelongsTo(stylistID) {
			booked[types.NewTimeString(a.StartTime.In(loc))] = struct{}{}
		}
	}

	slots := make([]types.TimeString, 0, len(lattice))
	for label := range lattice {
		if _, ok := booked[label]; !ok {
			slots = append(slots, label)
		}
	}
	return sortLabels(slots)
}

// resolveAggregateSlots метки, где ёмкость больше числа записей всех мастеров
func resolveAggregateSlots(
	capacity map[types.TimeString]int,
	appointments []*domain.Appointment,
	loc *time.Location,
) []types.TimeString {
	bookedCount := make(map[types.TimeString]int, len(appointments))
	for _, a := range appointments {
		bookedCount[types.NewTimeString(a.StartTime.In(loc))]++
	}

	slots := make([]types.TimeString, 0, len(capacity))
	for label, total := range capacity {
		if total > bookedCount[label] {
			slots = append(slots, label)
		}
	}
	return sortLabels(slots)
}

// HH:MM сортируется лексикографически в хронологическом порядке
func sortLabels(slots []types.TimeString) []types.TimeString {
	sort.Slice(slots, func(i, j int) bool { return slots[i].IsBefore(slots[j]) })
	return slots
}
