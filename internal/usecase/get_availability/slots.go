package get_availability

import (
	"sort"

	"github.com/m04kA/wedding-reservation-service/internal/domain"
)

// reservedSlots возвращает отсортированный список слотов без повторов,
// занятых не отменёнными бронированиями
func reservedSlots(reservations []*domain.Reservation) []string {
	seen := make(map[string]struct{}, len(reservations))
	reserved := make([]string, 0, len(reservations))

	for _, r := range reservations {
		if !r.IsActive() {
			continue
		}
		if _, ok := seen[r.TimeSlot]; ok {
			continue
		}
		seen[r.TimeSlot] = struct{}{}
		reserved = append(reserved, r.TimeSlot)
	}

	sort.Strings(reserved)
	return reserved
}

// availableSlots мастер-список минус занятые слоты, порядок мастер-списка сохраняется
func availableSlots(master, reserved []string) []string {
	taken := make(map[string]struct{}, len(reserved))
	for _, s := range reserved {
		taken[s] = struct{}{}
	}

	free := make([]string, 0, len(master))
	for _, s := range master {
		if _, ok := taken[s]; !ok {
			free = append(free, s)
		}
	}
	return free
}
