package services

import "github.com/Omaralabdullah051/doctors-portal-server/internal/models"

// ComputeAvailability returns the catalog with each service's slot list
// reduced to the slots still open, given the bookings of a single date.
// Slot order follows the service's configured order. The computation is
// advisory only; the bookings collection's unique index is what actually
// prevents a double booking at write time.
func ComputeAvailability(services []models.Service, bookings []models.Booking) []models.Service {
	available := make([]models.Service, len(services))
	for i, svc := range services {
		booked := make(map[string]struct{})
		for _, b := range bookings {
			if b.Treatment == svc.Name {
				booked[b.Slot] = struct{}{}
			}
		}

		open := make([]string, 0, len(svc.Slots))
		for _, slot := range svc.Slots {
			if _, taken := booked[slot]; !taken {
				open = append(open, slot)
			}
		}

		svc.Slots = open
		available[i] = svc
	}
	return available
}
