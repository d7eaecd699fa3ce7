package get_available_slots

import (
	"github.com/google/uuid"

	getAvailableSlots "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_available_slots"
)

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(date, stylistIDStr string) (*getAvailableSlots.Request, error) {
	req := &getAvailableSlots.Request{Date: date}
	if stylistIDStr != "" {
		id, err := uuid.Parse(stylistIDStr)
		if err != nil {
			return nil, err
		}
		req.StylistID = &id
	}
	return req, nil
}

// FromUseCaseResponse ответ это массив меток слотов "HH:MM" по возрастанию
func FromUseCaseResponse(resp *getAvailableSlots.Response) []string {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}
	return slots
}
