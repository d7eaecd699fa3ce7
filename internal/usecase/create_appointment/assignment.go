package create_appointment

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// assignStylist определяет мастера для записи
// Указанный мастер используется как есть: его существование проверяет внешний ключ при вставке.
// Иначе берётся первый мастер, покрывающий слот и ещё не занятый на это время.
func (uc *UseCase) assignStylist(ctx context.Context, requested *uuid.UUID, start time.Time) (uuid.UUID, bool, error) {
	if requested != nil {
		return *requested, false, nil
	}

	covering, err := uc.scheduleRepo.GetCoveringStylistIDs(ctx, start)
	if err != nil {
		return uuid.Nil, false, storeError(ctx, "get covering stylists", err)
	}

	booked, err := uc.appointmentRepo.GetBookedStylistIDs(ctx, start)
	if err != nil {
		return uuid.Nil, false, storeError(ctx, "get booked stylists", err)
	}

	stylistID, err := pickCandidate(covering, booked)
	if err != nil {
		return uuid.Nil, false, err
	}
	return stylistID, true, nil
}

// pickCandidate выбирает первого свободного мастера в порядке покрытия
// Выбор детерминирован: порядок задаёт время создания интервалов работы.
func pickCandidate(covering, booked []uuid.UUID) (uuid.UUID, error) {
	if len(covering) == 0 {
		return uuid.Nil, ErrNoCoverage
	}

	busy := make(map[uuid.UUID]struct{}, len(booked))
	for _, id := range booked {
		busy[id] = struct{}{}
	}

	seen := make(map[uuid.UUID]struct{}, len(covering))
	for _, id := range covering {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		if _, taken := busy[id]; !taken {
			return id, nil
		}
	}

	return uuid.Nil, ErrFullyBooked
}
