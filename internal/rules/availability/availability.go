package availability

import (
	"time"

	"github.com/m04kA/VenueBookingService/internal/domain"
)

// IsBlocked определяет, занята ли площадка на дату.
// Учитываются только бронирования в блокирующих статусах (approved, confirmed, completed):
//  1. бронь всего заведения на эту дату блокирует любую площадку;
//  2. для всего заведения достаточно любой блокирующей брони на дату;
//  3. иначе - блокирующая бронь той же площадки на эту дату.
func IsBlocked(date time.Time, space domain.SpaceID, booked []domain.BookedDate) bool {
	sameDay := make([]domain.BookedDate, 0, len(booked))
	for _, b := range booked {
		if b.Status.IsBlocking() && domain.SameDate(b.Date, date) {
			sameDay = append(sameDay, b)
		}
	}

	for _, b := range sameDay {
		if b.Space == domain.SpaceWholeVenue {
			return true
		}
	}

	if space == domain.SpaceWholeVenue {
		return len(sameDay) > 0
	}

	for _, b := range sameDay {
		if b.Space == space {
			return true
		}
	}

	return false
}

// IsBlockedForSelection true, если занята хотя бы одна из выбранных площадок
func IsBlockedForSelection(date time.Time, spaces []domain.SpaceID, booked []domain.BookedDate) bool {
	for _, space := range spaces {
		if IsBlocked(date, space, booked) {
			return true
		}
	}
	return false
}

// SpaceOffer сообщает, предлагается ли площадка на дату (см. catalog.IsLive)
type SpaceOffer func(space domain.SpaceID, date time.Time) bool

// Day доступность выбора на конкретную дату
type Day struct {
	Date time.Time
	// Blocked дата недоступна для выбора целиком
	Blocked bool
	// NotOffered площадки выбора, которых ещё нет на эту дату
	NotOffered []domain.SpaceID
	// Taken площадки выбора, занятые другими бронированиями
	Taken []domain.SpaceID
}

// Calendar строит доступность выбора на каждый день диапазона [from, to].
// Площадка, которая не предлагается на дату, считается недоступной без проверки IsBlocked.
func Calendar(from, to time.Time, spaces []domain.SpaceID, booked []domain.BookedDate, offered SpaceOffer) []Day {
	from, to = domain.DateOnly(from), domain.DateOnly(to)
	if to.Before(from) {
		return []Day{}
	}

	days := make([]Day, 0, int(to.Sub(from).Hours()/24)+1)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		day := Day{Date: d}
		for _, space := range spaces {
			if offered != nil && !offered(space, d) {
				day.NotOffered = append(day.NotOffered, space)
				continue
			}
			if IsBlocked(d, space, booked) {
				day.Taken = append(day.Taken, space)
			}
		}
		day.Blocked = len(day.NotOffered) > 0 || len(day.Taken) > 0
		days = append(days, day)
	}

	return days
}
