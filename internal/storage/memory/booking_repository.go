package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/vladislavdragonenkov/tablebook/internal/domain"
)

// bookingRepositoryInMemory — потокобезопасное in-memory хранилище броней.
// Записи живут до конца процесса: обновлений и удалений нет.
type bookingRepositoryInMemory struct {
	mu       sync.RWMutex
	bookings []domain.Booking
}

// NewBookingRepository возвращает in-memory репозиторий броней.
func NewBookingRepository() domain.BookingRepository {
	return &bookingRepositoryInMemory{}
}

// Insert добавляет бронь в конец списка.
func (r *bookingRepositoryInMemory) Insert(booking domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bookings = append(r.bookings, booking)
	return nil
}

// ListByDate возвращает копии броней за указанный день, отсортированные по
// возрастанию DateTime (при равенстве — по ID для стабильного порядка).
func (r *bookingRepositoryInMemory) ListByDate(date time.Time) ([]domain.Booking, error) {
	year, month, day := date.Date()

	r.mu.RLock()
	result := make([]domain.Booking, 0)
	for _, booking := range r.bookings {
		by, bm, bd := booking.DateTime.Date()
		if by != year || bm != month || bd != day {
			continue
		}
		result = append(result, booking)
	}
	r.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		if !result[i].DateTime.Equal(result[j].DateTime) {
			return result[i].DateTime.Before(result[j].DateTime)
		}
		return result[i].ID < result[j].ID
	})

	return result, nil
}

var _ domain.BookingRepository = (*bookingRepositoryInMemory)(nil)
