package domain

import "time"

// TimeslotCatalog — фиксированный упорядоченный набор времён, на которые
// принимаются брони. Каталог создаётся один раз при старте процесса и не
// меняется, поэтому читается без синхронизации.
type TimeslotCatalog struct {
	slots []time.Time
}

// NewTimeslotCatalog создаёт каталог из переданных слотов.
func NewTimeslotCatalog(slots ...time.Time) *TimeslotCatalog {
	copied := make([]time.Time, len(slots))
	copy(copied, slots)
	return &TimeslotCatalog{slots: copied}
}

// DefaultTimeslotCatalog возвращает расписание ресторана: шесть слотов
// с 10:00 до 20:00 с шагом в два часа.
func DefaultTimeslotCatalog() *TimeslotCatalog {
	return NewTimeslotCatalog(
		timeOfDay(10, 0),
		timeOfDay(12, 0),
		timeOfDay(14, 0),
		timeOfDay(16, 0),
		timeOfDay(18, 0),
		timeOfDay(20, 0),
	)
}

func timeOfDay(hour, minute int) time.Time {
	return time.Date(0, time.January, 1, hour, minute, 0, 0, time.UTC)
}

// All возвращает копию слотов в порядке возрастания.
func (c *TimeslotCatalog) All() []time.Time {
	result := make([]time.Time, len(c.slots))
	copy(result, c.slots)
	return result
}

// Contains сообщает, совпадает ли время t (по часу и минуте) с одним из слотов.
func (c *TimeslotCatalog) Contains(t time.Time) bool {
	for _, slot := range c.slots {
		if slot.Hour() == t.Hour() && slot.Minute() == t.Minute() {
			return true
		}
	}
	return false
}
