package domain

import (
	"errors"
	"strings"
)

var (
	// ErrSlotUnavailable — запрошенное время не входит в каталог слотов.
	ErrSlotUnavailable = errors.New("required timeslot is not available")
	// ErrDateRequired — дата запроса списка броней не задана.
	ErrDateRequired = errors.New("date is required")
	// ErrInvalidDate — дату запроса списка броней не удалось разобрать.
	ErrInvalidDate = errors.New("invalid date format")
)

// ValidationError накапливает сообщения обо всех нарушенных правилах заявки.
// Сообщения идут в порядке правил и показываются клиенту как есть.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "\n")
}

// IsValidation проверяет, является ли ошибка ошибкой валидации заявки.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
