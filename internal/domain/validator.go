package domain

import (
	"strings"
	"time"
)

const (
	// DateLayout — формат даты на границе API (YYYY-MM-DD).
	DateLayout = "2006-01-02"
	// TimeLayout — формат времени на границе API (HH:MM, 24 часа).
	TimeLayout = "15:04"
	// DateTimeLayout — комбинированные дата и время брони.
	DateTimeLayout = DateLayout + "T" + TimeLayout

	maxTableSize = 10
)

// Validate проверяет заявку по всем бизнес-правилам сразу: каждое нарушенное
// правило добавляет своё сообщение, чтобы клиент получил полный список
// замечаний за один запрос. Исключение — отсутствующая заявка: проверять
// больше нечего, возвращается единственное сообщение.
//
// now задаёт точку отсчёта для правила «бронь не раньше завтрашнего дня».
func Validate(req *BookingRequest, now time.Time) error {
	if req == nil {
		return &ValidationError{Messages: []string{"Booking request is not found."}}
	}

	var messages []string

	if strings.TrimSpace(req.Name) == "" {
		messages = append(messages, "Name is required.")
	}

	if req.TableSize <= 0 || req.TableSize > maxTableSize {
		messages = append(messages, "Table size must be greater than 0 and smaller than 10.")
	}

	if strings.TrimSpace(req.Date) == "" {
		messages = append(messages, "Date is required.")
	} else if date, err := time.ParseInLocation(DateLayout, req.Date, now.Location()); err != nil {
		messages = append(messages, "Invalid date format.")
	} else {
		year, month, day := now.Date()
		tomorrow := time.Date(year, month, day, 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
		if date.Before(tomorrow) {
			messages = append(messages, "Date is invalid.")
		}
	}

	if strings.TrimSpace(req.Time) == "" {
		messages = append(messages, "Time is required.")
	} else if _, err := time.Parse(TimeLayout, req.Time); err != nil {
		messages = append(messages, "Invalid time format.")
	}

	if strings.TrimSpace(req.CustomerTel) == "" {
		messages = append(messages, "Customer telephone is required.")
	}

	if len(messages) > 0 {
		return &ValidationError{Messages: messages}
	}
	return nil
}
