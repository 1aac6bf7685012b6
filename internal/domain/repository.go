package domain

import "time"

// BookingRepository описывает требования к хранилищу броней.
type BookingRepository interface {
	// Insert добавляет бронь в хранилище. Корректно построенная бронь
	// никогда не отклоняется; вызов безопасен из параллельных горутин.
	Insert(booking Booking) error
	// ListByDate возвращает брони за календарный день date по возрастанию
	// DateTime. Если броней нет — пустой срез.
	ListByDate(date time.Time) ([]Booking, error)
}
