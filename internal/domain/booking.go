package domain

import "time"

// Booking — подтверждённая бронь столика. После сохранения запись неизменяема:
// API не даёт ни обновить, ни удалить её.
type Booking struct {
	// ID назначается сервисом при создании и никогда не переиспользуется.
	ID string
	// Name — отображаемое имя гостя.
	Name string
	// TableSize — количество мест за столиком, от 1 до 10.
	TableSize int
	// DateTime — дата и время брони; компонент времени всегда входит в каталог слотов.
	DateTime time.Time
	// CustomerTel — контактный телефон гостя.
	CustomerTel string
	// CreatedAt фиксирует момент создания брони.
	CreatedAt time.Time
}

// BookingRequest — сырые данные заявки до валидации. Date и Time приходят
// текстом с транспортного уровня и разбираются только валидатором.
type BookingRequest struct {
	Name        string
	TableSize   int
	Date        string
	Time        string
	CustomerTel string
}
