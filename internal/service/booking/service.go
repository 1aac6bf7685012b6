package booking

import (
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/tablebook/internal/domain"
	"github.com/vladislavdragonenkov/tablebook/internal/metrics"
)

// Service координирует валидацию заявки, каталог слотов и хранилище броней.
type Service struct {
	repo    domain.BookingRepository
	catalog *domain.TimeslotCatalog
	metrics *metrics.BookingMetrics
	logger  *log.Entry
	now     func() time.Time
}

// NewService конструирует сервис с зависимостями. m может быть nil,
// тогда метрики не пишутся.
func NewService(repo domain.BookingRepository, catalog *domain.TimeslotCatalog, m *metrics.BookingMetrics, logger *log.Entry) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "booking-service")
	}
	return &Service{
		repo:    repo,
		catalog: catalog,
		metrics: m,
		logger:  logger,
		now:     time.Now,
	}
}

// CreateBooking проверяет заявку, сверяет время с каталогом слотов и сохраняет
// новую бронь. Ошибка валидации возвращается вызывающему без изменений.
// Занятость слота не проверяется: несколько броней могут занимать одно и то же
// время.
func (s *Service) CreateBooking(req *domain.BookingRequest) (domain.Booking, error) {
	now := s.now()
	if err := domain.Validate(req, now); err != nil {
		if s.metrics != nil {
			s.metrics.RecordValidationFailure()
		}
		return domain.Booking{}, err
	}

	dateTime, err := time.ParseInLocation(domain.DateTimeLayout, req.Date+"T"+req.Time, now.Location())
	if err != nil {
		// Валидатор уже разобрал обе части по отдельности.
		return domain.Booking{}, err
	}

	if !s.catalog.Contains(dateTime) {
		if s.metrics != nil {
			s.metrics.RecordSlotUnavailable()
		}
		return domain.Booking{}, domain.ErrSlotUnavailable
	}

	created := domain.Booking{
		ID:          uuid.NewString(),
		Name:        req.Name,
		TableSize:   req.TableSize,
		DateTime:    dateTime,
		CustomerTel: req.CustomerTel,
		CreatedAt:   now,
	}
	if err := s.repo.Insert(created); err != nil {
		return domain.Booking{}, err
	}

	if s.metrics != nil {
		s.metrics.RecordBookingCreated()
	}
	s.logger.WithFields(log.Fields{
		"booking_id": created.ID,
		"date_time":  dateTime.Format(domain.DateTimeLayout),
		"table_size": created.TableSize,
	}).Info("booking created")

	return created, nil
}

// ListBookings возвращает брони за день по возрастанию времени. Пустая или
// нечитаемая дата отклоняется до обращения к хранилищу.
func (s *Service) ListBookings(date string) ([]domain.Booking, error) {
	if strings.TrimSpace(date) == "" {
		return nil, domain.ErrDateRequired
	}
	day, err := time.ParseInLocation(domain.DateLayout, date, s.now().Location())
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	return s.repo.ListByDate(day)
}
