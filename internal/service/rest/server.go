package restsvc

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/tablebook/internal/metrics"
	"github.com/vladislavdragonenkov/tablebook/internal/service/booking"
)

// Server реализует REST API поверх сервиса бронирования.
type Server struct {
	bookings *booking.Service
	metrics  *metrics.BookingMetrics
	logger   *log.Entry
}

// NewServer конструирует API-слой. m может быть nil.
func NewServer(bookings *booking.Service, m *metrics.BookingMetrics, logger *log.Entry) *Server {
	if logger == nil {
		logger = log.New().WithField("component", "rest")
	}
	return &Server{
		bookings: bookings,
		metrics:  m,
		logger:   logger,
	}
}

// Router собирает маршруты API.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/v1/bookings", s.handleCreateBooking).Methods(http.MethodPost)
	r.HandleFunc("/v1/bookings", s.handleListBookings).Methods(http.MethodGet)
	r.Use(s.instrument)
	return r
}

// instrument логирует каждый запрос и записывает длительность обработки.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		duration := time.Since(start)

		if s.metrics != nil {
			s.metrics.ObserveRequestDuration(r.Method, r.URL.Path, rec.status, duration)
		}
		s.logger.WithFields(log.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": duration,
		}).Info("request handled")
	})
}

// statusRecorder запоминает код ответа для логов и метрик.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
