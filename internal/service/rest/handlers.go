package restsvc

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vladislavdragonenkov/tablebook/internal/domain"
)

// dateTimeResponseLayout — ISO-8601 локальные дата и время без смещения.
const dateTimeResponseLayout = "2006-01-02T15:04:05"

// createBookingPayload — тело POST /v1/bookings.
type createBookingPayload struct {
	Name        string `json:"name"`
	TableSize   int    `json:"tableSize"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	CustomerTel string `json:"customerTel"`
}

// bookingResponse — элемент ответа GET /v1/bookings.
type bookingResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	TableSize   int    `json:"tableSize"`
	DateTime    string `json:"dateTime"`
	CustomerTel string `json:"customerTel"`
}

func (s *Server) handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	var payload createBookingPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeText(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	_, err := s.bookings.CreateBooking(&domain.BookingRequest{
		Name:        payload.Name,
		TableSize:   payload.TableSize,
		Date:        payload.Date,
		Time:        payload.Time,
		CustomerTel: payload.CustomerTel,
	})
	if err != nil {
		switch {
		case domain.IsValidation(err):
			writeText(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrSlotUnavailable):
			writeText(w, http.StatusBadRequest, "Required timeslot is not available.")
		default:
			s.logger.WithError(err).Error("create booking failed")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (s *Server) handleListBookings(w http.ResponseWriter, r *http.Request) {
	if !r.URL.Query().Has("date") {
		writeText(w, http.StatusBadRequest, "Date is required.")
		return
	}

	bookings, err := s.bookings.ListBookings(r.URL.Query().Get("date"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDateRequired):
			writeText(w, http.StatusBadRequest, "Date is required.")
		case errors.Is(err, domain.ErrInvalidDate):
			writeText(w, http.StatusBadRequest, "Invalid date format.")
		default:
			s.logger.WithError(err).Error("list bookings failed")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		response = append(response, bookingResponse{
			ID:          b.ID,
			Name:        b.Name,
			TableSize:   b.TableSize,
			DateTime:    b.DateTime.Format(dateTimeResponseLayout),
			CustomerTel: b.CustomerTel,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		s.logger.WithError(err).Warn("encode bookings response failed")
	}
}

func writeText(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(message))
}
