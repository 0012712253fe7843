package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	apperrors "github.com/jurnee/guidebook/internal/errors"
	"github.com/jurnee/guidebook/internal/models"
	"github.com/jurnee/guidebook/internal/service"
	"github.com/jurnee/guidebook/pkg/utils"
)

type BookingHandler struct {
	bookingService service.BookingService
	validate       *validator.Validate
}

func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		validate:       validator.New(),
	}
}

func (h *BookingHandler) RegisterRoutes(r chi.Router) {
	r.Post("/bookings", h.CreateBooking)
}

// POST /v1/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		utils.BadRequest(w, err.Error())
		return
	}

	booking, err := h.bookingService.SubmitBooking(r.Context(), &req)
	if err != nil {
		if apiErr, ok := err.(*apperrors.APIError); ok && apiErr.StatusCode == http.StatusBadRequest {
			utils.Error(w, apiErr)
			return
		}
		utils.Error(w, apperrors.BookingFailed())
		return
	}

	utils.Created(w, booking.ToResponse())
}
