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

type GuideHandler struct {
	guideService   service.GuideService
	bookingService service.BookingService
	validate       *validator.Validate
}

func NewGuideHandler(guideService service.GuideService, bookingService service.BookingService) *GuideHandler {
	return &GuideHandler{
		guideService:   guideService,
		bookingService: bookingService,
		validate:       validator.New(),
	}
}

func (h *GuideHandler) RegisterRoutes(r chi.Router) {
	r.Post("/guides/register", h.Register)
	r.Get("/guides", h.ListGuides)
	r.Post("/guides/login", h.Login)
	r.Get("/guides/{guideId}/interested-users", h.GetInterestedUsers)
	r.Post("/guides/{guideId}/confirm-user", h.ConfirmUser)
	r.Delete("/guides/{guideId}/reject-user/{userId}", h.RejectUser)
}

// POST /v1/guides/register
func (h *GuideHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterGuideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		utils.BadRequest(w, err.Error())
		return
	}

	guide, err := h.guideService.RegisterGuide(r.Context(), &req)
	if err != nil {
		utils.Error(w, apperrors.RegistrationFailed())
		return
	}

	utils.Created(w, guide.ToResponse())
}

// GET /v1/guides
func (h *GuideHandler) ListGuides(w http.ResponseWriter, r *http.Request) {
	guides, err := h.guideService.ListGuides(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	responses := make([]*models.GuideResponse, 0, len(guides))
	for _, guide := range guides {
		responses = append(responses, guide.ToResponse())
	}

	utils.Success(w, http.StatusOK, responses)
}

// POST /v1/guides/login
func (h *GuideHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.GuideLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		utils.BadRequest(w, err.Error())
		return
	}

	guide, err := h.guideService.Login(r.Context(), req.Email, req.Phone)
	if err != nil {
		handleError(w, err)
		return
	}

	utils.Success(w, http.StatusOK, guide.ToResponse())
}

// GET /v1/guides/{guideId}/interested-users
func (h *GuideHandler) GetInterestedUsers(w http.ResponseWriter, r *http.Request) {
	guideID := chi.URLParam(r, "guideId")
	if guideID == "" {
		utils.BadRequest(w, "guide id is required")
		return
	}

	bookings, err := h.bookingService.ListInterested(r.Context(), guideID)
	if err != nil {
		handleError(w, err)
		return
	}

	responses := make([]*models.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		responses = append(responses, booking.ToResponse())
	}

	utils.Success(w, http.StatusOK, responses)
}

// POST /v1/guides/{guideId}/confirm-user
//
// Responds 200 whether or not a pending booking matched; the wire contract
// does not distinguish "confirmed" from "nothing to confirm".
func (h *GuideHandler) ConfirmUser(w http.ResponseWriter, r *http.Request) {
	guideID := chi.URLParam(r, "guideId")
	if guideID == "" {
		utils.BadRequest(w, "guide id is required")
		return
	}

	var req models.ConfirmUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		utils.BadRequest(w, err.Error())
		return
	}

	if _, err := h.bookingService.ConfirmUser(r.Context(), guideID, req.UserID); err != nil {
		handleError(w, err)
		return
	}

	utils.Message(w, "User confirmed")
}

// DELETE /v1/guides/{guideId}/reject-user/{userId}
func (h *GuideHandler) RejectUser(w http.ResponseWriter, r *http.Request) {
	guideID := chi.URLParam(r, "guideId")
	userID := chi.URLParam(r, "userId")
	if guideID == "" || userID == "" {
		utils.BadRequest(w, "guide id and user id are required")
		return
	}

	if _, err := h.bookingService.RejectUser(r.Context(), guideID, userID); err != nil {
		handleError(w, err)
		return
	}

	utils.Message(w, "User rejected")
}

func handleError(w http.ResponseWriter, err error) {
	if apiErr, ok := err.(*apperrors.APIError); ok {
		utils.Error(w, apiErr)
		return
	}

	// Check for specific errors
	switch err {
	case apperrors.ErrInvalidCredentials:
		utils.Error(w, apperrors.InvalidCredentials())
	case apperrors.ErrGuideNotFound:
		utils.Error(w, apperrors.NotFound("guide"))
	case apperrors.ErrMissingContactInfo:
		utils.Error(w, apperrors.ValidationFailed(err.Error()))
	default:
		utils.InternalError(w, "internal server error")
	}
}
