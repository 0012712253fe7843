package handler

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jurnee/guidebook/internal/cache"
	"github.com/jurnee/guidebook/internal/repository"
)

const heartbeatInterval = 30 * time.Second

// SSEHandler streams booking-request events to a guide's dashboard so it can
// update without polling the interested-users endpoint.
type SSEHandler struct {
	guideRepo  repository.GuideRepository
	guideCache cache.GuideDirectoryCache
}

func NewSSEHandler(guideRepo repository.GuideRepository, guideCache cache.GuideDirectoryCache) *SSEHandler {
	return &SSEHandler{
		guideRepo:  guideRepo,
		guideCache: guideCache,
	}
}

func (h *SSEHandler) RegisterRoutes(r chi.Router) {
	r.Get("/guides/{guideId}/interested-users/stream", h.StreamBookingEvents)
}

// GET /v1/guides/{guideId}/interested-users/stream
func (h *SSEHandler) StreamBookingEvents(w http.ResponseWriter, r *http.Request) {
	guideID := chi.URLParam(r, "guideId")
	if guideID == "" {
		http.Error(w, "guide id required", http.StatusBadRequest)
		return
	}

	guide, err := h.guideRepo.GetByID(r.Context(), guideID)
	if err != nil || guide == nil {
		http.Error(w, "guide not found", http.StatusNotFound)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	// Initial event: current pending-request count
	count, err := h.guideCache.GetPendingCount(r.Context(), guideID)
	if err != nil {
		log.Printf("failed to read pending count for guide %s: %v", guideID, err)
	}
	fmt.Fprintf(w, "event: pending_count\ndata: {\"pending\":%d}\n\n", count)
	flusher.Flush()

	pubsub := h.guideCache.SubscribeBookingEvents(r.Context(), guideID)
	defer pubsub.Close()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-heartbeat.C:
			fmt.Fprint(w, ": heartbeat\n\n")
			flusher.Flush()
		case msg, ok := <-pubsub.Channel():
			if !ok {
				return
			}
			fmt.Fprintf(w, "event: booking\ndata: %s\n\n", msg.Payload)
			flusher.Flush()
		}
	}
}
