package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/gencareclinic/gencare-api/api"
	"github.com/gencareclinic/gencare-api/config"
	"github.com/gencareclinic/gencare-api/databases"
	"github.com/gencareclinic/gencare-api/models"
)

// streamInterval is how often the notification stream polls for unread items
const streamInterval = 5 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// NotificationHandler exposes the in-app notification endpoints
type NotificationHandler struct {
	DB databases.NotificationDatabase
}

// ListHandler lists the caller's notifications, newest first
func (h NotificationHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID, err := primitive.ObjectIDFromHex(api.UserIDFromContext(r.Context()))
	if err != nil {
		config.ErrorStatus("invalid user id", http.StatusBadRequest, w, err)
		return
	}
	limit, page := paginationParams(r)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	notifications, pagination, err := h.DB.ListByUser(ctx, userID, limit, page)
	if err != nil {
		config.ErrorStatus("failed to list notifications", http.StatusInternalServerError, w, err)
		return
	}
	respondPaginated(w, notifications, pagination)
}

// MarkReadHandler marks one of the caller's notifications as read
func (h NotificationHandler) MarkReadHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["notificationId"])
	if err != nil {
		config.ErrorStatus("invalid notification id", http.StatusBadRequest, w, err)
		return
	}
	userID, err := primitive.ObjectIDFromHex(api.UserIDFromContext(r.Context()))
	if err != nil {
		config.ErrorStatus("invalid user id", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := h.DB.MarkRead(ctx, id, userID); err != nil {
		handleError(w, &models.NotFoundError{Resource: "notification"})
		return
	}
	respondMessage(w, http.StatusOK, "notification marked read")
}

// DeleteHandler removes one of the caller's notifications
func (h NotificationHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["notificationId"])
	if err != nil {
		config.ErrorStatus("invalid notification id", http.StatusBadRequest, w, err)
		return
	}
	userID, err := primitive.ObjectIDFromHex(api.UserIDFromContext(r.Context()))
	if err != nil {
		config.ErrorStatus("invalid user id", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := h.DB.Delete(ctx, id, userID); err != nil {
		handleError(w, &models.NotFoundError{Resource: "notification"})
		return
	}
	respondMessage(w, http.StatusOK, "notification deleted")
}

// StreamHandler pushes unread notifications over a websocket. The client gets
// the current unread set every few seconds until it hangs up.
func (h NotificationHandler) StreamHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := primitive.ObjectIDFromHex(api.UserIDFromContext(r.Context()))
	if err != nil {
		config.ErrorStatus("invalid user id", http.StatusBadRequest, w, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().Warnw("failed to upgrade notification stream", "error", err)
		return
	}
	defer conn.Close()

	// drain client frames so close frames are processed
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(streamInterval)
	defer ticker.Stop()

	for {
		ctx, cancel := api.WithQueryTimeout(r.Context())
		unread, err := h.DB.ListUnread(ctx, userID)
		cancel()
		if err != nil {
			zap.S().Warnw("failed to load unread notifications for stream", "error", err, "userId", userID.Hex())
		} else if err := conn.WriteJSON(unread); err != nil {
			return
		}

		select {
		case <-done:
			return
		case <-r.Context().Done():
			return
		case <-ticker.C:
		}
	}
}
