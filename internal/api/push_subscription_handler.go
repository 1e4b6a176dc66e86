package api

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/taskline/taskline/internal/api/shared"
	"github.com/taskline/taskline/internal/store"
)

// PushSubscriptionHandler handles registration of browser push
// subscriptions used by the web push notification channel.
type PushSubscriptionHandler struct {
	subscriptions  store.PushSubscriptionStore
	vapidPublicKey string
	validator      *validator.Validate
}

// NewPushSubscriptionHandler creates a new PushSubscriptionHandler.
func NewPushSubscriptionHandler(
	subscriptions store.PushSubscriptionStore,
	vapidPublicKey string,
) *PushSubscriptionHandler {
	return &PushSubscriptionHandler{
		subscriptions:  subscriptions,
		vapidPublicKey: vapidPublicKey,
		validator:      validator.New(),
	}
}

// VAPIDPublicKeyResponse carries the server's public key clients need
// to create a push subscription.
type VAPIDPublicKeyResponse struct {
	PublicKey string `json:"public_key"`
}

// GetVAPIDPublicKey handles GET /api/push-subscriptions/key requests.
func (h *PushSubscriptionHandler) GetVAPIDPublicKey(w http.ResponseWriter, r *http.Request) {
	if h.vapidPublicKey == "" {
		shared.RespondWithError(w, r, http.StatusNotFound, "Web push is not configured")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, VAPIDPublicKeyResponse{PublicKey: h.vapidPublicKey})
}

// Create handles POST /api/push-subscriptions requests.
func (h *PushSubscriptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUserID(w, r)
	if !ok {
		return
	}

	var req CreatePushSubscriptionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithValidationError(w, r, http.StatusBadRequest, "Validation error", ValidationErrorInfo(err))
		return
	}

	sub := &store.PushSubscription{
		ID:        uuid.New(),
		UserID:    userID,
		Endpoint:  req.Endpoint,
		P256dhKey: req.P256dhKey,
		AuthKey:   req.AuthKey,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.subscriptions.Create(r.Context(), sub); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, sub)
}

// Delete handles DELETE /api/push-subscriptions/{id} requests. Only the
// user who registered the subscription may remove it.
func (h *PushSubscriptionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUserID(w, r)
	if !ok {
		return
	}
	subID, ok := idFromURL(w, r)
	if !ok {
		return
	}

	sub, err := h.subscriptions.GetByID(r.Context(), subID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	if sub.UserID != userID {
		shared.RespondWithError(w, r, http.StatusForbidden, "You do not own this subscription")
		return
	}

	if err := h.subscriptions.Delete(r.Context(), subID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}
