package bot

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/souravmalhi93-eng/Vaani-backend/internal/telegram"
)

// Replier produces the reply text for one inbound message. It never
// fails; degraded conditions surface as canned text.
type Replier interface {
	Reply(ctx context.Context, text string) string
}

// Sender delivers a reply to the originating chat.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// Handler handles incoming Telegram webhook updates. Each update is
// processed start to finish with no state shared between requests.
type Handler struct {
	replier Replier
	sender  Sender
	logger  zerolog.Logger
}

// NewHandler creates a webhook update handler.
func NewHandler(replier Replier, sender Sender, logger zerolog.Logger) *Handler {
	return &Handler{
		replier: replier,
		sender:  sender,
		logger:  logger,
	}
}

// HandleUpdate handles one webhook POST from Telegram. Updates without
// message text are acknowledged with 200 and ignored, matching platform
// semantics for non-text update types. A failed outbound send answers
// 500 so Telegram redelivers the update.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var update telegram.Update
	if err := json.Unmarshal(body, &update); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	if update.Message == nil || update.Message.Chat.ID == 0 || update.Message.Text == "" {
		acknowledge(w)
		return
	}

	chatID := update.Message.Chat.ID
	logger := h.logger.With().
		Str("relay_id", uuid.NewString()).
		Int64("chat_id", chatID).
		Logger()

	reply := h.replier.Reply(r.Context(), update.Message.Text)

	if err := h.sender.SendMessage(r.Context(), chatID, reply); err != nil {
		logger.Error().Err(err).Msg("outbound send failed")
		http.Error(w, "failed to deliver reply", http.StatusInternalServerError)
		return
	}

	logger.Debug().Msg("reply delivered")
	acknowledge(w)
}

func acknowledge(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"ok":true}`))
}
