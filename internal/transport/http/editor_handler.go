package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"aurora-journal-service/internal/app"
	"aurora-journal-service/internal/domain"
)

// EditorHandler runs one autosave controller per websocket editing
// session. The client streams content changes; the server persists the
// draft on the autosave cadence and reports each successful save.
type EditorHandler struct {
	drafts   app.DraftSaver
	interval time.Duration
	timeout  time.Duration
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

func NewEditorHandler(drafts app.DraftSaver, interval, timeout time.Duration, logger *zap.Logger) *EditorHandler {
	return &EditorHandler{
		drafts:   drafts,
		interval: interval,
		timeout:  timeout,
		logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type contentPayload struct {
	Content string `json:"content"`
}

type savedPayload struct {
	WordCount int       `json:"wordCount"`
	SavedAt   time.Time `json:"savedAt"`
}

// ServeEditor upgrades the request and keeps a draft autosaved for the
// lifetime of the connection.
func (h *EditorHandler) ServeEditor(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "missing userId", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("ws upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	send := make(chan outboundMessage[any], 16)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				h.logger.Debug("ws write error", zap.Error(err))
				return
			}
		}
	}()

	controller := app.NewAutosaveController(userID, h.drafts, app.AutosaveConfig{
		Interval: h.interval,
		Timeout:  h.timeout,
		OnSaved: func(draft domain.Draft) {
			// Never block the save loop on a slow client.
			select {
			case send <- outboundMessage[any]{Type: "saved", Payload: savedPayload{WordCount: draft.WordCount, SavedAt: draft.UpdatedAt}}:
			default:
			}
		},
	}, h.logger)

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		switch inbound.Type {
		case "content":
			var payload contentPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "invalid content payload"}}
				continue
			}
			controller.SetContent(payload.Content)
		case "save":
			if err := controller.Flush(r.Context()); err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "save failed, will retry"}}
			}
		default:
			send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "unsupported message type"}}
		}
	}

	// Final best-effort save before releasing the timer.
	flushCtx, cancel := context.WithTimeout(context.Background(), h.timeout)
	if err := controller.Flush(flushCtx); err != nil {
		h.logger.Warn("final draft flush failed", zap.String("userId", userID), zap.Error(err))
	}
	cancel()
	controller.Close()

	close(send)
	<-writerDone
}
