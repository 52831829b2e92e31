package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"aurora-journal-service/internal/app"
	"aurora-journal-service/internal/auth"
	"aurora-journal-service/internal/domain"
)

// DraftRepository is the read/write surface the draft endpoints need.
type DraftRepository interface {
	SaveDraft(ctx context.Context, draft domain.Draft) error
	GetDraft(ctx context.Context, userID string) (domain.Draft, error)
}

// JournalHandler serves the journal REST surface: entries, drafts,
// prompt generation, and the client bootstrap config.
type JournalHandler struct {
	journal      *app.JournalService
	prompts      *app.PromptService
	drafts       DraftRepository
	verifier     *auth.Verifier
	clientConfig map[string]string
	logger       *zap.Logger
}

func NewJournalHandler(journal *app.JournalService, prompts *app.PromptService, drafts DraftRepository, verifier *auth.Verifier, clientConfig map[string]string, logger *zap.Logger) *JournalHandler {
	return &JournalHandler{
		journal:      journal,
		prompts:      prompts,
		drafts:       drafts,
		verifier:     verifier,
		clientConfig: clientConfig,
		logger:       logger,
	}
}

// Register mounts all journal routes on mux.
func (h *JournalHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/generate-prompt", h.handleGeneratePrompt)
	mux.HandleFunc("/api/client-config", h.handleClientConfig)
	mux.Handle("/api/entries", h.verifier.Middleware(http.HandlerFunc(h.handleEntries)))
	mux.Handle("/api/draft", h.verifier.Middleware(http.HandlerFunc(h.handleDraft)))
}

// handleGeneratePrompt always answers 200: generation failures degrade to
// the fallback prompt inside the service.
func (h *JournalHandler) handleGeneratePrompt(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"prompt": h.prompts.Generate(r.Context())})
}

func (h *JournalHandler) handleClientConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	cfg := h.clientConfig
	if cfg == nil {
		cfg = map[string]string{}
	}
	writeJSON(w, http.StatusOK, cfg)
}

type createEntryRequest struct {
	Content string `json:"content"`
}

type listEntriesResponse struct {
	Entries    []domain.JournalEntry `json:"entries"`
	Milestones []time.Time           `json:"milestones"`
}

func (h *JournalHandler) handleEntries(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	switch r.Method {
	case http.MethodPost:
		var req createEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		entry, err := h.journal.CreateEntry(r.Context(), identity.UserID, req.Content)
		if err != nil {
			h.logger.Error("create entry failed", zap.String("userId", identity.UserID), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "could not save entry")
			return
		}
		writeJSON(w, http.StatusCreated, entry)
	case http.MethodGet:
		entries, err := h.journal.ListEntries(r.Context(), identity.UserID)
		if err != nil {
			h.logger.Error("list entries failed", zap.String("userId", identity.UserID), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "could not load entries")
			return
		}
		if entries == nil {
			entries = []domain.JournalEntry{}
		}
		writeJSON(w, http.StatusOK, listEntriesResponse{
			Entries:    entries,
			Milestones: app.Milestones(entries),
		})
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

type saveDraftRequest struct {
	Content string `json:"content"`
}

func (h *JournalHandler) handleDraft(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	switch r.Method {
	case http.MethodPut:
		var req saveDraftRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		draft := domain.Draft{
			UserID:    identity.UserID,
			Content:   req.Content,
			WordCount: app.CountWords(req.Content),
			UpdatedAt: time.Now().UTC(),
		}
		if err := h.drafts.SaveDraft(r.Context(), draft); err != nil {
			h.logger.Error("save draft failed", zap.String("userId", identity.UserID), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "could not save draft")
			return
		}
		writeJSON(w, http.StatusOK, draft)
	case http.MethodGet:
		draft, err := h.drafts.GetDraft(r.Context(), identity.UserID)
		if errors.Is(err, domain.ErrDraftNotFound) {
			writeError(w, http.StatusNotFound, "no draft")
			return
		}
		if err != nil {
			h.logger.Error("load draft failed", zap.String("userId", identity.UserID), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "could not load draft")
			return
		}
		writeJSON(w, http.StatusOK, draft)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
