package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"aurora-journal-service/internal/app"
	"aurora-journal-service/internal/domain"
	"aurora-journal-service/internal/infra/memory"
	transport "aurora-journal-service/internal/transport/http"
)

type envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func newAssessmentServer(t *testing.T) (*httptest.Server, *memory.ResultStore) {
	t.Helper()
	results := memory.NewResultStore()
	catalog := domain.Catalog{
		Cards:     domain.ReflectionCards(),
		Questions: domain.BigFiveQuestions(),
	}
	// A short two-round run keeps the protocol test quick.
	service, err := app.NewAssessmentService(memory.NewSessionStore(), results, catalog, 10, 5, zap.NewNop())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	handler := transport.NewWSHandler(service, zap.NewNop())

	mux := http.NewServeMux()
	mux.HandleFunc("/ws/assessment", handler.ServeWS)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, results
}

func dialWS(t *testing.T, server *httptest.Server, path string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http") + path
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

// readEnvelope returns the next message of the wanted type, skipping the
// progress stream interleaved with stage messages.
func readEnvelope(t *testing.T, conn *websocket.Conn, want string) envelope {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	_ = conn.SetReadDeadline(deadline)
	for time.Now().Before(deadline) {
		var env envelope
		if err := conn.ReadJSON(&env); err != nil {
			t.Fatalf("read: %v", err)
		}
		if env.Type == want {
			return env
		}
		if env.Type == "progress" {
			continue
		}
		t.Fatalf("expected %q message, got %q: %s", want, env.Type, env.Payload)
	}
	t.Fatalf("timed out waiting for %q message", want)
	return envelope{}
}

func sendMessage(t *testing.T, conn *websocket.Conn, msgType string, payload any) {
	t.Helper()
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := conn.WriteJSON(map[string]any{"type": msgType, "payload": json.RawMessage(raw)}); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestServeWSRequiresUserID(t *testing.T) {
	server, _ := newAssessmentServer(t)

	resp, err := http.Get(server.URL + "/ws/assessment")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestServeWSFullAssessment(t *testing.T) {
	server, results := newAssessmentServer(t)
	conn := dialWS(t, server, "/ws/assessment?userId=ada")

	var view domain.AssessmentView
	env := readEnvelope(t, conn, "stage")
	if err := json.Unmarshal(env.Payload, &view); err != nil {
		t.Fatalf("unmarshal stage: %v", err)
	}
	if view.Stage != domain.StageCardSelection || len(view.Cards) != app.CardBatchSize {
		t.Fatalf("unexpected initial stage %+v", view)
	}

	answers := 0
	for view.Stage != domain.StageComplete {
		switch view.Stage {
		case domain.StageCardSelection:
			sendMessage(t, conn, "pickCard", map[string]int{"cardId": view.Cards[0].ID})
		case domain.StageQuiz:
			sendMessage(t, conn, "answer", map[string]int{"value": 3})
			answers++
		}
		env = readEnvelope(t, conn, "stage")
		if err := json.Unmarshal(env.Payload, &view); err != nil {
			t.Fatalf("unmarshal stage: %v", err)
		}
		if answers > 20 {
			t.Fatalf("assessment never completed")
		}
	}

	env = readEnvelope(t, conn, "results")
	var result domain.AssessmentResult
	if err := json.Unmarshal(env.Payload, &result); err != nil {
		t.Fatalf("unmarshal results: %v", err)
	}
	if result.UserID != "ada" || len(result.Selections) != 2 || len(result.Answers) != 10 {
		t.Fatalf("unexpected result %+v", result)
	}

	stored := results.Results("ada")
	if len(stored) != 1 {
		t.Fatalf("expected 1 persisted result, got %d", len(stored))
	}
}

func TestServeWSRejectsBadMessages(t *testing.T) {
	server, _ := newAssessmentServer(t)
	conn := dialWS(t, server, "/ws/assessment?userId=ada")

	var view domain.AssessmentView
	env := readEnvelope(t, conn, "stage")
	if err := json.Unmarshal(env.Payload, &view); err != nil {
		t.Fatalf("unmarshal stage: %v", err)
	}

	// Answering during card selection is a protocol error, not a close.
	sendMessage(t, conn, "answer", map[string]int{"value": 3})
	readEnvelope(t, conn, "error")

	// Picking a card outside the offered batch is rejected.
	outside := 0
	for id := 1; id <= 15; id++ {
		inBatch := false
		for _, c := range view.Cards {
			if c.ID == id {
				inBatch = true
			}
		}
		if !inBatch {
			outside = id
			break
		}
	}
	sendMessage(t, conn, "pickCard", map[string]int{"cardId": outside})
	readEnvelope(t, conn, "error")

	sendMessage(t, conn, "unknown", map[string]int{})
	readEnvelope(t, conn, "error")

	// The session is still usable after rejected messages.
	sendMessage(t, conn, "pickCard", map[string]int{"cardId": view.Cards[0].ID})
	env = readEnvelope(t, conn, "stage")
	if err := json.Unmarshal(env.Payload, &view); err != nil {
		t.Fatalf("unmarshal stage: %v", err)
	}
	if view.Stage != domain.StageQuiz || view.Question == nil {
		t.Fatalf("expected quiz stage after valid pick, got %+v", view)
	}
}
