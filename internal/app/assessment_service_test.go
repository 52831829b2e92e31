package app_test

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"aurora-journal-service/internal/app"
	"aurora-journal-service/internal/domain"
	"aurora-journal-service/internal/infra/memory"
)

func newTestService(t *testing.T) (*app.AssessmentService, *memory.ResultStore) {
	t.Helper()
	results := memory.NewResultStore()
	catalog := domain.Catalog{
		Cards:     domain.ReflectionCards(),
		Questions: domain.BigFiveQuestions(),
	}
	service, err := app.NewAssessmentService(memory.NewSessionStore(), results, catalog, 50, 10, zap.NewNop())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return service, results
}

func TestNewAssessmentServiceValidation(t *testing.T) {
	catalog := domain.Catalog{
		Cards:     domain.ReflectionCards(),
		Questions: domain.BigFiveQuestions(),
	}
	small := domain.Catalog{Cards: catalog.Cards[:3], Questions: catalog.Questions}

	if _, err := app.NewAssessmentService(memory.NewSessionStore(), memory.NewResultStore(), small, 50, 10, zap.NewNop()); err != domain.ErrInsufficientPool {
		t.Fatalf("expected ErrInsufficientPool, got %v", err)
	}
	if _, err := app.NewAssessmentService(memory.NewSessionStore(), memory.NewResultStore(), catalog, 50, 7, zap.NewNop()); err == nil {
		t.Fatalf("expected error for non-divisible batch size")
	}
	if _, err := app.NewAssessmentService(memory.NewSessionStore(), memory.NewResultStore(), catalog, 60, 10, zap.NewNop()); err == nil {
		t.Fatalf("expected error when total exceeds catalog")
	}
}

func TestStartIsIdempotentPerUser(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	first, err := service.Start(ctx, "ada")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if first.Stage != domain.StageCardSelection {
		t.Fatalf("expected card_selection stage, got %q", first.Stage)
	}
	if len(first.Cards) != app.CardBatchSize {
		t.Fatalf("expected %d cards, got %d", app.CardBatchSize, len(first.Cards))
	}
	if first.Round != 1 || first.TotalRounds != 5 {
		t.Fatalf("expected round 1 of 5, got %d of %d", first.Round, first.TotalRounds)
	}

	again, err := service.Start(ctx, "ada")
	if err != nil {
		t.Fatalf("second start: %v", err)
	}
	if len(again.Cards) != app.CardBatchSize {
		t.Fatalf("expected existing batch back, got %d cards", len(again.Cards))
	}
	for i := range again.Cards {
		if again.Cards[i].ID != first.Cards[i].ID {
			t.Fatalf("second start replaced the batch: %v vs %v", again.Cards, first.Cards)
		}
	}
}

func TestFullAssessmentRun(t *testing.T) {
	service, results := newTestService(t)
	ctx := context.Background()

	view, err := service.Start(ctx, "ada")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	var result *domain.AssessmentResult
	picks := 0
	answers := 0
	for view.Stage != domain.StageComplete {
		switch view.Stage {
		case domain.StageCardSelection:
			view, err = service.PickCard(ctx, "ada", view.Cards[0].ID)
			if err != nil {
				t.Fatalf("pick %d: %v", picks, err)
			}
			picks++
		case domain.StageQuiz:
			if view.Question == nil {
				t.Fatalf("quiz stage without a question after %d answers", answers)
			}
			if want := answers + 1; view.QuestionNumber != want {
				t.Fatalf("expected question number %d, got %d", want, view.QuestionNumber)
			}
			var r *domain.AssessmentResult
			view, r, err = service.SubmitAnswer(ctx, "ada", 1+answers%5)
			if err != nil {
				t.Fatalf("answer %d: %v", answers, err)
			}
			if r != nil {
				result = r
			}
			answers++
		default:
			t.Fatalf("unexpected stage %q", view.Stage)
		}
		if answers > 60 {
			t.Fatalf("assessment never completed")
		}
	}

	if picks != 5 {
		t.Fatalf("expected 5 card rounds, got %d", picks)
	}
	if answers != 50 {
		t.Fatalf("expected 50 answers, got %d", answers)
	}
	if result == nil {
		t.Fatalf("final answer produced no result")
	}
	if len(result.Selections) != 5 || len(result.Answers) != 50 {
		t.Fatalf("result has %d selections and %d answers", len(result.Selections), len(result.Answers))
	}
	if view.Progress != 1.0 {
		t.Fatalf("expected progress 1.0, got %v", view.Progress)
	}

	stored := results.Results("ada")
	if len(stored) != 1 {
		t.Fatalf("expected 1 persisted result, got %d", len(stored))
	}

	// Completion drops the session, so the next start is a fresh run.
	if _, err := service.Snapshot(ctx, "ada"); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound after completion, got %v", err)
	}
	fresh, err := service.Start(ctx, "ada")
	if err != nil {
		t.Fatalf("restart: %v", err)
	}
	if fresh.Stage != domain.StageCardSelection || fresh.Round != 1 {
		t.Fatalf("expected a fresh run, got stage %q round %d", fresh.Stage, fresh.Round)
	}
}

func TestFinalAnswerSkipsCardRound(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	view, _ := service.Start(ctx, "ada")
	for round := 0; round < 5; round++ {
		var err error
		view, err = service.PickCard(ctx, "ada", view.Cards[0].ID)
		if err != nil {
			t.Fatalf("pick round %d: %v", round, err)
		}
		for q := 0; q < 10; q++ {
			last := round == 4 && q == 9
			next, result, err := service.SubmitAnswer(ctx, "ada", 3)
			if err != nil {
				t.Fatalf("answer: %v", err)
			}
			if last {
				if next.Stage != domain.StageComplete {
					t.Fatalf("final answer landed on stage %q, want complete", next.Stage)
				}
				if result == nil {
					t.Fatalf("final answer produced no result")
				}
			} else if result != nil {
				t.Fatalf("result emitted early at round %d answer %d", round, q)
			}
			view = next
		}
	}
}

func TestPickCardRejectsCardOutsideBatch(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	view, _ := service.Start(ctx, "ada")
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

	after, err := service.PickCard(ctx, "ada", outside)
	if err != domain.ErrInvalidSelection {
		t.Fatalf("expected ErrInvalidSelection, got %v", err)
	}
	if after.Stage != domain.StageCardSelection {
		t.Fatalf("rejected pick changed stage to %q", after.Stage)
	}
	for i := range after.Cards {
		if after.Cards[i].ID != view.Cards[i].ID {
			t.Fatalf("rejected pick changed the batch")
		}
	}
}

func TestStageGuards(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	view, _ := service.Start(ctx, "ada")

	if _, _, err := service.SubmitAnswer(ctx, "ada", 3); err != domain.ErrWrongStage {
		t.Fatalf("answer during card selection: expected ErrWrongStage, got %v", err)
	}

	view, err := service.PickCard(ctx, "ada", view.Cards[0].ID)
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	if view.Stage != domain.StageQuiz {
		t.Fatalf("expected quiz stage, got %q", view.Stage)
	}

	if _, err := service.PickCard(ctx, "ada", 1); err != domain.ErrWrongStage {
		t.Fatalf("pick during quiz: expected ErrWrongStage, got %v", err)
	}

	after, _, err := service.SubmitAnswer(ctx, "ada", 9)
	if err != domain.ErrInvalidAnswer {
		t.Fatalf("expected ErrInvalidAnswer, got %v", err)
	}
	if after.QuestionNumber != view.QuestionNumber {
		t.Fatalf("rejected answer advanced the question: %d -> %d", view.QuestionNumber, after.QuestionNumber)
	}
}

func TestUnknownUser(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	if _, err := service.PickCard(ctx, "ghost", 1); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if _, _, err := service.SubmitAnswer(ctx, "ghost", 3); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if _, _, err := service.Subscribe(ctx, "ghost"); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if _, err := service.Start(ctx, ""); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound for empty user id, got %v", err)
	}
}

func TestSubscribeReceivesProgress(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	view, _ := service.Start(ctx, "ada")
	updates, cancel, err := service.Subscribe(ctx, "ada")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	defer cancel()

	initial := waitProgress(t, updates)
	if initial.Stage != domain.StageCardSelection || initial.Selections != 0 {
		t.Fatalf("unexpected initial progress %+v", initial)
	}

	if _, err := service.PickCard(ctx, "ada", view.Cards[0].ID); err != nil {
		t.Fatalf("pick: %v", err)
	}
	after := waitProgress(t, updates)
	if after.Stage != domain.StageQuiz || after.Selections != 1 {
		t.Fatalf("unexpected progress after pick %+v", after)
	}

	if _, _, err := service.SubmitAnswer(ctx, "ada", 3); err != nil {
		t.Fatalf("answer: %v", err)
	}
	after = waitProgress(t, updates)
	if after.Answers != 1 {
		t.Fatalf("expected 1 answer in progress, got %d", after.Answers)
	}
}

func TestAbandonDropsSession(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	if _, err := service.Start(ctx, "ada"); err != nil {
		t.Fatalf("start: %v", err)
	}
	service.Abandon(ctx, "ada")
	if _, err := service.Snapshot(ctx, "ada"); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound after abandon, got %v", err)
	}
}

func waitProgress(t *testing.T, ch <-chan domain.AssessmentProgress) domain.AssessmentProgress {
	t.Helper()
	select {
	case p := <-ch:
		return p
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for progress update")
		return domain.AssessmentProgress{}
	}
}
