package app

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"aurora-journal-service/internal/domain"
)

// SessionRepository abstracts how assessment sessions are stored
// (in-memory, Redis-backed, etc).
type SessionRepository interface {
	GetOrCreate(userID string, create func() *AssessmentSession) *AssessmentSession
	Get(userID string) (*AssessmentSession, bool)
	Delete(userID string)
}

// ResultRepository receives the finished result exactly once per session.
type ResultRepository interface {
	SaveResult(ctx context.Context, result domain.AssessmentResult) error
}

// AssessmentService drives users through alternating card-selection and
// quiz rounds until the configured number of answers is collected.
type AssessmentService struct {
	sessions  SessionRepository
	results   ResultRepository
	pool      []domain.Card
	questions []domain.Question
	total     int
	perBatch  int
	logger    *zap.Logger
	newRand   func() *rand.Rand
}

func NewAssessmentService(store SessionRepository, results ResultRepository, catalog domain.Catalog, total, perBatch int, logger *zap.Logger) (*AssessmentService, error) {
	if len(catalog.Cards) < CardBatchSize {
		return nil, domain.ErrInsufficientPool
	}
	if total <= 0 || perBatch <= 0 || total%perBatch != 0 {
		return nil, fmt.Errorf("total questions %d must be a positive multiple of batch size %d", total, perBatch)
	}
	if total > len(catalog.Questions) {
		return nil, fmt.Errorf("total questions %d exceeds catalog size %d", total, len(catalog.Questions))
	}
	return &AssessmentService{
		sessions:  store,
		results:   results,
		pool:      catalog.Cards,
		questions: catalog.Questions,
		total:     total,
		perBatch:  perBatch,
		logger:    logger,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}, nil
}

// Start returns the user's session view, creating a fresh session with its
// own question order and first card batch when none exists.
func (s *AssessmentService) Start(_ context.Context, userID string) (domain.AssessmentView, error) {
	if userID == "" {
		return domain.AssessmentView{}, domain.ErrSessionNotFound
	}
	session := s.sessions.GetOrCreate(userID, func() *AssessmentSession {
		return s.newSession(userID)
	})
	return session.View(), nil
}

func (s *AssessmentService) newSession(userID string) *AssessmentSession {
	rnd := s.newRand()
	// Pool size was validated at construction, so NewDeck cannot fail here.
	deck, _ := NewDeck(s.pool, rnd)
	runner := NewQuizRunner(shuffle(rnd, s.questions)[:s.total], s.perBatch)
	return NewAssessmentSession(userID, deck, runner)
}

// PickCard resolves a card choice during a card-selection round.
func (s *AssessmentService) PickCard(_ context.Context, userID string, cardID int) (domain.AssessmentView, error) {
	session, ok := s.sessions.Get(userID)
	if !ok {
		return domain.AssessmentView{}, domain.ErrSessionNotFound
	}
	return session.pickCard(cardID)
}

// SubmitAnswer records a Likert answer. When the session completes, the
// accumulated result is persisted and the session is dropped so a later
// Start begins a fresh assessment.
func (s *AssessmentService) SubmitAnswer(ctx context.Context, userID string, value int) (domain.AssessmentView, *domain.AssessmentResult, error) {
	session, ok := s.sessions.Get(userID)
	if !ok {
		return domain.AssessmentView{}, nil, domain.ErrSessionNotFound
	}
	view, result, err := session.submitAnswer(value)
	if err != nil {
		return view, nil, err
	}
	if result != nil {
		if err := s.results.SaveResult(ctx, *result); err != nil {
			// Persistence is best-effort; the client still gets its results.
			s.logger.Error("persist assessment result failed",
				zap.String("userId", userID), zap.Error(err))
		}
		s.sessions.Delete(userID)
	}
	return view, result, nil
}

// Snapshot returns the current view without mutating anything.
func (s *AssessmentService) Snapshot(_ context.Context, userID string) (domain.AssessmentView, error) {
	session, ok := s.sessions.Get(userID)
	if !ok {
		return domain.AssessmentView{}, domain.ErrSessionNotFound
	}
	return session.View(), nil
}

// Subscribe returns a channel of progress updates for a user's session.
// The caller must invoke the returned cancel function to avoid leaks.
func (s *AssessmentService) Subscribe(_ context.Context, userID string) (<-chan domain.AssessmentProgress, func(), error) {
	session, ok := s.sessions.Get(userID)
	if !ok {
		return nil, nil, domain.ErrSessionNotFound
	}
	ch, cancel := session.subscribe()
	return ch, cancel, nil
}

// Abandon discards an unfinished session.
func (s *AssessmentService) Abandon(_ context.Context, userID string) {
	s.sessions.Delete(userID)
}

// AssessmentSession is the in-memory state machine for one user's run.
// All mutation goes through pickCard/submitAnswer under the mutex.
type AssessmentSession struct {
	userID string
	now    func() time.Time

	mu          sync.Mutex
	stage       domain.Stage
	deck        *Deck
	runner      *QuizRunner
	batch       []domain.Card
	selections  []domain.Card
	answers     []int
	index       int
	emitted     bool
	subscribers map[chan domain.AssessmentProgress]struct{}
}

// NewAssessmentSession is exported for infrastructure layers and tests.
func NewAssessmentSession(userID string, deck *Deck, runner *QuizRunner) *AssessmentSession {
	return NewAssessmentSessionWithClock(userID, deck, runner, time.Now)
}

// NewAssessmentSessionWithClock allows deterministic timestamps in tests.
func NewAssessmentSessionWithClock(userID string, deck *Deck, runner *QuizRunner, now func() time.Time) *AssessmentSession {
	return &AssessmentSession{
		userID:      userID,
		now:         now,
		stage:       domain.StageCardSelection,
		deck:        deck,
		runner:      runner,
		batch:       deck.NextBatch(),
		subscribers: make(map[chan domain.AssessmentProgress]struct{}),
	}
}

// View returns a snapshot of the session.
func (s *AssessmentSession) View() domain.AssessmentView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *AssessmentSession) pickCard(cardID int) (domain.AssessmentView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.stage {
	case domain.StageComplete:
		return s.viewLocked(), domain.ErrAssessmentComplete
	case domain.StageQuiz:
		return s.viewLocked(), domain.ErrWrongStage
	}

	card, err := s.deck.Resolve(s.batch, cardID)
	if err != nil {
		return s.viewLocked(), err
	}
	s.selections = append(s.selections, card)
	s.stage = domain.StageQuiz
	s.batch = nil
	s.broadcastLocked()
	return s.viewLocked(), nil
}

func (s *AssessmentSession) submitAnswer(value int) (domain.AssessmentView, *domain.AssessmentResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.stage {
	case domain.StageComplete:
		return s.viewLocked(), nil, domain.ErrAssessmentComplete
	case domain.StageCardSelection:
		return s.viewLocked(), nil, domain.ErrWrongStage
	}

	tr, err := s.runner.RecordAnswer(s.index, value)
	if err != nil {
		return s.viewLocked(), nil, err
	}
	s.answers = append(s.answers, value)
	s.index = tr.NextIndex

	var result *domain.AssessmentResult
	if tr.AssessmentComplete {
		// The final answer moves straight to complete, never through
		// another card round.
		s.stage = domain.StageComplete
		if !s.emitted {
			s.emitted = true
			result = &domain.AssessmentResult{
				UserID:      s.userID,
				Selections:  append([]domain.Card(nil), s.selections...),
				Answers:     append([]int(nil), s.answers...),
				CompletedAt: s.now(),
			}
		}
	} else if tr.BatchComplete {
		s.stage = domain.StageCardSelection
		s.batch = s.deck.NextBatch()
	}
	s.broadcastLocked()
	return s.viewLocked(), result, nil
}

func (s *AssessmentSession) subscribe() (<-chan domain.AssessmentProgress, func()) {
	ch := make(chan domain.AssessmentProgress, 8)

	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	initial := s.progressLocked()
	s.mu.Unlock()

	ch <- initial

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

func (s *AssessmentSession) broadcastLocked() {
	progress := s.progressLocked()
	for ch := range s.subscribers {
		select {
		case ch <- progress:
		default:
			// Drop the stale update so a slow subscriber never blocks the run.
			select {
			case <-ch:
			default:
			}
			ch <- progress
		}
	}
}

func (s *AssessmentSession) progressLocked() domain.AssessmentProgress {
	return domain.AssessmentProgress{
		UserID:     s.userID,
		Stage:      s.stage,
		Answers:    len(s.answers),
		Selections: len(s.selections),
		Progress:   float64(len(s.answers)) / float64(s.runner.Total()),
		UpdatedAt:  s.now(),
	}
}

func (s *AssessmentSession) viewLocked() domain.AssessmentView {
	view := domain.AssessmentView{
		UserID:         s.userID,
		Stage:          s.stage,
		TotalQuestions: s.runner.Total(),
		Round:          len(s.selections),
		TotalRounds:    s.runner.Total() / s.runner.PerBatch(),
		Progress:       float64(len(s.answers)) / float64(s.runner.Total()),
	}
	switch s.stage {
	case domain.StageCardSelection:
		view.Cards = append([]domain.Card(nil), s.batch...)
		view.Round = len(s.selections) + 1
	case domain.StageQuiz:
		q, _ := s.runner.Question(s.index)
		view.Question = &q
		view.QuestionNumber = s.index + 1
	case domain.StageComplete:
		view.QuestionNumber = s.runner.Total()
	}
	return view
}
