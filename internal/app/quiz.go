package app

import "aurora-journal-service/internal/domain"

// QuizRunner serves a fixed, pre-shuffled question list in batches. It is
// pure: RecordAnswer only describes the transition, the session applies it.
type QuizRunner struct {
	questions []domain.Question
	perBatch  int
}

// Transition describes the outcome of recording one answer.
type Transition struct {
	NextIndex          int
	BatchComplete      bool
	AssessmentComplete bool
}

func NewQuizRunner(questions []domain.Question, perBatch int) *QuizRunner {
	qs := make([]domain.Question, len(questions))
	copy(qs, questions)
	return &QuizRunner{questions: qs, perBatch: perBatch}
}

// Question returns the question at index within the fixed order.
func (r *QuizRunner) Question(index int) (domain.Question, error) {
	if index < 0 || index >= len(r.questions) {
		return domain.Question{}, domain.ErrQuestionIndex
	}
	return r.questions[index], nil
}

// RecordAnswer validates value and computes where the session moves next.
// The batch boundary check mirrors index advancement: a batch completes
// every perBatch answers, the assessment when the list is exhausted.
func (r *QuizRunner) RecordAnswer(index, value int) (Transition, error) {
	if value < domain.AnswerMin || value > domain.AnswerMax {
		return Transition{}, domain.ErrInvalidAnswer
	}
	if index < 0 || index >= len(r.questions) {
		return Transition{}, domain.ErrQuestionIndex
	}
	next := index + 1
	return Transition{
		NextIndex:          next,
		BatchComplete:      next%r.perBatch == 0,
		AssessmentComplete: next == len(r.questions),
	}, nil
}

// Total is the number of questions in the run.
func (r *QuizRunner) Total() int { return len(r.questions) }

// PerBatch is the batch size the runner was built with.
func (r *QuizRunner) PerBatch() int { return r.perBatch }
