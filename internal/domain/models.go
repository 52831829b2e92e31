package domain

import "time"

// Stage identifies the phase of an assessment session.
type Stage string

const (
	StageCardSelection Stage = "card_selection"
	StageQuiz          Stage = "quiz"
	StageComplete      Stage = "complete"
)

// Big Five trait labels used by the question catalog.
const (
	TraitOpenness          = "Openness"
	TraitConscientiousness = "Conscientiousness"
	TraitExtraversion      = "Extraversion"
	TraitAgreeableness     = "Agreeableness"
	TraitNeuroticism       = "Neuroticism"
)

// Card is a reflection card from the static deck.
type Card struct {
	ID        int      `json:"id"`
	Image     string   `json:"image"`
	Alt       string   `json:"alt"`
	Snippet   string   `json:"snippet"`
	FullQuote string   `json:"fullQuote"`
	Tags      []string `json:"tags"`
	Theme     string   `json:"theme"`
}

// Question is a Likert-scale item tagged with the trait it probes.
type Question struct {
	ID    int    `json:"id"`
	Text  string `json:"text"`
	Trait string `json:"trait"`
}

// Likert answer bounds.
const (
	AnswerMin = 1
	AnswerMax = 5
)

// Catalog bundles the static assessment content.
type Catalog struct {
	Cards     []Card     `json:"cards"`
	Questions []Question `json:"questions"`
}

// AssessmentView is a client-facing snapshot of a session. Question is
// nil outside the quiz stage; Cards is empty outside card selection.
type AssessmentView struct {
	UserID         string    `json:"userId"`
	Stage          Stage     `json:"stage"`
	Cards          []Card    `json:"cards,omitempty"`
	Question       *Question `json:"question,omitempty"`
	QuestionNumber int       `json:"questionNumber"`
	TotalQuestions int       `json:"totalQuestions"`
	Round          int       `json:"round"`
	TotalRounds    int       `json:"totalRounds"`
	Progress       float64   `json:"progress"`
}

// AssessmentProgress is the lightweight update pushed to subscribers.
type AssessmentProgress struct {
	UserID     string    `json:"userId"`
	Stage      Stage     `json:"stage"`
	Answers    int       `json:"answers"`
	Selections int       `json:"selections"`
	Progress   float64   `json:"progress"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// AssessmentResult is emitted exactly once when a session completes.
type AssessmentResult struct {
	UserID      string    `json:"userId"`
	Selections  []Card    `json:"selections"`
	Answers     []int     `json:"answers"`
	CompletedAt time.Time `json:"completedAt"`
}

// JournalEntry is an immutable saved entry. Entries are never updated
// or deleted once written.
type JournalEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	WordCount int       `json:"wordCount"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// Draft is the autosaved work-in-progress for a user. Unlike entries,
// drafts are overwritten on every save.
type Draft struct {
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	WordCount int       `json:"wordCount"`
	UpdatedAt time.Time `json:"updatedAt"`
}
