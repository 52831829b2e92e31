package app

import (
	"math/rand"

	"aurora-journal-service/internal/domain"
)

// CardBatchSize is the number of cards offered per selection round.
const CardBatchSize = 4

// Deck draws card batches from a fixed pool. Each session owns its own
// Deck so the embedded rand source is never shared across goroutines.
type Deck struct {
	pool []domain.Card
	rnd  *rand.Rand
}

// NewDeck validates the pool up front; a pool that cannot fill a single
// batch is fatal for the whole assessment.
func NewDeck(pool []domain.Card, rnd *rand.Rand) (*Deck, error) {
	if len(pool) < CardBatchSize {
		return nil, domain.ErrInsufficientPool
	}
	cards := make([]domain.Card, len(pool))
	copy(cards, pool)
	return &Deck{pool: cards, rnd: rnd}, nil
}

// NextBatch returns four distinct cards drawn at random from the pool.
func (d *Deck) NextBatch() []domain.Card {
	return shuffle(d.rnd, d.pool)[:CardBatchSize]
}

// Resolve validates that the picked card was actually offered in batch
// and returns it. The caller appends it to the selection history.
func (d *Deck) Resolve(batch []domain.Card, cardID int) (domain.Card, error) {
	for _, card := range batch {
		if card.ID == cardID {
			return card, nil
		}
	}
	return domain.Card{}, domain.ErrInvalidSelection
}
