package game

import (
	"math/rand"
	"time"
)

const DeckSize = 52

// Shoe is a single 52-card deck. Cards are drawn from the end of the slice.
type Shoe struct {
	cards []Card
	rng   *rand.Rand
}

// NewShoe returns a populated, unshuffled shoe. A zero seed is replaced with
// the current time.
func NewShoe(seed int64) *Shoe {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Shoe{
		cards: make([]Card, 0, DeckSize),
		rng:   rand.New(rand.NewSource(seed)),
	}
	s.Populate()
	return s
}

// NewStackedShoe returns a shoe that deals exactly the given cards, first
// argument first.
func NewStackedShoe(cards ...Card) *Shoe {
	s := &Shoe{
		cards: make([]Card, 0, len(cards)),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for i := len(cards) - 1; i >= 0; i-- {
		s.cards = append(s.cards, cards[i])
	}
	return s
}

func (s *Shoe) Populate() {
	s.cards = s.cards[:0]

	suit := Clubs
	for i := 0; i < 4; i++ {
		for rank := Ace; rank <= King; rank++ {
			s.cards = append(s.cards, Card{Rank: rank, Suit: suit, FaceUp: true})
		}
		suit = suit.Next()
	}
}

func (s *Shoe) Shuffle() {
	s.rng.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
}

func (s *Shoe) Draw() (Card, error) {
	if len(s.cards) == 0 {
		return Card{}, ErrEmptyShoe
	}

	last := len(s.cards) - 1
	card := s.cards[last]
	s.cards = s.cards[:last]
	return card, nil
}

func (s *Shoe) Len() int {
	return len(s.cards)
}

// Cards returns a copy of the remaining cards in draw-last order.
func (s *Shoe) Cards() []Card {
	out := make([]Card, len(s.cards))
	copy(out, s.cards)
	return out
}
