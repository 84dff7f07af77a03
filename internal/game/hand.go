package game

import "strings"

const (
	Blackjack = 21
	softAce   = 11
)

type Hand struct {
	cards []Card
}

func (h *Hand) Add(card Card) error {
	if !card.Valid() {
		return ErrInvalidCard
	}
	h.cards = append(h.cards, card)
	return nil
}

func (h *Hand) Clear() {
	h.cards = h.cards[:0]
}

func (h *Hand) Len() int {
	return len(h.cards)
}

func (h *Hand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Score counts at most one Ace as 11, and only when that Ace together with
// the remaining Aces at 1 stays within 21.
func (h *Hand) Score() int {
	score, _ := h.score()
	return score
}

// IsSoft reports whether the score includes an Ace counted as 11.
func (h *Hand) IsSoft() bool {
	_, soft := h.score()
	return soft
}

func (h *Hand) score() (int, bool) {
	sum := 0
	aces := 0

	for _, c := range h.cards {
		if c.Rank == Ace {
			aces++
			continue
		}
		sum += c.Rank.Score()
	}

	soft := false
	if aces > 0 && sum <= Blackjack-softAce-(aces-1) {
		sum += softAce
		aces--
		soft = true
	}

	return sum + aces, soft
}

func (h *Hand) IsBusted() bool {
	return h.Score() > Blackjack
}

// HasHiddenCard reports whether the first card is face down. An empty hand
// has no hidden card.
func (h *Hand) HasHiddenCard() bool {
	return len(h.cards) > 0 && !h.cards[0].FaceUp
}

func (h *Hand) FlipFirst() error {
	if len(h.cards) == 0 {
		return ErrEmptyHand
	}
	h.cards[0].Flip()
	return nil
}

func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, "\t")
}
