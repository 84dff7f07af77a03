package game

import (
	"errors"
	"strconv"
)

var (
	ErrInvalidCard = errors.New("invalid card")
	ErrEmptyShoe   = errors.New("shoe is empty")
	ErrEmptyHand   = errors.New("hand is empty")
	ErrRoundOver   = errors.New("round already played")
)

type Suit uint8

const (
	Clubs Suit = iota + 1
	Diamonds
	Hearts
	Spades
)

func (s Suit) Valid() bool {
	return s >= Clubs && s <= Spades
}

// Next cycles Clubs -> Diamonds -> Hearts -> Spades -> Clubs.
func (s Suit) Next() Suit {
	switch s {
	case Clubs:
		return Diamonds
	case Diamonds:
		return Hearts
	case Hearts:
		return Spades
	case Spades:
		return Clubs
	default:
		return 0
	}
}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

type Rank uint8

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// Score is the base value of the rank. Aces count 1 here; Hand.Score
// decides whether one of them is promoted to 11.
func (r Rank) Score() int {
	switch {
	case r >= Jack && r <= King:
		return 10
	case r.Valid():
		return int(r)
	default:
		return 0
	}
}

func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	if r.Valid() {
		return strconv.Itoa(int(r))
	}
	return "?"
}

type Card struct {
	Rank   Rank
	Suit   Suit
	FaceUp bool
}

// NewCard returns a face-up card.
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.Valid() || !suit.Valid() {
		return Card{}, ErrInvalidCard
	}
	return Card{Rank: rank, Suit: suit, FaceUp: true}, nil
}

func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit.Valid()
}

func (c *Card) Flip() {
	c.FaceUp = !c.FaceUp
}

func (c Card) String() string {
	if !c.FaceUp {
		return "XX"
	}
	return c.Rank.String() + c.Suit.String()
}
