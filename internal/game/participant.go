package game

import (
	"fmt"
	"strconv"
)

// DealerStandsOn is the lowest score the dealer stands on.
const DealerStandsOn = 17

const DealerName = "House"

type Kind int

const (
	KindPlayer Kind = iota
	KindDealer
)

// Decider answers whether a player takes another card. It is called once per
// potential hit and may block.
type Decider func(p *Participant) bool

type Participant struct {
	Name string
	Kind Kind
	Hand Hand

	decide Decider
}

func NewPlayer(name string, decide Decider) *Participant {
	return &Participant{
		Name:   name,
		Kind:   KindPlayer,
		decide: decide,
	}
}

func NewDealer() *Participant {
	return &Participant{
		Name: DealerName,
		Kind: KindDealer,
	}
}

func (p *Participant) IsDealer() bool {
	return p.Kind == KindDealer
}

func (p *Participant) Score() int {
	return p.Hand.Score()
}

func (p *Participant) IsBusted() bool {
	return p.Hand.IsBusted()
}

func (p *Participant) IsHitting() bool {
	switch p.Kind {
	case KindDealer:
		return p.Score() < DealerStandsOn
	default:
		if p.decide == nil {
			return false
		}
		return p.decide(p)
	}
}

func (p *Participant) HasHiddenCard() bool {
	return p.Hand.HasHiddenCard()
}

// Reveal turns the first card over.
func (p *Participant) Reveal() error {
	if err := p.Hand.FlipFirst(); err != nil {
		return fmt.Errorf("%s: %w", p.Name, err)
	}
	return nil
}

// String renders "name:\t<cards>\t(score)", hiding the score while the first
// card is face down.
func (p *Participant) String() string {
	score := "?"
	if !p.HasHiddenCard() {
		score = strconv.Itoa(p.Score())
	}
	if p.Hand.Len() == 0 {
		return fmt.Sprintf("%s:\t(%s)", p.Name, score)
	}
	return fmt.Sprintf("%s:\t%s\t(%s)", p.Name, p.Hand.String(), score)
}
