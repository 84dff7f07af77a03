package game

import (
	"fmt"

	"github.com/google/uuid"
)

type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLose
	OutcomePush
	OutcomeBust
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	case OutcomePush:
		return "push"
	case OutcomeBust:
		return "bust"
	default:
		return "none"
	}
}

type Phase int

const (
	PhaseDeal Phase = iota
	PhaseReveal
	PhasePlayers
	PhaseDealer
	PhaseSettle
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseDeal:
		return "deal"
	case PhaseReveal:
		return "reveal"
	case PhasePlayers:
		return "players"
	case PhaseDealer:
		return "dealer"
	case PhaseSettle:
		return "settle"
	default:
		return "done"
	}
}

// Table receives everything a round wants shown. Implementations must not
// keep the participant past the call; hands are cleared when the round ends.
type Table interface {
	Show(p *Participant)
	Bust(p *Participant)
	Outcome(p *Participant, o Outcome)
}

type nopTable struct{}

func (nopTable) Show(*Participant)             {}
func (nopTable) Bust(*Participant)             {}
func (nopTable) Outcome(*Participant, Outcome) {}

type Settlement struct {
	Name    string
	Score   int
	Cards   []Card
	Outcome Outcome
}

type Result struct {
	RoundID      string
	DealerScore  int
	DealerCards  []Card
	DealerBusted bool
	Players      []Settlement
}

// Round runs one deal-through-settlement cycle. It is not safe for
// concurrent use.
type Round struct {
	ID      string
	Shoe    *Shoe
	Dealer  *Participant
	Players []*Participant

	table Table
	phase Phase
}

func NewRound(shoe *Shoe, dealer *Participant, players []*Participant, table Table) *Round {
	if table == nil {
		table = nopTable{}
	}
	if dealer == nil {
		dealer = NewDealer()
	}

	return &Round{
		ID:      uuid.NewString(),
		Shoe:    shoe,
		Dealer:  dealer,
		Players: players,
		table:   table,
		phase:   PhaseDeal,
	}
}

func (r *Round) Phase() Phase {
	return r.phase
}

// Reset prepares the round for another play with a fresh, shuffled shoe.
func (r *Round) Reset() {
	r.Shoe.Populate()
	r.Shoe.Shuffle()
	r.clearHands()
	r.ID = uuid.NewString()
	r.phase = PhaseDeal
}

func (r *Round) Play() (*Result, error) {
	if r.phase != PhaseDeal {
		return nil, ErrRoundOver
	}

	res, err := r.play()
	r.clearHands()
	r.phase = PhaseDone
	if err != nil {
		return nil, fmt.Errorf("round %s: %w", r.ID, err)
	}
	return res, nil
}

func (r *Round) play() (*Result, error) {
	if err := r.deal(); err != nil {
		return nil, err
	}

	r.phase = PhaseReveal
	for _, p := range r.Players {
		r.table.Show(p)
	}
	r.table.Show(r.Dealer)

	r.phase = PhasePlayers
	for _, p := range r.Players {
		if err := r.additionalCards(p); err != nil {
			return nil, err
		}
	}

	r.phase = PhaseDealer
	if err := r.Dealer.Reveal(); err != nil {
		return nil, err
	}
	r.table.Show(r.Dealer)
	if err := r.additionalCards(r.Dealer); err != nil {
		return nil, err
	}

	r.phase = PhaseSettle
	return r.settle(), nil
}

// deal gives every player one card then the dealer one card, twice. The
// dealer's first card goes face down.
func (r *Round) deal() error {
	for pass := 0; pass < 2; pass++ {
		for _, p := range r.Players {
			if err := r.dealTo(p); err != nil {
				return err
			}
		}
		if err := r.dealTo(r.Dealer); err != nil {
			return err
		}
	}
	return r.Dealer.Hand.FlipFirst()
}

func (r *Round) dealTo(p *Participant) error {
	card, err := r.Shoe.Draw()
	if err != nil {
		return fmt.Errorf("deal to %s: %w", p.Name, err)
	}
	return p.Hand.Add(card)
}

func (r *Round) additionalCards(p *Participant) error {
	for !p.IsBusted() && p.IsHitting() {
		if err := r.dealTo(p); err != nil {
			return err
		}
		r.table.Show(p)

		if p.IsBusted() {
			r.table.Bust(p)
		}
	}
	return nil
}

func (r *Round) settle() *Result {
	res := &Result{
		RoundID:      r.ID,
		DealerScore:  r.Dealer.Score(),
		DealerCards:  r.Dealer.Hand.Cards(),
		DealerBusted: r.Dealer.IsBusted(),
		Players:      make([]Settlement, 0, len(r.Players)),
	}

	for _, p := range r.Players {
		s := Settlement{
			Name:  p.Name,
			Score: p.Score(),
			Cards: p.Hand.Cards(),
		}

		if p.IsBusted() {
			s.Outcome = OutcomeBust
			res.Players = append(res.Players, s)
			continue
		}

		s.Outcome = compare(p.Score(), res.DealerScore, res.DealerBusted)
		r.table.Outcome(p, s.Outcome)
		res.Players = append(res.Players, s)
	}

	return res
}

func compare(playerScore, dealerScore int, dealerBusted bool) Outcome {
	switch {
	case dealerBusted, playerScore > dealerScore:
		return OutcomeWin
	case playerScore < dealerScore:
		return OutcomeLose
	default:
		return OutcomePush
	}
}

func (r *Round) clearHands() {
	for _, p := range r.Players {
		p.Hand.Clear()
	}
	r.Dealer.Hand.Clear()
}
