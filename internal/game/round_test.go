package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTable struct {
	shown    []string
	busts    []string
	outcomes map[string]Outcome
}

func newRecordingTable() *recordingTable {
	return &recordingTable{outcomes: make(map[string]Outcome)}
}

func (t *recordingTable) Show(p *Participant)               { t.shown = append(t.shown, p.String()) }
func (t *recordingTable) Bust(p *Participant)               { t.busts = append(t.busts, p.Name) }
func (t *recordingTable) Outcome(p *Participant, o Outcome) { t.outcomes[p.Name] = o }

func stand(*Participant) bool { return false }

// hitTimes returns a decider that hits n times and then stands.
func hitTimes(n int) Decider {
	return func(*Participant) bool {
		if n == 0 {
			return false
		}
		n--
		return true
	}
}

func stacked(ranks ...Rank) *Shoe {
	cards := make([]Card, len(ranks))
	for i, r := range ranks {
		cards[i] = card(r, Hearts)
	}
	return NewStackedShoe(cards...)
}

func TestRoundPlayerWins(t *testing.T) {
	table := newRecordingTable()
	alice := NewPlayer("Alice", stand)
	r := NewRound(stacked(King, King, Queen, Nine), nil, []*Participant{alice}, table)

	res, err := r.Play()
	require.NoError(t, err)

	assert.Equal(t, 19, res.DealerScore)
	assert.False(t, res.DealerBusted)
	require.Len(t, res.Players, 1)
	assert.Equal(t, 20, res.Players[0].Score)
	assert.Equal(t, OutcomeWin, res.Players[0].Outcome)
	assert.Equal(t, OutcomeWin, table.outcomes["Alice"])
	assert.Equal(t, r.ID, res.RoundID)
	assert.Equal(t, PhaseDone, r.Phase())
}

func TestRoundPush(t *testing.T) {
	table := newRecordingTable()
	r := NewRound(stacked(Nine, Ten, Nine, Eight), nil, []*Participant{NewPlayer("Alice", stand)}, table)

	res, err := r.Play()
	require.NoError(t, err)
	assert.Equal(t, 18, res.DealerScore)
	assert.Equal(t, OutcomePush, res.Players[0].Outcome)
	assert.Equal(t, OutcomePush, table.outcomes["Alice"])
}

func TestRoundPlayerLoses(t *testing.T) {
	table := newRecordingTable()
	// dealer 10+6 must hit, draws a two
	r := NewRound(stacked(Ten, Ten, Seven, Six, Two), nil, []*Participant{NewPlayer("Alice", stand)}, table)

	res, err := r.Play()
	require.NoError(t, err)
	assert.Equal(t, 18, res.DealerScore)
	assert.Len(t, res.DealerCards, 3)
	assert.Equal(t, OutcomeLose, res.Players[0].Outcome)
}

func TestRoundDealerStandsOnSeventeen(t *testing.T) {
	// any dealer hit would exhaust the shoe
	r := NewRound(stacked(Ten, Ten, Eight, Seven), nil, []*Participant{NewPlayer("Alice", stand)}, nil)

	res, err := r.Play()
	require.NoError(t, err)
	assert.Equal(t, 17, res.DealerScore)
	assert.Len(t, res.DealerCards, 2)
	assert.Equal(t, OutcomeWin, res.Players[0].Outcome)
}

func TestRoundBustedPlayerSkipped(t *testing.T) {
	table := newRecordingTable()
	alice := NewPlayer("Alice", hitTimes(1))
	r := NewRound(stacked(King, Ten, Queen, Nine, Five), nil, []*Participant{alice}, table)

	res, err := r.Play()
	require.NoError(t, err)

	assert.Equal(t, 25, res.Players[0].Score)
	assert.Equal(t, OutcomeBust, res.Players[0].Outcome)
	assert.Equal(t, []string{"Alice"}, table.busts)
	_, notified := table.outcomes["Alice"]
	assert.False(t, notified)
}

func TestRoundBustedPlayerSkippedWhenDealerBusts(t *testing.T) {
	table := newRecordingTable()
	alice := NewPlayer("Alice", hitTimes(1))
	bob := NewPlayer("Bob", stand)
	// Alice K,Q,+5; Bob 9,8; dealer 10,6 then K
	r := NewRound(stacked(King, Nine, Ten, Queen, Eight, Six, Five, King), nil, []*Participant{alice, bob}, table)

	res, err := r.Play()
	require.NoError(t, err)

	assert.True(t, res.DealerBusted)
	assert.Equal(t, 26, res.DealerScore)
	assert.Equal(t, OutcomeBust, res.Players[0].Outcome)
	assert.Equal(t, OutcomeWin, res.Players[1].Outcome)
	assert.Equal(t, []string{"Alice", DealerName}, table.busts)
	assert.Equal(t, map[string]Outcome{"Bob": OutcomeWin}, table.outcomes)
}

func TestRoundDealOrder(t *testing.T) {
	alice := NewPlayer("Alice", stand)
	bob := NewPlayer("Bob", stand)
	r := NewRound(stacked(Two, Three, Seven, Five, Six, Ten), nil, []*Participant{alice, bob}, nil)

	res, err := r.Play()
	require.NoError(t, err)

	ranks := func(cards []Card) []Rank {
		out := make([]Rank, len(cards))
		for i, c := range cards {
			out[i] = c.Rank
		}
		return out
	}
	assert.Equal(t, []Rank{Two, Five}, ranks(res.Players[0].Cards))
	assert.Equal(t, []Rank{Three, Six}, ranks(res.Players[1].Cards))
	assert.Equal(t, []Rank{Seven, Ten}, ranks(res.DealerCards))
}

func TestRoundDealerCardHiddenDuringPlayerTurns(t *testing.T) {
	table := newRecordingTable()
	var r *Round
	var hidden []bool
	alice := NewPlayer("Alice", func(p *Participant) bool {
		hidden = append(hidden, r.Dealer.HasHiddenCard())
		assert.Equal(t, PhasePlayers, r.Phase())
		return false
	})
	r = NewRound(stacked(Ten, Nine, Eight, Eight), nil, []*Participant{alice}, table)

	_, err := r.Play()
	require.NoError(t, err)

	assert.Equal(t, []bool{true}, hidden)
	require.Len(t, table.shown, 3)
	assert.Equal(t, "Alice:\t10♥\t8♥\t(18)", table.shown[0])
	assert.Equal(t, "House:\tXX\t8♥\t(?)", table.shown[1])
	assert.Equal(t, "House:\t9♥\t8♥\t(17)", table.shown[2])
}

func TestRoundPlayersTakeTurnsInOrder(t *testing.T) {
	var order []string
	decide := func(p *Participant) bool {
		order = append(order, p.Name)
		return p.Hand.Len() < 3
	}
	alice := NewPlayer("Alice", decide)
	bob := NewPlayer("Bob", decide)
	r := NewRound(stacked(Two, Two, Ten, Two, Two, Nine, Three, Three), nil, []*Participant{alice, bob}, nil)

	res, err := r.Play()
	require.NoError(t, err)

	assert.Equal(t, []string{"Alice", "Alice", "Bob", "Bob"}, order)
	assert.Equal(t, 7, res.Players[0].Score)
	assert.Equal(t, 7, res.Players[1].Score)
}

func TestRoundClearsHands(t *testing.T) {
	alice := NewPlayer("Alice", stand)
	dealer := NewDealer()
	r := NewRound(stacked(Ten, Ten, Nine, Six, King), dealer, []*Participant{alice}, nil)

	res, err := r.Play()
	require.NoError(t, err)
	assert.True(t, res.DealerBusted)

	assert.Equal(t, 0, alice.Hand.Len())
	assert.Equal(t, 0, dealer.Hand.Len())
}

func TestRoundEmptyShoeAbortsDeal(t *testing.T) {
	alice := NewPlayer("Alice", stand)
	r := NewRound(stacked(Ten, Ten, Nine), nil, []*Participant{alice}, nil)

	res, err := r.Play()
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrEmptyShoe)
	assert.Contains(t, err.Error(), r.ID)
	assert.Equal(t, 0, alice.Hand.Len())
	assert.Equal(t, 0, r.Dealer.Hand.Len())
	assert.Equal(t, PhaseDone, r.Phase())
}

func TestRoundEmptyShoeDuringHit(t *testing.T) {
	r := NewRound(stacked(Two, Ten, Three, Nine), nil, []*Participant{NewPlayer("Alice", hitTimes(1))}, nil)

	_, err := r.Play()
	assert.ErrorIs(t, err, ErrEmptyShoe)
}

func TestRoundPlayTwice(t *testing.T) {
	r := NewRound(stacked(King, King, Queen, Nine), nil, []*Participant{NewPlayer("Alice", stand)}, nil)

	_, err := r.Play()
	require.NoError(t, err)

	_, err = r.Play()
	assert.ErrorIs(t, err, ErrRoundOver)
}

func TestRoundReset(t *testing.T) {
	shoe := NewShoe(99)
	shoe.Shuffle()
	r := NewRound(shoe, nil, []*Participant{NewPlayer("Alice", stand), NewPlayer("Bob", hitTimes(1))}, nil)

	_, err := r.Play()
	require.NoError(t, err)
	firstID := r.ID

	r.Reset()
	assert.Equal(t, PhaseDeal, r.Phase())
	assert.Equal(t, DeckSize, shoe.Len())
	assert.NotEqual(t, firstID, r.ID)

	res, err := r.Play()
	require.NoError(t, err)
	assert.Len(t, res.Players, 2)
	for _, s := range res.Players {
		assert.NotEqual(t, OutcomeNone, s.Outcome)
	}
}
