package player

import (
	"database/sql"
	"errors"
	"fmt"

	"blackjack/internal/game"
)

type Player struct {
	ID        string
	Name      string
	Wins      int
	Losses    int
	Pushes    int
	Busts     int
	Rounds    int
	LastRound string
}

type Stats struct {
	ID      string
	Name    string
	Wins    int
	Rounds  int
	WinRate float64
}

type Repository interface {
	GetOrCreate(id, name string) (*Player, error)
	Save(player *Player) error
	GetTop(limit int) ([]Stats, error)
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) GetOrCreate(id, name string) (*Player, error) {
	player := &Player{ID: id}

	err := r.db.QueryRow(`
		SELECT name, wins, losses, pushes, busts, rounds, last_round
		FROM players WHERE id = ?
	`, id).Scan(
		&player.Name, &player.Wins, &player.Losses, &player.Pushes,
		&player.Busts, &player.Rounds, &player.LastRound,
	)

	if errors.Is(err, sql.ErrNoRows) {
		player.Name = name

		_, err = r.db.Exec(`
			INSERT INTO players (id, name)
			VALUES (?, ?)
		`, id, name)

		if err != nil {
			return nil, fmt.Errorf("failed to create player: %w", err)
		}
		return player, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return player, nil
}

func (r *SQLiteRepository) Save(player *Player) error {
	_, err := r.db.Exec(`
		UPDATE players SET
			name = ?, wins = ?, losses = ?, pushes = ?, busts = ?,
			rounds = ?, last_round = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, player.Name, player.Wins, player.Losses, player.Pushes, player.Busts,
		player.Rounds, player.LastRound, player.ID)

	if err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetTop(limit int) ([]Stats, error) {
	rows, err := r.db.Query(`
		SELECT id, name, wins, rounds
		FROM players
		WHERE rounds > 0
		ORDER BY wins DESC, rounds ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []Stats
	for rows.Next() {
		var s Stats
		if err := rows.Scan(&s.ID, &s.Name, &s.Wins, &s.Rounds); err != nil {
			return nil, err
		}
		if s.Rounds > 0 {
			s.WinRate = float64(s.Wins) / float64(s.Rounds) * 100
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}

// Record counts one settled round. OutcomeNone is ignored.
func (p *Player) Record(outcome game.Outcome, roundID string) {
	switch outcome {
	case game.OutcomeWin:
		p.Wins++
	case game.OutcomeLose:
		p.Losses++
	case game.OutcomePush:
		p.Pushes++
	case game.OutcomeBust:
		p.Busts++
	default:
		return
	}
	p.Rounds++
	p.LastRound = roundID
}

// Losses plus busts.
func (p *Player) Defeats() int {
	return p.Losses + p.Busts
}

func (p *Player) WinRate() float64 {
	if p.Rounds == 0 {
		return 0
	}
	return float64(p.Wins) / float64(p.Rounds) * 100
}

// RecordResult loads, updates and saves every player of a settled round. ids
// maps settlement names to repository IDs; names missing from ids are skipped.
func RecordResult(repo Repository, res *game.Result, ids map[string]string) error {
	var errs []error
	for _, s := range res.Players {
		id, ok := ids[s.Name]
		if !ok {
			continue
		}

		p, err := repo.GetOrCreate(id, s.Name)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		p.Record(s.Outcome, res.RoundID)
		if err := repo.Save(p); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
