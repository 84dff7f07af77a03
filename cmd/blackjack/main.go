package main

import (
	"fmt"
	"log"
	"os"

	"blackjack/internal/config"
	"blackjack/internal/console"
	"blackjack/internal/database"
	"blackjack/internal/game"
	"blackjack/internal/player"

	"github.com/sanity-io/litter"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Tallies are optional for the console game.
	var repo player.Repository
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Printf("Statistics disabled: %v", err)
	} else {
		defer db.Close()
		repo = player.NewRepository(db.DB)
	}

	prompt := console.NewPrompter(os.Stdin, os.Stdout)
	table := console.NewTable(os.Stdout)

	players := make([]*game.Participant, 0, len(cfg.Players))
	ids := make(map[string]string, len(cfg.Players))
	for _, name := range cfg.Players {
		players = append(players, game.NewPlayer(name, prompt.Decider()))
		ids[name] = "cli:" + name
	}

	fmt.Println("\tWelcome to Blackjack!")

	shoe := game.NewShoe(cfg.ShuffleSeed)
	r := game.NewRound(shoe, nil, players, table)

	for {
		r.Reset()
		fmt.Println()

		res, err := r.Play()
		if err != nil {
			log.Fatalf("Round failed: %v", err)
		}

		if cfg.Debug {
			log.Printf("Round %s finished: %s", res.RoundID, litter.Sdump(res))
		}

		if repo != nil {
			if err := player.RecordResult(repo, res, ids); err != nil {
				log.Printf("Failed to save player: %v", err)
			}
		}

		if !prompt.Confirm("\nDo you want to play again?") {
			break
		}
	}
}
