package bot

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"blackjack/internal/config"
	"blackjack/internal/game"
	"blackjack/internal/player"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sanity-io/litter"
)

// Sender is the part of tgbotapi.BotAPI the handler uses.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Handler struct {
	bot     Sender
	cfg     *config.Config
	players player.Repository
	games   *Manager
}

func NewHandler(bot Sender, cfg *config.Config, repo player.Repository) *Handler {
	return &Handler{
		bot:     bot,
		cfg:     cfg,
		players: repo,
		games:   NewManager(),
	}
}

func playerID(chatID int64) string {
	return "tg:" + strconv.FormatInt(chatID, 10)
}

func displayName(u *tgbotapi.User) string {
	if u == nil || u.FirstName == "" {
		return "Player"
	}
	return u.FirstName
}

// ============== helpers ==============

func (h *Handler) send(chatID int64, text string) {
	if _, err := h.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

func (h *Handler) sendWithKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := h.bot.Send(msg); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

func (h *Handler) answerCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		log.Printf("Failed to answer callback: %v", err)
	}
}

// ============== round collaborators ==============

// chatTable renders a round into a chat.
type chatTable struct {
	h      *Handler
	chatID int64
}

func (t *chatTable) Show(p *game.Participant) {
	t.h.send(t.chatID, "🃏 "+p.String())
}

func (t *chatTable) Bust(p *game.Participant) {
	t.h.send(t.chatID, fmt.Sprintf("💥 %s busted!", p.Name))
}

func (t *chatTable) Outcome(p *game.Participant, o game.Outcome) {
	switch o {
	case game.OutcomeWin:
		t.h.send(t.chatID, fmt.Sprintf("🎉 %s wins!", p.Name))
	case game.OutcomeLose:
		t.h.send(t.chatID, fmt.Sprintf("😔 %s loses!", p.Name))
	case game.OutcomePush:
		t.h.send(t.chatID, fmt.Sprintf("🤝 %s pushes!", p.Name))
	}
}

func (h *Handler) decider(s *Session) game.Decider {
	return func(p *game.Participant) bool {
		return s.Await(func() {
			h.sendWithKeyboard(s.ChatID,
				fmt.Sprintf("%s, you have %d. Hit or stand?", p.Name, p.Score()),
				GameKeyboard())
		})
	}
}

func formatResult(res *game.Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🃏 %s: %d", game.DealerName, res.DealerScore)
	if res.DealerBusted {
		sb.WriteString(" 💥")
	}
	for _, s := range res.Players {
		fmt.Fprintf(&sb, "\n🎴 %s: %d — %s", s.Name, s.Score, s.Outcome)
	}
	return sb.String()
}

// ============== commands ==============

func (h *Handler) HandleStart(chatID int64) {
	h.send(chatID,
		"🎰 Welcome to Blackjack!\n\n"+
			"/play — deal a round\n"+
			"/stats — your statistics\n"+
			"/top — top players\n"+
			"/help — rules")
}

func (h *Handler) HandleHelp(chatID int64) {
	h.send(chatID,
		"📖 Blackjack rules:\n\n"+
			"🎯 Beat the dealer's score without going over 21\n\n"+
			"📊 Points:\n"+
			"• 2-10 — face value\n"+
			"• J, Q, K — 10\n"+
			"• A — 11 or 1\n\n"+
			"🎮 Actions:\n"+
			"• Hit — take a card\n"+
			"• Stand — stop\n\n"+
			fmt.Sprintf("🃏 The dealer hits on %d and below", game.DealerStandsOn-1))
}

func (h *Handler) HandleStats(chatID int64, name string) {
	p, err := h.players.GetOrCreate(playerID(chatID), name)
	if err != nil {
		log.Printf("Failed to load player: %v", err)
		h.send(chatID, "❌ Error")
		return
	}

	h.send(chatID, fmt.Sprintf(
		"📊 Statistics for %s:\n"+
			"🎮 Rounds: %d\n"+
			"✅ Wins: %d (%.1f%%)\n"+
			"❌ Losses: %d\n"+
			"💥 Busts: %d\n"+
			"🤝 Pushes: %d",
		p.Name, p.Rounds, p.Wins, p.WinRate(), p.Losses, p.Busts, p.Pushes))
}

func (h *Handler) HandleTop(chatID int64) {
	stats, err := h.players.GetTop(10)
	if err != nil {
		log.Printf("Failed to load top players: %v", err)
		h.send(chatID, "❌ Error")
		return
	}

	if len(stats) == 0 {
		h.send(chatID, "🏆 Nobody has played yet!")
		return
	}

	var sb strings.Builder
	sb.WriteString("🏆 Top players:\n\n")

	medals := []string{"🥇", "🥈", "🥉"}
	for i, s := range stats {
		medal := fmt.Sprintf("%d.", i+1)
		if i < 3 {
			medal = medals[i]
		}
		sb.WriteString(fmt.Sprintf("%s %s — %d wins | %d rounds (%.0f%%)\n",
			medal, s.Name, s.Wins, s.Rounds, s.WinRate))
	}

	h.send(chatID, sb.String())
}

func (h *Handler) HandlePlay(chatID int64, name string) {
	s := NewSession(chatID, playerID(chatID), h.cfg.DecisionTimeout)
	if !h.games.Start(s) {
		h.send(chatID, "⏳ A round is already in progress")
		return
	}

	go h.runRound(s, name)
}

func (h *Handler) runRound(s *Session, name string) {
	shoe := game.NewShoe(h.cfg.ShuffleSeed)
	shoe.Shuffle()

	p := game.NewPlayer(name, h.decider(s))
	r := game.NewRound(shoe, nil, []*game.Participant{p}, &chatTable{h: h, chatID: s.ChatID})

	res, err := r.Play()
	h.games.Delete(s.ChatID)
	if err != nil {
		log.Printf("Round failed: %v", err)
		h.send(s.ChatID, "❌ The round was aborted")
		return
	}

	if h.cfg.Debug {
		log.Printf("Round %s finished: %s", res.RoundID, litter.Sdump(res))
	}

	if err := player.RecordResult(h.players, res, map[string]string{name: s.PlayerID}); err != nil {
		log.Printf("Failed to save player: %v", err)
	}

	h.sendWithKeyboard(s.ChatID, formatResult(res), EndGameKeyboard())
}

// ============== callbacks ==============

func (h *Handler) HandleCallback(callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil || callback.Message.Chat == nil {
		h.answerCallback(callback.ID, "")
		return
	}
	chatID := callback.Message.Chat.ID
	name := displayName(callback.From)

	switch callback.Data {
	case CallbackPlayAgain:
		h.answerCallback(callback.ID, "")
		h.HandlePlay(chatID, name)
		return

	case CallbackStats:
		h.answerCallback(callback.ID, "")
		h.HandleStats(chatID, name)
		return

	case CallbackHit, CallbackStand:
	default:
		h.answerCallback(callback.ID, "")
		return
	}

	s := h.games.Get(chatID)
	if s == nil {
		h.answerCallback(callback.ID, "No active round")
		return
	}

	if !s.Decide(callback.Data == CallbackHit) {
		h.answerCallback(callback.ID, "Please wait")
		return
	}

	h.answerCallback(callback.ID, "")
}

// ============== messages ==============

func (h *Handler) HandleMessage(msg *tgbotapi.Message) {
	if msg.Chat == nil {
		return
	}
	chatID := msg.Chat.ID
	parts := strings.Fields(msg.Text)

	if len(parts) == 0 {
		return
	}

	cmd := strings.ToLower(parts[0])

	switch cmd {
	case "/start":
		h.HandleStart(chatID)
	case "/help":
		h.HandleHelp(chatID)
	case "/play":
		h.HandlePlay(chatID, displayName(msg.From))
	case "/stats":
		h.HandleStats(chatID, displayName(msg.From))
	case "/top":
		h.HandleTop(chatID)
	}
}
