package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/midas/cards"
	"github.com/lox/midas/internal/randutil"
	"github.com/lox/midas/internal/strategy"
)

// dealerStandsOn is the total at which the dealer stops drawing, soft or hard.
const dealerStandsOn = 17

// MaxSeats is the most players a table seats. One 52-card set cannot
// reliably cover more hands in a single round.
const MaxSeats = 7

// Game plays rounds of blackjack for a fixed set of players against one
// shoe. It is not safe for concurrent use; run independent games in
// parallel instead.
type Game struct {
	players []*Player
	shoe    *cards.Shoe
	minimum float64
	logger  *log.Logger
	checks  bool
	round   int

	// round-scoped state
	dealer cards.Hand
	hands  []*ActiveHand
}

// NewGame seats players at a new table.
func NewGame(players []*Player, opts ...Option) *Game {
	cfg := &gameConfig{minimum: DefaultMinimumBet}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.minimum <= 0 {
		cfg.minimum = DefaultMinimumBet
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard)
	}
	if cfg.shoe == nil {
		if cfg.rng == nil {
			cfg.rng = randutil.New(randutil.Seed(0))
		}
		cfg.shoe = cards.NewShoe(cfg.rng)
	}

	g := &Game{
		players: players,
		shoe:    cfg.shoe,
		minimum: cfg.minimum,
		logger:  cfg.logger,
		checks:  cfg.checks,
	}
	g.shoe.AddObserver(cards.ShuffleFunc(g.shuffled))
	return g
}

// Players returns the seated players
func (g *Game) Players() []*Player {
	return g.players
}

// Shoe returns the table's shoe
func (g *Game) Shoe() *cards.Shoe {
	return g.shoe
}

// MinimumBet returns the table minimum
func (g *Game) MinimumBet() float64 {
	return g.minimum
}

// Rounds returns how many rounds have been played
func (g *Game) Rounds() int {
	return g.round
}

// Active reports whether any player can still afford the table minimum
func (g *Game) Active() bool {
	for _, p := range g.players {
		if p.balance >= g.minimum {
			return true
		}
	}
	return false
}

// Round plays one round and returns the result of every hand, in the
// order the hands were created. It returns nil without dealing when no
// player can cover the minimum.
func (g *Game) Round() []RoundResult {
	report := g.PlayRound()
	if len(report.Hands) == 0 {
		return nil
	}
	return report.Results()
}

// PlayRound plays one round and returns the detailed report.
func (g *Game) PlayRound() RoundReport {
	var seated []*Player
	for _, p := range g.players {
		if p.balance >= g.minimum {
			seated = append(seated, p)
		}
	}
	if len(seated) == 0 {
		return RoundReport{Round: g.round}
	}

	g.round++
	g.logger.Debug("Round started", "round", g.round, "players", len(seated))

	g.deal(seated)
	g.playHands()
	g.playDealer()
	report := g.settle()
	g.cleanup()

	g.logger.Debug("Round finished", "round", g.round, "dealer", report.DealerValue, "hands", len(report.Hands))
	return report
}

func (g *Game) deal(seated []*Player) {
	for _, p := range seated {
		h := &ActiveHand{Player: p, Wager: p.debit(p.wager(g.minimum))}
		g.hands = append(g.hands, h)

		g.dealOpen(&h.Hand)
		g.dealOpen(&h.Hand)
		h.Blackjack = h.Hand.IsBlackjack()
	}

	g.dealOpen(&g.dealer)
	g.dealConcealed(&g.dealer)
}

// playHands gives every incomplete hand one decision per pass until all
// hands are complete. Hands spawned by a split join from the next pass.
func (g *Game) playHands() {
	for {
		var pending []*ActiveHand
		for _, h := range g.hands {
			if !h.Completed {
				pending = append(pending, h)
			}
		}
		if len(pending) == 0 {
			return
		}

		for _, h := range pending {
			g.decide(h)
		}
	}
}

// decide makes one decision on h.
func (g *Game) decide(h *ActiveHand) {
	if h.Hand.Value() >= 21 {
		h.Completed = true
		return
	}

	p := h.Player
	action := p.action.Action(h.Hand.Clone(), g.upCard())
	if !strategy.Legal(action, h.Hand) {
		panic(&ContractError{Player: p.Name, Action: action, Hand: h.Hand.Clone()})
	}

	g.logger.Debug("Decision", "round", g.round, "player", p.Name, "action", action,
		"hand", h.Hand.String(), "value", h.Hand.Value(), "dealer", g.upCard())

	switch action {
	case strategy.Hit:
		g.dealOpen(&h.Hand)

	case strategy.Stand:
		h.Completed = true

	case strategy.Double:
		h.Wager += p.debit(h.Wager)
		h.Doubled = true
		g.dealOpen(&h.Hand)
		h.Completed = true

	case strategy.Split:
		if p.balance < h.Wager {
			g.logger.Debug("Split not funded, hitting instead", "player", p.Name, "balance", p.balance, "wager", h.Wager)
			g.dealOpen(&h.Hand)
			return
		}
		g.split(h)

	case strategy.Surrender:
		h.Surrendered = true
		h.Completed = true
	}
}

func (g *Game) split(h *ActiveHand) {
	aces := h.Hand.Card(0).IsAce()
	spawned := &ActiveHand{
		Player:    h.Player,
		Hand:      cards.NewHand(h.Hand.TakeLast()),
		Wager:     h.Player.debit(h.Wager),
		FromSplit: true,
		SplitAces: aces,
	}
	h.FromSplit = true
	h.SplitAces = aces
	g.hands = append(g.hands, spawned)

	g.dealOpen(&h.Hand)
	g.dealOpen(&spawned.Hand)

	// no further cards after split aces
	if aces {
		h.Completed = true
		spawned.Completed = true
	}
}

func (g *Game) playDealer() {
	g.broadcast(strategy.CardEvent{Kind: strategy.HoleCardRevealed, Card: g.dealer.Card(1)})

	for g.dealer.Value() < dealerStandsOn {
		g.dealOpen(&g.dealer)
	}
}

func (g *Game) settle() RoundReport {
	report := RoundReport{
		Round:       g.round,
		Dealer:      g.dealer.Cards(),
		DealerValue: g.dealer.Value(),
		Hands:       make([]HandReport, 0, len(g.hands)),
	}

	for _, h := range g.hands {
		result := settle(h, g.dealer)
		payout := result.Payout(h.Wager)
		h.Player.credit(payout)

		report.Hands = append(report.Hands, HandReport{
			Player:    h.Player,
			Cards:     h.Hand.Cards(),
			Value:     h.Hand.Value(),
			Wager:     h.Wager,
			Payout:    payout,
			Result:    result,
			FromSplit: h.FromSplit,
			Doubled:   h.Doubled,
		})
		g.logger.Debug("Settled", "round", g.round, "player", h.Player.Name, "result", result,
			"value", h.Hand.Value(), "wager", h.Wager, "payout", payout)
	}
	return report
}

func (g *Game) cleanup() {
	g.shoe.Discard(g.dealer.Take()...)
	for _, h := range g.hands {
		g.shoe.Discard(h.Hand.Take()...)
	}
	g.hands = nil
	g.check()
}

// upCard is the only part of the dealer hand action policies may see.
func (g *Game) upCard() cards.Card {
	return g.dealer.Card(0)
}

// dealOpen deals a face-up card that everyone at the table sees.
func (g *Game) dealOpen(hand *cards.Hand) {
	c := g.shoe.Deal()
	hand.Add(c)
	g.broadcast(strategy.CardEvent{Kind: strategy.CardDealt, Card: c})
	g.check()
}

// dealConcealed deals the dealer's hole card. Betting policies receive it
// on their own event kind and decide whether to count it.
func (g *Game) dealConcealed(hand *cards.Hand) {
	c := g.shoe.Deal()
	hand.Add(c)
	g.broadcast(strategy.CardEvent{Kind: strategy.HoleCardDealt, Card: c})
	g.check()
}

func (g *Game) shuffled() {
	g.logger.Debug("Shoe reshuffled", "round", g.round, "shuffles", g.shoe.Shuffles())
	g.broadcast(strategy.CardEvent{Kind: strategy.Shuffled})
}

func (g *Game) broadcast(e strategy.CardEvent) {
	for _, p := range g.players {
		p.betting.Observe(e)
	}
}

// inPlay counts the cards currently held in the dealer's and players' hands
func (g *Game) inPlay() int {
	n := g.dealer.Len()
	for _, h := range g.hands {
		n += h.Hand.Len()
	}
	return n
}

func (g *Game) check() {
	if !g.checks {
		return
	}
	if total := g.shoe.Len() + g.shoe.DiscardLen() + g.inPlay(); total != cards.SetSize {
		panic(&InvariantError{Shoe: g.shoe.Len(), Discards: g.shoe.DiscardLen(), InPlay: g.inPlay()})
	}
}
