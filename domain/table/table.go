package table

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/acgowda/games/domain/card"
	"github.com/acgowda/games/domain/deck"
	"github.com/acgowda/games/domain/poker"
)

var (
	// ErrUnknownSeat is returned for a seat index outside the table.
	ErrUnknownSeat = errors.New("unknown seat")
	// ErrInvalidExchange is returned when the hand positions to exchange are
	// out of range or repeated.
	ErrInvalidExchange = errors.New("invalid exchange")
)

// Seat is a player's place at the table and the cards they hold.
type Seat struct {
	Name string
	Hand []card.Card
}

// Result is the evaluated hand of one seat at showdown.
type Result struct {
	Seat int
	Name string
	Hand poker.Hand
}

// Table deals five-card draw hands from a single shared deck. Betting and
// chip handling belong to the caller.
type Table struct {
	deck      *deck.Deck
	evaluator poker.Evaluator
	seats     []Seat
	logger    *slog.Logger
}

// New seats one player per name around d. A nil logger means slog.Default().
func New(d *deck.Deck, ev poker.Evaluator, logger *slog.Logger, names ...string) *Table {
	if logger == nil {
		logger = slog.Default()
	}
	seats := make([]Seat, len(names))
	for i, name := range names {
		seats[i] = Seat{Name: name}
	}
	return &Table{deck: d, evaluator: ev, seats: seats, logger: logger}
}

// Seats returns a copy of the seats and their hands.
func (t *Table) Seats() []Seat {
	out := make([]Seat, len(t.seats))
	for i, s := range t.seats {
		out[i] = Seat{Name: s.Name, Hand: slices.Clone(s.Hand)}
	}
	return out
}

// Deal gives n cards to every seat, one card at a time round the table.
// Either every seat gets its n cards or no card leaves the deck.
func (t *Table) Deal(n int) error {
	cards, err := t.deck.Deal(n * len(t.seats))
	if err != nil {
		return fmt.Errorf("dealing %d cards to %d seats: %w", n, len(t.seats), err)
	}
	for i, c := range cards {
		seat := i % len(t.seats)
		t.seats[seat].Hand = append(t.seats[seat].Hand, c)
	}
	a, dr, di := t.deck.Counts()
	t.logger.Debug("hands dealt", "seats", len(t.seats), "cards", n, "active", a, "drawn", dr, "discarded", di)
	return nil
}

// Exchange replaces the cards at the given hand positions with fresh cards
// from the deck. The replaced cards go to the discard pile.
func (t *Table) Exchange(seat int, positions ...int) ([]card.Card, error) {
	if seat < 0 || seat >= len(t.seats) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSeat, seat)
	}
	hand := t.seats[seat].Hand
	seen := map[int]bool{}
	for _, p := range positions {
		if p < 0 || p >= len(hand) || seen[p] {
			return nil, fmt.Errorf("%w: position %d", ErrInvalidExchange, p)
		}
		seen[p] = true
	}
	if len(positions) == 0 {
		return nil, nil
	}

	fresh, err := t.deck.Deal(len(positions))
	if err != nil {
		return nil, err
	}
	old := make([]card.Card, len(positions))
	for i, p := range positions {
		old[i] = hand[p]
	}
	if err := t.deck.Discard(old); err != nil {
		// put the fresh cards back on top in the order they came off
		undo := slices.Clone(fresh)
		slices.Reverse(undo)
		if rerr := t.deck.ReturnCards(undo, deck.Top); rerr != nil {
			return nil, errors.Join(err, rerr)
		}
		return nil, err
	}
	for i, p := range positions {
		hand[p] = fresh[i]
	}
	t.logger.Debug("cards exchanged", "seat", t.seats[seat].Name, "out", card.Format(old, " "), "in", card.Format(fresh, " "))
	return fresh, nil
}

// Showdown evaluates every hand concurrently and returns the results in
// seat order together with the winning seats. More than one winner means
// the pot is split.
func (t *Table) Showdown(ctx context.Context) ([]Result, []int, error) {
	results := make([]Result, len(t.seats))
	g, ctx := errgroup.WithContext(ctx)
	for i, s := range t.seats {
		hand := slices.Clone(s.Hand)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			h, err := t.evaluator.Evaluate(hand)
			if err != nil {
				return fmt.Errorf("evaluating %s: %w", s.Name, err)
			}
			results[i] = Result{Seat: i, Name: s.Name, Hand: h}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	winners := Winners(results)
	for _, w := range winners {
		t.logger.Info("showdown winner", "seat", results[w].Name, "hand", results[w].Hand.Describe())
	}
	return results, winners, nil
}

// Winners returns the indices of the strongest results; ties yield several.
func Winners(results []Result) []int {
	var winners []int
	for i, r := range results {
		if len(winners) == 0 {
			winners = []int{i}
			continue
		}
		switch r.Hand.Compare(results[winners[0]].Hand) {
		case poker.Greater:
			winners = []int{i}
		case poker.Equal:
			winners = append(winners, i)
		}
	}
	return winners
}

// Collect empties every hand and puts all dealt and discarded cards back
// into the deck at pos.
func (t *Table) Collect(pos deck.Position) error {
	if err := t.deck.ReturnAll(pos); err != nil {
		return err
	}
	for i := range t.seats {
		t.seats[i].Hand = nil
	}
	return nil
}
