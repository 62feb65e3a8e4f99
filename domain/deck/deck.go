package deck

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/acgowda/games/domain/card"
)

var (
	// ErrEmptyDeck is returned when drawing or discarding with no active cards.
	ErrEmptyDeck = errors.New("deck is empty")
	// ErrCardNotTracked is returned when a card handed back to the deck is not
	// currently held in the drawn or discarded pile.
	ErrCardNotTracked = errors.New("card not among removed cards")
	// ErrInvalidPosition is returned for a Position other than Top or Bottom.
	ErrInvalidPosition = errors.New("invalid position")
)

// Position selects the end of the active pile that returned cards go to.
type Position int

const (
	Top Position = iota
	Bottom
)

func (p Position) String() string {
	switch p {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	default:
		return fmt.Sprintf("position(%d)", int(p))
	}
}

type pile int

const (
	untracked pile = iota
	drawnPile
	discardedPile
)

// Deck is a 52-card pool split into three disjoint piles. Every card is at
// all times in exactly one of active, drawn or discarded. The top of the
// active pile is the last element of the slice.
//
// All methods are safe for concurrent use; each one is applied atomically.
type Deck struct {
	mu        sync.Mutex
	active    []card.Card
	drawn     []card.Card
	discarded []card.Card
	rng       *rand.Rand
	logger    *slog.Logger
}

// New creates a deck with the 52 cards in the active pile in canonical order
// and the drawn and discarded piles empty.
func New(opts ...Option) *Deck {
	d := &Deck{
		active: card.Full(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.rng == nil {
		d.rng = rand.New(newStreamSource())
	}
	return d
}

// Draw removes the top active card, moves it to the drawn pile and returns it.
func (d *Deck) Draw() (card.Card, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	c, err := d.pop()
	if err != nil {
		return card.Card{}, err
	}
	d.drawn = append(d.drawn, c)
	return c, nil
}

// Deal draws n cards. Either all n are drawn or the deck is left untouched.
func (d *Deck) Deal(n int) ([]card.Card, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if n > len(d.active) {
		return nil, fmt.Errorf("%w: want %d cards, %d left", ErrEmptyDeck, n, len(d.active))
	}
	cards := make([]card.Card, 0, n)
	for range n {
		c, _ := d.pop()
		d.drawn = append(d.drawn, c)
		cards = append(cards, c)
	}
	return cards, nil
}

// DiscardTop moves the top active card straight to the discarded pile.
func (d *Deck) DiscardTop() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	c, err := d.pop()
	if err != nil {
		return err
	}
	d.discarded = append(d.discarded, c)
	return nil
}

// Discard moves previously drawn cards to the discarded pile. It is
// all-or-nothing: if any card is not in the drawn pile nothing is moved.
func (d *Deck) Discard(cards []card.Card) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	remaining := slices.Clone(d.drawn)
	for _, c := range cards {
		i := slices.Index(remaining, c)
		if i < 0 {
			return fmt.Errorf("%w: %v is not drawn", ErrCardNotTracked, c)
		}
		remaining = slices.Delete(remaining, i, i+1)
	}
	d.drawn = remaining
	d.discarded = append(d.discarded, cards...)
	return nil
}

// ReturnCards puts every given card back into the active pile at the chosen
// end, keeping their relative order. Each card must currently be in the
// drawn or discarded pile; otherwise ErrCardNotTracked is returned and the
// deck is left exactly as it was.
func (d *Deck) ReturnCards(cards []card.Card, pos Position) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.returnCards(cards, pos)
}

// ReturnDiscarded returns the whole discarded pile to the active pile.
func (d *Deck) ReturnDiscarded(pos Position) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.returnCards(slices.Clone(d.discarded), pos)
}

// ReturnDrawn returns the whole drawn pile to the active pile.
func (d *Deck) ReturnDrawn(pos Position) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.returnCards(slices.Clone(d.drawn), pos)
}

// ReturnAll returns the drawn pile and then the discarded pile.
func (d *Deck) ReturnAll(pos Position) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	cards := make([]card.Card, 0, len(d.drawn)+len(d.discarded))
	cards = append(cards, d.drawn...)
	cards = append(cards, d.discarded...)
	return d.returnCards(cards, pos)
}

// Counts reports the size of the active, drawn and discarded piles. The sum
// is always 52.
func (d *Deck) Counts() (active, drawn, discarded int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.active), len(d.drawn), len(d.discarded)
}

// Active returns a copy of the active pile, bottom first.
func (d *Deck) Active() []card.Card {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.active)
}

// Drawn returns a copy of the drawn pile in draw order.
func (d *Deck) Drawn() []card.Card {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.drawn)
}

// Discarded returns a copy of the discarded pile in discard order.
func (d *Deck) Discarded() []card.Card {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.discarded)
}

func (d *Deck) String() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return "[" + card.Format(d.active, " ") + "]"
}

func (d *Deck) pop() (card.Card, error) {
	n := len(d.active)
	if n == 0 {
		return card.Card{}, ErrEmptyDeck
	}
	c := d.active[n-1]
	d.active = d.active[:n-1]
	return c, nil
}

// returnCards works on scratch copies of the piles and only commits them
// once every card has been located. Callers must hold d.mu.
func (d *Deck) returnCards(cards []card.Card, pos Position) error {
	if pos != Top && pos != Bottom {
		return fmt.Errorf("%w: %v", ErrInvalidPosition, pos)
	}
	drawn := slices.Clone(d.drawn)
	discarded := slices.Clone(d.discarded)
	for _, c := range cards {
		switch locate(c, discarded, drawn) {
		case discardedPile:
			i := slices.Index(discarded, c)
			discarded = slices.Delete(discarded, i, i+1)
		case drawnPile:
			i := slices.Index(drawn, c)
			drawn = slices.Delete(drawn, i, i+1)
		default:
			return fmt.Errorf("%w: %v", ErrCardNotTracked, c)
		}
	}

	d.drawn = drawn
	d.discarded = discarded
	if pos == Bottom {
		d.active = append(slices.Clone(cards), d.active...)
	} else {
		d.active = append(d.active, cards...)
	}
	d.logger.Debug("cards returned", "count", len(cards), "position", pos.String())
	return nil
}

func locate(c card.Card, discarded, drawn []card.Card) pile {
	if slices.Contains(discarded, c) {
		return discardedPile
	}
	if slices.Contains(drawn, c) {
		return drawnPile
	}
	return untracked
}
