package card

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// ErrInvalidCard is returned when a rank or suit symbol is not part of the
// standard 52-card set.
var ErrInvalidCard = errors.New("invalid card")

// Rank is the face value of a card. Larger values are stronger; the Ace is
// always high.
type Rank uint8

// Card rank constants
const (
	Two Rank = iota + 2
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
	Ace
)

// Ranks lists every rank from the strongest to the weakest.
var Ranks = []Rank{Ace, King, Queen, Jack, Ten, Nine, Eight, Seven, Six, Five, Four, Three, Two}

var rankSymbols = map[Rank]string{
	Ace: "A", King: "K", Queen: "Q", Jack: "J", Ten: "10",
	Nine: "9", Eight: "8", Seven: "7", Six: "6", Five: "5",
	Four: "4", Three: "3", Two: "2",
}

// Valid reports whether r is one of the 13 ranks.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

func (r Rank) String() string {
	if s, ok := rankSymbols[r]; ok {
		return s
	}
	return "?"
}

// ParseRank accepts the rank symbols A, K, Q, J, 10 (or T) and 9 down to 2.
func ParseRank(s string) (Rank, error) {
	s = strings.ToUpper(s)
	if s == "T" {
		return Ten, nil
	}
	for r, sym := range rankSymbols {
		if sym == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: rank %q", ErrInvalidCard, s)
}

// Suit carries no strength, only identity for flush grouping.
type Suit uint8

// Card suit constants. Spades and clubs render black, hearts and diamonds red.
const (
	Spade Suit = iota + 1
	Heart
	Diamond
	Club
)

// Suits lists the suits in canonical deck order.
var Suits = []Suit{Spade, Heart, Diamond, Club}

// Valid reports whether s is one of the 4 suits.
func (s Suit) Valid() bool {
	return s >= Spade && s <= Club
}

func (s Suit) String() string {
	switch s {
	case Spade:
		return "S"
	case Heart:
		return "H"
	case Diamond:
		return "D"
	case Club:
		return "C"
	default:
		return "?"
	}
}

// Symbol returns the unicode suit glyph.
func (s Suit) Symbol() string {
	switch s {
	case Spade:
		return "♠"
	case Heart:
		return "♥"
	case Diamond:
		return "♦"
	case Club:
		return "♣"
	default:
		return "?"
	}
}

// ParseSuit accepts S, H, D and C in either case.
func ParseSuit(s string) (Suit, error) {
	switch strings.ToUpper(s) {
	case "S":
		return Spade, nil
	case "H":
		return Heart, nil
	case "D":
		return Diamond, nil
	case "C":
		return Club, nil
	}
	return 0, fmt.Errorf("%w: suit %q", ErrInvalidCard, s)
}

// Card represents a playing card with rank and suit. The zero value is not a
// valid card. Cards are comparable and can be used as map keys.
type Card struct {
	rank Rank
	suit Suit
}

// New creates a new Card with validation.
func New(rank Rank, suit Suit) (Card, error) {
	if !rank.Valid() {
		return Card{}, fmt.Errorf("%w: rank %d", ErrInvalidCard, rank)
	}
	if !suit.Valid() {
		return Card{}, fmt.Errorf("%w: suit %d", ErrInvalidCard, suit)
	}
	return Card{rank: rank, suit: suit}, nil
}

// Parse builds a Card from its text token: the rank symbol followed by the
// suit letter, e.g. "AS", "10H" or "TH".
func Parse(token string) (Card, error) {
	token = strings.TrimSpace(token)
	if len(token) < 2 || len(token) > 3 {
		return Card{}, fmt.Errorf("%w: token %q", ErrInvalidCard, token)
	}
	rank, err := ParseRank(token[:len(token)-1])
	if err != nil {
		return Card{}, err
	}
	suit, err := ParseSuit(token[len(token)-1:])
	if err != nil {
		return Card{}, err
	}
	return Card{rank: rank, suit: suit}, nil
}

// MustParse is like Parse but panics on a malformed token.
func MustParse(token string) Card {
	c, err := Parse(token)
	if err != nil {
		panic(err)
	}
	return c
}

// Rank returns the rank of the Card.
func (c Card) Rank() Rank {
	return c.rank
}

// Suit returns the suit of the Card.
func (c Card) Suit() Suit {
	return c.suit
}

// String returns the canonical rank-then-suit token, e.g. "AS" or "10D".
func (c Card) String() string {
	return c.rank.String() + c.suit.String()
}

// Pretty renders the card with a coloured suit glyph for terminal output.
func (c Card) Pretty() string {
	var suit string
	switch c.suit {
	case Heart, Diamond:
		suit = pterm.LightRed(c.suit.Symbol())
	case Spade, Club:
		suit = pterm.Black(c.suit.Symbol())
	default:
		suit = "?"
	}
	return c.rank.String() + suit
}

// Compare orders cards by rank strength only. It returns a positive number
// when a is stronger than b, a negative number when weaker and 0 when both
// share the same rank.
func Compare(a, b Card) int {
	return int(a.rank) - int(b.rank)
}
