package poker

import (
	"fmt"
	"slices"

	"github.com/acgowda/games/domain/card"
)

// Category is the class of the best five-card combination in a hand.
type Category uint8

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Outcome is the result of comparing two evaluated hands.
type Outcome int

const (
	Less    Outcome = -1
	Equal   Outcome = 0
	Greater Outcome = 1
)

func (o Outcome) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Hand is an evaluated poker hand. It is immutable; accessors return copies.
type Hand struct {
	cards       []card.Card // sorted strongest first
	category    Category
	combination []card.Card
	kickers     []card.Card
}

// Category returns the class of the best combination.
func (h Hand) Category() Category {
	return h.category
}

// Combination returns the cards forming the category, in tie-break order.
func (h Hand) Combination() []card.Card {
	return slices.Clone(h.combination)
}

// Kickers returns the cards used to break ties after the combination.
func (h Hand) Kickers() []card.Card {
	return slices.Clone(h.kickers)
}

// Cards returns every evaluated card, strongest first.
func (h Hand) Cards() []card.Card {
	return slices.Clone(h.cards)
}

// Compare orders h against other: the higher category wins, then the
// combination cards are compared pairwise, then the kickers. Equal means a
// split pot.
func (h Hand) Compare(other Hand) Outcome {
	switch {
	case h.category > other.category:
		return Greater
	case h.category < other.category:
		return Less
	}
	if o := compareSequence(h.combination, other.combination); o != Equal {
		return o
	}
	return compareSequence(h.kickers, other.kickers)
}

func compareSequence(a, b []card.Card) Outcome {
	for i := range min(len(a), len(b)) {
		switch c := card.Compare(a[i], b[i]); {
		case c > 0:
			return Greater
		case c < 0:
			return Less
		}
	}
	return Equal
}

func (h Hand) String() string {
	return "[" + card.Format(h.cards, ",") + "]"
}

// Describe returns the category followed by the combination and kickers,
// e.g. "Two Pair: 9S 9H 5D 5C | KS".
func (h Hand) Describe() string {
	s := h.category.String() + ": " + card.Format(h.combination, " ")
	if len(h.kickers) > 0 {
		s += " | " + card.Format(h.kickers, " ")
	}
	return s
}
