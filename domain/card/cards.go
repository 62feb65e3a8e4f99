package card

import (
	"slices"
	"strings"
)

// Full returns the 52 cards in canonical order: suit-major (spades, hearts,
// diamonds, clubs), rank-major from the Ace down.
func Full() []Card {
	cards := make([]Card, 0, len(Suits)*len(Ranks))
	for _, s := range Suits {
		for _, r := range Ranks {
			cards = append(cards, Card{rank: r, suit: s})
		}
	}
	return cards
}

// SortByStrength returns a copy of cards ordered strongest first. Cards of
// equal rank keep their relative order.
func SortByStrength(cards []Card) []Card {
	sorted := slices.Clone(cards)
	slices.SortStableFunc(sorted, func(a, b Card) int {
		return Compare(b, a)
	})
	return sorted
}

// Format joins the card tokens with sep, e.g. Format(cs, " ") gives "AS KH 10D".
func Format(cards []Card, sep string) string {
	tokens := make([]string, len(cards))
	for i, c := range cards {
		tokens[i] = c.String()
	}
	return strings.Join(tokens, sep)
}

// ParseList is the inverse of Format for space and/or comma separated tokens.
func ParseList(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := Parse(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseList is like ParseList but panics on a malformed token.
func MustParseList(s string) []Card {
	cards, err := ParseList(s)
	if err != nil {
		panic(err)
	}
	return cards
}
