package poker

import (
	"errors"
	"fmt"

	"github.com/paulhankin/poker"

	"github.com/acgowda/games/domain/card"
)

// ErrUnsupportedSize is returned by the reference functions for hands that
// are neither five nor seven cards.
var ErrUnsupportedSize = errors.New("reference evaluation needs 5 or 7 cards")

// toReference converts a card to the paulhankin/poker representation, where
// the Ace is rank 1.
func toReference(c card.Card) (poker.Card, error) {
	var (
		zero poker.Card
		suit poker.Suit
	)
	switch c.Suit() {
	case card.Club:
		suit = poker.Club
	case card.Diamond:
		suit = poker.Diamond
	case card.Heart:
		suit = poker.Heart
	case card.Spade:
		suit = poker.Spade
	default:
		return zero, fmt.Errorf("invalid card %v: %w", c, card.ErrInvalidCard)
	}
	rank := poker.Rank(c.Rank())
	if c.Rank() == card.Ace {
		rank = poker.Rank(1)
	}
	pc, err := poker.MakeCard(suit, rank)
	if err != nil {
		return zero, fmt.Errorf("invalid card %v: %w", c, err)
	}
	return pc, nil
}

func toReferenceHand(cards []card.Card) ([]poker.Card, error) {
	out := make([]poker.Card, len(cards))
	for i, c := range cards {
		pc, err := toReference(c)
		if err != nil {
			return nil, err
		}
		out[i] = pc
	}
	return out, nil
}

// referenceScore scores a hand with the standard-rules evaluator; a higher
// score is a stronger hand.
func referenceScore(cards []card.Card) (int16, error) {
	pcs, err := toReferenceHand(cards)
	if err != nil {
		return 0, err
	}
	switch len(pcs) {
	case 5:
		var a5 [5]poker.Card
		copy(a5[:], pcs)
		return poker.Eval5(&a5), nil
	case 7:
		var a7 [7]poker.Card
		copy(a7[:], pcs)
		return poker.Eval7(&a7), nil
	default:
		return 0, fmt.Errorf("%w: got %d", ErrUnsupportedSize, len(pcs))
	}
}

// ReferenceCompare compares two hands of 5 or 7 cards under standard poker
// rules, including Ace-low straights, using github.com/paulhankin/poker.
func ReferenceCompare(a, b []card.Card) (Outcome, error) {
	sa, err := referenceScore(a)
	if err != nil {
		return Equal, err
	}
	sb, err := referenceScore(b)
	if err != nil {
		return Equal, err
	}
	switch {
	case sa > sb:
		return Greater, nil
	case sa < sb:
		return Less, nil
	default:
		return Equal, nil
	}
}

// ReferenceDescribe names a hand of 5 or 7 cards under standard poker rules.
func ReferenceDescribe(cards []card.Card) (string, error) {
	if len(cards) != 5 && len(cards) != 7 {
		return "", fmt.Errorf("%w: got %d", ErrUnsupportedSize, len(cards))
	}
	pcs, err := toReferenceHand(cards)
	if err != nil {
		return "", err
	}
	return poker.Describe(pcs)
}
