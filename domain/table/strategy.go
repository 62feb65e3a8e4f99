package table

import (
	"slices"

	"github.com/acgowda/games/domain/card"
	"github.com/acgowda/games/domain/poker"
)

// MaxExchange is the most cards a player may replace in one draw.
const MaxExchange = 3

// DrawPositions suggests the positions of hand to exchange: the weakest
// cards outside the scoring combination, at most MaxExchange of them. Hands
// whose combination already uses five cards are kept as they are.
func DrawPositions(hand []card.Card, evaluated poker.Hand) []int {
	combination := evaluated.Combination()
	if len(combination) >= poker.HandSize {
		return nil
	}
	var positions []int
	for i, c := range hand {
		if !slices.Contains(combination, c) {
			positions = append(positions, i)
		}
	}
	slices.SortStableFunc(positions, func(a, b int) int {
		return card.Compare(hand[a], hand[b])
	})
	positions = positions[:min(len(positions), MaxExchange)]
	slices.Sort(positions)
	return positions
}
