package poker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/acgowda/games/domain/card"
)

// HandSize is the number of cards in a scored poker combination.
const HandSize = 5

// ErrInsufficientCards is returned when fewer than HandSize cards are evaluated.
var ErrInsufficientCards = errors.New("insufficient cards")

// Evaluator classifies hands into the nine "high" poker categories. The zero
// value logs to slog.Default(). An Evaluator holds no state besides its
// logger and may be shared between goroutines.
type Evaluator struct {
	logger *slog.Logger
}

// NewEvaluator returns an Evaluator that traces its candidate groups at
// debug level on logger. A nil logger means slog.Default().
func NewEvaluator(logger *slog.Logger) Evaluator {
	if logger == nil {
		logger = slog.Default()
	}
	return Evaluator{logger: logger}
}

// Evaluate is a shorthand for NewEvaluator(nil).Evaluate(cards).
func Evaluate(cards []card.Card) (Hand, error) {
	return NewEvaluator(nil).Evaluate(cards)
}

// Evaluate finds the best category among cards (at least five, in any
// order), the cards forming it and the kickers breaking ties. The input
// slice is not modified.
func (e Evaluator) Evaluate(cards []card.Card) (Hand, error) {
	if len(cards) < HandSize {
		return Hand{}, fmt.Errorf("%w: got %d, need at least %d", ErrInsufficientCards, len(cards), HandSize)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	sorted := card.SortByStrength(cards)
	e.trace("evaluating hand", "cards", [][]card.Card{sorted})

	category, combination := e.classify(sorted)
	kickers := fillKickers(sorted, combination)
	e.trace("kickers", "kickers", [][]card.Card{kickers})
	if e.logger.Enabled(context.Background(), slog.LevelDebug) {
		e.logger.Debug("hand evaluated", "category", category.String(), "combination", card.Format(combination, ","))
	}

	return Hand{
		cards:       sorted,
		category:    category,
		combination: slices.Clone(combination),
		kickers:     kickers,
	}, nil
}

// classify returns the highest matching category and its cards. sorted
// must be ordered strongest first.
func (e Evaluator) classify(sorted []card.Card) (Category, []card.Card) {
	straights := findStraights(sorted)
	e.trace("straights", "straights", straights)
	flushes := findFlushes(sorted)
	e.trace("flushes", "flushes", flushes)

	var pairs, threes, fours [][]card.Card
	for _, group := range groupBy(sorted, card.Card.Rank) {
		switch n := len(group); {
		case n >= 4:
			fours = append(fours, group[:4])
		case n == 3:
			threes = append(threes, group)
		case n == 2:
			pairs = append(pairs, group)
		}
	}
	e.trace("pairs", "pairs", pairs)
	e.trace("threes", "threes", threes)
	e.trace("fours", "fours", fours)

	for _, s := range straights {
		for _, f := range flushes {
			if sameCards(s, f) {
				return StraightFlush, s
			}
		}
	}
	if len(fours) > 0 {
		return FourOfAKind, fours[0]
	}
	if len(threes) > 1 {
		return FullHouse, concat(threes[0], threes[1][:2])
	}
	if len(threes) == 1 && len(pairs) > 0 {
		return FullHouse, concat(threes[0], pairs[0])
	}
	if len(flushes) > 0 {
		return Flush, flushes[0]
	}
	if len(straights) > 0 {
		return Straight, straights[0]
	}
	if len(threes) > 0 {
		return ThreeOfAKind, threes[0]
	}
	if len(pairs) > 1 {
		return TwoPair, concat(pairs[0], pairs[1])
	}
	if len(pairs) == 1 {
		return OnePair, pairs[0]
	}
	return HighCard, sorted[:1]
}

// groupBy partitions cards by key, keeping groups in the order their key is
// first met and cards in input order within a group.
func groupBy[K comparable](cards []card.Card, key func(card.Card) K) [][]card.Card {
	index := map[K]int{}
	var groups [][]card.Card
	for _, c := range cards {
		k := key(c)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], c)
	}
	return groups
}

// findFlushes returns every window of five consecutive cards inside each
// suit holding at least five cards. Suits come in first-met order, windows
// from strongest to weakest.
func findFlushes(sorted []card.Card) [][]card.Card {
	var flushes [][]card.Card
	for _, suited := range groupBy(sorted, card.Card.Suit) {
		for i := 0; i+HandSize <= len(suited); i++ {
			flushes = append(flushes, suited[i:i+HandSize])
		}
	}
	return flushes
}

// findStraights returns every window of five cards of the sorted sequence
// whose ranks fall by exactly one at each step. The Ace only plays high.
func findStraights(sorted []card.Card) [][]card.Card {
	var straights [][]card.Card
	for i := 0; i+HandSize <= len(sorted); i++ {
		window := sorted[i : i+HandSize]
		top := int(window[0].Rank())
		consecutive := true
		for j, c := range window {
			if int(c.Rank()) != top-j {
				consecutive = false
				break
			}
		}
		if consecutive {
			straights = append(straights, window)
		}
	}
	return straights
}

// fillKickers removes the combination from sorted, one match per card, and
// keeps as many of the strongest leftovers as needed to reach HandSize.
func fillKickers(sorted, combination []card.Card) []card.Card {
	count := HandSize - len(combination)
	if count <= 0 {
		return []card.Card{}
	}
	rest := slices.Clone(sorted)
	for _, c := range combination {
		if i := slices.Index(rest, c); i >= 0 {
			rest = slices.Delete(rest, i, i+1)
		}
	}
	return slices.Clone(rest[:min(count, len(rest))])
}

func sameCards(a, b []card.Card) bool {
	if len(a) != len(b) {
		return false
	}
	for _, c := range a {
		if !slices.Contains(b, c) {
			return false
		}
	}
	return true
}

func concat(a, b []card.Card) []card.Card {
	out := make([]card.Card, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// trace logs groups of cards as "AS,KS / QH,QD" at debug level, skipping
// empty lists and the formatting cost when debug is disabled.
func (e Evaluator) trace(msg, key string, groups [][]card.Card) {
	if len(groups) == 0 || !e.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	parts := make([]string, len(groups))
	for i, g := range groups {
		parts[i] = card.Format(g, ",")
	}
	e.logger.Debug(msg, key, strings.Join(parts, " / "))
}
