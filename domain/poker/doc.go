// Package poker implements five-card "high" poker hand evaluation.
//
// # Hand Evaluation
//
// Evaluate takes five or more cards and keeps the best of nine categories,
// from StraightFlush down to HighCard. The cards are first sorted strongest
// first; every later scan (rank groups, per-suit flush windows, straight
// windows) walks that sorted sequence, and candidates are kept in the order
// they are met. When several candidates of the chosen category exist, the
// first one met wins. In particular two suits reaching five cards resolve to
// the suit met first, not to the highest flush.
//
// Straights are five consecutive ranks with the Ace high only; A-2-3-4-5 is
// not a straight.
//
// # Comparison
//
// Hand.Compare decides by category, then by the combination cards pairwise,
// then by the kickers. Equal outcomes are split pots.
//
// # Reference Rules
//
// ReferenceCompare and ReferenceDescribe run standard poker rules through
// github.com/paulhankin/poker for 5 and 7 card hands.
package poker
