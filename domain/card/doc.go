// Package card implements the playing card value type shared by the deck and
// the hand evaluator.
//
// # Ordering
//
// Cards are ordered by rank only, from the Ace (strongest) down to the Two.
// Suits never take part in ordering; they only identify cards for flush
// grouping. The Ace is never low.
//
// # Text form
//
// Every card has a canonical token made of its rank symbol followed by its
// suit letter ("AS", "KH", "10D", "2C"). Parse accepts the same tokens plus
// "T" as an alias for the ten, so String always round-trips through Parse.
package card
