package deck

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/acgowda/games/domain/card"
)

// checkInvariant fails when the three piles do not partition the 52 cards.
func checkInvariant(t *testing.T, d *Deck) {
	t.Helper()
	a, dr, di := d.Counts()
	if a+dr+di != 52 {
		t.Fatalf("expected 52 cards, got %d+%d+%d", a, dr, di)
	}
	seen := map[card.Card]bool{}
	for _, pile := range [][]card.Card{d.Active(), d.Drawn(), d.Discarded()} {
		for _, c := range pile {
			if seen[c] {
				t.Fatalf("card %v tracked twice", c)
			}
			seen[c] = true
		}
	}
	for _, c := range card.Full() {
		if !seen[c] {
			t.Fatalf("card %v lost", c)
		}
	}
}

func TestNewDeck(t *testing.T) {
	d := New()
	a, dr, di := d.Counts()
	if a != 52 || dr != 0 || di != 0 {
		t.Fatalf("expected (52,0,0), got (%d,%d,%d)", a, dr, di)
	}
	if !slices.Equal(d.Active(), card.Full()) {
		t.Fatal("new deck is not in canonical order")
	}
	checkInvariant(t, d)
}

func TestDrawTakesTop(t *testing.T) {
	d := New()
	c, err := d.Draw()
	if err != nil {
		t.Fatal(err)
	}
	if c != card.MustParse("2C") {
		t.Fatalf("expected 2C on top, got %v", c)
	}
	if got := d.Drawn(); len(got) != 1 || got[0] != c {
		t.Fatalf("expected drawn pile [%v], got %v", c, got)
	}
	checkInvariant(t, d)
}

func TestDrawEmptyDeck(t *testing.T) {
	d := New()
	for range 52 {
		if _, err := d.Draw(); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := d.Draw(); !errors.Is(err, ErrEmptyDeck) {
		t.Fatalf("expected ErrEmptyDeck, got %v", err)
	}
	if err := d.DiscardTop(); !errors.Is(err, ErrEmptyDeck) {
		t.Fatalf("expected ErrEmptyDeck, got %v", err)
	}
	checkInvariant(t, d)
}

func TestDealAllOrNothing(t *testing.T) {
	d := New()
	hand, err := d.Deal(5)
	if err != nil {
		t.Fatal(err)
	}
	if len(hand) != 5 {
		t.Fatalf("expected 5 cards, got %d", len(hand))
	}
	if _, err := d.Deal(48); !errors.Is(err, ErrEmptyDeck) {
		t.Fatalf("expected ErrEmptyDeck, got %v", err)
	}
	if a, _, _ := d.Counts(); a != 47 {
		t.Fatalf("failed deal must not remove cards, active=%d", a)
	}
	checkInvariant(t, d)
}

func TestDiscardTop(t *testing.T) {
	d := New()
	if err := d.DiscardTop(); err != nil {
		t.Fatal(err)
	}
	a, dr, di := d.Counts()
	if a != 51 || dr != 0 || di != 1 {
		t.Fatalf("expected (51,0,1), got (%d,%d,%d)", a, dr, di)
	}
	checkInvariant(t, d)
}

func TestDrawThenReturnRestoresActive(t *testing.T) {
	for _, pos := range []Position{Top, Bottom} {
		d := New(WithSeed(7))
		d.Shuffle()
		before := d.Active()
		c, err := d.Draw()
		if err != nil {
			t.Fatal(err)
		}
		if err := d.ReturnCards([]card.Card{c}, pos); err != nil {
			t.Fatal(err)
		}
		after := d.Active()
		if pos == Top && !slices.Equal(before, after) {
			t.Fatalf("returning to the top must restore the exact order")
		}
		if pos == Bottom && (after[0] != c || !slices.Equal(before[:51], after[1:])) {
			t.Fatalf("expected %v at the bottom, got %v", c, after[0])
		}
		checkInvariant(t, d)
	}
}

// Regression: returning several cards must put all of them back, not only
// the last one looked up.
func TestReturnCardsReinsertsEveryCard(t *testing.T) {
	d := New()
	drawn, err := d.Deal(3)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.DiscardTop(); err != nil {
		t.Fatal(err)
	}
	discarded := d.Discarded()
	toReturn := append(slices.Clone(drawn), discarded...)

	if err := d.ReturnCards(toReturn, Bottom); err != nil {
		t.Fatal(err)
	}
	a, dr, di := d.Counts()
	if a != 52 || dr != 0 || di != 0 {
		t.Fatalf("expected (52,0,0), got (%d,%d,%d)", a, dr, di)
	}
	if !slices.Equal(d.Active()[:4], toReturn) {
		t.Fatalf("expected bottom %v, got %v", toReturn, d.Active()[:4])
	}
	checkInvariant(t, d)
}

func TestReturnCardsTopKeepsOrder(t *testing.T) {
	d := New()
	drawn, err := d.Deal(4)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.ReturnCards(drawn, Top); err != nil {
		t.Fatal(err)
	}
	active := d.Active()
	if !slices.Equal(active[48:], drawn) {
		t.Fatalf("expected top %v, got %v", drawn, active[48:])
	}
	checkInvariant(t, d)
}

func TestReturnCardsAllOrNothing(t *testing.T) {
	d := New()
	drawn, err := d.Deal(2)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.DiscardTop(); err != nil {
		t.Fatal(err)
	}
	beforeActive, beforeDrawn, beforeDiscarded := d.Active(), d.Drawn(), d.Discarded()

	stillActive := d.Active()[0]
	err = d.ReturnCards([]card.Card{drawn[0], stillActive, drawn[1]}, Bottom)
	if !errors.Is(err, ErrCardNotTracked) {
		t.Fatalf("expected ErrCardNotTracked, got %v", err)
	}
	if !slices.Equal(beforeActive, d.Active()) || !slices.Equal(beforeDrawn, d.Drawn()) ||
		!slices.Equal(beforeDiscarded, d.Discarded()) {
		t.Fatal("failed return mutated the deck")
	}

	err = d.ReturnCards([]card.Card{drawn[0], drawn[0]}, Top)
	if !errors.Is(err, ErrCardNotTracked) {
		t.Fatalf("expected ErrCardNotTracked for a repeated card, got %v", err)
	}
	if !slices.Equal(beforeDrawn, d.Drawn()) {
		t.Fatal("failed return mutated the drawn pile")
	}
	checkInvariant(t, d)
}

func TestReturnCardsInvalidPosition(t *testing.T) {
	d := New()
	c, err := d.Draw()
	if err != nil {
		t.Fatal(err)
	}
	if err := d.ReturnCards([]card.Card{c}, Position(9)); !errors.Is(err, ErrInvalidPosition) {
		t.Fatalf("expected ErrInvalidPosition, got %v", err)
	}
	checkInvariant(t, d)
}

func TestReturnConveniences(t *testing.T) {
	d := New(WithSeed(1))
	d.Shuffle()
	if _, err := d.Deal(10); err != nil {
		t.Fatal(err)
	}
	for range 5 {
		if err := d.DiscardTop(); err != nil {
			t.Fatal(err)
		}
	}

	if err := d.ReturnDiscarded(Bottom); err != nil {
		t.Fatal(err)
	}
	if a, dr, di := d.Counts(); a != 42 || dr != 10 || di != 0 {
		t.Fatalf("expected (42,10,0), got (%d,%d,%d)", a, dr, di)
	}
	if err := d.ReturnDrawn(Top); err != nil {
		t.Fatal(err)
	}
	if a, dr, di := d.Counts(); a != 52 || dr != 0 || di != 0 {
		t.Fatalf("expected (52,0,0), got (%d,%d,%d)", a, dr, di)
	}

	if _, err := d.Deal(3); err != nil {
		t.Fatal(err)
	}
	if err := d.DiscardTop(); err != nil {
		t.Fatal(err)
	}
	if err := d.ReturnAll(Bottom); err != nil {
		t.Fatal(err)
	}
	if a, dr, di := d.Counts(); a != 52 || dr != 0 || di != 0 {
		t.Fatalf("expected (52,0,0), got (%d,%d,%d)", a, dr, di)
	}
	checkInvariant(t, d)
}

func TestDiscardDrawnCards(t *testing.T) {
	d := New()
	hand, err := d.Deal(5)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Discard(hand[:2]); err != nil {
		t.Fatal(err)
	}
	if a, dr, di := d.Counts(); a != 47 || dr != 3 || di != 2 {
		t.Fatalf("expected (47,3,2), got (%d,%d,%d)", a, dr, di)
	}
	if err := d.Discard(hand[:1]); !errors.Is(err, ErrCardNotTracked) {
		t.Fatalf("expected ErrCardNotTracked, got %v", err)
	}
	checkInvariant(t, d)
}

func TestInvariantUnderRandomOperations(t *testing.T) {
	d := New(WithSeed(42))
	for i := range 500 {
		switch i % 5 {
		case 0:
			d.Shuffle()
		case 1:
			_, _ = d.Draw()
		case 2:
			_ = d.DiscardTop()
		case 3:
			if drawn := d.Drawn(); len(drawn) > 1 {
				if err := d.ReturnCards(drawn[:2], Position(i%2)); err != nil {
					t.Fatal(err)
				}
			}
		case 4:
			if i%20 == 4 {
				if err := d.ReturnAll(Top); err != nil {
					t.Fatal(err)
				}
			}
		}
		checkInvariant(t, d)
	}
}

func TestConcurrentDraws(t *testing.T) {
	d := New()
	d.Shuffle()
	n := 4
	errChan := make(chan error, n)
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 13 {
				if _, err := d.Draw(); err != nil {
					errChan <- err
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errChan)
	for err := range errChan {
		t.Fatal(err)
	}
	if a, dr, _ := d.Counts(); a != 0 || dr != 52 {
		t.Fatalf("expected every card drawn once, got active=%d drawn=%d", a, dr)
	}
	checkInvariant(t, d)
}
