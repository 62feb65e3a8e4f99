package card

import (
	"errors"
	"testing"
)

func TestParseCard(t *testing.T) {
	expectedCard := Card{rank: Ten, suit: Heart}
	testCard, err := Parse("10H")
	if err != nil {
		t.Fatal(err)
	}
	if testCard != expectedCard {
		t.Fatalf("expected %v, get %v", expectedCard, testCard)
	}
	alias, err := Parse("th")
	if err != nil {
		t.Fatal(err)
	}
	if alias != expectedCard {
		t.Fatalf("expected %v, get %v", expectedCard, alias)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, token := range []string{"", "A", "1S", "AX", "11H", "ZS", "100S"} {
		_, err := Parse(token)
		if !errors.Is(err, ErrInvalidCard) {
			t.Fatalf("token %q: expected ErrInvalidCard, got %v", token, err)
		}
	}
}

func TestNewCardValidation(t *testing.T) {
	if _, err := New(Ace, Spade); err != nil {
		t.Fatal(err)
	}
	if _, err := New(1, Spade); !errors.Is(err, ErrInvalidCard) {
		t.Fatalf("expected ErrInvalidCard for rank 1, got %v", err)
	}
	if _, err := New(King, 0); !errors.Is(err, ErrInvalidCard) {
		t.Fatalf("expected ErrInvalidCard for suit 0, got %v", err)
	}
}

func TestAllCardRoundTrip(t *testing.T) {
	for _, c := range Full() {
		got, err := Parse(c.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != c {
			t.Fatalf("expected %v, get %v", c, got)
		}
	}
}

func TestFullDeckCanonical(t *testing.T) {
	cards := Full()
	if len(cards) != 52 {
		t.Fatalf("expected 52 cards, got %d", len(cards))
	}
	seen := map[Card]bool{}
	for _, c := range cards {
		if seen[c] {
			t.Fatalf("duplicate card %v", c)
		}
		seen[c] = true
	}
	if cards[0].String() != "AS" || cards[51].String() != "2C" {
		t.Fatalf("unexpected canonical order: first %v, last %v", cards[0], cards[51])
	}
}

func TestCompareIgnoresSuit(t *testing.T) {
	if Compare(MustParse("AS"), MustParse("KS")) <= 0 {
		t.Fatal("ace must beat king")
	}
	if Compare(MustParse("2H"), MustParse("3H")) >= 0 {
		t.Fatal("two must lose to three")
	}
	if Compare(MustParse("QH"), MustParse("QC")) != 0 {
		t.Fatal("same rank must compare equal across suits")
	}
}

func TestSortByStrengthStable(t *testing.T) {
	in := MustParseList("5S 9D 5H AS 9C")
	got := Format(SortByStrength(in), " ")
	if got != "AS 9D 9C 5S 5H" {
		t.Fatalf("expected AS 9D 9C 5S 5H, got %s", got)
	}
	if Format(in, " ") != "5S 9D 5H AS 9C" {
		t.Fatal("input slice was modified")
	}
}

func TestFormatRoundTrip(t *testing.T) {
	in := MustParseList("AS, KH, 10D, 2C")
	s := Format(in, ",")
	if s != "AS,KH,10D,2C" {
		t.Fatalf("expected AS,KH,10D,2C, got %s", s)
	}
	out, err := ParseList(s)
	if err != nil {
		t.Fatal(err)
	}
	if Format(out, " ") != Format(in, " ") {
		t.Fatalf("expected %v, get %v", in, out)
	}
}

func TestCardPretty(t *testing.T) {
	c := MustParse("AH")
	if c.Pretty() == "" {
		t.Fatal("expected a rendering")
	}
	if c.Suit().Symbol() != "♥" {
		t.Fatalf("expected ♥, got %s", c.Suit().Symbol())
	}
}
