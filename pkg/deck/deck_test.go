package deck

import (
	"ohheck-server/internal/rng"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDeck(t *testing.T) {
	d := NewWithGenerator(rng.Crypto{})

	assert.Equal(t, 52, d.CardsLeft())
	assert.Equal(t, Card{Rank: 2, Suit: Clubs}, *d.Cards[0])
	assert.Equal(t, Card{Rank: 14, Suit: Clubs}, *d.Cards[12])
	assert.Equal(t, Card{Rank: 2, Suit: Spades}, *d.Cards[13])
	assert.Equal(t, Card{Rank: 14, Suit: Diamonds}, *d.Cards[51])

	seen := make(map[string]bool)
	for _, card := range d.Cards {
		seen[CardToString(card)] = true
	}
	assert.Equal(t, 52, len(seen))
}

func TestDeck_Shuffle(t *testing.T) {
	a := assert.New(t)

	unshuffled := NewWithGenerator(rng.Crypto{}).HashCode()

	d1 := NewWithGenerator(rng.NewSeeded(1))
	d1.Shuffle()

	d2 := NewWithGenerator(rng.NewSeeded(1))
	d2.Shuffle()

	a.Equal(d1.HashCode(), d2.HashCode(), "same seed, same order")
	a.NotEqual(unshuffled, d1.HashCode())
	a.Equal(52, d1.CardsLeft())

	seen := make(map[string]bool)
	for _, card := range d1.Cards {
		seen[CardToString(card)] = true
	}
	a.Equal(52, len(seen), "shuffling never duplicates cards")

	d3 := NewWithGenerator(rng.NewSeeded(2))
	d3.Shuffle()
	a.NotEqual(d1.HashCode(), d3.HashCode())
}

type fixedGenerator struct {
	values []int
	calls  int
}

func (f *fixedGenerator) Intn(n int) int {
	v := f.values[f.calls%len(f.values)] % n
	f.calls++
	return v
}

func TestDeck_Shuffle_twoPasses(t *testing.T) {
	gen := &fixedGenerator{values: []int{0}}
	d := NewWithGenerator(gen)
	d.Shuffle()

	assert.Equal(t, 104, gen.calls, "two passes over 52 cards, each drawing from the full range")
}

func TestDeck_Draw(t *testing.T) {
	d := NewWithGenerator(rng.Crypto{})

	if !d.CanDraw(52) {
		t.Errorf("expected CanDraw(52) to be true")
	}

	if d.CanDraw(53) {
		t.Errorf("expected CanDraw(53) to be false")
	}

	for i := 0; i < 52; i++ {
		card, err := d.Draw()
		if card == nil {
			t.Error("expected card, got nil")
		}

		if err != nil {
			t.Errorf("expected err to be nil, got %v", err)
		}
	}

	if d.CanDraw(1) {
		t.Errorf("expected CanDraw(1) to be false")
	}

	card, err := d.Draw()
	if card != nil {
		t.Errorf("expected card to be nil, got %#v", card)
	}

	if err != ErrEndOfDeck {
		t.Errorf("expected err to be ErrEndOfDeck, got %#v", err)
	}
}

func TestDeck_Deal(t *testing.T) {
	a := assert.New(t)

	d := NewWithGenerator(rng.Crypto{})
	d.Cards = CardsFromString("2c,3c,4c,5c,6c")

	hand, err := d.Deal(2)
	a.NoError(err)
	a.Equal("2c,3c", CardsToString(hand))
	a.Equal("4c,5c,6c", CardsToString(d.Cards))

	hand, err = d.Deal(4)
	a.Equal(ErrEndOfDeck, err)
	a.Nil(hand)
	a.Equal(3, d.CardsLeft(), "a failed deal leaves the deck untouched")
}

func TestDeck_Deal_exhaustive(t *testing.T) {
	a := assert.New(t)

	for n := 1; n <= 9; n++ {
		d := NewWithGenerator(rng.NewSeeded(int64(n)))
		d.Shuffle()

		seen := make(map[string]bool)
		for player := 0; player < 4; player++ {
			hand, err := d.Deal(n)
			a.NoError(err)
			for _, card := range hand {
				seen[CardToString(card)] = true
			}
		}

		trump, err := d.Draw()
		a.NoError(err)
		seen[CardToString(trump)] = true

		a.Equal(4*n+1, len(seen))
		a.Equal(52-(4*n+1), d.CardsLeft())
	}
}
