package deck

import "sort"

// Hand represents a collection of cards
type Hand []*Card

func (h Hand) Len() int {
	return len(h)
}

// Less orders by suit in deck order, then by rank
func (h Hand) Less(i, j int) bool {
	if si, sj := suitOrder(h[i].Suit), suitOrder(h[j].Suit); si != sj {
		return si < sj
	}

	return h[i].Rank < h[j].Rank
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func suitOrder(s Suit) int {
	for i, suit := range Suits() {
		if suit == s {
			return i
		}
	}

	return len(Suits())
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card *Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// HasSuit returns true if any card in the hand is of the suit
func (h Hand) HasSuit(suit Suit) bool {
	for _, c := range h {
		if c.Suit == suit {
			return true
		}
	}

	return false
}

// Remove removes the first card matching card and returns it.
// The hand's own copy is returned so callers keep the card identity held by the hand.
func (h *Hand) Remove(card *Card) (*Card, bool) {
	for i, c := range *h {
		if c.Equal(card) {
			newHand := make(Hand, 0, len(*h)-1)
			newHand = append(newHand, (*h)[:i]...)
			newHand = append(newHand, (*h)[i+1:]...)
			*h = newHand
			return c, true
		}
	}

	return nil, false
}

// OfSuit returns the cards of the suit, keeping hand order
func (h Hand) OfSuit(suit Suit) Hand {
	cards := make(Hand, 0, len(h))
	for _, c := range h {
		if c.Suit == suit {
			cards = append(cards, c)
		}
	}

	return cards
}

// NotOfSuit returns the cards that are not of the suit, keeping hand order
func (h Hand) NotOfSuit(suit Suit) Hand {
	cards := make(Hand, 0, len(h))
	for _, c := range h {
		if c.Suit != suit {
			cards = append(cards, c)
		}
	}

	return cards
}

// Highest returns the first card with the highest rank, or nil if the hand is empty
func (h Hand) Highest() *Card {
	var highest *Card
	for _, c := range h {
		if highest == nil || c.HigherRank(highest) {
			highest = c
		}
	}

	return highest
}

// Lowest returns the last card with the lowest rank, or nil if the hand is empty
func (h Hand) Lowest() *Card {
	var lowest *Card
	for _, c := range h {
		if lowest == nil || !c.HigherRank(lowest) {
			lowest = c
		}
	}

	return lowest
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}

// Sorted returns a copy of the hand grouped by suit and ordered by rank
func (h Hand) Sorted() Hand {
	h2 := h.Clone()
	sort.Sort(h2)

	return h2
}
