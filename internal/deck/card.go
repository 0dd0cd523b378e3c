// Package deck parses markdown flashcard decks into ordered, immutable cards.
package deck

// Card is one question/answer unit extracted from a deck file.
// Cards are created once at parse time and never mutated.
type Card struct {
	// ID is the verbatim label captured from the question marker.
	// It is not guaranteed to be numeric or unique within a deck.
	ID       string
	Question string
	Answer   string
}

// Deck is an ordered, read-only collection of cards parsed from a single file.
type Deck struct {
	cards []Card
}

// NewDeck creates a deck from parsed cards, preserving document order.
func NewDeck(cards []Card) Deck {
	return Deck{cards: cards}
}

// Cards returns the cards in document order.
func (d Deck) Cards() []Card {
	cards := make([]Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

// Size returns the number of cards in the deck.
func (d Deck) Size() int {
	return len(d.cards)
}

// DuplicateIDs returns labels that appear on more than one card, in first-seen order.
// The parser accepts duplicate labels; cards sharing a label also share
// progress history, so callers may want to warn about them.
func (d Deck) DuplicateIDs() []string {
	counts := make(map[string]int, len(d.cards))
	for _, card := range d.cards {
		counts[card.ID]++
	}

	var duplicates []string
	reported := make(map[string]bool)
	for _, card := range d.cards {
		if counts[card.ID] > 1 && !reported[card.ID] {
			duplicates = append(duplicates, card.ID)
			reported[card.ID] = true
		}
	}
	return duplicates
}
