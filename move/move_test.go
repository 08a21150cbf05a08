package move

import (
	"encoding/json"
	"testing"

	"github.com/matryer/is"

	"github.com/kosynka/patience/card"
)

func TestAccessorsCopy(t *testing.T) {
	is := is.New(t)
	cards := []card.Card{
		card.New(card.Hearts, 5).FaceUpCard(),
		card.New(card.Spades, 4).FaceUpCard(),
	}
	m := New("tableau_0", "tableau_3", cards, 2,
		[]FlippedCard{{Pile: "tableau_0", Index: 1}}, 5)

	got := m.Cards()
	got[0] = card.New(card.Clubs, 2)
	is.Equal(m.Cards()[0], cards[0]) // mutating the returned slice changes nothing

	is.Equal(m.CardCount(), 2)
	is.True(!m.IsSingleCard())
	is.Equal(m.From(), "tableau_0")
	is.Equal(m.To(), "tableau_3")
	is.Equal(m.FromIndex(), 2)
	is.Equal(m.ScoreDelta(), 5)
}

func TestCandidate(t *testing.T) {
	is := is.New(t)
	m := NewCandidate("waste", "foundation_HEARTS", 1)
	is.Equal(m.CardCount(), 1)
	is.Equal(m.FromIndex(), -1)
}

func TestJSONRoundTrip(t *testing.T) {
	is := is.New(t)
	m := New("waste", "foundation_HEARTS",
		[]card.Card{card.New(card.Hearts, card.Ace).FaceUpCard()}, 4,
		nil, 10)

	data, err := json.Marshal(m)
	is.NoErr(err)

	var back Move
	is.NoErr(json.Unmarshal(data, &back))
	is.Equal(back.From(), m.From())
	is.Equal(back.To(), m.To())
	is.Equal(back.Cards(), m.Cards())
	is.Equal(back.FromIndex(), m.FromIndex())
	is.Equal(back.ScoreDelta(), m.ScoreDelta())
	is.True(back.Timestamp().Equal(m.Timestamp()))
}
