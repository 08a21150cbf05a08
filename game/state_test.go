package game_test

import (
	"testing"

	"github.com/matryer/is"

	"github.com/kosynka/patience/card"
	"github.com/kosynka/patience/game"
	"github.com/kosynka/patience/pile"
)

func TestStateLookup(t *testing.T) {
	is := is.New(t)
	s := game.NewState(
		map[string]*pile.Pile{"tableau_0": pile.New("tableau_0")},
		pile.New(game.StockPile, card.New(card.Clubs, 2)),
		nil,
	)

	is.True(s.Pile("stock") == s.Stock())
	is.True(s.Pile("waste") == s.Waste())
	is.True(s.Pile("tableau_0") != nil)
	is.True(s.Pile("tableau_9") == nil) // unknown names resolve to absent
}

func TestStateCopyIndependence(t *testing.T) {
	is := is.New(t)
	s := craftedState(pile.New("tableau_0", up(card.Hearts, 5)))
	s.AddScore(30)
	s.IncrementMoves()
	s.SetSelectedPile("tableau_0")

	cp := s.Copy()
	cp.AddScore(100)
	cp.Pile("tableau_0").Take(1)
	cp.Stock().Put(card.New(card.Clubs, 2))

	is.Equal(s.Score(), 30)
	is.Equal(s.Moves(), 1)
	is.Equal(s.Pile("tableau_0").Size(), 1)
	is.Equal(s.Stock().Size(), 0)
	is.Equal(cp.SelectedPile(), "tableau_0")
}

func TestStateNames(t *testing.T) {
	is := is.New(t)
	s := craftedState()

	names := s.PileNames()
	is.Equal(len(names), 13) // 7 tableau + 4 foundations + stock + waste
	is.Equal(len(s.NamedPiles()), 11)

	is.Equal(game.TableauName(3), "tableau_3")
	is.Equal(game.FoundationName(card.Spades), "foundation_SPADES")
}
