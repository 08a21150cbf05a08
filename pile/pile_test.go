package pile

import (
	"testing"

	"github.com/matryer/is"

	"github.com/kosynka/patience/card"
)

func TestTake(t *testing.T) {
	is := is.New(t)
	p := New("t",
		card.New(card.Hearts, 3),
		card.New(card.Spades, 4),
		card.New(card.Clubs, 5),
	)

	taken := p.Take(2)
	is.Equal(len(taken), 2)
	// original order preserved: deepest of the lifted run first
	is.Equal(taken[0], card.New(card.Spades, 4))
	is.Equal(taken[1], card.New(card.Clubs, 5))
	is.Equal(p.Size(), 1)
}

func TestTakeBadCounts(t *testing.T) {
	is := is.New(t)
	p := New("t", card.New(card.Hearts, 3))

	is.Equal(p.Take(0), nil)
	is.Equal(p.Take(-1), nil)
	is.Equal(p.Take(2), nil)
	is.Equal(p.Size(), 1) // rejected takes leave the pile untouched
}

func TestTakeFrom(t *testing.T) {
	is := is.New(t)
	p := New("t",
		card.New(card.Hearts, 3),
		card.New(card.Spades, 4),
		card.New(card.Clubs, 5),
	)
	taken := p.TakeFrom(1)
	is.Equal(len(taken), 2)
	is.Equal(taken[0], card.New(card.Spades, 4))
	is.Equal(p.Size(), 1)

	is.Equal(p.TakeFrom(5), nil)
	is.Equal(p.TakeFrom(-1), nil)
}

func TestFaceUpCount(t *testing.T) {
	is := is.New(t)
	p := New("t",
		card.New(card.Hearts, 3),
		card.New(card.Spades, 4).FaceUpCard(),
		card.New(card.Clubs, 5).FaceUpCard(),
	)
	is.Equal(p.FaceUpCount(), 2)

	// a buried face-down card cuts the run
	p.Put(card.New(card.Diamonds, 9))
	is.Equal(p.FaceUpCount(), 0)

	is.Equal(New("empty").FaceUpCount(), 0)
}

func TestFlipTop(t *testing.T) {
	is := is.New(t)
	p := New("t", card.New(card.Hearts, 3))
	is.True(p.FlipTop())
	is.True(!p.FlipTop()) // already face-up
	top, ok := p.Top()
	is.True(ok)
	is.True(top.FaceUp)
	is.True(!New("empty").FlipTop())
}

func TestFlipAll(t *testing.T) {
	is := is.New(t)
	p := New("t",
		card.New(card.Hearts, 3).FaceUpCard(),
		card.New(card.Spades, 4),
	)
	p.FlipAll(false)
	is.True(p.AllFaceDown())
	p.FlipAll(true)
	is.True(p.AllFaceUp())
}

func TestCopyIndependence(t *testing.T) {
	is := is.New(t)
	p := New("t", card.New(card.Hearts, 3), card.New(card.Spades, 4))
	cp := p.Copy()

	p.Take(1)
	p.FlipTop()

	is.Equal(cp.Size(), 2)
	top, _ := cp.Top()
	is.True(!top.FaceUp)
}

func TestPeek(t *testing.T) {
	is := is.New(t)
	p := New("t", card.New(card.Hearts, 3), card.New(card.Spades, 4))

	is.Equal(len(p.Peek(1)), 1)
	is.Equal(p.Peek(1)[0], card.New(card.Spades, 4))
	is.Equal(len(p.Peek(10)), 2) // clamped to pile size
	is.Equal(p.Peek(0), nil)
	is.Equal(p.Size(), 2) // peeking removes nothing
}

func TestFaceRuns(t *testing.T) {
	is := is.New(t)
	p := New("t",
		card.New(card.Hearts, 3),
		card.New(card.Diamonds, 8),
		card.New(card.Spades, 4).FaceUpCard(),
	)
	is.Equal(len(p.FaceUpCards()), 1)
	is.Equal(len(p.FaceDownCards()), 2)
}
