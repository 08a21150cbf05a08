// Package shell is the interactive console front end. It consumes the
// engine strictly through its public operations, snapshots and events.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/kosynka/patience/config"
	"github.com/kosynka/patience/game"
	"github.com/kosynka/patience/pile"
	"github.com/kosynka/patience/rules"
	"github.com/kosynka/patience/stats"
)

// Controller drives the read-eval-print loop around one engine.
type Controller struct {
	l        *readline.Instance
	cfg      *config.Config
	registry *rules.Registry
	engine   *game.Engine
	store    *stats.Store
	recorder *stats.Recorder
	sub      *game.Subscription
	out      io.Writer
}

// NewController builds a shell around the given registry and optional
// stats store (nil disables the stats command and win recording).
func NewController(cfg *config.Config, registry *rules.Registry, store *stats.Store) (*Controller, error) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "patience> ",
		HistoryLimit:    500,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("init readline: %w", err)
	}

	c := &Controller{
		l:        l,
		cfg:      cfg,
		registry: registry,
		store:    store,
		out:      l.Stdout(),
	}
	if err := c.setVariant(cfg.GetString(config.KeyVariant)); err != nil {
		l.Close()
		return nil, err
	}
	return c, nil
}

// Close releases the terminal and detaches listeners.
func (c *Controller) Close() {
	if c.recorder != nil {
		c.recorder.Close()
	}
	if c.sub != nil {
		c.sub.Unsubscribe()
	}
	c.l.Close()
}

func (c *Controller) setVariant(name string) error {
	rs, err := c.registry.Create(name)
	if err != nil {
		return err
	}
	if c.recorder != nil {
		c.recorder.Close()
		c.recorder = nil
	}
	if c.sub != nil {
		c.sub.Unsubscribe()
	}

	c.engine = game.NewEngine(rs)
	c.engine.SetHistoryLimit(c.cfg.GetInt(config.KeyHistoryLimit))
	c.sub = c.engine.Subscribe(c.onEvent)
	if c.store != nil {
		c.recorder = stats.NewRecorder(c.store, c.engine, c.cfg.GetString(config.KeyPlayer))
	}
	return nil
}

func (c *Controller) onEvent(event string, data map[string]any) {
	switch event {
	case game.EventGameWon:
		fmt.Fprintf(c.out, "You won! Final score: %v\n", data["score"])
	case game.EventRecycle:
		fmt.Fprintf(c.out, "(recycled %v cards back into stock)\n", data["count"])
	}
}

// Loop runs the shell until exit or EOF.
func (c *Controller) Loop() {
	fmt.Fprintln(c.out, `Type "help" for commands.`)
	for {
		line, err := c.l.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		} else if err == io.EOF {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !c.dispatch(strings.Fields(line)) {
			return
		}
	}
}

// dispatch handles one command line. It returns false when the shell
// should exit.
func (c *Controller) dispatch(fields []string) bool {
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "new", "n":
		c.cmdNew(args)
	case "move", "m":
		c.cmdMove(args)
	case "draw", "d":
		if !c.engine.Draw() {
			fmt.Fprintln(c.out, "cannot draw")
			return true
		}
		c.render()
	case "undo", "u":
		if !c.engine.Undo() {
			fmt.Fprintln(c.out, "nothing to undo")
			return true
		}
		c.render()
	case "redo", "r":
		if !c.engine.Redo() {
			fmt.Fprintln(c.out, "nothing to redo")
			return true
		}
		c.render()
	case "hint":
		if h := c.engine.Hint(); h != nil {
			fmt.Fprintln(c.out, h.ShortDescription())
		} else {
			fmt.Fprintln(c.out, "no moves available; try drawing")
		}
	case "moves":
		for _, m := range c.engine.AvailableMoves() {
			fmt.Fprintln(c.out, m.ShortDescription())
		}
	case "show", "s":
		c.render()
	case "variants":
		for _, name := range c.registry.Available() {
			v, _ := c.registry.Variant(name)
			fmt.Fprintf(c.out, "%-12s %s — %s\n", name, v.Title, v.Description)
		}
	case "stats":
		c.cmdStats()
	case "help", "h":
		c.printHelp()
	case "exit", "quit", "q":
		return false
	default:
		fmt.Fprintf(c.out, "unknown command %q; try help\n", cmd)
	}
	return true
}

func (c *Controller) cmdNew(args []string) {
	seed := c.cfg.GetInt64(config.KeySeed)
	if len(args) > 0 {
		n, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Fprintln(c.out, "usage: new [seed] [variant]")
			return
		}
		seed = n
	}
	if len(args) > 1 {
		if err := c.setVariant(args[1]); err != nil {
			fmt.Fprintln(c.out, err)
			return
		}
	}
	c.engine.NewGame(seed)
	fmt.Fprintf(c.out, "New %s game, seed %d\n", c.engine.Rules().Name(), c.engine.Seed())
	c.render()
}

func (c *Controller) cmdMove(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(c.out, "usage: move <from> <to> [count]")
		return
	}
	count := 1
	if len(args) > 2 {
		n, err := strconv.Atoi(args[2])
		if err != nil || n < 1 {
			fmt.Fprintln(c.out, "count must be a positive number")
			return
		}
		count = n
	}
	if !c.engine.Move(args[0], args[1], count) {
		fmt.Fprintln(c.out, "illegal move")
		return
	}
	c.render()
}

func (c *Controller) cmdStats() {
	if c.store == nil {
		fmt.Fprintln(c.out, "stats are disabled")
		return
	}
	player := c.cfg.GetString(config.KeyPlayer)
	ps, err := c.store.PlayerStats(context.Background(), player, c.engine.Rules().Name())
	if err != nil {
		log.Error().Err(err).Msg("stats lookup failed")
		return
	}
	fmt.Fprintf(c.out, "%s @ %s: %d played, %d won (%.0f%%), best %d\n",
		ps.Player, ps.Variant, ps.Played, ps.Won, ps.WinRate()*100, ps.BestScore)
}

func (c *Controller) render() {
	s := c.engine.State()
	if s == nil {
		fmt.Fprintln(c.out, `no game in progress; start one with "new"`)
		return
	}
	fmt.Fprintf(c.out, "score %d  moves %d  stock %d  waste %s\n",
		s.Score(), s.Moves(), s.Stock().Size(), topString(s.Waste()))
	for _, name := range s.NamedPiles() {
		fmt.Fprintf(c.out, "  %-20s %s\n", name, s.Pile(name))
	}
}

func (c *Controller) printHelp() {
	fmt.Fprint(c.out, `Commands:
  new [seed] [variant]   start a new game
  move <from> <to> [n]   move n cards (default 1), e.g. move tableau_3 foundation_HEARTS
  draw                   draw from the stock
  undo / redo            step through history
  hint                   suggest a move
  moves                  list every legal move
  show                   print the board
  variants               list rule variants
  stats                  show your record for the current variant
  exit                   leave
`)
}

func topString(p *pile.Pile) string {
	top, ok := p.Top()
	if !ok {
		return "empty"
	}
	return top.String()
}
