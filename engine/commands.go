package engine

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"skirmish/game"
	"skirmish/ui"
)

const (
	usage       = "Use one of the following commands: select, board, move, block, hand, place, show, yield, state, quit."
	errorPrefix = "Error, "
	notFound    = "Command not recognised."
)

type command struct {
	pattern *regexp.Regexp
	execute func(e *LocalEngine, args []string) error
}

func cmd(pattern string, execute func(e *LocalEngine, args []string) error) command {
	return command{pattern: regexp.MustCompile(`^(?:` + pattern + `)$`), execute: execute}
}

var commands = []command{
	cmd(`quit`, func(e *LocalEngine, _ []string) error {
		e.game.Quit()
		return nil
	}),
	cmd(`state`, func(e *LocalEngine, _ []string) error {
		fmt.Fprintln(e.out, ui.FormatState(e.game.Player(game.Self)))
		fmt.Fprintln(e.out, ui.FormatState(e.game.Player(game.Opponent)))
		return nil
	}),
	cmd(`show`, func(e *LocalEngine, _ []string) error {
		fmt.Fprintln(e.out, ui.FormatUnit(e.selectedUnit()))
		return nil
	}),
	cmd(`board`, func(e *LocalEngine, _ []string) error {
		io.WriteString(e.out, e.board())
		return nil
	}),
	cmd(`select [a-zA-Z]\d`, func(e *LocalEngine, args []string) error {
		p, err := game.ParsePosition(args[0])
		if err != nil {
			return err
		}
		if err := e.game.Select(p); err != nil {
			return err
		}
		io.WriteString(e.out, e.board())
		if u := e.selectedUnit(); u != nil {
			fmt.Fprintln(e.out, ui.FormatUnit(u))
		}
		return nil
	}),
	cmd(`place( \d+)+`, func(e *LocalEngine, args []string) error {
		indices, err := handIndices(args)
		if err != nil {
			return err
		}
		return e.game.Place(indices)
	}),
	cmd(`move [a-zA-Z]\d`, func(e *LocalEngine, args []string) error {
		p, err := game.ParsePosition(args[0])
		if err != nil {
			return err
		}
		return e.game.Move(p)
	}),
	cmd(`block`, func(e *LocalEngine, _ []string) error {
		return e.game.Block()
	}),
	cmd(`hand`, func(e *LocalEngine, _ []string) error {
		io.WriteString(e.out, ui.FormatHand(e.game.ActivePlayer().Hand()))
		return nil
	}),
	cmd(`yield(\s+\d+)?`, func(e *LocalEngine, args []string) error {
		indices, err := handIndices(args)
		if err != nil {
			return err
		}
		return e.game.Yield(indices...)
	}),
}

// handIndices converts 1-based user indices to 0-based hand positions.
func handIndices(args []string) ([]int, error) {
	indices := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %s is not a valid index", game.ErrInvalidArgument, arg)
		}
		indices = append(indices, n-1)
	}
	return indices, nil
}

// dispatch runs the first command whose grammar matches the whole line.
func (e *LocalEngine) dispatch(line string) {
	for _, c := range commands {
		if !c.pattern.MatchString(line) {
			continue
		}
		fields := strings.Fields(line)
		if err := c.execute(e, fields[1:]); err != nil {
			fmt.Fprintln(e.errOut, errorPrefix+err.Error())
		}
		return
	}
	fmt.Fprintln(e.errOut, errorPrefix+notFound)
}
