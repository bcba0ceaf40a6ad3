package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"quiz-app/internal/app"
	"quiz-app/internal/domain"
)

var errUnknownCommand = errors.New("unknown command")

type commandKind int

const (
	cmdSelect commandKind = iota
	cmdSubmit
	cmdReset
	cmdQuit
	cmdHelp
)

type command struct {
	kind     commandKind
	question int
	option   int
}

// parseCommand turns a line into a command. Question and option numbers are
// 1-based on input and 0-based in the result.
func parseCommand(line string) (command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return command{kind: cmdHelp}, nil
	}
	switch fields[0] {
	case "submit", "s":
		return command{kind: cmdSubmit}, nil
	case "again", "reset", "r":
		return command{kind: cmdReset}, nil
	case "quit", "exit", "q":
		return command{kind: cmdQuit}, nil
	case "help", "?":
		return command{kind: cmdHelp}, nil
	}
	if len(fields) != 2 {
		return command{}, fmt.Errorf("%w: %q", errUnknownCommand, line)
	}
	q, err := strconv.Atoi(fields[0])
	if err != nil {
		return command{}, fmt.Errorf("%w: %q", errUnknownCommand, line)
	}
	o, err := strconv.Atoi(fields[1])
	if err != nil {
		return command{}, fmt.Errorf("%w: %q", errUnknownCommand, line)
	}
	return command{kind: cmdSelect, question: q - 1, option: o - 1}, nil
}

// Run redraws the view after every command read from in until quit, EOF or ctx is done.
// Cancelling ctx returns immediately even while a read is pending.
func Run(ctx context.Context, ctrl *app.Controller, in io.Reader, out io.Writer) error {
	if err := Draw(out, ctrl.Render()); err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)
	lines, scanErr := scanLines(in, done)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := io.WriteString(out, "> "); err != nil {
			return err
		}

		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				return <-scanErr
			}
			line = l
		}

		cmd, err := parseCommand(line)
		if err != nil {
			fmt.Fprintf(out, "%v\n", err)
			continue
		}

		var actionErr error
		switch cmd.kind {
		case cmdQuit:
			return nil
		case cmdHelp:
		case cmdSelect:
			actionErr = ctrl.SelectAnswer(cmd.question, cmd.option)
			if actionErr != nil {
				actionErr = describeSelectError(ctrl.Session(), cmd, actionErr)
			}
		case cmdSubmit:
			actionErr = ctrl.Submit()
		case cmdReset:
			ctrl.Reset()
		}
		if actionErr != nil {
			fmt.Fprintf(out, "%v\n", actionErr)
			continue
		}
		if err := Draw(out, ctrl.Render()); err != nil {
			return err
		}
	}
}

// scanLines reads in on its own goroutine. The reader may stay blocked after
// Run returns; it exits at the next line or EOF once done is closed.
func scanLines(in io.Reader, done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}

// describeSelectError restates range errors with the 1-based numbers the player typed.
func describeSelectError(session *app.Session, cmd command, err error) error {
	switch {
	case errors.Is(err, domain.ErrQuestionOutOfRange):
		return fmt.Errorf("no question %d, pick 1-%d", cmd.question+1, session.Total())
	case errors.Is(err, domain.ErrOptionOutOfRange):
		options := len(session.Questions()[cmd.question].Options)
		return fmt.Errorf("question %d has no option %d, pick 1-%d", cmd.question+1, cmd.option+1, options)
	default:
		return err
	}
}
