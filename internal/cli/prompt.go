package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// ErrInputClosed is returned when input ends before the game does
var ErrInputClosed = errors.New("input closed")

// Prompter asks players for input, re-asking until the answer is valid
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	fd     int // terminal file descriptor for hidden input, -1 if none
	reveal bool
}

// NewPrompter creates a Prompter reading from in and writing prompts to out.
// When in is a terminal, picks are read without echo unless reveal is set.
func NewPrompter(in io.Reader, out io.Writer, reveal bool) *Prompter {
	fd := -1
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd = int(f.Fd())
	}
	return &Prompter{
		in:     bufio.NewReader(in),
		out:    out,
		fd:     fd,
		reveal: reveal,
	}
}

// Say writes a line to the prompt stream
func (p *Prompter) Say(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// PlayerCount asks for the number of players, re-asking while it is below least
func (p *Prompter) PlayerCount(ctx context.Context, least int) (int, error) {
	for {
		n, err := p.askInt(ctx, "Enter the number of players: ")
		if err != nil {
			return 0, err
		}
		if n < least {
			p.Say("There must be at least %d players.", least)
			continue
		}
		return n, nil
	}
}

// PlayerName asks for the name of the player in the given 1-indexed seat.
// accept is called with each well-formed name; if it returns an error the
// error is shown and the name asked for again.
func (p *Prompter) PlayerName(ctx context.Context, seat int, accept func(string) error) (string, error) {
	for {
		name, err := p.ask(ctx, fmt.Sprintf("Enter the name of player %d: ", seat))
		if err != nil {
			return "", err
		}
		if err := ValidateName(name); err != nil {
			p.Say("Error: %s. Please enter a valid name.\n", err)
			continue
		}
		if err := accept(name); err != nil {
			p.Say("Error: %s. Please enter a valid name.\n", err)
			continue
		}
		return name, nil
	}
}

// Rounds asks for the number of rounds, showing the recommended count
func (p *Prompter) Rounds(ctx context.Context, recommended int) (int, error) {
	p.Say("\nRecommended number of rounds is %d\n", recommended)
	for {
		n, err := p.askInt(ctx, "Enter the number of rounds: ")
		if err != nil {
			return 0, err
		}
		if n < 1 {
			p.Say("Please enter a positive number!")
			continue
		}
		return n, nil
	}
}

// Pick asks a player for their secret number in [1, maxPick]
func (p *Prompter) Pick(ctx context.Context, seat int, name string, maxPick int) (int, error) {
	prompt := fmt.Sprintf("Player %d (%s), please enter a number between [1,%d] and press ENTER: ", seat, name, maxPick)
	for {
		line, err := p.askSecret(ctx, prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			p.Say("Error: The input must be a numeric value.")
			continue
		}
		if n < 1 || n > maxPick {
			p.Say("Error: The number must be between 1 and %d", maxPick)
			continue
		}
		return n, nil
	}
}

func (p *Prompter) askInt(ctx context.Context, prompt string) (int, error) {
	for {
		line, err := p.ask(ctx, prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			p.Say("Invalid input. Please enter a number.")
			continue
		}
		return n, nil
	}
}

func (p *Prompter) ask(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	return p.wait(ctx, p.readLine)
}

// askSecret reads without echo when attached to a terminal. Input that is
// already buffered is read normally.
func (p *Prompter) askSecret(ctx context.Context, prompt string) (string, error) {
	if p.reveal || p.fd < 0 || p.in.Buffered() > 0 {
		return p.ask(ctx, prompt)
	}

	fmt.Fprint(p.out, prompt)
	state, err := term.GetState(p.fd)
	if err != nil {
		return "", err
	}
	line, err := p.wait(ctx, func() (string, error) {
		b, err := term.ReadPassword(p.fd)
		return strings.TrimSpace(string(b)), err
	})
	if ctx.Err() != nil {
		_ = term.Restore(p.fd, state)
	}
	fmt.Fprintln(p.out)
	return line, err
}

// wait runs a blocking read, giving up early if ctx is cancelled
func (p *Prompter) wait(ctx context.Context, read func() (string, error)) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		line string
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		line, err := read()
		ch <- result{line, err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		return r.line, r.err
	}
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
