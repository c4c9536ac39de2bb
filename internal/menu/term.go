package menu

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// Term renders the managed region as a numbered terminal menu and reads a
// selection with readline. It embeds a Model for item bookkeeping, so it
// satisfies Binding the same way.
type Term struct {
	*Model
	prompt string
}

// NewTerm returns a terminal menu with the given readline prompt.
func NewTerm(prompt string) *Term {
	return &Term{Model: NewModel(), prompt: prompt}
}

// Run renders the current items and reads selections until one is
// activated, EOF, or "q". Requires stdin to be a terminal.
func (t *Term) Run() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("menu: stdin is not a terminal")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          t.prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "q",
	})
	if err != nil {
		return fmt.Errorf("init readline: %w", err)
	}
	defer rl.Close()

	t.render(os.Stdout)

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "q", "quit":
			return nil
		}

		d, err := strconv.Atoi(line)
		if err != nil || d < 1 || d > 9 {
			fmt.Println("enter a digit 1-9, or q to quit")
			continue
		}

		h := t.HandleForMnemonic(d)
		if h == NoHandle {
			fmt.Printf("no entry %d\n", d)
			continue
		}
		return t.Activate(h)
	}
}

func (t *Term) render(w io.Writer) {
	items := t.Items()
	if len(items) == 0 {
		fmt.Fprintln(w, "(no recent files)")
		return
	}
	for _, it := range items {
		if it.Separator {
			fmt.Fprintln(w, "  ----------------")
			continue
		}
		// Display labels carry an & accelerator marker; drop it for the
		// terminal rendering.
		fmt.Fprintf(w, "  %s\n", strings.Replace(it.Label, "&", "", 1))
	}
}
