package menu

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// readLine returns the next trimmed input line, or io.EOF when the input
// stream is closed.
func (m *Menu) readLine() (string, error) {
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

// askChoice re-prompts until one of options (case-insensitive) is entered.
// Empty input returns def when def is non-empty.
func (m *Menu) askChoice(prompt string, options []string, def string) (string, error) {
	lower := make(map[string]string, len(options))
	for _, o := range options {
		lower[strings.ToLower(o)] = o
	}
	for {
		fmt.Fprint(m.out, prompt)
		raw, err := m.readLine()
		if err != nil {
			return "", err
		}
		if raw == "" && def != "" {
			return def, nil
		}
		if o, ok := lower[strings.ToLower(raw)]; ok {
			return o, nil
		}
		fmt.Fprintln(m.out, color.YellowString("Invalid choice. Valid options: %s", strings.Join(options, ", ")))
	}
}

var yesNoWords = map[string]bool{
	"y": true, "yes": true, "e": true, "evet": true,
	"n": false, "no": false, "h": false, "hayır": false, "hayir": false,
}

// askYesNo re-prompts until a yes/no answer is entered. English and Turkish
// tokens are both accepted; empty input returns def.
func (m *Menu) askYesNo(prompt string, def bool) (bool, error) {
	for {
		fmt.Fprint(m.out, prompt)
		raw, err := m.readLine()
		if err != nil {
			return false, err
		}
		if raw == "" {
			return def, nil
		}
		if v, ok := yesNoWords[strings.ToLower(raw)]; ok {
			return v, nil
		}
		fmt.Fprintln(m.out, color.YellowString("Invalid choice. Please answer yes or no (y/n)."))
	}
}

// askInt re-prompts until an integer within [min, max] is entered. Empty
// input returns def, which callers clamp into range beforehand.
func (m *Menu) askInt(prompt string, def, min, max int) (int, error) {
	for {
		fmt.Fprint(m.out, prompt)
		raw, err := m.readLine()
		if err != nil {
			return 0, err
		}
		if raw == "" {
			return def, nil
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintln(m.out, color.YellowString("Please enter a valid year (e.g. %d).", def))
			continue
		}
		if v < min {
			fmt.Fprintln(m.out, color.YellowString("Must be at least %d.", min))
			continue
		}
		if v > max {
			fmt.Fprintln(m.out, color.YellowString("Must be at most %d.", max))
			continue
		}
		return v, nil
	}
}
