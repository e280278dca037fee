package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// MenuSelector presents numbered menus and reads answers line by line.
// An empty answer accepts the defaults; "q" or end of input cancels.
type MenuSelector struct {
	reader *bufio.Reader
	w      io.Writer
}

// NewMenuSelector creates a MenuSelector reading from r and writing to w.
func NewMenuSelector(r io.Reader, w io.Writer) *MenuSelector {
	return &MenuSelector{reader: bufio.NewReader(r), w: w}
}

// SelectMany accepts a comma or space separated list of numbers.
func (m *MenuSelector) SelectMany(message string, choices, defaults []string) (Selection, error) {
	m.printMenu(message, choices, defaults)
	fmt.Fprintf(m.w, "Enter numbers [1-%d], comma separated: ", len(choices))

	line, ok, err := m.readLine()
	if err != nil || !ok {
		return Cancelled{}, err
	}
	if line == "" {
		return Selected{Choices: append([]string(nil), defaults...)}, nil
	}

	fields := strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == ' ' })
	picked := make([]bool, len(choices))
	for _, f := range fields {
		idx, err := parseIndex(f, len(choices))
		if err != nil {
			return nil, err
		}
		picked[idx] = true
	}

	var out []string
	for i, c := range choices {
		if picked[i] {
			out = append(out, c)
		}
	}
	return Selected{Choices: out}, nil
}

// SelectOne accepts a single number.
func (m *MenuSelector) SelectOne(message string, choices []string, def string) (Selection, error) {
	var defaults []string
	if def != "" {
		defaults = []string{def}
	}
	m.printMenu(message, choices, defaults)
	fmt.Fprintf(m.w, "Enter number [1-%d]: ", len(choices))

	line, ok, err := m.readLine()
	if err != nil || !ok {
		return Cancelled{}, err
	}
	if line == "" {
		if def == "" {
			return nil, fmt.Errorf("no selection made and no default available")
		}
		return Selected{Choices: []string{def}}, nil
	}

	idx, err := parseIndex(line, len(choices))
	if err != nil {
		return nil, err
	}
	return Selected{Choices: []string{choices[idx]}}, nil
}

func (m *MenuSelector) printMenu(message string, choices, defaults []string) {
	isDefault := make(map[string]bool, len(defaults))
	for _, d := range defaults {
		isDefault[d] = true
	}

	fmt.Fprintf(m.w, "\n%s\n", message)
	for i, c := range choices {
		marker := ""
		if isDefault[c] {
			marker = " (default)"
		}
		fmt.Fprintf(m.w, "  %d) %s%s\n", i+1, c, marker)
	}
}

// readLine returns ok=false when the operator cancelled.
func (m *MenuSelector) readLine() (string, bool, error) {
	line, err := m.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, fmt.Errorf("reading selection: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		return "", false, nil
	}

	line = strings.TrimSpace(line)
	if strings.EqualFold(line, "q") {
		return "", false, nil
	}
	return line, true, nil
}

func parseIndex(s string, n int) (int, error) {
	num, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || num < 1 || num > n {
		return 0, fmt.Errorf("invalid selection %q: choose 1-%d", strings.TrimSpace(s), n)
	}
	return num - 1, nil
}
