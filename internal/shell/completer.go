package shell

import (
	"sort"
	"strings"

	"github.com/chzyer/readline"
)

// commands is the static list of shell commands.
var commands = []string{
	"angle", "scalex", "scaley", "corr",
	"set", "show", "sliders", "about",
	"render", "theme", "reset", "resample",
	"help", "quit", "exit",
}

// argCompletions maps a command to the values its first argument accepts.
var argCompletions = map[string][]string{
	"set":   {"angle", "scalex", "scaley", "corr"},
	"theme": {"light", "dark"},
}

// Completer provides tab completion for commands and their first argument.
// It implements the readline.AutoCompleter interface.
type Completer struct{}

var _ readline.AutoCompleter = Completer{}

// Do implements readline.AutoCompleter. Candidates are returned as
// suffixes after the word under the cursor.
func (Completer) Do(line []rune, pos int) (newLine [][]rune, length int) {
	if pos > len(line) {
		pos = len(line)
	}
	if pos < 0 {
		return nil, 0
	}
	head := string(line[:pos])
	fields := strings.Fields(head)
	trailing := strings.HasSuffix(head, " ")

	var word string
	var pool []string
	switch {
	case len(fields) == 0:
		pool = commands
	case len(fields) == 1 && !trailing:
		word, pool = fields[0], commands
	case len(fields) == 1 && trailing:
		pool = argCompletions[strings.ToLower(fields[0])]
	case len(fields) == 2 && !trailing:
		word, pool = fields[1], argCompletions[strings.ToLower(fields[0])]
	default:
		return nil, 0
	}

	matches := complete(pool, word)
	if len(matches) == 0 {
		return nil, 0
	}
	for _, m := range matches {
		newLine = append(newLine, []rune(m[len(word):]+" "))
	}
	return newLine, len([]rune(word))
}

// complete returns the sorted entries of pool that start with prefix.
func complete(pool []string, prefix string) []string {
	var out []string
	for _, c := range pool {
		if strings.HasPrefix(c, strings.ToLower(prefix)) && len(c) >= len(prefix) {
			out = append(out, c)
		}
	}
	sort.Strings(out)
	return out
}
