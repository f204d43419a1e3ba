package parser

import (
	"sort"
	"strings"
)

// Prefix marks the start of an argument, like "n/" for a name.
type Prefix string

const (
	PrefixName        Prefix = "n/"
	PrefixPriority    Prefix = "p/"
	PrefixEmail       Prefix = "e/"
	PrefixDescription Prefix = "d/"
	PrefixDone        Prefix = "s/"
	PrefixTag         Prefix = "t/"
	PrefixReminder    Prefix = "r/"
)

// ArgumentMultimap holds the values found for each prefix, in input order.
// The text before the first prefix is the preamble.
type ArgumentMultimap struct {
	preamble string
	values   map[Prefix][]string
}

func (a ArgumentMultimap) Preamble() string { return a.preamble }

// Value returns the last value given for p.
func (a ArgumentMultimap) Value(p Prefix) (string, bool) {
	vs := a.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

func (a ArgumentMultimap) AllValues(p Prefix) []string {
	return append([]string(nil), a.values[p]...)
}

func (a ArgumentMultimap) Has(p Prefix) bool {
	return len(a.values[p]) > 0
}

type position struct {
	prefix Prefix
	start  int
}

// Tokenize splits args on the given prefixes. A prefix only counts when it is
// at the start of args or follows whitespace.
func Tokenize(args string, prefixes ...Prefix) ArgumentMultimap {
	var found []position
	for _, p := range prefixes {
		from := 0
		for {
			i := strings.Index(args[from:], string(p))
			if i < 0 {
				break
			}
			at := from + i
			if at == 0 || isSpace(args[at-1]) {
				found = append(found, position{prefix: p, start: at})
			}
			from = at + len(p)
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].start < found[j].start })

	out := ArgumentMultimap{values: make(map[Prefix][]string)}
	end := len(args)
	if len(found) > 0 {
		end = found[0].start
	}
	out.preamble = strings.TrimSpace(args[:end])

	for i, pos := range found {
		valueEnd := len(args)
		if i+1 < len(found) {
			valueEnd = found[i+1].start
		}
		value := strings.TrimSpace(args[pos.start+len(pos.prefix) : valueEnd])
		out.values[pos.prefix] = append(out.values[pos.prefix], value)
	}
	return out
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
