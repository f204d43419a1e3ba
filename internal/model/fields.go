package model

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	NameConstraints        = "Names should only contain alphanumeric characters and spaces, and it should not be blank"
	PriorityConstraints    = "Priority should be a whole number from 1 to 10"
	EmailConstraints       = "Emails should be of the format local-part@domain, where the local-part contains only alphanumeric characters and +_.- and the domain is made of dot-separated labels"
	DescriptionConstraints = "Descriptions can take any values, and it should not be blank"
	DoneConstraints        = "Done should be either Y or N"

	MinPriority = 1
	MaxPriority = 10
)

var (
	namePattern  = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ]*$`)
	digitPattern = regexp.MustCompile(`^[0-9]+$`)
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.\-]+@[A-Za-z0-9]([A-Za-z0-9\-]*[A-Za-z0-9])?(\.[A-Za-z0-9]([A-Za-z0-9\-]*[A-Za-z0-9])?)*$`)
)

type Name struct {
	value string
}

func NewName(raw string) (Name, error) {
	if !namePattern.MatchString(raw) {
		return Name{}, newValidationError("name", raw, NameConstraints)
	}
	return Name{value: raw}, nil
}

func (n Name) Value() string  { return n.value }
func (n Name) String() string { return n.value }

// Priority is a rank from MinPriority to MaxPriority. Leading zeros are
// dropped so "01" and "1" are the same priority.
type Priority struct {
	value string
}

func NewPriority(raw string) (Priority, error) {
	if !digitPattern.MatchString(raw) {
		return Priority{}, newValidationError("priority", raw, PriorityConstraints)
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < MinPriority || n > MaxPriority {
		return Priority{}, newValidationError("priority", raw, PriorityConstraints)
	}
	return Priority{value: strconv.Itoa(n)}, nil
}

func (p Priority) Value() string  { return p.value }
func (p Priority) String() string { return p.value }

// Rank returns the numeric priority.
func (p Priority) Rank() int {
	n, _ := strconv.Atoi(p.value)
	return n
}

type Email struct {
	value string
}

func NewEmail(raw string) (Email, error) {
	local, _, ok := strings.Cut(raw, "@")
	if !ok || !emailPattern.MatchString(raw) ||
		strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") {
		return Email{}, newValidationError("email", raw, EmailConstraints)
	}
	return Email{value: raw}, nil
}

func (e Email) Value() string  { return e.value }
func (e Email) String() string { return e.value }

type Description struct {
	value string
}

func NewDescription(raw string) (Description, error) {
	if first, _ := utf8.DecodeRuneInString(raw); raw == "" || unicode.IsSpace(first) {
		return Description{}, newValidationError("description", raw, DescriptionConstraints)
	}
	return Description{value: raw}, nil
}

func (d Description) Value() string  { return d.value }
func (d Description) String() string { return d.value }

// Done is the completion flag, written as "Y" or "N". The zero value is "not done".
type Done struct {
	done bool
}

const (
	doneYes = "Y"
	doneNo  = "N"
)

func NewDone(raw string) (Done, error) {
	switch raw {
	case doneYes:
		return Done{done: true}, nil
	case doneNo:
		return Done{}, nil
	}
	return Done{}, newValidationError("done", raw, DoneConstraints)
}

// DefaultDone is the "not done" state.
func DefaultDone() Done {
	return Done{}
}

func (d Done) IsDone() bool { return d.done }

func (d Done) Value() string {
	if d.done {
		return doneYes
	}
	return doneNo
}

func (d Done) String() string { return d.Value() }
