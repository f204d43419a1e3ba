// Package parser turns a line of user input into a command.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/BuzzLyutic/taskbook/internal/command"
	"github.com/BuzzLyutic/taskbook/internal/model"
)

var (
	ErrInvalidCommandFormat = errors.New("Invalid command format!")
	ErrUnknownCommand       = errors.New("Unknown command")
	ErrInvalidIndex         = errors.New("Index is not a non-zero unsigned integer.")
)

// FormatError is an ErrInvalidCommandFormat carrying the usage of the command.
type FormatError struct {
	Usage string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s \n%s", ErrInvalidCommandFormat.Error(), e.Usage)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidCommandFormat
}

func formatError(usage string) error {
	return &FormatError{Usage: usage}
}

// Parse reads "WORD ARGS" and builds the matching command. Value objects are
// validated here, so a returned command never carries invalid fields.
func Parse(input string) (command.Command, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, formatError(command.HelpUsage)
	}
	word, args, _ := strings.Cut(input, " ")
	args = " " + args

	switch word {
	case command.AddCommandWord:
		return parseAdd(args)
	case command.EditCommandWord:
		return parseEdit(args)
	case command.DeleteCommandWord:
		return parseDelete(args)
	case command.FindCommandWord:
		return parseFind(args)
	case command.ListCommandWord:
		return command.ListCommand{}, nil
	case command.ClearCommandWord:
		return command.ClearCommand{}, nil
	case command.StatsCommandWord:
		return command.StatsCommand{}, nil
	case command.HelpCommandWord:
		return command.HelpCommand{}, nil
	case command.ExitCommandWord:
		return command.ExitCommand{}, nil
	}
	return nil, ErrUnknownCommand
}

var allPrefixes = []Prefix{
	PrefixName, PrefixPriority, PrefixEmail, PrefixDescription,
	PrefixDone, PrefixTag, PrefixReminder,
}

func parseAdd(args string) (command.Command, error) {
	am := Tokenize(args, allPrefixes...)
	if am.Preamble() != "" || !am.Has(PrefixName) || !am.Has(PrefixPriority) || !am.Has(PrefixDescription) {
		return nil, formatError(command.AddUsage)
	}

	name, _ := am.Value(PrefixName)
	n, err := model.NewName(name)
	if err != nil {
		return nil, err
	}
	priority, _ := am.Value(PrefixPriority)
	p, err := model.NewPriority(priority)
	if err != nil {
		return nil, err
	}
	description, _ := am.Value(PrefixDescription)
	d, err := model.NewDescription(description)
	if err != nil {
		return nil, err
	}
	done := model.DefaultDone()
	if raw, ok := am.Value(PrefixDone); ok {
		if done, err = model.NewDone(raw); err != nil {
			return nil, err
		}
	}
	tags, err := model.ParseTagSet(am.AllValues(PrefixTag)...)
	if err != nil {
		return nil, err
	}

	var opts []model.TaskOption
	if raw, ok := am.Value(PrefixEmail); ok {
		e, err := model.NewEmail(raw)
		if err != nil {
			return nil, err
		}
		opts = append(opts, model.WithEmail(e))
	}
	if raw, ok := am.Value(PrefixReminder); ok {
		r, err := model.NewReminder(raw)
		if err != nil {
			return nil, err
		}
		opts = append(opts, model.WithReminder(r))
	}

	return command.NewAddCommand(model.NewTask(n, p, d, done, tags, opts...)), nil
}

func parseEdit(args string) (command.Command, error) {
	am := Tokenize(args, allPrefixes...)
	index, err := ParseIndex(am.Preamble())
	if err != nil {
		return nil, formatError(command.EditUsage)
	}

	var d command.EditTaskDescriptor
	if raw, ok := am.Value(PrefixName); ok {
		v, err := model.NewName(raw)
		if err != nil {
			return nil, err
		}
		d.Name = model.Some(v)
	}
	if raw, ok := am.Value(PrefixPriority); ok {
		v, err := model.NewPriority(raw)
		if err != nil {
			return nil, err
		}
		d.Priority = model.Some(v)
	}
	if raw, ok := am.Value(PrefixEmail); ok {
		v, err := model.NewEmail(raw)
		if err != nil {
			return nil, err
		}
		d.Email = model.Some(v)
	}
	if raw, ok := am.Value(PrefixDescription); ok {
		v, err := model.NewDescription(raw)
		if err != nil {
			return nil, err
		}
		d.Description = model.Some(v)
	}
	if raw, ok := am.Value(PrefixDone); ok {
		v, err := model.NewDone(raw)
		if err != nil {
			return nil, err
		}
		d.Done = model.Some(v)
	}
	if raw, ok := am.Value(PrefixReminder); ok {
		v, err := model.NewReminder(raw)
		if err != nil {
			return nil, err
		}
		d.Reminder = model.Some(v)
	}
	if am.Has(PrefixTag) {
		tags, err := parseTagsForEdit(am.AllValues(PrefixTag))
		if err != nil {
			return nil, err
		}
		d.Tags = model.Some(tags)
	}

	c, err := command.NewEditCommand(index, d)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// parseTagsForEdit treats a single empty "t/" as "remove all tags".
func parseTagsForEdit(raw []string) (model.TagSet, error) {
	if len(raw) == 1 && raw[0] == "" {
		return model.NewTagSet(), nil
	}
	return model.ParseTagSet(raw...)
}

func parseDelete(args string) (command.Command, error) {
	index, err := ParseIndex(args)
	if err != nil {
		return nil, formatError(command.DeleteUsage)
	}
	return command.NewDeleteCommand(index), nil
}

func parseFind(args string) (command.Command, error) {
	keywords := strings.Fields(args)
	if len(keywords) == 0 {
		return nil, formatError(command.FindUsage)
	}
	return command.NewFindCommand(model.NameContainsKeywords{Keywords: keywords}), nil
}

// ParseIndex accepts a positive integer in its plain decimal form.
func ParseIndex(raw string) (command.Index, error) {
	raw = strings.TrimSpace(raw)
	n, err := strconv.ParseUint(raw, 10, 31)
	if err != nil || n == 0 {
		return command.Index{}, ErrInvalidIndex
	}
	return command.IndexFromOneBased(int(n))
}
