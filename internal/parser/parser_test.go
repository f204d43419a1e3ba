package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BuzzLyutic/taskbook/internal/command"
	"github.com/BuzzLyutic/taskbook/internal/model"
	"github.com/BuzzLyutic/taskbook/internal/testutil"
)

func TestTokenize(t *testing.T) {
	am := Tokenize(" 1 n/Math Homework p/2 t/a t/b pn/x d/Read p/3", allPrefixes...)

	assert.Equal(t, "1", am.Preamble())
	name, ok := am.Value(PrefixName)
	require.True(t, ok)
	assert.Equal(t, "Math Homework", name)

	// last value wins
	p, _ := am.Value(PrefixPriority)
	assert.Equal(t, "3", p)

	// "pn/x" is not a prefix, it stays in the previous value
	assert.Equal(t, []string{"a", "b pn/x"}, am.AllValues(PrefixTag))
	assert.False(t, am.Has(PrefixEmail))
	_, ok = am.Value(PrefixEmail)
	assert.False(t, ok)
}

func TestParse_Add(t *testing.T) {
	cmd, err := Parse("add n/Math Homework p/1 d/Ch5")
	require.NoError(t, err)
	assert.True(t, cmd.(command.AddCommand).Equal(command.NewAddCommand(testutil.MathHomework())))

	cmd, err = Parse("add  n/Buy groceries p/5 d/Milk, eggs t/home t/errands r/2026-10-20 18:00")
	require.NoError(t, err)
	assert.True(t, cmd.(command.AddCommand).Task().Equals(testutil.Groceries()))

	cmd, err = Parse("add e/tutor@example.com t/school n/Essay Draft p/3 d/Intro and outline")
	require.NoError(t, err)
	assert.True(t, cmd.(command.AddCommand).Task().Equals(testutil.EssayDraft()))

	cmd, err = Parse("add n/Done thing p/2 d/x s/Y")
	require.NoError(t, err)
	assert.True(t, cmd.(command.AddCommand).Task().Done().IsDone())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		message string
	}{
		{"empty", "   ", ErrInvalidCommandFormat, ""},
		{"unknown", "frobnicate 1", ErrUnknownCommand, "Unknown command"},
		{"add missing priority", "add n/Task d/desc", ErrInvalidCommandFormat, ""},
		{"add with preamble", "add oops n/Task p/1 d/desc", ErrInvalidCommandFormat, ""},
		{"add invalid name", "add n/R@chel p/1 d/desc", model.ErrValidation, model.NameConstraints},
		{"add invalid priority", "add n/Task p/11 d/desc", model.ErrValidation, model.PriorityConstraints},
		{"add invalid email", "add n/Task p/1 d/desc e/example.com", model.ErrValidation, model.EmailConstraints},
		{"add invalid tag", "add n/Task p/1 d/desc t/#friend", model.ErrValidation, model.TagConstraints},
		{"add invalid done", "add n/Task p/1 d/desc s/maybe", model.ErrValidation, model.DoneConstraints},
		{"add invalid reminder", "add n/Task p/1 d/desc r/soon", model.ErrValidation, model.ReminderConstraints},
		{"add blank description", "add n/Task p/1 d/", model.ErrValidation, model.DescriptionConstraints},
		{"edit no index", "edit p/2", ErrInvalidCommandFormat, ""},
		{"edit zero index", "edit 0 p/2", ErrInvalidCommandFormat, ""},
		{"edit negative index", "edit -1 p/2", ErrInvalidCommandFormat, ""},
		{"edit nothing", "edit 1", command.ErrNoFieldEdited, "At least one field to edit must be provided."},
		{"edit invalid priority", "edit 1 p/x", model.ErrValidation, model.PriorityConstraints},
		{"delete no index", "delete", ErrInvalidCommandFormat, ""},
		{"delete word", "delete one", ErrInvalidCommandFormat, ""},
		{"find nothing", "find   ", ErrInvalidCommandFormat, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := Parse(tt.input)
			assert.Nil(t, cmd)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.message != "" {
				assert.Equal(t, tt.message, err.Error())
			}
		})
	}
}

func TestParse_FormatErrorCarriesUsage(t *testing.T) {
	_, err := Parse("edit p/2")
	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, command.EditUsage, fe.Usage)
	assert.Contains(t, err.Error(), "Invalid command format!")
}

func TestParse_Edit(t *testing.T) {
	cmd, err := Parse("edit 2 p/2 s/Y")
	require.NoError(t, err)

	done, _ := model.NewDone("Y")
	p, _ := model.NewPriority("2")
	i, _ := command.IndexFromOneBased(2)
	want, err := command.NewEditCommand(i, command.EditTaskDescriptor{
		Priority: model.Some(p),
		Done:     model.Some(done),
	})
	require.NoError(t, err)
	assert.True(t, cmd.(command.EditCommand).Equal(want))
}

func TestParse_EditTags(t *testing.T) {
	i, _ := command.IndexFromOneBased(1)

	t.Run("empty tag clears", func(t *testing.T) {
		cmd, err := Parse("edit 1 t/")
		require.NoError(t, err)
		want, err := command.NewEditCommand(i, command.EditTaskDescriptor{Tags: model.Some(model.NewTagSet())})
		require.NoError(t, err)
		assert.True(t, cmd.(command.EditCommand).Equal(want))
	})

	t.Run("several tags", func(t *testing.T) {
		cmd, err := Parse("edit 1 t/b t/a")
		require.NoError(t, err)
		tags, _ := model.ParseTagSet("a", "b")
		want, err := command.NewEditCommand(i, command.EditTaskDescriptor{Tags: model.Some(tags)})
		require.NoError(t, err)
		assert.True(t, cmd.(command.EditCommand).Equal(want))
	})

	t.Run("empty tag among others is invalid", func(t *testing.T) {
		_, err := Parse("edit 1 t/a t/")
		assert.ErrorIs(t, err, model.ErrValidation)
	})
}

func TestParse_Simple(t *testing.T) {
	tests := []struct {
		input string
		want  command.Command
	}{
		{"list", command.ListCommand{}},
		{"list extra", command.ListCommand{}},
		{"clear", command.ClearCommand{}},
		{"stats", command.StatsCommand{}},
		{"help", command.HelpCommand{}},
		{"exit", command.ExitCommand{}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cmd)
		})
	}

	cmd, err := Parse("delete 3")
	require.NoError(t, err)
	i, _ := command.IndexFromOneBased(3)
	assert.Equal(t, command.NewDeleteCommand(i), cmd)

	cmd, err = Parse("find math  essay")
	require.NoError(t, err)
	assert.True(t, cmd.(command.FindCommand).Equal(
		command.NewFindCommand(model.NameContainsKeywords{Keywords: []string{"math", "essay"}})))
}

func TestParseIndex(t *testing.T) {
	i, err := ParseIndex("  7 ")
	require.NoError(t, err)
	assert.Equal(t, 7, i.OneBased())

	for _, raw := range []string{"", "0", "-3", "+1", "1.0", "abc", "99999999999"} {
		_, err := ParseIndex(raw)
		assert.ErrorIs(t, err, ErrInvalidIndex, raw)
	}
}
