package model

import (
	"regexp"
	"sort"
	"strings"
)

const TagConstraints = "Tags names should be alphanumeric"

var tagPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

type Tag struct {
	name string
}

func NewTag(raw string) (Tag, error) {
	if !tagPattern.MatchString(raw) {
		return Tag{}, newValidationError("tag", raw, TagConstraints)
	}
	return Tag{name: raw}, nil
}

func (t Tag) Name() string { return t.name }

func (t Tag) String() string { return "[" + t.name + "]" }

// TagSet is an immutable set of tags. The zero value is an empty set.
type TagSet struct {
	tags map[Tag]struct{}
}

func NewTagSet(tags ...Tag) TagSet {
	if len(tags) == 0 {
		return TagSet{}
	}
	m := make(map[Tag]struct{}, len(tags))
	for _, t := range tags {
		m[t] = struct{}{}
	}
	return TagSet{tags: m}
}

// ParseTagSet validates every raw tag name and builds a set from them.
func ParseTagSet(raw ...string) (TagSet, error) {
	tags := make([]Tag, 0, len(raw))
	for _, r := range raw {
		t, err := NewTag(r)
		if err != nil {
			return TagSet{}, err
		}
		tags = append(tags, t)
	}
	return NewTagSet(tags...), nil
}

func (s TagSet) Len() int { return len(s.tags) }

func (s TagSet) Contains(t Tag) bool {
	_, ok := s.tags[t]
	return ok
}

// Slice returns a fresh copy sorted by name; changing it does not affect the set.
func (s TagSet) Slice() []Tag {
	out := make([]Tag, 0, len(s.tags))
	for t := range s.tags {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

func (s TagSet) Names() []string {
	tags := s.Slice()
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = t.name
	}
	return out
}

func (s TagSet) Equal(other TagSet) bool {
	if len(s.tags) != len(other.tags) {
		return false
	}
	for t := range s.tags {
		if !other.Contains(t) {
			return false
		}
	}
	return true
}

func (s TagSet) String() string {
	var b strings.Builder
	for _, t := range s.Slice() {
		b.WriteString(t.String())
	}
	return b.String()
}
