// Package todo holds the Todo entity, its create/update inputs, and the
// validation and ordering rules shared by every store adapter.
package todo

import (
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/todotags/internal/domain"
)

// Limits, counted in characters (runes).
const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 1000
	MaxTags              = 20
)

// Todo is a user-owned task.
type Todo struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Completed   bool
	TagIDs      []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasTag reports whether the todo references tagID.
func (t *Todo) HasTag(tagID string) bool {
	return slices.Contains(t.TagIDs, tagID)
}

// Clone returns a deep copy so callers can mutate TagIDs freely.
func (t Todo) Clone() Todo {
	t.TagIDs = slices.Clone(t.TagIDs)
	if t.TagIDs == nil {
		t.TagIDs = []string{}
	}
	return t
}

// Draft is the input for creating a todo.
type Draft struct {
	Title       string
	Description string
	TagIDs      []string
}

// Validate checks business rules for a new todo.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (d *Draft) Validate() error {
	fields := make(map[string]string)

	validateTitle(fields, d.Title)
	validateDescription(fields, d.Description)
	validateTagIDs(fields, d.TagIDs)

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// New builds an unsaved Todo from a validated draft. The store assigns ID.
func New(userID string, d Draft, now time.Time) Todo {
	return Todo{
		UserID:      userID,
		Title:       strings.TrimSpace(d.Title),
		Description: d.Description,
		Completed:   false,
		TagIDs:      NormalizeTagIDs(d.TagIDs),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Patch is a partial update. Nil fields are left unchanged.
type Patch struct {
	Title       *string
	Description *string
	Completed   *bool
	TagIDs      *[]string
}

// IsEmpty reports whether the patch changes nothing.
func (p *Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Completed == nil && p.TagIDs == nil
}

// Validate checks the fields present in the patch.
func (p *Patch) Validate() error {
	fields := make(map[string]string)

	if p.IsEmpty() {
		fields["body"] = domain.MsgNoChanges
	}
	if p.Title != nil {
		validateTitle(fields, *p.Title)
	}
	if p.Description != nil {
		validateDescription(fields, *p.Description)
	}
	if p.TagIDs != nil {
		validateTagIDs(fields, *p.TagIDs)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Apply writes the patch onto t and advances UpdatedAt.
func (p *Patch) Apply(t *Todo, now time.Time) {
	if p.Title != nil {
		t.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.TagIDs != nil {
		t.TagIDs = NormalizeTagIDs(*p.TagIDs)
	}
	t.UpdatedAt = NextUpdatedAt(t.UpdatedAt, now)
}

// NextUpdatedAt returns now, or one nanosecond after prev when the clock has
// not moved past it, so UpdatedAt strictly increases on every update.
func NextUpdatedAt(prev, now time.Time) time.Time {
	if now.After(prev) {
		return now
	}
	return prev.Add(time.Nanosecond)
}

// NormalizeTagIDs drops blanks and duplicates, keeping first-seen order.
// The result is never nil.
func NormalizeTagIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func validateTitle(fields map[string]string, title string) {
	switch {
	case strings.TrimSpace(title) == "":
		fields["title"] = domain.MsgRequired
	case utf8.RuneCountInString(strings.TrimSpace(title)) > MaxTitleLength:
		fields["title"] = domain.MsgTooLong
	}
}

func validateDescription(fields map[string]string, description string) {
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		fields["description"] = domain.MsgTooLong
	}
}

func validateTagIDs(fields map[string]string, ids []string) {
	if len(NormalizeTagIDs(ids)) > MaxTags {
		fields["tag_ids"] = domain.MsgTooMany
	}
}
