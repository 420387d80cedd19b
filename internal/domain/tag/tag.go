// Package tag holds the Tag entity, its color palette, and validation rules.
package tag

import (
	"cmp"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/todotags/internal/domain"
	"github.com/jsamuelsen11/todotags/internal/domain/todo"
)

// MaxNameLength is the tag name limit in characters.
const MaxNameLength = 30

// Color is a hex color drawn from Palette.
type Color string

// Palette is the fixed set of colors a tag may use.
var Palette = []Color{
	"#EF4444", // red
	"#F97316", // orange
	"#EAB308", // yellow
	"#22C55E", // green
	"#14B8A6", // teal
	"#3B82F6", // blue
	"#6366F1", // indigo
	"#A855F7", // purple
	"#EC4899", // pink
	"#6B7280", // gray
}

// DefaultColor is used when a draft leaves Color empty.
const DefaultColor Color = "#3B82F6"

// IsValid reports whether c is a palette color. Comparison ignores case.
func (c Color) IsValid() bool {
	return slices.ContainsFunc(Palette, func(p Color) bool {
		return strings.EqualFold(string(p), string(c))
	})
}

// Canonical returns the palette spelling of c.
func (c Color) Canonical() Color {
	for _, p := range Palette {
		if strings.EqualFold(string(p), string(c)) {
			return p
		}
	}
	return c
}

// Tag is a user-owned label that todos reference by ID.
type Tag struct {
	ID        string
	UserID    string
	Name      string
	Color     Color
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Draft is the input for creating a tag.
type Draft struct {
	Name  string
	Color Color
}

// Validate checks business rules for a new tag.
func (d *Draft) Validate() error {
	fields := make(map[string]string)

	validateName(fields, d.Name)
	if d.Color != "" && !d.Color.IsValid() {
		fields["color"] = domain.MsgInvalidColor
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// New builds an unsaved Tag from a validated draft. The store assigns ID.
func New(userID string, d Draft, now time.Time) Tag {
	color := d.Color.Canonical()
	if color == "" {
		color = DefaultColor
	}
	return Tag{
		UserID:    userID,
		Name:      NormalizeName(d.Name),
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Patch is a partial tag update. Nil fields are left unchanged.
type Patch struct {
	Name  *string
	Color *Color
}

// IsEmpty reports whether the patch changes nothing.
func (p *Patch) IsEmpty() bool {
	return p.Name == nil && p.Color == nil
}

// Validate checks the fields present in the patch.
func (p *Patch) Validate() error {
	fields := make(map[string]string)

	if p.IsEmpty() {
		fields["body"] = domain.MsgNoChanges
	}
	if p.Name != nil {
		validateName(fields, *p.Name)
	}
	if p.Color != nil && !p.Color.IsValid() {
		fields["color"] = domain.MsgInvalidColor
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Apply writes the patch onto t and advances UpdatedAt.
func (p *Patch) Apply(t *Tag, now time.Time) {
	if p.Name != nil {
		t.Name = NormalizeName(*p.Name)
	}
	if p.Color != nil {
		t.Color = p.Color.Canonical()
	}
	t.UpdatedAt = todo.NextUpdatedAt(t.UpdatedAt, now)
}

// NormalizeName trims surrounding whitespace. Uniqueness compares normalized
// names exactly.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// SortOldestFirst orders tags by CreatedAt ascending, ID breaking ties.
func SortOldestFirst(tags []Tag) {
	slices.SortStableFunc(tags, func(a, b Tag) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

func validateName(fields map[string]string, name string) {
	name = NormalizeName(name)
	switch {
	case name == "":
		fields["name"] = domain.MsgRequired
	case utf8.RuneCountInString(name) > MaxNameLength:
		fields["name"] = domain.MsgTooLong
	}
}
