package dto

import (
	"strings"

	"github.com/jsamuelsen11/todotags/internal/domain"
	"github.com/jsamuelsen11/todotags/internal/domain/tag"
	"github.com/jsamuelsen11/todotags/internal/domain/todo"
	"github.com/jsamuelsen11/todotags/internal/domain/user"
)

// MsgMalformedJSON is the field message for an undecodable body.
const MsgMalformedJSON = "is not valid JSON"

// SignUpRequest represents the JSON body for creating an account.
type SignUpRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName,omitempty"`
}

// Validate checks presence and email shape.
func (r *SignUpRequest) Validate() error {
	c := r.Credentials()
	return c.Validate()
}

// Credentials converts the request to domain credentials.
func (r *SignUpRequest) Credentials() user.Credentials {
	return user.Credentials{
		Email:       strings.TrimSpace(r.Email),
		Password:    r.Password,
		DisplayName: strings.TrimSpace(r.DisplayName),
	}
}

// SignInRequest represents the JSON body for password sign-in.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks presence and email shape.
func (r *SignInRequest) Validate() error {
	c := r.Credentials()
	return c.Validate()
}

// Credentials converts the request to domain credentials.
func (r *SignInRequest) Credentials() user.Credentials {
	return user.Credentials{Email: strings.TrimSpace(r.Email), Password: r.Password}
}

// ProviderSignInRequest represents the JSON body for federated sign-in.
type ProviderSignInRequest struct {
	IDToken string `json:"idToken"`
}

// Validate checks that the ID token is present.
func (r *ProviderSignInRequest) Validate() error {
	if strings.TrimSpace(r.IDToken) == "" {
		return &domain.ValidationError{Fields: map[string]string{"id_token": domain.MsgRequired}}
	}
	return nil
}

// CreateTodoRequest represents the JSON body for creating a todo.
type CreateTodoRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	TagIDs      []string `json:"tagIds,omitempty"`
}

// Validate applies the domain rules for a new todo.
func (r *CreateTodoRequest) Validate() error {
	d := r.Draft()
	return d.Validate()
}

// Draft converts the request to a domain draft.
func (r *CreateTodoRequest) Draft() todo.Draft {
	return todo.Draft{Title: r.Title, Description: r.Description, TagIDs: r.TagIDs}
}

// UpdateTodoRequest represents the JSON body for updating a todo.
// All fields are optional; nil means "do not change this field.".
type UpdateTodoRequest struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Completed   *bool     `json:"completed,omitempty"`
	TagIDs      *[]string `json:"tagIds,omitempty"`
}

// Validate applies the domain rules for a todo patch.
func (r *UpdateTodoRequest) Validate() error {
	p := r.Patch()
	return p.Validate()
}

// Patch converts the request to a domain patch.
func (r *UpdateTodoRequest) Patch() todo.Patch {
	return todo.Patch{
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
		TagIDs:      r.TagIDs,
	}
}

// ToggleTodoRequest represents the JSON body for setting completion.
type ToggleTodoRequest struct {
	Completed *bool `json:"completed"`
}

// Validate checks that completed is present.
func (r *ToggleTodoRequest) Validate() error {
	if r.Completed == nil {
		return &domain.ValidationError{Fields: map[string]string{"completed": domain.MsgRequired}}
	}
	return nil
}

// CreateTagRequest represents the JSON body for creating a tag. An empty
// color selects the default.
type CreateTagRequest struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// Validate applies the domain rules for a new tag.
func (r *CreateTagRequest) Validate() error {
	d := r.Draft()
	return d.Validate()
}

// Draft converts the request to a domain draft.
func (r *CreateTagRequest) Draft() tag.Draft {
	return tag.Draft{Name: r.Name, Color: tag.Color(r.Color)}
}

// UpdateTagRequest represents the JSON body for updating a tag.
type UpdateTagRequest struct {
	Name  *string `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
}

// Validate applies the domain rules for a tag patch.
func (r *UpdateTagRequest) Validate() error {
	p := r.Patch()
	return p.Validate()
}

// Patch converts the request to a domain patch.
func (r *UpdateTagRequest) Patch() tag.Patch {
	p := tag.Patch{Name: r.Name}
	if r.Color != nil {
		c := tag.Color(*r.Color)
		p.Color = &c
	}
	return p
}

// SetFilterRequest represents the JSON body for switching a live feed's tag
// filter. An empty list clears the filter.
type SetFilterRequest struct {
	TagIDs []string `json:"tagIds"`
}

// Validate checks the tag count.
func (r *SetFilterRequest) Validate() error {
	if len(todo.NormalizeTagIDs(r.TagIDs)) > todo.MaxTags {
		return &domain.ValidationError{Fields: map[string]string{"tag_ids": domain.MsgTooMany}}
	}
	return nil
}

// ParseTagIDs splits a comma-separated query value into tag IDs.
func ParseTagIDs(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return todo.NormalizeTagIDs(strings.Split(raw, ","))
}
