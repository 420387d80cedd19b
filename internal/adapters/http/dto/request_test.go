package dto_test

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/jsamuelsen11/todotags/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todotags/internal/domain"
	"github.com/jsamuelsen11/todotags/internal/domain/tag"
)

func stringPtr(s string) *string { return &s }
func boolPtr(b bool) *bool       { return &b }

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestCreateTodoRequest_Validate(t *testing.T) {
	t.Parallel()

	manyTags := make([]string, 21)
	for i := range manyTags {
		manyTags[i] = strings.Repeat("x", i+1)
	}

	tests := []struct {
		name      string
		req       dto.CreateTodoRequest
		wantField string
	}{
		{"valid", dto.CreateTodoRequest{Title: "Buy milk", TagIDs: []string{"g1"}}, ""},
		{"blank title", dto.CreateTodoRequest{Title: "  "}, "title"},
		{"too many tags", dto.CreateTodoRequest{Title: "x", TagIDs: manyTags}, "tag_ids"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestUpdateTodoRequest_Validate(t *testing.T) {
	t.Parallel()

	requireValidationField(t, (&dto.UpdateTodoRequest{}).Validate(), "body")
	requireValidationField(t, (&dto.UpdateTodoRequest{Title: stringPtr("")}).Validate(), "title")

	req := dto.UpdateTodoRequest{Completed: boolPtr(true)}
	if err := req.Validate(); err != nil {
		t.Errorf("Validate(completed only) = %v, want nil", err)
	}
	if p := req.Patch(); p.Completed == nil || !*p.Completed {
		t.Errorf("Patch().Completed = %v, want true", p.Completed)
	}
}

func TestToggleTodoRequest_Validate(t *testing.T) {
	t.Parallel()

	requireValidationField(t, (&dto.ToggleTodoRequest{}).Validate(), "completed")
	if err := (&dto.ToggleTodoRequest{Completed: boolPtr(false)}).Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestTagRequests(t *testing.T) {
	t.Parallel()

	requireValidationField(t, (&dto.CreateTagRequest{Name: "home", Color: "#123456"}).Validate(), "color")
	requireValidationField(t, (&dto.CreateTagRequest{Name: strings.Repeat("a", 31)}).Validate(), "name")

	upd := dto.UpdateTagRequest{Color: stringPtr("#ef4444")}
	if err := upd.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	if p := upd.Patch(); p.Color == nil || *p.Color != tag.Color("#ef4444") {
		t.Errorf("Patch().Color = %v", p.Color)
	}
}

func TestAuthRequests(t *testing.T) {
	t.Parallel()

	requireValidationField(t, (&dto.SignUpRequest{Email: "nope", Password: "pw"}).Validate(), "email")
	requireValidationField(t, (&dto.SignInRequest{Email: "a@example.com"}).Validate(), "password")
	requireValidationField(t, (&dto.ProviderSignInRequest{}).Validate(), "id_token")

	req := dto.SignUpRequest{Email: " a@example.com ", Password: "pw", DisplayName: " Ada "}
	c := req.Credentials()
	if c.Email != "a@example.com" || c.DisplayName != "Ada" {
		t.Errorf("Credentials() = %+v, want trimmed fields", c)
	}
}

func TestParseTagIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want []string
	}{
		{"", nil},
		{"  ", nil},
		{"a", []string{"a"}},
		{"a, b,,a", []string{"a", "b"}},
	}
	for _, tt := range tests {
		if got := dto.ParseTagIDs(tt.raw); !slices.Equal(got, tt.want) {
			t.Errorf("ParseTagIDs(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}
