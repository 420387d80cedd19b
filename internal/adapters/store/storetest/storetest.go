// Package storetest is a conformance suite for the store ports. Every store
// driver runs it from its own tests:
//
//	func TestConformance(t *testing.T) {
//		storetest.Run(t, func(t *testing.T) storetest.Store { return memory.New(nil, nil) })
//	}
package storetest

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/jsamuelsen11/todotags/internal/domain"
	"github.com/jsamuelsen11/todotags/internal/domain/tag"
	"github.com/jsamuelsen11/todotags/internal/domain/todo"
	"github.com/jsamuelsen11/todotags/internal/ports"
)

// Store is what a driver must implement to run the suite.
type Store interface {
	ports.TodoStore
	ports.TagStore
}

// Factory returns a fresh, empty store. It registers its own cleanup.
type Factory func(t *testing.T) Store

const deliveryTimeout = 2 * time.Second

var base = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

// Run executes every conformance test against stores built by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Helper()

	tests := []struct {
		name string
		fn   func(t *testing.T, s Store)
	}{
		{"CreateAndGetTodo", testCreateAndGetTodo},
		{"GetMissingTodo", testGetMissingTodo},
		{"UpdateTodo", testUpdateTodo},
		{"DeleteTodo", testDeleteTodo},
		{"QueryOrdersNewestFirst", testQueryOrdersNewestFirst},
		{"QueryAnyMatch", testQueryAnyMatch},
		{"QueryIsolatesUsers", testQueryIsolatesUsers},
		{"BatchUpdateTodoTags", testBatchUpdateTodoTags},
		{"SubscribeTodos", testSubscribeTodos},
		{"SubscribeTodosFiltered", testSubscribeTodosFiltered},
		{"UnsubscribeStopsDelivery", testUnsubscribeStopsDelivery},
		{"CreateAndListTags", testCreateAndListTags},
		{"TagNameUniqueBackstop", testTagNameUniqueBackstop},
		{"FindTagsByName", testFindTagsByName},
		{"UpdateAndDeleteTag", testUpdateAndDeleteTag},
		{"SubscribeTags", testSubscribeTags},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.fn(t, newStore(t))
		})
	}
}

func newTodo(userID, title string, offset time.Duration, tagIDs ...string) todo.Todo {
	return todo.New(userID, todo.Draft{Title: title, TagIDs: tagIDs}, base.Add(offset))
}

func mustCreateTodo(t *testing.T, s Store, td todo.Todo) *todo.Todo {
	t.Helper()
	created, err := s.CreateTodo(context.Background(), td)
	if err != nil {
		t.Fatalf("CreateTodo(%q) error = %v", td.Title, err)
	}
	return created
}

func mustCreateTag(t *testing.T, s Store, userID, name string, offset time.Duration) *tag.Tag {
	t.Helper()
	created, err := s.CreateTag(context.Background(), tag.New(userID, tag.Draft{Name: name}, base.Add(offset)))
	if err != nil {
		t.Fatalf("CreateTag(%q) error = %v", name, err)
	}
	return created
}

func titles(todos []todo.Todo) []string {
	out := make([]string, len(todos))
	for i := range todos {
		out[i] = todos[i].Title
	}
	return out
}

func tagNames(tags []tag.Tag) []string {
	out := make([]string, len(tags))
	for i := range tags {
		out[i] = tags[i].Name
	}
	return out
}

// recorder collects subscription deliveries.
type recorder[T any] struct {
	ch chan T
}

func newRecorder[T any]() *recorder[T] {
	return &recorder[T]{ch: make(chan T, 64)}
}

func (r *recorder[T]) record(v T) { r.ch <- v }

func (r *recorder[T]) next(t *testing.T) T {
	t.Helper()
	select {
	case v := <-r.ch:
		return v
	case <-time.After(deliveryTimeout):
		t.Fatal("timed out waiting for delivery")
		var zero T
		return zero
	}
}

// until reads deliveries until pred holds.
func (r *recorder[T]) until(t *testing.T, pred func(T) bool) T {
	t.Helper()
	deadline := time.After(deliveryTimeout)
	for {
		select {
		case v := <-r.ch:
			if pred(v) {
				return v
			}
		case <-deadline:
			t.Fatal("timed out waiting for matching delivery")
			var zero T
			return zero
		}
	}
}

func (r *recorder[T]) none(t *testing.T, wait time.Duration) {
	t.Helper()
	select {
	case v := <-r.ch:
		t.Fatalf("unexpected delivery: %v", v)
	case <-time.After(wait):
	}
}

func testCreateAndGetTodo(t *testing.T, s Store) {
	ctx := context.Background()

	created := mustCreateTodo(t, s, newTodo("alice", "Buy milk", 0))
	if created.ID == "" {
		t.Fatal("CreateTodo() assigned no ID")
	}
	if created.TagIDs == nil {
		t.Error("TagIDs = nil, want empty slice")
	}

	got, err := s.GetTodo(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetTodo() error = %v", err)
	}
	if got.Title != "Buy milk" || got.UserID != "alice" || got.Completed {
		t.Errorf("GetTodo() = %+v", got)
	}
	if got.TagIDs == nil || len(got.TagIDs) != 0 {
		t.Errorf("TagIDs = %#v, want empty non-nil slice", got.TagIDs)
	}
	if !got.CreatedAt.Equal(base) || !got.UpdatedAt.Equal(got.CreatedAt) {
		t.Errorf("timestamps = %v / %v, want both %v", got.CreatedAt, got.UpdatedAt, base)
	}
}

func testGetMissingTodo(t *testing.T, s Store) {
	_, err := s.GetTodo(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetTodo(missing) error = %v, want ErrNotFound", err)
	}
}

func testUpdateTodo(t *testing.T, s Store) {
	ctx := context.Background()
	created := mustCreateTodo(t, s, newTodo("alice", "Draft", 0))

	completed := true
	patch := todo.Patch{Completed: &completed}
	patch.Apply(created, base.Add(time.Minute))

	updated, err := s.UpdateTodo(ctx, *created)
	if err != nil {
		t.Fatalf("UpdateTodo() error = %v", err)
	}
	if !updated.Completed {
		t.Error("Completed = false after update")
	}

	got, err := s.GetTodo(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetTodo() error = %v", err)
	}
	if !got.Completed || !got.UpdatedAt.After(got.CreatedAt) {
		t.Errorf("stored todo = %+v, want completed with advanced UpdatedAt", got)
	}

	missing := *created
	missing.ID = "missing"
	if _, err := s.UpdateTodo(ctx, missing); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("UpdateTodo(missing) error = %v, want ErrNotFound", err)
	}
}

func testDeleteTodo(t *testing.T, s Store) {
	ctx := context.Background()
	created := mustCreateTodo(t, s, newTodo("alice", "Temp", 0))

	if err := s.DeleteTodo(ctx, created.ID); err != nil {
		t.Fatalf("DeleteTodo() error = %v", err)
	}
	if _, err := s.GetTodo(ctx, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetTodo(deleted) error = %v, want ErrNotFound", err)
	}
	if err := s.DeleteTodo(ctx, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("DeleteTodo(deleted) error = %v, want ErrNotFound", err)
	}
}

func testQueryOrdersNewestFirst(t *testing.T, s Store) {
	mustCreateTodo(t, s, newTodo("alice", "first", 0))
	mustCreateTodo(t, s, newTodo("alice", "third", 2*time.Second))
	mustCreateTodo(t, s, newTodo("alice", "second", time.Second))

	got, err := s.QueryTodos(context.Background(), todo.Filter{UserID: "alice"})
	if err != nil {
		t.Fatalf("QueryTodos() error = %v", err)
	}

	want := []string{"third", "second", "first"}
	if !slices.Equal(titles(got), want) {
		t.Errorf("QueryTodos() = %v, want %v", titles(got), want)
	}
}

func testQueryAnyMatch(t *testing.T, s Store) {
	mustCreateTodo(t, s, newTodo("alice", "a", 0, "A"))
	mustCreateTodo(t, s, newTodo("alice", "b", time.Second, "B"))
	mustCreateTodo(t, s, newTodo("alice", "ab", 2*time.Second, "A", "B"))
	mustCreateTodo(t, s, newTodo("alice", "c", 3*time.Second, "C"))
	mustCreateTodo(t, s, newTodo("alice", "none", 4*time.Second))

	tests := []struct {
		tags []string
		want []string
	}{
		{nil, []string{"none", "c", "ab", "b", "a"}},
		{[]string{"A"}, []string{"ab", "a"}},
		{[]string{"A", "B"}, []string{"ab", "b", "a"}},
		{[]string{"C", "missing"}, []string{"c"}},
		{[]string{"missing"}, []string{}},
	}

	for _, tt := range tests {
		got, err := s.QueryTodos(context.Background(), todo.Filter{UserID: "alice", TagIDs: tt.tags})
		if err != nil {
			t.Fatalf("QueryTodos(%v) error = %v", tt.tags, err)
		}
		if !slices.Equal(titles(got), tt.want) {
			t.Errorf("QueryTodos(%v) = %v, want %v", tt.tags, titles(got), tt.want)
		}
	}
}

func testQueryIsolatesUsers(t *testing.T, s Store) {
	mustCreateTodo(t, s, newTodo("alice", "mine", 0, "A"))
	mustCreateTodo(t, s, newTodo("bob", "theirs", 0, "A"))

	got, err := s.QueryTodos(context.Background(), todo.Filter{UserID: "alice", TagIDs: []string{"A"}})
	if err != nil {
		t.Fatalf("QueryTodos() error = %v", err)
	}
	if !slices.Equal(titles(got), []string{"mine"}) {
		t.Errorf("QueryTodos() = %v, want [mine]", titles(got))
	}
}

func testBatchUpdateTodoTags(t *testing.T, s Store) {
	ctx := context.Background()
	mine := mustCreateTodo(t, s, newTodo("alice", "mine", 0, "A", "B"))
	theirs := mustCreateTodo(t, s, newTodo("bob", "theirs", 0, "A"))

	err := s.BatchUpdateTodoTags(ctx, "alice", []ports.TodoTagsUpdate{
		{TodoID: mine.ID, TagIDs: []string{"B"}},
		{TodoID: theirs.ID, TagIDs: []string{}},
		{TodoID: "missing", TagIDs: []string{}},
	})
	if err != nil {
		t.Fatalf("BatchUpdateTodoTags() error = %v", err)
	}

	got, _ := s.GetTodo(ctx, mine.ID)
	if !slices.Equal(got.TagIDs, []string{"B"}) {
		t.Errorf("mine.TagIDs = %v, want [B]", got.TagIDs)
	}
	if !got.UpdatedAt.Equal(mine.UpdatedAt) {
		t.Errorf("UpdatedAt changed to %v, want %v", got.UpdatedAt, mine.UpdatedAt)
	}

	other, _ := s.GetTodo(ctx, theirs.ID)
	if !slices.Equal(other.TagIDs, []string{"A"}) {
		t.Errorf("other user's TagIDs = %v, want untouched [A]", other.TagIDs)
	}
}

func testSubscribeTodos(t *testing.T, s Store) {
	ctx := context.Background()
	mustCreateTodo(t, s, newTodo("alice", "existing", 0))

	rec := newRecorder[[]todo.Todo]()
	unsub, err := s.SubscribeTodos(ctx, todo.Filter{UserID: "alice"}, rec.record)
	if err != nil {
		t.Fatalf("SubscribeTodos() error = %v", err)
	}
	t.Cleanup(unsub)

	initial := rec.next(t)
	if !slices.Equal(titles(initial), []string{"existing"}) {
		t.Fatalf("initial delivery = %v, want [existing]", titles(initial))
	}

	created := mustCreateTodo(t, s, newTodo("alice", "Buy milk", time.Minute))
	got := rec.until(t, func(v []todo.Todo) bool { return len(v) == 2 })
	if !slices.Equal(titles(got), []string{"Buy milk", "existing"}) {
		t.Errorf("delivery after create = %v, want newest first", titles(got))
	}

	if err := s.DeleteTodo(ctx, created.ID); err != nil {
		t.Fatalf("DeleteTodo() error = %v", err)
	}
	got = rec.until(t, func(v []todo.Todo) bool { return len(v) == 1 })
	if got[0].Title != "existing" {
		t.Errorf("delivery after delete = %v, want [existing]", titles(got))
	}

	// Another user's writes are not this subscription's business.
	mustCreateTodo(t, s, newTodo("bob", "theirs", 0))
	rec.none(t, 100*time.Millisecond)
}

func testSubscribeTodosFiltered(t *testing.T, s Store) {
	rec := newRecorder[[]todo.Todo]()
	unsub, err := s.SubscribeTodos(context.Background(),
		todo.Filter{UserID: "alice", TagIDs: []string{"A"}}, rec.record)
	if err != nil {
		t.Fatalf("SubscribeTodos() error = %v", err)
	}
	t.Cleanup(unsub)

	if initial := rec.next(t); len(initial) != 0 {
		t.Fatalf("initial delivery = %v, want empty", titles(initial))
	}

	mustCreateTodo(t, s, newTodo("alice", "untagged", 0))
	mustCreateTodo(t, s, newTodo("alice", "tagged", time.Second, "A"))

	got := rec.until(t, func(v []todo.Todo) bool { return len(v) > 0 })
	if !slices.Equal(titles(got), []string{"tagged"}) {
		t.Errorf("filtered delivery = %v, want [tagged]", titles(got))
	}
}

func testUnsubscribeStopsDelivery(t *testing.T, s Store) {
	rec := newRecorder[[]todo.Todo]()
	unsub, err := s.SubscribeTodos(context.Background(), todo.Filter{UserID: "alice"}, rec.record)
	if err != nil {
		t.Fatalf("SubscribeTodos() error = %v", err)
	}
	rec.next(t)

	unsub()
	unsub()

	mustCreateTodo(t, s, newTodo("alice", "after", 0))
	rec.none(t, 100*time.Millisecond)
}

func testCreateAndListTags(t *testing.T, s Store) {
	mustCreateTag(t, s, "alice", "Work", 0)
	mustCreateTag(t, s, "alice", "Home", time.Second)
	mustCreateTag(t, s, "bob", "Other", 0)

	got, err := s.ListTags(context.Background(), "alice")
	if err != nil {
		t.Fatalf("ListTags() error = %v", err)
	}
	if !slices.Equal(tagNames(got), []string{"Work", "Home"}) {
		t.Errorf("ListTags() = %v, want oldest first [Work Home]", tagNames(got))
	}
	if got[0].Color != tag.DefaultColor {
		t.Errorf("Color = %q, want default %q", got[0].Color, tag.DefaultColor)
	}
}

func testTagNameUniqueBackstop(t *testing.T, s Store) {
	mustCreateTag(t, s, "alice", "Work", 0)
	mustCreateTag(t, s, "bob", "Work", 0)

	_, err := s.CreateTag(context.Background(), tag.New("alice", tag.Draft{Name: "Work"}, base))
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("CreateTag(duplicate) error = %v, want ErrConflict", err)
	}
}

func testFindTagsByName(t *testing.T, s Store) {
	ctx := context.Background()
	work := mustCreateTag(t, s, "alice", "Work", 0)
	mustCreateTag(t, s, "alice", "work", time.Second)
	mustCreateTag(t, s, "bob", "Work", 0)

	got, err := s.FindTagsByName(ctx, "alice", "Work")
	if err != nil {
		t.Fatalf("FindTagsByName() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != work.ID {
		t.Errorf("FindTagsByName(Work) = %v, want only alice's exact match", tagNames(got))
	}

	none, err := s.FindTagsByName(ctx, "alice", "Play")
	if err != nil {
		t.Fatalf("FindTagsByName() error = %v", err)
	}
	if len(none) != 0 {
		t.Errorf("FindTagsByName(Play) = %v, want none", tagNames(none))
	}
}

func testUpdateAndDeleteTag(t *testing.T, s Store) {
	ctx := context.Background()
	work := mustCreateTag(t, s, "alice", "Work", 0)

	name := "Office"
	color := tag.Color("#EF4444")
	patch := tag.Patch{Name: &name, Color: &color}
	patch.Apply(work, base.Add(time.Minute))

	if _, err := s.UpdateTag(ctx, *work); err != nil {
		t.Fatalf("UpdateTag() error = %v", err)
	}
	got, err := s.GetTag(ctx, work.ID)
	if err != nil {
		t.Fatalf("GetTag() error = %v", err)
	}
	if got.Name != "Office" || got.Color != color || !got.UpdatedAt.After(got.CreatedAt) {
		t.Errorf("GetTag() = %+v", got)
	}

	if err := s.DeleteTag(ctx, work.ID); err != nil {
		t.Fatalf("DeleteTag() error = %v", err)
	}
	if _, err := s.GetTag(ctx, work.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetTag(deleted) error = %v, want ErrNotFound", err)
	}
	if err := s.DeleteTag(ctx, work.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("DeleteTag(deleted) error = %v, want ErrNotFound", err)
	}
}

func testSubscribeTags(t *testing.T, s Store) {
	rec := newRecorder[[]tag.Tag]()
	unsub, err := s.SubscribeTags(context.Background(), "alice", rec.record)
	if err != nil {
		t.Fatalf("SubscribeTags() error = %v", err)
	}
	t.Cleanup(unsub)

	if initial := rec.next(t); len(initial) != 0 {
		t.Fatalf("initial delivery = %v, want empty", tagNames(initial))
	}

	mustCreateTag(t, s, "alice", "Work", 0)
	got := rec.until(t, func(v []tag.Tag) bool { return len(v) == 1 })
	if got[0].Name != "Work" {
		t.Errorf("delivery = %v, want [Work]", tagNames(got))
	}
}
