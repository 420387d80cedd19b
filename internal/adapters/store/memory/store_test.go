package memory_test

import (
	"context"
	"testing"

	"github.com/jsamuelsen11/todotags/internal/adapters/store/memory"
	"github.com/jsamuelsen11/todotags/internal/adapters/store/storetest"
	"github.com/jsamuelsen11/todotags/internal/domain/todo"
)

func newStore(t *testing.T) storetest.Store {
	t.Helper()
	s := memory.New(nil, nil)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestConformance(t *testing.T) {
	t.Parallel()
	storetest.Run(t, newStore)
}

func TestQueryTodos_ReturnsCopies(t *testing.T) {
	t.Parallel()

	s := memory.New(nil, nil)
	ctx := context.Background()
	created, err := s.CreateTodo(ctx, todo.Todo{UserID: "alice", Title: "x", TagIDs: []string{"A"}})
	if err != nil {
		t.Fatalf("CreateTodo() error = %v", err)
	}
	created.TagIDs[0] = "mutated"

	got, err := s.QueryTodos(ctx, todo.Filter{UserID: "alice"})
	if err != nil {
		t.Fatalf("QueryTodos() error = %v", err)
	}
	got[0].TagIDs[0] = "mutated-again"

	again, _ := s.GetTodo(ctx, created.ID)
	if again.TagIDs[0] != "A" {
		t.Errorf("stored TagIDs = %v, want caller mutations isolated", again.TagIDs)
	}
}

func TestClose_EndsSubscriptions(t *testing.T) {
	t.Parallel()

	s := memory.New(nil, nil)
	delivered := make(chan []todo.Todo, 4)
	if _, err := s.SubscribeTodos(context.Background(), todo.Filter{UserID: "alice"},
		func(v []todo.Todo) { delivered <- v }); err != nil {
		t.Fatalf("SubscribeTodos() error = %v", err)
	}
	<-delivered

	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if _, err := s.SubscribeTodos(context.Background(), todo.Filter{UserID: "alice"},
		func([]todo.Todo) {}); err == nil {
		t.Error("SubscribeTodos() after Close error = nil, want error")
	}
}
