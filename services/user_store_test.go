package services

import (
	"errors"
	"sync"
	"testing"
)

func TestUserStoreCreateAndFind(t *testing.T) {
	store := NewUserStore()

	user, err := store.Create("operator@test.com", "hashed")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if user.ID != 1 {
		t.Errorf("ID = %d, want 1", user.ID)
	}
	if user.Email != "operator@test.com" {
		t.Errorf("Email = %q", user.Email)
	}

	found, err := store.FindByEmail("operator@test.com")
	if err != nil {
		t.Fatalf("FindByEmail failed: %v", err)
	}
	if found.ID != user.ID {
		t.Errorf("found ID = %d, want %d", found.ID, user.ID)
	}
}

func TestUserStoreDuplicateEmail(t *testing.T) {
	store := NewUserStore()

	if _, err := store.Create("a@test.com", "h1"); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	_, err := store.Create("a@test.com", "h2")
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
	if store.Count() != 1 {
		t.Errorf("Count = %d, want 1", store.Count())
	}
}

func TestUserStoreNotFound(t *testing.T) {
	store := NewUserStore()
	if _, err := store.FindByEmail("ghost@test.com"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}

func TestUserStoreConcurrentCreates(t *testing.T) {
	store := NewUserStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			email := string(rune('a'+n)) + "@test.com"
			if _, err := store.Create(email, "h"); err != nil {
				t.Errorf("Create(%s) failed: %v", email, err)
			}
		}(i)
	}
	wg.Wait()

	if store.Count() != 20 {
		t.Errorf("Count = %d, want 20", store.Count())
	}
}
