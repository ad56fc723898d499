package memory

import (
	"testing"
	"time"

	"ai-docchat-be/internal/entity"

	"github.com/google/uuid"
)

func TestIdentityCacheRoundTrip(t *testing.T) {
	c := NewIdentityCache(time.Minute)
	user := &entity.User{Id: uuid.New(), Email: "user@example.com"}

	if _, found := c.Get(user.Id.String()); found {
		t.Fatal("empty cache reported a hit")
	}

	c.Save(user)

	got, found := c.Get(user.Id.String())
	if !found {
		t.Fatal("saved user not found")
	}
	if got.Email != user.Email {
		t.Errorf("Email = %q, want %q", got.Email, user.Email)
	}

	c.Delete(user.Id.String())
	if _, found := c.Get(user.Id.String()); found {
		t.Error("deleted user still cached")
	}
}

func TestIdentityCacheExpiry(t *testing.T) {
	c := NewIdentityCache(20 * time.Millisecond)
	user := &entity.User{Id: uuid.New()}
	c.Save(user)

	time.Sleep(50 * time.Millisecond)

	if _, found := c.Get(user.Id.String()); found {
		t.Error("entry survived past its TTL")
	}
}
