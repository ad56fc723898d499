package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserStatus string

const (
	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"
)

// User is the persisted account the coordinator resolves per request. Owned
// by the external account system; this service only ever reads it.
type User struct {
	Id        uuid.UUID
	Email     string
	FullName  string
	Status    UserStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
