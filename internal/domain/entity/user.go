package entity

import (
	"time"
)

const (
	RoleVisitor = "visitor"
	RoleAuthor  = "author"
	RoleAgent   = "agent"
	RoleAdmin   = "admin"
)

const (
	UserStatusActive    = "active"
	UserStatusSuspended = "suspended"
)

type User struct {
	ID       string `json:"id" firestore:"id"`
	Email    string `json:"email" firestore:"email"`
	Username string `json:"username" firestore:"username"`
	Role     string `json:"role" firestore:"role"`     // visitor, author, agent, admin
	Status   string `json:"status" firestore:"status"` // active, suspended

	// Never serialized to clients.
	HashedPassword string `json:"-" firestore:"hashedPassword"`

	Phone     string `json:"phone,omitempty" firestore:"phone,omitempty"`
	Country   string `json:"country,omitempty" firestore:"country,omitempty"`
	Address   string `json:"address,omitempty" firestore:"address,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty" firestore:"avatarURL,omitempty"`
	Bio       string `json:"bio,omitempty" firestore:"bio,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

func ValidRole(role string) bool {
	switch role {
	case RoleVisitor, RoleAuthor, RoleAgent, RoleAdmin:
		return true
	}
	return false
}

// ValidRegistrationRole limits self-service registration to the
// non-privileged subset. Admins are only created by other admins.
func ValidRegistrationRole(role string) bool {
	switch role {
	case RoleVisitor, RoleAuthor, RoleAgent:
		return true
	}
	return false
}

func ValidUserStatus(status string) bool {
	return status == UserStatusActive || status == UserStatusSuspended
}
