package service

import (
	"gimo/internal/domain/entity"
)

// Capability is a named permission bucket granted to one or more roles. The
// policy never consults resource ownership; ownership is a second,
// independent check performed by the usecase after the role gate passes.
type Capability string

const (
	// CapabilityAuthorContent covers article create/edit/delete and managing
	// payment status transitions.
	CapabilityAuthorContent Capability = "author-content"
	// CapabilityAgentListing covers property listing create/edit/delete.
	CapabilityAgentListing Capability = "agent-listing"
	// CapabilityAdminOnly covers user management, global moderation and
	// exports.
	CapabilityAdminOnly Capability = "admin-only"
)

var grants = map[Capability]map[string]bool{
	CapabilityAuthorContent: {
		entity.RoleAuthor: true,
		entity.RoleAdmin:  true,
	},
	CapabilityAgentListing: {
		entity.RoleAgent:  true,
		entity.RoleAuthor: true,
		entity.RoleAdmin:  true,
	},
	CapabilityAdminOnly: {
		entity.RoleAdmin: true,
	},
}

// Allows reports whether the role is granted the capability.
func Allows(role string, capability Capability) bool {
	return grants[capability][role]
}
