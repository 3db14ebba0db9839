package sip

import "github.com/google/uuid"

// NewCallID mints a fresh, RFC 3261-legal Call-ID value using a random
// UUIDv4 for the token part, matching the teacher's own practice of
// minting dialog identifiers from a UUID library rather than hand-rolled
// randomness.
func NewCallID() CallID {
	return CallID(uuid.NewString())
}

// NewTag mints a fresh dialog tag value (for a To/From "tag" parameter)
// the same way.
func NewTag() string {
	return uuid.NewString()
}

// NewBranch mints a fresh Via "branch" parameter value, prefixed with the
// RFC 3261 §8.1.1.7 magic cookie so downstream elements can recognize it as
// an RFC 3261-compliant branch ID.
func NewBranch() string {
	return "z9hG4bK" + uuid.NewString()
}
