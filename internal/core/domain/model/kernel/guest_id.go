package kernel

import "strings"

// GuestIDPrefix marks customer ids generated for walk-in guests.
const GuestIDPrefix = "GUEST_"

// NewGuestID returns a fresh guest customer id. Guest ids never collide with
// registered ids because registration rejects the prefix.
func NewGuestID() string {
	return GuestIDPrefix + NewUUID().String()
}

func IsGuestID(id string) bool {
	return strings.HasPrefix(strings.ToUpper(id), GuestIDPrefix)
}
