package clubfolio

import "crypto/rand"

// inviteAlphabet excludes I, O, 0 and 1 to avoid visual ambiguity.
const inviteAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const inviteLength = 6

// NewInviteCode produces a 6-character code drawn uniformly from a 32-symbol
// alphabet. Codes are not collision-checked here; uniqueness is enforced by
// the store's unique constraint, callers retry on violation.
func NewInviteCode() string {
	// 32 symbols divide 256 evenly, so a plain modulo stays uniform.
	b := make([]byte, inviteLength)
	rand.Read(b)
	for i := range b {
		b[i] = inviteAlphabet[int(b[i])%len(inviteAlphabet)]
	}
	return string(b)
}
