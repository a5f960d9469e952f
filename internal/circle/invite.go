package circle

import (
	"crypto/rand"
	"encoding/hex"
)

// NewInviteCode returns an unguessable hex token of 2*nbytes characters.
func NewInviteCode(nbytes int) (string, error) {
	if nbytes <= 0 {
		nbytes = 6
	}
	b := make([]byte, nbytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
