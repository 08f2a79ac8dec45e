package service

import (
	"crypto/rand"
	"time"
)

const referencePrefix = "GIMO-"

const referenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewPaymentReference returns a human-legible unique payment reference:
// fixed prefix, compact UTC timestamp, random alphanumeric suffix. Collision
// probability is treated as negligible; there is no retry on collision.
func NewPaymentReference() string {
	suffix := make([]byte, 6)
	if _, err := rand.Read(suffix); err != nil {
		// Entropy exhaustion is effectively unheard of, but a constant suffix
		// would collide immediately. Derive one from the clock instead.
		nano := uint64(time.Now().UnixNano())
		for i := range suffix {
			suffix[i] = byte(nano % uint64(len(referenceAlphabet)))
			nano /= uint64(len(referenceAlphabet))
		}
	}
	for i := range suffix {
		suffix[i] = referenceAlphabet[int(suffix[i])%len(referenceAlphabet)]
	}
	return referencePrefix + time.Now().UTC().Format("20060102150405") + "-" + string(suffix)
}
