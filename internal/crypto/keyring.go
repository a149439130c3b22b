package crypto

import "sync"

// KeyRing owns the key derived from the master passphrase. It replaces a
// process-wide mutable passphrase: the application creates one KeyRing at
// start-up, hands it to the field cipher, and closes it on exit.
//
// KeyRing is safe for concurrent use.
type KeyRing struct {
	mu     sync.RWMutex
	key    []byte
	closed bool
}

// NewKeyRing derives the key for passphrase and returns a ready KeyRing.
func NewKeyRing(passphrase string) *KeyRing {
	return &KeyRing{key: DeriveKey(passphrase)}
}

// NewDefaultKeyRing returns a KeyRing for [DefaultMasterPassphrase].
func NewDefaultKeyRing() *KeyRing {
	return NewKeyRing(DefaultMasterPassphrase)
}

// SetPassphrase replaces the master passphrase. Tokens written under the
// previous passphrase are not migrated and will no longer decrypt.
// Calling SetPassphrase on a closed KeyRing reopens it.
func (k *KeyRing) SetPassphrase(passphrase string) {
	key := DeriveKey(passphrase)

	k.mu.Lock()
	defer k.mu.Unlock()

	zero(k.key)
	k.key = key
	k.closed = false
}

// Key returns a copy of the current key, or [ErrKeyRingClosed].
func (k *KeyRing) Key() ([]byte, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	if k.closed {
		return nil, ErrKeyRingClosed
	}
	return append([]byte(nil), k.key...), nil
}

// Close wipes the key from memory. Further field operations fail with
// [ErrKeyRingClosed] until SetPassphrase is called again.
func (k *KeyRing) Close() {
	k.mu.Lock()
	defer k.mu.Unlock()

	zero(k.key)
	k.key = nil
	k.closed = true
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
