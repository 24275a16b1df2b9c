package config

import (
	"sync"

	"github.com/zalando/go-keyring"
)

const (
	keyringService = "wishlane-cli"
	keyringUser    = "api-key"
)

var (
	keyringMu        sync.Mutex
	keyringChecked   bool
	keyringAvailable bool
)

// checkKeyringAvailable probes the system keyring once. Headless
// systems (CI, containers) often have no secret service; callers fall
// back to the config file in that case.
func checkKeyringAvailable() bool {
	keyringMu.Lock()
	defer keyringMu.Unlock()

	if keyringChecked {
		return keyringAvailable
	}
	keyringChecked = true

	testKey := "wishlane-keyring-test"
	if err := keyring.Set(keyringService, testKey, "test"); err != nil {
		keyringAvailable = false
		return false
	}
	_ = keyring.Delete(keyringService, testKey)
	keyringAvailable = true
	return true
}

// StoreAPIKey saves the API key in the system keyring. Returns false
// when no keyring is available, so the caller can persist it to the
// config file instead.
func StoreAPIKey(key string) (bool, error) {
	if !checkKeyringAvailable() {
		return false, nil
	}
	if err := keyring.Set(keyringService, keyringUser, key); err != nil {
		return false, err
	}
	return true, nil
}

// LookupAPIKey reads the API key from the system keyring.
func LookupAPIKey() (string, error) {
	if !checkKeyringAvailable() {
		return "", nil
	}
	return keyring.Get(keyringService, keyringUser)
}

// DeleteAPIKey removes a stored API key, ignoring "not found".
func DeleteAPIKey() error {
	if !checkKeyringAvailable() {
		return nil
	}
	if err := keyring.Delete(keyringService, keyringUser); err != nil && err != keyring.ErrNotFound {
		return err
	}
	return nil
}
