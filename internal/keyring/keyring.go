package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/commutewell/internal/constants"
)

var (
	// ErrNotFound is returned when no key is stored in the keyring
	ErrNotFound = errors.New("API key not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetOpenAIKey retrieves the OpenAI API key from the OS keyring.
// Returns ErrNotFound if no key is stored.
func GetOpenAIKey() (string, error) {
	key, err := keyring.Get(constants.AppName, constants.KeyringOpenAIUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return key, nil
}

// SetOpenAIKey stores the OpenAI API key in the OS keyring.
func SetOpenAIKey(key string) error {
	if key == "" {
		return errors.New("API key cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.KeyringOpenAIUser, key); err != nil {
		return fmt.Errorf("failed to store API key in keyring: %w", err)
	}
	return nil
}

// DeleteOpenAIKey removes the OpenAI API key from the OS keyring.
func DeleteOpenAIKey() error {
	err := keyring.Delete(constants.AppName, constants.KeyringOpenAIUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete API key from keyring: %w", err)
	}
	return nil
}
