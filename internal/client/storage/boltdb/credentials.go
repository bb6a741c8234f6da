package boltdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/thalassemiacare/internal/client/storage"
)

var credentialsKey = []byte("current")

// SaveCredentials stores the session, overwriting any previous one
func (s *Storage) SaveCredentials(ctx context.Context, creds *storage.Credentials) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		// Сериализуем данные в JSON
		data, err := json.Marshal(creds)
		if err != nil {
			return fmt.Errorf("failed to marshal credentials: %w", err)
		}

		if err := bucket.Put(credentialsKey, data); err != nil {
			return fmt.Errorf("failed to save credentials: %w", err)
		}

		return nil
	})
}

// GetCredentials retrieves the stored session
func (s *Storage) GetCredentials(ctx context.Context) (*storage.Credentials, error) {
	var creds *storage.Credentials

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		data := bucket.Get(credentialsKey)
		if data == nil {
			return storage.ErrCredentialsNotFound
		}

		// Десериализуем
		creds = &storage.Credentials{}
		if err := json.Unmarshal(data, creds); err != nil {
			return fmt.Errorf("failed to unmarshal credentials: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return creds, nil
}

// DeleteCredentials removes the stored session (sign-out).
// Deleting when nothing is stored is not an error.
func (s *Storage) DeleteCredentials(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		if err := bucket.Delete(credentialsKey); err != nil {
			return fmt.Errorf("failed to delete credentials: %w", err)
		}

		return nil
	})
}

// HasCredentials reports whether a session is stored on the device
func (s *Storage) HasCredentials(ctx context.Context) (bool, error) {
	_, err := s.GetCredentials(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrCredentialsNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
