package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// LoadJSON decodes the value stored under key into v. It reports false when
// the key is absent. Undecodable data yields ErrCorrupted.
func LoadJSON(ctx context.Context, s Store, namespace, key string, v any) (bool, error) {
	raw, err := s.Get(ctx, namespace, key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrCorrupted, key, err)
	}
	return true, nil
}

func SaveJSON(ctx context.Context, s Store, namespace, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Set(ctx, namespace, key, raw)
}
