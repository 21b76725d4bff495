// File: trimly/utils/prefs.go
package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const SelectedWorkerPrefix = "selectedWorker:"

// Preference TTL mirrors a browsing session: the pointer is transient
// state, not a durable record.
const selectedWorkerTTL = 24 * time.Hour

// SaveSelectedWorker records the worker a user is currently browsing,
// replacing the client-side "selectedWorkerUID" pointer.
func SaveSelectedWorker(client *redis.Client, userID, workerID string) error {
	ctx := context.Background()
	if err := client.Set(ctx, SelectedWorkerPrefix+userID, workerID, selectedWorkerTTL).Err(); err != nil {
		return fmt.Errorf("failed to save selected worker: %w", err)
	}
	return nil
}

// GetSelectedWorker returns the saved pointer, or "" when none is set.
func GetSelectedWorker(client *redis.Client, userID string) (string, error) {
	ctx := context.Background()
	workerID, err := client.Get(ctx, SelectedWorkerPrefix+userID).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get selected worker: %w", err)
	}
	return workerID, nil
}

// ClearSelectedWorker removes the pointer, e.g. after booking or on sign-out.
func ClearSelectedWorker(client *redis.Client, userID string) error {
	ctx := context.Background()
	if err := client.Del(ctx, SelectedWorkerPrefix+userID).Err(); err != nil {
		return fmt.Errorf("failed to clear selected worker: %w", err)
	}
	return nil
}
