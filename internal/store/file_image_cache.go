// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 JoyLabs

package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joylabs/catalogsync/internal/logger"
)

type imageFileCache struct {
	dir    string
	logger *logger.Logger
}

// NewImageFileCache constructs the on-disk media cache rooted at dir,
// creating the directory if it does not yet exist. File names are derived
// from the remote object id, so eviction by business-object identity needs
// no URL bookkeeping.
func NewImageFileCache(dir string, logger *logger.Logger) (ImageFileCache, error) {
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "catalogsync-images")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create image cache dir: %w", err)
	}

	return &imageFileCache{dir: dir, logger: logger}, nil
}

func (c *imageFileCache) Put(objectID string, data []byte) error {
	if err := os.WriteFile(c.pathFor(objectID), data, 0o644); err != nil {
		c.logger.Err(err).
			Str("func", "imageFileCache.Put").
			Str("object_id", objectID).
			Msg("failed to write cached image")
		return fmt.Errorf("write cached image (object_id=%s): %w", objectID, err)
	}
	return nil
}

func (c *imageFileCache) Get(objectID string) ([]byte, error) {
	data, err := os.ReadFile(c.pathFor(objectID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrImageNotCached
		}
		return nil, fmt.Errorf("read cached image (object_id=%s): %w", objectID, err)
	}
	return data, nil
}

func (c *imageFileCache) Evict(objectID string) error {
	err := os.Remove(c.pathFor(objectID))
	if err != nil && !os.IsNotExist(err) {
		c.logger.Err(err).
			Str("func", "imageFileCache.Evict").
			Str("object_id", objectID).
			Msg("failed to evict cached image")
		return fmt.Errorf("evict cached image (object_id=%s): %w", objectID, err)
	}
	return nil
}

// pathFor hashes the object id into a flat, filesystem-safe file name.
func (c *imageFileCache) pathFor(objectID string) string {
	sum := sha256.Sum256([]byte(objectID))
	return filepath.Join(c.dir, hex.EncodeToString(sum[:]))
}
