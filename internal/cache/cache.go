// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package cache stores analysis results keyed by content hash, in memory and on disk.
package cache

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/vmihailenco/msgpack/v5"
	"go.etcd.io/bbolt"
)

const schemaVersion = 1

var bucketName = []byte("Results")

// ErrCacheRead is returned when a stored entry cannot be decoded.
var ErrCacheRead = errors.New("cache read failed")

// Cache is a two-tier result store. A nil *Cache is valid and never hits.
type Cache struct {
	db     *bbolt.DB
	mem    *ristretto.Cache
	logger *slog.Logger
}

// Open opens or creates the on-disk cache below dir. A failing memory tier is logged and disabled.
func Open(dir string, logger *slog.Logger) (*Cache, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	dbDir := filepath.Join(dir, fmt.Sprintf("bbolt/v%d", schemaVersion))
	if err := os.MkdirAll(dbDir, 0o750); err != nil {
		return nil, fmt.Errorf("can't create cache directory %q: %w", dbDir, err)
	}

	dbPath := filepath.Join(dbDir, "results.db")

	db, err := bbolt.Open(dbPath, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("can't open cache database %q: %w", dbPath, err)
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)

		return err
	}); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("can't create cache bucket: %w", err)
	}

	mem, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e5,
		MaxCost:     64 << 20,
		BufferItems: 64,
	})
	if err != nil {
		logger.Warn("Memory cache disabled", "error", err)

		mem = nil
	}

	logger.Debug("Opened result cache", "path", dbPath)

	return &Cache{db: db, mem: mem, logger: logger}, nil
}

// Key derives a cache key from its parts.
func Key(parts ...string) []byte {
	h := sha256.New()
	for _, p := range parts {
		_, _ = h.Write([]byte(p))
		_, _ = h.Write([]byte{0})
	}

	return h.Sum(nil)
}

// Get decodes the entry stored under key into v and reports whether it was found.
func (c *Cache) Get(key []byte, v any) (bool, error) {
	if c == nil {
		return false, nil
	}

	if c.mem != nil {
		if val, ok := c.mem.Get(string(key)); ok {
			if data, ok := val.([]byte); ok {
				return true, decode(data, v)
			}
		}
	}

	var data []byte

	if err := c.db.View(func(tx *bbolt.Tx) error {
		if b := tx.Bucket(bucketName); b != nil {
			data = bytes.Clone(b.Get(key))
		}

		return nil
	}); err != nil {
		return false, fmt.Errorf("%w: %w", ErrCacheRead, err)
	}

	if data == nil {
		c.logger.Debug("Cache miss", "key", fmt.Sprintf("%x", key[:min(len(key), 8)]))

		return false, nil
	}

	if err := decode(data, v); err != nil {
		return false, err
	}

	c.remember(key, data)

	return true, nil
}

// Put encodes v and stores it under key in both tiers.
func (c *Cache) Put(key []byte, v any) error {
	if c == nil {
		return nil
	}

	data, err := msgpack.Marshal(v)
	if err != nil {
		return fmt.Errorf("can't encode cache entry: %w", err)
	}

	if err := c.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).Put(key, data)
	}); err != nil {
		return fmt.Errorf("can't write cache entry: %w", err)
	}

	c.remember(key, data)

	return nil
}

func (c *Cache) remember(key, data []byte) {
	if c.mem == nil {
		return
	}

	if !c.mem.Set(string(key), data, int64(len(data))) {
		c.logger.Debug("Memory cache rejected entry", "size", len(data))

		return
	}

	c.mem.Wait()
}

// Close releases both tiers.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}

	if c.mem != nil {
		c.mem.Close()
	}

	if err := c.db.Close(); err != nil {
		return fmt.Errorf("bbolt close failed: %w", err)
	}

	return nil
}

func decode(data []byte, v any) error {
	if err := msgpack.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %w", ErrCacheRead, err)
	}

	return nil
}
