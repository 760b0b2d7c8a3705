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

package scan

import (
	"fmt"
	"os"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of lexed files kept by [NewCache] when no size is given.
const DefaultCacheSize = 512

// Cache keeps lexed included files across translation units. It is safe for concurrent use.
//
// A nil *Cache is valid and caches nothing.
type Cache struct {
	lru *lru.Cache[cacheKey, *Source]
}

type cacheKey struct {
	path  string
	size  int64
	mtime int64
}

// NewCache creates a [Cache] holding up to size files.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}

	c, err := lru.New[cacheKey, *Source](size)
	if err != nil {
		return nil, fmt.Errorf("can't create file cache: %w", err)
	}

	return &Cache{lru: c}, nil
}

// Len returns the number of cached files.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}

	return c.lru.Len()
}

func (c *Cache) get(path string, fi os.FileInfo) (*Source, bool) {
	if c == nil {
		return nil, false
	}

	return c.lru.Get(keyOf(path, fi))
}

func (c *Cache) add(path string, fi os.FileInfo, src *Source) {
	if c == nil {
		return
	}

	c.lru.Add(keyOf(path, fi), src)
}

func keyOf(path string, fi os.FileInfo) cacheKey {
	return cacheKey{path: path, size: fi.Size(), mtime: fi.ModTime().UnixNano()}
}
