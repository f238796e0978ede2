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

package main

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/fixfacts/internal/cache"
)

// locationFunc computes the record for a location in its loaded source.
type locationFunc[T any] func(ctx context.Context, src *source, loc location) (T, error)

// analyzeLocations computes a record per location, analyzing files in parallel. Records are
// returned in the order of the locations.
func analyzeLocations[T any](ctx context.Context, a *app, op string, locs []location, fn locationFunc[T]) ([]T, error) {
	c := a.openCache()
	defer a.closeCache(c)

	var files []string

	indices := make(map[string][]int)
	for i, loc := range locs {
		if _, ok := indices[loc.File]; !ok {
			files = append(files, loc.File)
		}

		indices[loc.File] = append(indices[loc.File], i)
	}

	records := make([]T, len(locs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(a.settings.Jobs, len(files)))

	for _, file := range files {
		g.Go(func() error {
			return analyzeFile(gctx, a, c, op, file, locs, indices[file], records, fn)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return records, nil
}

// analyzeFile fills the records of the locations in file, type checking the file only on cache
// misses. Cached records are keyed by the sources of the whole package.
func analyzeFile[T any](ctx context.Context, a *app, c *cache.Cache, op, file string,
	locs []location, indices []int, records []T, fn locationFunc[T],
) error {
	sum, err := fingerprint(ctx, a.logger, file)
	if err != nil {
		return err
	}

	var src *source

	for _, i := range indices {
		if err := ctx.Err(); err != nil {
			return err
		}

		loc := locs[i]
		key := cache.Key(op, sum, loc.String(), strconv.FormatBool(a.settings.MethodLevel))

		var cached T

		switch ok, err := c.Get(key, &cached); {
		case err != nil:
			a.logger.Warn("Ignoring cache entry", "location", loc, "error", err)

		case ok:
			records[i] = cached

			continue
		}

		if src == nil {
			if src, err = loadSource(ctx, a.logger, file); err != nil {
				return err
			}
		}

		if records[i], err = fn(ctx, src, loc); err != nil {
			return err
		}

		if err := c.Put(key, records[i]); err != nil {
			a.logger.Warn("Can't cache result", "location", loc, "error", err)
		}
	}

	return nil
}

func parseLocations(args []string) ([]location, error) {
	locs := make([]location, 0, len(args))

	for _, arg := range args {
		loc, err := parseLocation(arg)
		if err != nil {
			return nil, err
		}

		locs = append(locs, loc)
	}

	return locs, nil
}
