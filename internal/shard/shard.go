// Package shard implements the deterministic modulo partition that assigns
// test files to CI jobs.
package shard

import (
	"fmt"

	"e2esplit/internal/domain"
)

// Validate checks a (index, total) job pair before any work is done
func Validate(index, total int) error {
	if total <= 0 {
		return fmt.Errorf("invalid job count %d: must be positive", total)
	}
	if index < 0 || index >= total {
		return fmt.Errorf("invalid job index %d: must satisfy 0 <= index < %d", index, total)
	}
	return nil
}

// Select returns the subset of files assigned to one job. Files are assigned
// by position modulo total, so a fixed file set always yields the same shard
// for the same (index, total) pair.
func Select(files []string, index, total int) ([]string, error) {
	if err := Validate(index, total); err != nil {
		return nil, err
	}

	selected := make([]string, 0, (len(files)+total-1)/total)
	for i, file := range files {
		if i%total == index {
			selected = append(selected, file)
		}
	}
	return selected, nil
}

// Sweep computes every shard for a fixed job count. The shards are pairwise
// disjoint and their union is the input file set.
func Sweep(files []string, total int) ([]domain.Shard, error) {
	if total <= 0 {
		return nil, fmt.Errorf("invalid job count %d: must be positive", total)
	}

	shards := make([]domain.Shard, total)
	for i := range shards {
		shards[i] = domain.Shard{Index: i, Total: total, Files: make([]string, 0)}
	}
	for i, file := range files {
		index := i % total
		shards[index].Files = append(shards[index].Files, file)
	}
	return shards, nil
}
