package main

import (
	"fmt"
	"os"

	"github.com/tonkit-dev/tonkit/boc"
	"github.com/tonkit-dev/tonkit/cell"
)

// readRoots loads and deserializes a BoC file, returning its root cells.
func readRoots(path string) ([]*cell.Cell, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	roots, err := boc.Deserialize(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return roots, nil
}

// countCells returns the number of distinct cells reachable from root, by
// content hash.
func countCells(root *cell.Cell) int {
	seen := map[string]bool{}
	var walk func(c *cell.Cell)
	walk = func(c *cell.Cell) {
		h := string(c.Hash())
		if seen[h] {
			return
		}
		seen[h] = true
		for _, r := range c.Refs() {
			walk(r)
		}
	}
	walk(root)
	return len(seen)
}
