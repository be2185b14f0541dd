package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackInfoValidateHashRoundTrip(t *testing.T) {
	dir := t.TempDir()

	leaf := filepath.Join(dir, "leaf.bin")
	require.NoError(t, os.WriteFile(leaf, []byte("hello"), 0o644))
	root := filepath.Join(dir, "root.bin")
	require.NoError(t, os.WriteFile(root, []byte("world"), 0o644))

	out := filepath.Join(dir, "out.boc")
	packOut, packCRC, packIdx = out, true, false
	require.NoError(t, runPack([]string{root, leaf}))

	roots, err := readRoots(out)
	require.NoError(t, err)
	require.Len(t, roots, 1)
	require.Equal(t, 1, roots[0].RefsNum())
	require.Equal(t, 2, countCells(roots[0]))

	require.NoError(t, runInfo([]string{out}))
	require.NoError(t, runValidate([]string{out}))
	require.NoError(t, runHash([]string{out}))
}

func TestPackRejectsOversizedFile(t *testing.T) {
	dir := t.TempDir()
	big := filepath.Join(dir, "big.bin")
	require.NoError(t, os.WriteFile(big, make([]byte, 200), 0o644))

	out := filepath.Join(dir, "out.boc")
	packOut, packCRC, packIdx = out, false, false
	require.Error(t, runPack([]string{big}))
}
