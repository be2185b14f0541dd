package main

import (
	"encoding/hex"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tonkit-dev/tonkit/cmd/tonbocctl/logger"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <boc-file>",
		Short: "Parse a BoC file and report basic metadata",
		Long: `The info command parses a Bag-of-Cells file and displays basic
metadata: file size, root count, distinct cell count, and each root's hash.

Example:
  tonbocctl info block.boc
  tonbocctl info block.boc --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

func runInfo(args []string) error {
	path := args[0]
	logger.Info("parsing boc file", "path", path)
	printVerbose("Opening: %s\n", path)

	roots, err := readRoots(path)
	if err != nil {
		return err
	}

	stat, _ := os.Stat(path)

	if jsonOut {
		rootHashes := make([]string, len(roots))
		cellCounts := make([]int, len(roots))
		for i, r := range roots {
			rootHashes[i] = strings.ToUpper(hex.EncodeToString(r.Hash()))
			cellCounts[i] = countCells(r)
		}
		info := map[string]interface{}{
			"file":        path,
			"size":        stat.Size(),
			"roots":       len(roots),
			"root_hashes": rootHashes,
			"cell_counts": cellCounts,
		}
		return printJSON(info)
	}

	printInfo("\nBoC Information:\n")
	printInfo("  File: %s\n", path)
	printInfo("  Size: %d bytes\n", stat.Size())
	printInfo("  Roots: %d\n", len(roots))
	for i, r := range roots {
		printInfo("  Root %d: %s (cells=%d, depth=%d)\n",
			i, strings.ToUpper(hex.EncodeToString(r.Hash())), countCells(r), r.GetMaxDepth())
	}
	return nil
}
