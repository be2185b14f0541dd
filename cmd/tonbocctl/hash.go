package main

import (
	"encoding/hex"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tonkit-dev/tonkit/cmd/tonbocctl/logger"
)

func init() {
	rootCmd.AddCommand(newHashCmd())
}

func newHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash <boc-file>",
		Short: "Print each root cell's content hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHash(args)
		},
	}
}

func runHash(args []string) error {
	path := args[0]
	roots, err := readRoots(path)
	if err != nil {
		return err
	}

	logger.Debug("computed root hashes", "count", len(roots))

	if jsonOut {
		hashes := make([]string, len(roots))
		for i, r := range roots {
			hashes[i] = strings.ToUpper(hex.EncodeToString(r.Hash()))
		}
		return printJSON(map[string]interface{}{"file": path, "hashes": hashes})
	}

	for i, r := range roots {
		printInfo("%d  %s\n", i, strings.ToUpper(hex.EncodeToString(r.Hash())))
	}
	return nil
}
