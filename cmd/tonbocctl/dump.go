package main

import (
	"github.com/spf13/cobra"
	"github.com/tonkit-dev/tonkit/cmd/tonbocctl/logger"
)

var dumpBits bool

func init() {
	cmd := newDumpCmd()
	cmd.Flags().BoolVar(&dumpBits, "bits", false, "Render each cell's data bits in binary instead of hex")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <boc-file>",
		Short: "Print a recursive tree dump of a BoC file's cells",
		Long: `The dump command renders the cell DAG held in a BoC file as an
indented tree, showing each cell's bit length and content.

Example:
  tonbocctl dump block.boc
  tonbocctl dump block.boc --bits`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
}

func runDump(args []string) error {
	path := args[0]
	logger.Info("dumping boc file", "path", path, "bits", dumpBits)

	roots, err := readRoots(path)
	if err != nil {
		return err
	}

	for i, r := range roots {
		printInfo("root %d:\n", i)
		if dumpBits {
			printInfo("%s\n", r.DumpBits())
		} else {
			printInfo("%s\n", r.Dump())
		}
	}
	return nil
}
