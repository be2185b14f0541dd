package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tonkit-dev/tonkit/boc"
	"github.com/tonkit-dev/tonkit/cell"
	"github.com/tonkit-dev/tonkit/cmd/tonbocctl/logger"
	"github.com/tonkit-dev/tonkit/internal/iosync"
)

var (
	packOut string
	packCRC bool
	packIdx bool
)

func init() {
	cmd := newPackCmd()
	cmd.Flags().StringVarP(&packOut, "out", "o", "", "Output .boc path (required)")
	cmd.Flags().BoolVar(&packCRC, "crc", false, "Append a CRC32-C trailer")
	cmd.Flags().BoolVar(&packIdx, "idx", false, "Include the optional per-cell offset index")
	_ = cmd.MarkFlagRequired("out")
	rootCmd.AddCommand(cmd)
}

func newPackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pack <data-file>...",
		Short: "Build a cell chain from raw data files and write it as a BoC file",
		Long: `The pack command reads one or more files, each becoming the data
bits of one cell (each file must fit within 1023 bits / 127 bytes), and
chains them as a linear list: the first file is the root cell, each
following file becomes that cell's single child. The resulting tree is
serialized and written durably to --out.

Example:
  tonbocctl pack header.bin payload.bin --out msg.boc
  tonbocctl pack payload.bin --out leaf.boc --crc`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPack(args)
		},
	}
}

func runPack(args []string) error {
	cells := make([]*cell.Cell, len(args))
	for i, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		c := cell.New()
		if err := c.WriteBytes(data); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		cells[i] = c
	}

	for i := len(cells) - 2; i >= 0; i-- {
		if err := cells[i].AddRef(cells[i+1]); err != nil {
			return fmt.Errorf("chaining %s onto %s: %w", args[i+1], args[i], err)
		}
	}

	root := cells[0]
	logger.Info("packing cells", "count", len(cells), "out", packOut)

	out, err := boc.Serialize(root, boc.Options{HasCRC32C: packCRC, HasIdx: packIdx})
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	if err := iosync.WriteFile(packOut, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", packOut, err)
	}

	printInfo("wrote %s (%d bytes, %d cells)\n", packOut, len(out), len(cells))
	printVerbose("root hash: %x\n", root.Hash())
	return nil
}
