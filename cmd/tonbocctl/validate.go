package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tonkit-dev/tonkit/boc"
	"github.com/tonkit-dev/tonkit/cmd/tonbocctl/logger"
)

func init() {
	rootCmd.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <boc-file>",
		Short: "Parse a BoC file and confirm it re-serializes to an identical tree",
		Long: `The validate command parses a Bag-of-Cells file (checking magic,
header consistency, optional CRC32-C, and the forward-reference invariant),
then re-serializes every root and confirms the resulting cell hashes are
unchanged.

Example:
  tonbocctl validate block.boc
  tonbocctl validate block.boc --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args)
		},
	}
}

func runValidate(args []string) error {
	path := args[0]
	logger.Info("validating boc file", "path", path)

	roots, err := readRoots(path)
	if err != nil {
		return reportValidation(path, err)
	}

	for i, r := range roots {
		out, err := boc.Serialize(r, boc.Options{})
		if err != nil {
			return reportValidation(path, fmt.Errorf("root %d: re-serialize: %w", i, err))
		}
		decoded, err := boc.Deserialize(out)
		if err != nil {
			return reportValidation(path, fmt.Errorf("root %d: re-parse: %w", i, err))
		}
		if string(decoded[0].Hash()) != string(r.Hash()) {
			return reportValidation(path, fmt.Errorf("root %d: hash changed across round trip", i))
		}
	}

	return reportValidation(path, nil)
}

func reportValidation(path string, err error) error {
	if jsonOut {
		result := map[string]interface{}{"file": path, "valid": err == nil}
		if err != nil {
			result["error"] = err.Error()
		}
		return printJSON(result)
	}

	printInfo("\nValidating %s...\n\n", path)
	if err != nil {
		printInfo("  invalid: %v\n\nResult: INVALID\n", err)
		return err
	}
	printInfo("  structure valid\n  round-trip stable\n\nResult: VALID\n")
	return nil
}
