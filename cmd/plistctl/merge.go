package main

import (
	"fmt"

	"github.com/joshuapare/plistkit/pkg/plist"
	"github.com/spf13/cobra"
)

var mergeOutput string

func init() {
	cmd := newMergeCmd()
	cmd.Flags().StringVarP(&mergeOutput, "output", "o", "", "Write to this file instead of modifying the base")
	rootCmd.AddCommand(cmd)
}

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge <base> <overlay>",
		Short: "Merge the entries of one dictionary plist into another",
		Long: `The merge command copies every top-level entry of the overlay into the
base, overwriting keys present in both. Both roots must be dictionaries.

Example:
  plistctl merge Info.plist overrides.json
  plistctl merge Info.plist overrides.plist -o Merged.plist`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(args)
		},
	}
	return cmd
}

func runMerge(args []string) error {
	base, format, err := plist.DecodeFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read base: %w", err)
	}
	defer base.Free()

	overlay, err := plist.FromFile(args[1])
	if err != nil {
		return fmt.Errorf("failed to read overlay: %w", err)
	}
	defer overlay.Free()

	dst, ok := base.AsDictionary()
	if !ok {
		return fmt.Errorf("%s: root is a %s, not a dictionary", args[0], base.Kind())
	}
	src, ok := overlay.AsDictionary()
	if !ok {
		return fmt.Errorf("%s: root is a %s, not a dictionary", args[1], overlay.Kind())
	}

	printVerbose("Merging %d entries into %d\n", src.Len(), dst.Len())
	dst.Merge(src)

	return writeBack(args[0], mergeOutput, base, format)
}
