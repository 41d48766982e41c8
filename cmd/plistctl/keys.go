package main

import (
	"fmt"

	"github.com/joshuapare/plistkit/pkg/plist"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newKeysCmd())
}

func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys <file> [path]",
		Short: "List dictionary keys at a given path",
		Long: `The keys command lists the keys of the dictionary at a path, in
insertion order. If no path is specified, lists keys of the root.

Example:
  plistctl keys Info.plist
  plistctl keys Info.plist NSAppTransportSecurity --json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(args)
		},
	}
	return cmd
}

func runKeys(args []string) error {
	path := args[0]
	var sub string
	if len(args) > 1 {
		sub = args[1]
	}

	printVerbose("Opening plist: %s\n", path)

	root, err := plist.FromFile(path)
	if err != nil {
		return fmt.Errorf("failed to read plist: %w", err)
	}
	defer root.Free()

	v, err := resolve(root, splitPath(sub))
	if err != nil {
		return err
	}
	dict, ok := v.AsDictionary()
	if !ok {
		return fmt.Errorf("%s is a %s, not a dictionary", joinPath(splitPath(sub)), v.Kind())
	}
	keys := dict.Keys()

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":  path,
			"path":  sub,
			"keys":  keys,
			"count": len(keys),
		})
	}

	for _, k := range keys {
		printInfo("  %s\n", k)
	}
	printInfo("\nTotal: %d keys\n", len(keys))
	return nil
}
