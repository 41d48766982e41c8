package main

import (
	"fmt"

	"github.com/joshuapare/plistkit/pkg/plist"
	"github.com/spf13/cobra"
)

var getShowType bool

func init() {
	cmd := newGetCmd()
	cmd.Flags().BoolVar(&getShowType, "type", false, "Show the node kind")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <path>",
		Short: "Get a single value",
		Long: `The get command prints the value found at a path. Path segments are
separated by '/'; array elements are addressed by index.

Example:
  plistctl get Info.plist CFBundleIdentifier
  plistctl get Info.plist UIDeviceFamily/0 --type`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	path := args[0]

	printVerbose("Opening plist: %s\n", path)

	root, err := plist.FromFile(path)
	if err != nil {
		return fmt.Errorf("failed to read plist: %w", err)
	}
	defer root.Free()

	v, err := resolve(root, splitPath(args[1]))
	if err != nil {
		return fmt.Errorf("failed to get value: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"path":  args[1],
			"kind":  v.Kind().String(),
			"value": scalarText(v),
		})
	}
	if getShowType {
		printInfo("%s (%s)\n", scalarText(v), v.Kind())
		return nil
	}
	printInfo("%s\n", scalarText(v))
	return nil
}

// scalarText prints strings without quotes and everything else in the
// compact tree form.
func scalarText(v plist.Value) string {
	if s, ok := v.AsString(); ok {
		return s.Text()
	}
	return v.String()
}
