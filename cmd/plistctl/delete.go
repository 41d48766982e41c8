package main

import (
	"fmt"
	"strconv"

	"github.com/joshuapare/plistkit/pkg/plist"
	"github.com/spf13/cobra"
)

var deleteOutput string

func init() {
	cmd := newDeleteCmd()
	cmd.Flags().StringVarP(&deleteOutput, "output", "o", "", "Write to this file instead of modifying the input")
	rootCmd.AddCommand(cmd)
}

func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <file> <path>",
		Short: "Remove a dictionary entry or array element",
		Long: `The delete command removes the node at a path and writes the file back
in the format it was read in.

Example:
  plistctl delete Info.plist NSAppTransportSecurity
  plistctl delete Info.plist UIDeviceFamily/1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(args)
		},
	}
	return cmd
}

func runDelete(args []string) error {
	path := args[0]
	segs := splitPath(args[1])
	if len(segs) == 0 {
		return fmt.Errorf("cannot delete the root")
	}

	root, format, err := plist.DecodeFile(path)
	if err != nil {
		return fmt.Errorf("failed to read plist: %w", err)
	}
	defer root.Free()

	// Resolving the full path reports a missing target before anything changes.
	if _, err := resolve(root, segs); err != nil {
		return err
	}
	parent, _ := resolve(root, segs[:len(segs)-1])
	last := segs[len(segs)-1]
	switch p := parent.(type) {
	case *plist.Dictionary:
		p.Remove(last)
	case *plist.Array:
		i, _ := strconv.Atoi(last)
		p.Remove(i)
	}

	return writeBack(path, deleteOutput, root, format)
}
