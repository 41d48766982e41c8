package main

import (
	"fmt"
	"strconv"

	"github.com/joshuapare/plistkit/pkg/plist"
	"github.com/spf13/cobra"
)

var setOutput string

func init() {
	cmd := newSetCmd()
	cmd.Flags().StringVarP(&setOutput, "output", "o", "", "Write to this file instead of modifying the input")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <file> <path> <value>",
		Short: "Set a value",
		Long: `The set command stores a value at a path and writes the file back in
the format it was read in. The value is given as JSON. The last path segment
is a key of the parent dictionary or an index of the parent array; the index
equal to the array length appends.

Example:
  plistctl set Info.plist CFBundleVersion '"42"'
  plistctl set Info.plist UIDeviceFamily/2 3
  plistctl set Info.plist Extra '{"enabled": true}'`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
	return cmd
}

func runSet(args []string) error {
	path := args[0]
	segs := splitPath(args[1])
	if len(segs) == 0 {
		return fmt.Errorf("cannot replace the root")
	}

	root, format, err := plist.DecodeFile(path)
	if err != nil {
		return fmt.Errorf("failed to read plist: %w", err)
	}
	defer root.Free()

	parent, err := resolve(root, segs[:len(segs)-1])
	if err != nil {
		return err
	}
	v, err := parseValue(args[2])
	if err != nil {
		return err
	}
	defer v.Free()

	last := segs[len(segs)-1]
	switch p := parent.(type) {
	case *plist.Dictionary:
		p.Insert(last, v)
	case *plist.Array:
		i, err := strconv.Atoi(last)
		if err != nil || i < 0 || i > p.Len() {
			return fmt.Errorf("%s: bad index %q (len %d)", joinPath(segs[:len(segs)-1]), last, p.Len())
		}
		if i == p.Len() {
			p.Append(v)
		} else {
			p.Set(i, v)
		}
	default:
		return fmt.Errorf("%s: %s has no children", joinPath(segs[:len(segs)-1]), parent.Kind())
	}

	return writeBack(path, setOutput, root, format)
}

// writeBack saves root to output, or over path when output is empty.
func writeBack(path, output string, root plist.Value, f plist.Format) error {
	dst := path
	if output != "" {
		dst = output
	}
	if err := plist.WriteFile(dst, root, f, plist.EncodeOptions{Pretty: true}); err != nil {
		return fmt.Errorf("failed to write plist: %w", err)
	}
	printVerbose("Wrote %s (%s)\n", dst, f)
	return nil
}
