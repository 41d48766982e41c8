package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/plistkit/pkg/plist"
	"github.com/spf13/cobra"
)

var (
	dumpFormat string
	dumpPretty bool
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().StringVarP(&dumpFormat, "format", "f", "", "Encode the subtree as xml, binary, json or openstep")
	cmd.Flags().BoolVar(&dumpPretty, "pretty", true, "Indent json and openstep output")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file> [path]",
		Short: "Print a property list or one of its subtrees",
		Long: `The dump command prints the tree stored in a property list file.
Without --format the tree is rendered in a compact single-line form.

Example:
  plistctl dump Info.plist
  plistctl dump Info.plist CFBundleDocumentTypes/0
  plistctl dump Info.plist --format json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	path := args[0]
	var sub string
	if len(args) > 1 {
		sub = args[1]
	}

	printVerbose("Opening plist: %s\n", path)

	root, detected, err := plist.DecodeFile(path)
	if err != nil {
		return fmt.Errorf("failed to read plist: %w", err)
	}
	defer root.Free()
	printVerbose("Detected format: %s\n", detected)

	v, err := resolve(root, splitPath(sub))
	if err != nil {
		return err
	}

	if dumpFormat == "" && !jsonOut {
		printInfo("%s\n", v)
		return nil
	}
	f := plist.FormatJSON
	if dumpFormat != "" {
		if f, err = plist.ParseFormat(dumpFormat); err != nil {
			return err
		}
	}
	out, err := plist.Encode(v, f, plist.EncodeOptions{Pretty: dumpPretty})
	if err != nil {
		return fmt.Errorf("failed to encode: %w", err)
	}
	if _, err := os.Stdout.Write(out); err != nil {
		return err
	}
	if f != plist.FormatBinary && (len(out) == 0 || out[len(out)-1] != '\n') {
		fmt.Fprintln(os.Stdout)
	}
	return nil
}
