package main

import (
	"fmt"

	"github.com/joshuapare/plistkit/pkg/plist"
	"github.com/spf13/cobra"
)

var (
	convertTo     string
	convertPretty bool
)

func init() {
	cmd := newConvertCmd()
	cmd.Flags().StringVarP(&convertTo, "to", "t", "xml", "Target format: xml, binary, json or openstep")
	cmd.Flags().BoolVar(&convertPretty, "pretty", false, "Indent json and openstep output")
	rootCmd.AddCommand(cmd)
}

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert a property list to another format",
		Long: `The convert command reads a property list in any supported format and
writes it in the format given by --to. The output file is replaced
atomically.

Not every format carries every kind: JSON has no dates, data or UIDs and
OpenStep keeps only strings, data, arrays and dictionaries.

Example:
  plistctl convert Info.plist Info.bplist --to binary
  plistctl convert Info.bplist Info.json --to json --pretty`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args)
		},
	}
	return cmd
}

func runConvert(args []string) error {
	in, out := args[0], args[1]

	to, err := plist.ParseFormat(convertTo)
	if err != nil {
		return err
	}

	printVerbose("Opening plist: %s\n", in)

	root, from, err := plist.DecodeFile(in)
	if err != nil {
		return fmt.Errorf("failed to read plist: %w", err)
	}
	defer root.Free()

	if err := plist.WriteFile(out, root, to, plist.EncodeOptions{Pretty: convertPretty}); err != nil {
		return fmt.Errorf("failed to convert: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"input":  in,
			"output": out,
			"from":   from.String(),
			"to":     to.String(),
		})
	}
	printInfo("Converted %s (%s) to %s (%s)\n", in, from, out, to)
	return nil
}
