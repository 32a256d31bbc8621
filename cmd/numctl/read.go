package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/numkit/numkit/blob"
)

var readFlags decodeFlags

func init() {
	cmd := newReadCmd()
	readFlags.register(cmd)
	rootCmd.AddCommand(cmd)
}

func newReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <file> <offset>",
		Short: "Decode a single value at an offset",
		Long: `The read command decodes one typed value at a byte offset and prints
its rendering. Offsets accept decimal or 0x-prefixed hex.

Example:
  numctl read image.bin 0x10 --kind u32 --endian big --format hex --prefix
  numctl read sensor.dat 0 --kind f64 --format scientific
  numctl read header.bin 4 --profile magic.yaml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRead(cmd, args)
		},
	}
}

// readResult is the JSON output shape for a single decode.
type readResult struct {
	Offset int    `json:"offset"`
	Kind   string `json:"kind"`
	Endian string `json:"endian"`
	Value  string `json:"value"`
	Bytes  string `json:"bytes"`
}

func runRead(cmd *cobra.Command, args []string) error {
	off, err := parseOffset(args[1])
	if err != nil {
		return err
	}
	reader, fmtr, err := readFlags.resolve(cmd)
	if err != nil {
		return err
	}

	printVerbose("Opening file: %s\n", args[0])
	b, err := blob.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer b.Close()

	ctx, err := b.ContextAt(off)
	if err != nil {
		return fmt.Errorf("offset %d: %w", off, err)
	}
	n, err := reader.Read(ctx)
	if err != nil {
		return fmt.Errorf("failed to decode: %w", err)
	}
	out, err := fmtr.Render(n)
	if err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}

	if jsonOut {
		return printJSON(readResult{
			Offset: off,
			Kind:   n.Kind().String(),
			Endian: n.Endian().String(),
			Value:  out,
			Bytes:  hex.EncodeToString(n.Bytes()),
		})
	}
	fmt.Println(out)
	return nil
}
