package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/numkit/numkit/blob"
	"github.com/numkit/numkit/internal/buf"
	"github.com/numkit/numkit/num"
	"github.com/numkit/numkit/profile"
)

var (
	scanFlags  decodeFlags
	scanOffset string
	scanCount  int
	scanOut    string
)

func init() {
	cmd := newScanCmd()
	scanFlags.register(cmd)
	cmd.Flags().StringVar(&scanOffset, "offset", "0", "Byte offset to start scanning at")
	cmd.Flags().IntVarP(&scanCount, "count", "n", 0, "Number of values to decode (0 = as many as fit)")
	cmd.Flags().StringVarP(&scanOut, "out", "o", "", "Write decoded values to a MessagePack snapshot file")
	rootCmd.AddCommand(cmd)
}

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan <file>",
		Short: "Decode a run of values",
		Long: `The scan command decodes consecutive values of one kind starting at an
offset and prints each one with its offset. With --out, the decoded values are
also written to a MessagePack snapshot that numctl and library users can
reload later.

Example:
  numctl scan samples.bin --kind f32 --count 16
  numctl scan table.bin --offset 0x40 --kind u16 --endian big --format hex
  numctl scan samples.bin --kind i32 --out samples.msgpack`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args)
		},
	}
}

// scanResult is the JSON output shape for one scanned value.
type scanResult struct {
	Offset int    `json:"offset"`
	Value  string `json:"value"`
}

func runScan(cmd *cobra.Command, args []string) error {
	off, err := parseOffset(scanOffset)
	if err != nil {
		return err
	}
	reader, fmtr, err := scanFlags.resolve(cmd)
	if err != nil {
		return err
	}

	printVerbose("Opening file: %s\n", args[0])
	b, err := blob.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer b.Close()

	w := reader.Width()
	count := scanCount
	if count <= 0 {
		if off > b.Len() {
			return fmt.Errorf("offset %d: %w (length %d)", off, num.ErrOutOfBounds, b.Len())
		}
		count = (b.Len() - off) / w
	}
	if _, err := buf.CheckRunBounds(b.Len(), off, count, w); err != nil {
		return fmt.Errorf("scan %d x %s at offset %d: %w", count, reader.Kind, off, err)
	}

	ctx := b.Context()
	nums := make([]num.Number, 0, count)
	results := make([]scanResult, 0, count)
	for i := 0; i < count; i++ {
		at := off + i*w
		n, err := reader.ReadAt(ctx, at)
		if err != nil {
			return fmt.Errorf("failed to decode at offset %d: %w", at, err)
		}
		out, err := fmtr.Render(n)
		if err != nil {
			return fmt.Errorf("failed to render at offset %d: %w", at, err)
		}
		nums = append(nums, n)
		results = append(results, scanResult{Offset: at, Value: out})
	}

	if jsonOut {
		if err := printJSON(results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			printInfo("%#08x  %s\n", r.Offset, r.Value)
		}
	}

	if scanOut != "" {
		f, err := os.Create(scanOut)
		if err != nil {
			return fmt.Errorf("failed to create snapshot: %w", err)
		}
		defer f.Close()
		if err := profile.WriteSnapshot(f, nums); err != nil {
			return err
		}
		printVerbose("Wrote %d values to %s\n", len(nums), scanOut)
	}
	return nil
}
