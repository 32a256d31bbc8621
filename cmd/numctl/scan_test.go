package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/numkit/numkit/profile"
)

func execScan(t *testing.T, args []string) (string, error) {
	t.Helper()
	jsonOut = false
	quiet = false
	scanFlags = decodeFlags{}
	scanOffset = "0"
	scanCount = 0
	scanOut = ""
	cmd := newScanCmd()
	scanFlags.register(cmd)
	cmd.Flags().StringVar(&scanOffset, "offset", "0", "")
	cmd.Flags().IntVarP(&scanCount, "count", "n", 0, "")
	cmd.Flags().StringVarP(&scanOut, "out", "o", "", "")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "")
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return captureOutput(t, cmd.Execute)
}

func TestScanCommand(t *testing.T) {
	path := writeTestFile(t, []byte{0x01, 0x00, 0x02, 0x00, 0x03, 0x00, 0x04, 0x00})

	t.Run("whole file", func(t *testing.T) {
		out, err := execScan(t, []string{path, "--kind", "u16", "--endian", "little"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertContains(t, out, []string{"0x000000  1", "0x000002  2", "0x000004  3", "0x000006  4"})
	})

	t.Run("count and offset", func(t *testing.T) {
		out, err := execScan(t, []string{path, "--kind", "u16", "--offset", "2", "--count", "2", "--format", "hex", "--prefix", "--zero-pad"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertContains(t, out, []string{"0x000002  0x0002", "0x000004  0x0003"})
	})

	t.Run("json output", func(t *testing.T) {
		out, err := execScan(t, []string{path, "--kind", "u16", "--count", "2", "--json"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertJSON(t, out)
		assertContains(t, out, []string{`"offset": 0`, `"value": "1"`, `"offset": 2`, `"value": "2"`})
	})

	t.Run("count exceeds file", func(t *testing.T) {
		_, err := execScan(t, []string{path, "--kind", "u16", "--count", "5"})
		if err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("offset past end", func(t *testing.T) {
		_, err := execScan(t, []string{path, "--kind", "u16", "--offset", "9"})
		if err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestScanCommandSnapshot(t *testing.T) {
	path := writeTestFile(t, []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF})
	outPath := filepath.Join(t.TempDir(), "values.msgpack")

	_, err := execScan(t, []string{path, "--kind", "u32", "--endian", "big", "--out", outPath})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("failed to open snapshot: %v", err)
	}
	defer f.Close()

	nums, err := profile.ReadSnapshot(f)
	if err != nil {
		t.Fatalf("failed to read snapshot: %v", err)
	}
	if len(nums) != 2 {
		t.Fatalf("expected 2 values, got %d", len(nums))
	}
	if got := nums[0].String(); got != "19088743" {
		t.Errorf("first value mismatch: got %q", got)
	}
	if got, ok := nums[1].Uint64(); !ok || got != 0x89ABCDEF {
		t.Errorf("second value mismatch: got %d ok=%v", got, ok)
	}
}
