package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/numkit/numkit/num"
	"github.com/numkit/numkit/profile"
)

// decodeFlags is the flag set shared by commands that decode and render
// values: the reader variant plus every formatter option.
type decodeFlags struct {
	profilePath string

	kind   string
	endian string
	format string

	uppercase    bool
	prefix       bool
	zeroPad      bool
	groupSep     string
	groupSize    int
	thousandsSep string
	sign         string
	precision    int
}

func (f *decodeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.profilePath, "profile", "", "Load reader and formatter from a profile file (.json, .yaml, .toml)")
	cmd.Flags().StringVarP(&f.kind, "kind", "k", "u32", "Numeric kind (u8-u128, i8-i128, f32, f64)")
	cmd.Flags().StringVarP(&f.endian, "endian", "e", "little", "Byte order (little, big)")
	cmd.Flags().StringVarP(&f.format, "format", "f", "default", "Output format (default, hex, octal, binary, decimal, scientific)")
	cmd.Flags().BoolVar(&f.uppercase, "uppercase", false, "Render digits and exponent markers uppercase")
	cmd.Flags().BoolVar(&f.prefix, "prefix", false, "Include the base prefix (0x, 0o, 0b)")
	cmd.Flags().BoolVar(&f.zeroPad, "zero-pad", false, "Zero-pad to the full width of the kind")
	cmd.Flags().StringVar(&f.groupSep, "group-sep", "", "Digit group separator for hex, octal, and binary output")
	cmd.Flags().IntVar(&f.groupSize, "group-size", 0, "Digit group size for hex, octal, and binary output")
	cmd.Flags().StringVar(&f.thousandsSep, "thousands", "", "Thousands separator for decimal output")
	cmd.Flags().StringVar(&f.sign, "sign", "auto", "Decimal sign display (auto, always)")
	cmd.Flags().IntVar(&f.precision, "precision", 0, "Mantissa digits for scientific output (0 = shortest)")
}

// resolve builds the reader and formatter the flags describe. A profile
// supplies the baseline; flags set explicitly on the command line override
// its fields.
func (f *decodeFlags) resolve(cmd *cobra.Command) (num.Reader, num.Formatter, error) {
	var (
		reader num.Reader
		cfg    num.FormatterConfig
	)

	if f.profilePath != "" {
		p, err := profile.Load(f.profilePath)
		if err != nil {
			return num.Reader{}, nil, err
		}
		printVerbose("Loaded profile: %s\n", p.Name)
		reader = p.Reader
		cfg = p.Formatter
	}

	changed := cmd.Flags().Changed
	if f.profilePath == "" || changed("kind") {
		kind, err := num.ParseKind(f.kind)
		if err != nil {
			return num.Reader{}, nil, err
		}
		reader.Kind = kind
	}
	if f.profilePath == "" || changed("endian") {
		endian, err := num.ParseEndian(f.endian)
		if err != nil {
			return num.Reader{}, nil, err
		}
		reader.Endian = endian
	}
	if f.profilePath == "" || changed("format") {
		format, err := num.ParseFormat(f.format)
		if err != nil {
			return num.Reader{}, nil, err
		}
		cfg.Format = format
	}
	if f.profilePath == "" || changed("sign") {
		sign, err := num.ParseSignMode(f.sign)
		if err != nil {
			return num.Reader{}, nil, err
		}
		cfg.Sign = sign
	}
	if f.profilePath == "" || changed("uppercase") {
		cfg.Uppercase = f.uppercase
	}
	if f.profilePath == "" || changed("prefix") {
		cfg.Prefix = f.prefix
	}
	if f.profilePath == "" || changed("zero-pad") {
		cfg.ZeroPad = f.zeroPad
	}
	if f.profilePath == "" || changed("group-sep") {
		cfg.Group.Sep = f.groupSep
	}
	if f.profilePath == "" || changed("group-size") {
		cfg.Group.Size = f.groupSize
	}
	if f.profilePath == "" || changed("thousands") {
		cfg.ThousandsSep = f.thousandsSep
	}
	if f.profilePath == "" || changed("precision") {
		cfg.Precision = f.precision
	}

	fmtr, err := cfg.Formatter()
	if err != nil {
		return num.Reader{}, nil, fmt.Errorf("build formatter: %w", err)
	}
	return reader, fmtr, nil
}
