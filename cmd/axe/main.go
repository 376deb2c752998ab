package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/arloliu/axe/codec"
	"github.com/arloliu/axe/format"
	"github.com/arloliu/axe/report"
)

type cliConfig struct {
	Report      bool
	Compressors string
	PreviewLen  int
	Codec       string
	MinValue    int
	MaxValue    int
	Alphabet    string
	Strict      bool
	Encode      string
	Decode      string
}

func main() {
	var cfg cliConfig

	flag.BoolVar(&cfg.Report, "report", false, "Print the size report for every codec over the built-in datasets")
	flag.StringVar(&cfg.Compressors, "compress", "zstd,s2,lz4", "Comma-separated byte compressors to include in the report")
	flag.IntVar(&cfg.PreviewLen, "preview", report.DefaultPreviewLimit, "Characters of each encoding shown in the report (0 = all)")
	flag.StringVar(&cfg.Codec, "codec", "bit-rechunking", "Codec: simple, positional, bit-rechunking or delta")
	flag.IntVar(&cfg.MinValue, "min", codec.DefaultMinValue, "Smallest encodable value")
	flag.IntVar(&cfg.MaxValue, "max", codec.DefaultMaxValue, "Largest encodable value")
	flag.StringVar(&cfg.Alphabet, "alphabet", "", "Alphabet characters in digit order (default: printable ASCII)")
	flag.BoolVar(&cfg.Strict, "strict", false, "Reject non-canonical padding when decoding")
	flag.StringVar(&cfg.Encode, "encode", "", "Space-separated integers to encode")
	flag.StringVar(&cfg.Decode, "decode", "", "Encoded string to decode")

	flag.Parse()

	if !cfg.Report && cfg.Encode == "" && cfg.Decode == "" {
		fmt.Fprintf(os.Stderr, "Error: one of -report, -encode or -decode is required\n")
		flag.Usage()
		os.Exit(1)
	}

	if err := run(os.Stdout, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, cfg cliConfig) error {
	if cfg.Report {
		return runReport(w, cfg)
	}

	kind, err := format.ParseCodecType(cfg.Codec)
	if err != nil {
		return err
	}

	opts := []codec.Option{
		codec.WithDomain(cfg.MinValue, cfg.MaxValue),
		codec.WithStrictPadding(cfg.Strict),
	}
	if cfg.Alphabet != "" {
		opts = append(opts, codec.WithAlphabetString(cfg.Alphabet))
	}

	c, err := codec.New(kind, opts...)
	if err != nil {
		return err
	}

	if cfg.Encode != "" {
		numbers, err := parseNumbers(cfg.Encode)
		if err != nil {
			return err
		}

		s, err := c.Serialize(numbers)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, s)
	}

	if cfg.Decode != "" {
		numbers, err := c.Deserialize(cfg.Decode)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, formatNumbers(numbers))
	}

	return nil
}

func runReport(w io.Writer, cfg cliConfig) error {
	compressors, err := parseCompressors(cfg.Compressors)
	if err != nil {
		return err
	}

	baseline, err := codec.NewSimple()
	if err != nil {
		return err
	}

	var codecs []codec.Codec
	for _, kind := range format.CodecTypes {
		if kind == format.CodecSimple {
			continue
		}
		c, err := codec.New(kind)
		if err != nil {
			return err
		}
		codecs = append(codecs, c)
	}

	r, err := report.Generate(baseline, codecs, report.DefaultSpecs(),
		report.WithCompressors(compressors...),
		report.WithPreviewLimit(cfg.PreviewLen),
	)
	if err != nil {
		return err
	}

	_, err = r.WriteTo(w)

	return err
}

func parseNumbers(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' || r == '\t' })
	numbers := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", f, err)
		}
		numbers = append(numbers, n)
	}

	return numbers, nil
}

func parseCompressors(s string) ([]format.CompressionType, error) {
	var out []format.CompressionType
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		ct, err := format.ParseCompressionType(name)
		if err != nil {
			return nil, err
		}
		out = append(out, ct)
	}

	return out, nil
}

func formatNumbers(numbers []int) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = strconv.Itoa(n)
	}

	return strings.Join(parts, " ")
}
