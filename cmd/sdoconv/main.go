package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	sdo "github.com/tingold/go-sdo"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkt"
	"go.uber.org/zap"
)

var (
	dim     int
	format  string
	digits  int
	verbose bool
)

func main() {
	root := &cobra.Command{
		Use:   "sdoconv [literal ...]",
		Short: "Decode SDO_GEOMETRY literals to GeoJSON or WKT",
		Long: `sdoconv decodes textual SDO_GEOMETRY constructors, as printed by SQL*Plus
or a spatial metadata dump, and prints one converted geometry per literal.

Literals are taken from the arguments, or from stdin separated by
semicolons when no arguments are given.`,
		Example: `  sdoconv 'SDO_GEOMETRY(2001, 8307, SDO_POINT_TYPE(-71.1, 42.3, NULL), NULL, NULL)'
  sdoconv --format wkt --digits 6 < dump.sql`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	root.Flags().IntVar(&dim, "dim", 0, "force the coordinate dimension (2-4, 0 takes it from SDO_GTYPE)")
	root.Flags().StringVarP(&format, "format", "f", "geojson", "output format: geojson or wkt")
	root.Flags().IntVar(&digits, "digits", -1, "maximum decimal digits in WKT output (-1 is full precision)")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "log decoding details to stderr")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sdoconv:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if format != "geojson" && format != "wkt" {
		return errors.Newf("unknown format %q", format)
	}

	logger := zap.NewNop()
	if verbose {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	literals := args
	if len(literals) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return errors.Wrap(err, "reading stdin")
		}
		for _, chunk := range strings.Split(string(data), ";") {
			if chunk = strings.TrimSpace(chunk); chunk != "" {
				literals = append(literals, chunk)
			}
		}
	}

	decoder := sdo.NewDecoder(&sdo.DecoderOptions{Dim: dim})
	out := cmd.OutOrStdout()

	for i, lit := range literals {
		g, err := sdo.ParseLiteral(lit)
		if err != nil {
			return errors.Wrapf(err, "literal %d", i+1)
		}
		decoded, err := decoder.Decode(g)
		if err != nil {
			return errors.Wrapf(err, "literal %d", i+1)
		}
		if decoded == nil {
			fmt.Fprintln(out, "NULL")
			continue
		}
		logger.Info("decoded",
			zap.Int("literal", i+1),
			zap.Int("gtype", int(g.GType)),
			zap.Int("srid", g.SRID),
			zap.Stringer("type", g.GType.Type()))

		switch format {
		case "geojson":
			b, err := geojson.Marshal(decoded)
			if err != nil {
				return errors.Wrapf(err, "literal %d", i+1)
			}
			fmt.Fprintln(out, string(b))
		case "wkt":
			var opts []wkt.EncodeOption
			if digits >= 0 {
				opts = append(opts, wkt.EncodeOptionWithMaxDecimalDigits(digits))
			}
			s, err := wkt.Marshal(decoded, opts...)
			if err != nil {
				return errors.Wrapf(err, "literal %d", i+1)
			}
			fmt.Fprintln(out, s)
		}
	}
	return nil
}
