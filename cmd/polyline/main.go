package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"iter"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/polyline/codec"
)

func main() {
	var (
		decodeStr   = flag.String("decode", "", "Polyline to decode (- to read stdin)")
		encode      = flag.Bool("encode", false, "Encode lon,lat lines from stdin")
		precision   = flag.Uint("precision", codec.PrecisionGoogle, "Decimal digits preserved (5 Google, 6 OSRM/Valhalla)")
		jsonOut     = flag.Bool("json", false, "Emit JSON instead of lon,lat lines")
		verbose     = flag.Bool("v", false, "Verbose diagnostics")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger = l
	}
	defer logger.Sync()

	if *interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: -i requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*precision); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	switch {
	case *decodeStr != "":
		if err := runDecode(*decodeStr, *precision, *jsonOut, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case *encode:
		if err := runEncode(os.Stdin, *precision, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "Usage: polyline -decode <string> [-precision n] [-json]")
		fmt.Fprintln(os.Stderr, "       polyline -encode [-precision n]  (lon,lat lines on stdin)")
		fmt.Fprintln(os.Stderr, "       polyline -i  (interactive mode)")
		os.Exit(1)
	}
}

func runDecode(input string, precision uint, jsonOut bool, logger *zap.Logger) error {
	if input == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		input = strings.TrimSpace(string(data))
	}

	start := time.Now()
	coords, err := codec.DecodePolyline[float64](input, precision)
	if err != nil {
		return err
	}
	logger.Debug("decoded polyline",
		zap.Int("bytes", len(input)),
		zap.Int("coords", len(coords)),
		zap.Uint("precision", precision),
		zap.Duration("elapsed", time.Since(start)))

	if jsonOut {
		pairs := make([][2]float64, len(coords))
		for i, c := range coords {
			pairs[i] = [2]float64{c.Lon, c.Lat}
		}
		enc := json.NewEncoder(os.Stdout)
		return enc.Encode(pairs)
	}

	w := bufio.NewWriter(os.Stdout)
	for _, c := range coords {
		fmt.Fprintf(w, "%v,%v\n", c.Lon, c.Lat)
	}
	return w.Flush()
}

// runEncode streams lon,lat lines straight into the encoder without
// materializing the full coordinate slice.
func runEncode(r io.Reader, precision uint, logger *zap.Logger) error {
	scanner := bufio.NewScanner(r)

	var parseErr error
	line := 0
	seq := iter.Seq[codec.Coord[float64]](func(yield func(codec.Coord[float64]) bool) {
		for scanner.Scan() {
			line++
			text := strings.TrimSpace(scanner.Text())
			if text == "" {
				continue
			}
			c, err := parseCoord(text)
			if err != nil {
				parseErr = fmt.Errorf("line %d: %w", line, err)
				return
			}
			if !yield(c) {
				return
			}
		}
	})

	start := time.Now()
	encoded, err := codec.EncodeCoordinates(seq, precision)
	if parseErr != nil {
		return parseErr
	}
	if err != nil {
		return err
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	logger.Debug("encoded coordinates",
		zap.Int("coords", line),
		zap.Int("bytes", len(encoded)),
		zap.Uint("precision", precision),
		zap.Duration("elapsed", time.Since(start)))

	fmt.Println(encoded)
	return nil
}

func parseCoord(text string) (codec.Coord[float64], error) {
	parts := strings.Split(text, ",")
	if len(parts) != 2 {
		return codec.Coord[float64]{}, fmt.Errorf("want lon,lat, got %q", text)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return codec.Coord[float64]{}, fmt.Errorf("bad longitude %q: %w", parts[0], err)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return codec.Coord[float64]{}, fmt.Errorf("bad latitude %q: %w", parts[1], err)
	}
	return codec.Coord[float64]{Lon: lon, Lat: lat}, nil
}
