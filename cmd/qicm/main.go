/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Command qicm is the CLI driver over the compress/decompress pipeline:
// three subcommands (compress, decompress, ratio), each taking an input
// file path, mirroring the teacher's cmd-per-mode layout but over cobra
// rather than a hand-rolled flag parser.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qicm-project/qicm-go/app"
)

// outNone is the special output name that discards the result, reporting
// only its size (mirrors the teacher CLI's "NONE" output destination,
// used to measure throughput or compressed size without touching disk).
const outNone = "NONE"

func main() {
	var output string
	var threads int
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "qicm",
		Short: "Adaptive mixed-model entropy compressor for English text",
	}

	compressCmd := &cobra.Command{
		Use:   "compress [input]",
		Short: "Compress a text file into a QICM container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompress(args[0], output, threads, verbose)
		},
	}
	compressCmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (default: <input>.qcm)")
	compressCmd.Flags().IntVarP(&threads, "threads", "j", 0, "Thread count (0 = auto)")
	compressCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print progress")

	decompressCmd := &cobra.Command{
		Use:   "decompress [input]",
		Short: "Decompress a QICM container back to text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecompress(args[0], output, threads, verbose)
		},
	}
	decompressCmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (default: <input> with .qcm stripped, or <input>.out)")
	decompressCmd.Flags().IntVarP(&threads, "threads", "j", 0, "Thread count (0 = auto)")
	decompressCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print progress")

	ratioCmd := &cobra.Command{
		Use:   "ratio [input]",
		Short: "Compress a file in memory and report the compression ratio",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRatio(args[0])
		},
	}

	rootCmd.AddCommand(compressCmd, decompressCmd, ratioCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCompress(input, output string, threads int, verbose bool) error {
	text, err := readFile(input)

	if err != nil {
		return err
	}

	c, err := app.NewCompressor(map[string]interface{}{"threads": threads})

	if err != nil {
		return err
	}

	if verbose {
		if p, err2 := app.NewInfoPrinter(3, app.ENCODING, os.Stdout); err2 == nil {
			c.AddListener(p)
		}
	}

	out, err := c.Compress(text)

	if err != nil {
		return err
	}

	if output == "" {
		output = input + ".qcm"
	}

	return writeOutput(output, out)
}

func runDecompress(input, output string, threads int, verbose bool) error {
	data, err := os.ReadFile(input)

	if err != nil {
		return fmt.Errorf("cannot read %q: %w", input, err)
	}

	d, err := app.NewDecompressor(map[string]interface{}{"threads": threads})

	if err != nil {
		return err
	}

	if verbose {
		if p, err2 := app.NewInfoPrinter(3, app.DECODING, os.Stdout); err2 == nil {
			d.AddListener(p)
		}
	}

	text, err := d.Decompress(data)

	if err != nil {
		return err
	}

	if output == "" {
		if strings.HasSuffix(input, ".qcm") {
			output = strings.TrimSuffix(input, ".qcm")
		} else {
			output = input + ".out"
		}
	}

	return writeOutput(output, []byte(text))
}

func runRatio(input string) error {
	text, err := readFile(input)

	if err != nil {
		return err
	}

	c, err := app.NewCompressor(map[string]interface{}{"threads": 1})

	if err != nil {
		return err
	}

	out, err := c.Compress(text)

	if err != nil {
		return err
	}

	inSize := len(text)
	outSize := len(out)
	ratio := 1.0

	if inSize > 0 {
		ratio = float64(outSize) / float64(inSize)
	}

	fmt.Printf("input:  %d bytes\n", inSize)
	fmt.Printf("output: %d bytes\n", outSize)
	fmt.Printf("ratio:  %f\n", ratio)
	return nil
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return "", fmt.Errorf("cannot read %q: %w", path, err)
	}

	return string(data), nil
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("cannot write %q: %w", path, err)
	}

	return nil
}

// writeOutput writes data to path, unless path is the special name NONE,
// in which case the result is discarded after reporting its size, useful
// for measuring compressed size or decode correctness without producing a
// file.
func writeOutput(path string, data []byte) error {
	if strings.ToUpper(path) == outNone {
		fmt.Printf("%d bytes (discarded)\n", len(data))
		return nil
	}

	return writeFile(path, data)
}
