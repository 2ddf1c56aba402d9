// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package formatting implements the line-oriented text interchange format
// for sample sequences: one pair per line, two whitespace-separated
// three-decimal fixed-point fields.
package formatting

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ava-labs/binormal/sampler"
)

// sampleLineFormat must not change. Downstream analysis scripts consume
// this format bit-for-bit.
const sampleLineFormat = "%.3f %.3f\n"

var ErrMalformedLine = errors.New("malformed sample line")

// WriteSamples writes [samples] to [w] in the interchange format.
func WriteSamples(w io.Writer, samples []sampler.Sample) error {
	buffered := bufio.NewWriter(w)
	for _, s := range samples {
		if _, err := fmt.Fprintf(buffered, sampleLineFormat, s.X, s.Y); err != nil {
			return err
		}
	}
	return buffered.Flush()
}

// ParseSamples reads an interchange-format stream back into a sample
// sequence. Blank lines are skipped.
func ParseSamples(r io.Reader) ([]sampler.Sample, error) {
	var samples []sampler.Sample

	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w %d: expected 2 fields but got %d",
				ErrMalformedLine,
				line,
				len(fields),
			)
		}

		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%w %d: %s", ErrMalformedLine, line, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w %d: %s", ErrMalformedLine, line, err)
		}
		samples = append(samples, sampler.Sample{X: x, Y: y})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return samples, nil
}
