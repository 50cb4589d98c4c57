package wavefront

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// scanLines calls fn with the 1-based line number and the whitespace-separated
// tokens of every non-blank line in r. Lines have no length limit. A read
// failure is reported as a *ParseError on the line being read.
func scanLines(r io.Reader, file string, fn func(line int, tokens []string) error) error {
	br := bufio.NewReader(r)

	line := 0
	for {
		text, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return &ParseError{File: file, Line: line + 1, Err: fmt.Errorf("read: %w", err)}
		}
		if text == "" && err == io.EOF {
			return nil
		}
		line++
		if tokens := strings.Fields(text); len(tokens) > 0 {
			if ferr := fn(line, tokens); ferr != nil {
				return ferr
			}
		}
		if err == io.EOF {
			return nil
		}
	}
}

// parseVec3 parses tokens[1:4] as three floats. Values outside the float32
// range saturate to ±Inf or zero instead of failing.
func parseVec3(tokens []string) (mgl32.Vec3, error) {
	var v mgl32.Vec3
	if len(tokens) < 4 {
		return v, fmt.Errorf("%w: expected 3 components, got %d", ErrMissingField, len(tokens)-1)
	}
	for i := 0; i < 3; i++ {
		f, err := parseFloat(tokens[i+1])
		if err != nil {
			return v, err
		}
		v[i] = f
	}
	return v, nil
}

func parseFloat(token string) (float32, error) {
	f, err := strconv.ParseFloat(token, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return float32(f), nil
		}
		return 0, fmt.Errorf("%w: %q", ErrMalformedNumber, token)
	}
	return float32(f), nil
}
