// Package prompt reads strictly validated values from a line-oriented console.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInvalidInput is returned for any line that does not hold exactly one
// acceptable value. Callers re-prompt on it.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputMessage is what the console prints before re-prompting.
const InvalidInputMessage = "Invalid input! Please try again."

// MaxLineBytes bounds a single answer. Longer lines are consumed in full and
// reported as ErrInvalidInput.
const MaxLineBytes = 4096

type Reader struct {
	in  *bufio.Reader
	out io.Writer
}

func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Int prints prompt and reads one integer.
func (r *Reader) Int(prompt string) (int, error) {
	line, err := r.readLine(prompt)
	if err != nil {
		return 0, err
	}

	v, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", ErrInvalidInput, line)
	}
	return v, nil
}

// Choice reads an integer in [min, max].
func (r *Reader) Choice(prompt string, min, max int) (int, error) {
	v, err := r.Int(prompt)
	if err != nil {
		return 0, err
	}
	if v < min || v > max {
		return 0, fmt.Errorf("%w: %d is outside %d-%d", ErrInvalidInput, v, min, max)
	}
	return v, nil
}

// YesNo reads a single Y/y or N/n.
func (r *Reader) YesNo(prompt string) (bool, error) {
	line, err := r.readLine(prompt)
	if err != nil {
		return false, err
	}

	switch line {
	case "Y", "y":
		return true, nil
	case "N", "n":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q is not Y or N", ErrInvalidInput, line)
	}
}

func (r *Reader) readLine(prompt string) (string, error) {
	if _, err := io.WriteString(r.out, prompt); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	var (
		buf []byte
		n   int
	)
	for {
		chunk, err := r.in.ReadSlice('\n')
		n += len(chunk)
		if n <= MaxLineBytes {
			buf = append(buf, chunk...)
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if errors.Is(err, io.EOF) {
			if n == 0 {
				return "", io.EOF
			}
			break
		}
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		break
	}
	if n > MaxLineBytes {
		return "", fmt.Errorf("%w: line longer than %d bytes", ErrInvalidInput, MaxLineBytes)
	}

	line := strings.TrimSpace(string(buf))
	if line == "" {
		return "", fmt.Errorf("%w: empty line", ErrInvalidInput)
	}
	return line, nil
}
