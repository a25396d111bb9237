// Package transform drives the cipher engine across whole texts and files
package transform

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"mvcipher/crypto"
	"mvcipher/textio"
)

// Result summarises one transform run.
type Result struct {
	Lines   int `json:"lines"`
	Letters int `json:"letters"`
	Cursor  int `json:"cursor"`
}

type options struct {
	maxLineBytes int
	logger       *zap.Logger
}

type Option func(*options)

// WithMaxLineBytes sets the longest line the reader accepts. Without it
// lines are unbounded.
func WithMaxLineBytes(n int) Option {
	return func(o *options) {
		o.maxLineBytes = n
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func checkArgs(key crypto.Keyword, mode crypto.Mode) error {
	if key.Len() == 0 {
		return fmt.Errorf("%w: keyword is empty", crypto.ErrInvalidKeyword)
	}
	if !mode.Valid() {
		return fmt.Errorf("%w: %s", crypto.ErrInvalidMode, mode)
	}
	return nil
}

// Run reads every line from src, transforms it and writes it to dst in
// order. The key cursor starts at 0 and carries over from line to line.
func Run(src textio.LineReader, dst textio.LineWriter, key crypto.Keyword, mode crypto.Mode, opts ...Option) (Result, error) {
	o := newOptions(opts)

	if err := checkArgs(key, mode); err != nil {
		return Result{}, err
	}

	var res Result
	cursor := 0
	for src.HasNext() {
		line := src.NextLine()

		var out string
		out, cursor = crypto.TransformLine(line, key, mode, cursor)

		if err := dst.WriteLine(out); err != nil {
			return res, fmt.Errorf("failed to write line %d: %w", res.Lines+1, err)
		}

		res.Lines++
		res.Letters += countLetters(line)
		res.Cursor = cursor
	}

	if err := src.Err(); err != nil {
		return res, fmt.Errorf("failed to read line %d: %w", res.Lines+1, err)
	}

	o.logger.Debug("transform finished",
		zap.Stringer("mode", mode),
		zap.Int("lines", res.Lines),
		zap.Int("letters", res.Letters),
		zap.Int("cursor", res.Cursor))

	return res, nil
}

// Stream transforms r into w line by line and flushes w before returning.
func Stream(r io.Reader, w io.Writer, key crypto.Keyword, mode crypto.Mode, opts ...Option) (Result, error) {
	o := newOptions(opts)

	dst := textio.NewWriter(w)
	res, err := Run(textio.NewReader(r, o.maxLineBytes), dst, key, mode, opts...)
	if ferr := dst.Flush(); ferr != nil {
		err = multierror.Append(err, fmt.Errorf("failed to flush output: %w", ferr)).ErrorOrNil()
	}
	return res, err
}

// File transforms the file at inPath into outPath. If the input cannot be
// opened nothing is created. Both files are closed on every return path,
// and a failed run removes the partial output.
func File(inPath, outPath string, key crypto.Keyword, mode crypto.Mode, opts ...Option) (res Result, err error) {
	o := newOptions(opts)

	if err := checkArgs(key, mode); err != nil {
		return Result{}, err
	}
	if err := checkDistinct(inPath, outPath); err != nil {
		return Result{}, err
	}

	in, err := textio.Open(inPath, o.maxLineBytes)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", crypto.ErrResourceUnavailable, err)
	}
	defer func() {
		if cerr := in.Close(); cerr != nil {
			err = multierror.Append(err, fmt.Errorf("failed to close %s: %w", inPath, cerr))
		}
	}()

	out, err := textio.Create(outPath)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", crypto.ErrResourceUnavailable, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			err = multierror.Append(err, cerr)
		}
		if err != nil {
			if rerr := os.Remove(outPath); rerr != nil && !os.IsNotExist(rerr) {
				err = multierror.Append(err, fmt.Errorf("failed to remove partial output %s: %w", outPath, rerr))
			}
		}
	}()

	o.logger.Debug("transforming file",
		zap.String("input", inPath),
		zap.String("output", outPath),
		zap.Stringer("mode", mode))

	return Run(in, out, key, mode, opts...)
}

// checkDistinct refuses to write over the file being read, since creating
// the output would truncate the input first.
func checkDistinct(inPath, outPath string) error {
	inAbs, err1 := filepath.Abs(inPath)
	outAbs, err2 := filepath.Abs(outPath)
	if err1 == nil && err2 == nil && inAbs == outAbs {
		return fmt.Errorf("%w: input and output are the same file %s", crypto.ErrResourceUnavailable, inPath)
	}

	inInfo, err := os.Stat(inPath)
	if err != nil {
		return nil
	}
	outInfo, err := os.Stat(outPath)
	if err != nil {
		return nil
	}
	if os.SameFile(inInfo, outInfo) {
		return fmt.Errorf("%w: input and output are the same file %s", crypto.ErrResourceUnavailable, inPath)
	}
	return nil
}

func countLetters(s string) int {
	n := 0
	for _, r := range s {
		if crypto.IsLetter(r) {
			n++
		}
	}
	return n
}
