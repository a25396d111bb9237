// Package textio reads and writes plain text one line at a time
package textio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// LineReader yields lines until HasNext reports false. Err returns the
// first read error, if any, once HasNext is false.
type LineReader interface {
	HasNext() bool
	NextLine() string
	Err() error
}

// LineWriter writes one line followed by a newline.
type LineWriter interface {
	WriteLine(line string) error
}

// Reader is a LineReader over any io.Reader. Line terminators (\n or \r\n)
// are stripped. With maxLineBytes <= 0 lines may be of any length;
// otherwise a longer line stops reading with an error wrapping
// bufio.ErrTooLong.
type Reader struct {
	r            *bufio.Reader
	maxLineBytes int
	line         string
	peeked       bool
	more         bool
	err          error
}

func NewReader(r io.Reader, maxLineBytes int) *Reader {
	return &Reader{
		r:            bufio.NewReader(r),
		maxLineBytes: maxLineBytes,
	}
}

func (r *Reader) HasNext() bool {
	if r.peeked {
		return r.more
	}
	r.peeked = true
	r.more = r.readLine()
	return r.more
}

func (r *Reader) readLine() bool {
	if r.err != nil {
		return false
	}

	line, err := r.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			r.err = err
			return false
		}
		if line == "" {
			return false
		}
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	if r.maxLineBytes > 0 && len(line) > r.maxLineBytes {
		r.err = fmt.Errorf("line longer than %d bytes: %w", r.maxLineBytes, bufio.ErrTooLong)
		return false
	}

	r.line = line
	return true
}

func (r *Reader) NextLine() string {
	if !r.HasNext() {
		return ""
	}
	r.peeked = false
	return r.line
}

func (r *Reader) Err() error {
	return r.err
}

// FileReader is a Reader that owns the underlying file.
type FileReader struct {
	*Reader
	file *os.File
}

// Open opens path for line reading. maxLineBytes follows NewReader.
func Open(path string, maxLineBytes int) (*FileReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s for reading: %w", path, err)
	}

	return &FileReader{
		Reader: NewReader(f, maxLineBytes),
		file:   f,
	}, nil
}

func (fr *FileReader) Name() string {
	return fr.file.Name()
}

func (fr *FileReader) Close() error {
	return fr.file.Close()
}

// Writer is a buffered LineWriter. Call Flush when done.
type Writer struct {
	w *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

func (w *Writer) WriteLine(line string) error {
	if _, err := w.w.WriteString(line); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

func (w *Writer) Flush() error {
	return w.w.Flush()
}

// FileWriter is a Writer that owns the underlying file.
type FileWriter struct {
	*Writer
	file *os.File
}

// Create creates or truncates path for line writing.
func Create(path string) (*FileWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s for writing: %w", path, err)
	}

	return &FileWriter{
		Writer: NewWriter(f),
		file:   f,
	}, nil
}

func (fw *FileWriter) Name() string {
	return fw.file.Name()
}

// Close flushes buffered lines and closes the file. Both steps always run.
func (fw *FileWriter) Close() error {
	var result *multierror.Error
	if err := fw.Flush(); err != nil {
		result = multierror.Append(result, fmt.Errorf("failed to flush %s: %w", fw.file.Name(), err))
	}
	if err := fw.file.Close(); err != nil {
		result = multierror.Append(result, fmt.Errorf("failed to close %s: %w", fw.file.Name(), err))
	}
	return result.ErrorOrNil()
}
