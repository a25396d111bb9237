package main

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"mvcipher/prompt"
	"mvcipher/transform"
)

// runInteractive asks for keyword, mode and file names, then transforms
// the input file into the output file.
func runInteractive(in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "\n Welcome to the MV Cipher machine!")
	fmt.Fprintln(out)

	p := prompt.New(in, out)

	key, err := p.Keyword()
	if err != nil {
		return err
	}
	mode, err := p.Mode()
	if err != nil {
		return err
	}
	fmt.Fprintln(out)

	inPath, outPath, err := p.Files(mode)
	if err != nil {
		return err
	}

	res, err := transform.File(inPath, outPath, key, mode,
		transform.WithLogger(logger))
	if err != nil {
		return err
	}

	logger.Debug("interactive run complete",
		zap.String("output", outPath),
		zap.Int("lines", res.Lines))

	fmt.Fprintf(out, "The %s file %s has been created using the keyword -> %s\n", mode.PastTense(), outPath, key)
	return nil
}
