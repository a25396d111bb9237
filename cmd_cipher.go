package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mvcipher/crypto"
	"mvcipher/transform"
)

var (
	cipherKey string
	inPath    string
	outPath   string
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt a text file",
	Long: `Encrypts --in into --out with --key. Use "-" for stdin or stdout.

Example:
  mvcipher encrypt --key LEMON --in plain.txt --out secret.txt`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCipher(cmd, crypto.Encrypt)
	},
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Decrypt a text file",
	Long: `Decrypts --in into --out with --key. Use "-" for stdin or stdout.

Example:
  mvcipher decrypt --key LEMON --in secret.txt --out plain.txt`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCipher(cmd, crypto.Decrypt)
	},
}

func init() {
	for _, c := range []*cobra.Command{encryptCmd, decryptCmd} {
		c.Flags().StringVarP(&cipherKey, "key", "k", "", "Keyword, letters only, at least 3 (required)")
		c.Flags().StringVarP(&inPath, "in", "i", "-", "Input file")
		c.Flags().StringVarP(&outPath, "out", "o", "-", "Output file")
		_ = c.MarkFlagRequired("key")
	}
}

func runCipher(cmd *cobra.Command, mode crypto.Mode) (err error) {
	key, err := crypto.NewKeyword(cipherKey)
	if err != nil {
		return err
	}

	opts := []transform.Option{
		transform.WithLogger(logger),
	}

	var res transform.Result
	if inPath != "-" && outPath != "-" {
		res, err = transform.File(inPath, outPath, key, mode, opts...)
	} else {
		res, err = streamCipher(cmd, key, mode, opts)
	}
	if err != nil {
		return err
	}

	logger.Info(fmt.Sprintf("%s complete", mode),
		zap.String("input", inPath),
		zap.String("output", outPath),
		zap.Int("lines", res.Lines),
		zap.Int("letters", res.Letters))
	return nil
}

// streamCipher handles runs where either side is stdin or stdout.
func streamCipher(cmd *cobra.Command, key crypto.Keyword, mode crypto.Mode, opts []transform.Option) (res transform.Result, err error) {
	var r io.Reader = cmd.InOrStdin()
	if inPath != "-" {
		f, oerr := os.Open(inPath)
		if oerr != nil {
			return res, fmt.Errorf("%w: %w", crypto.ErrResourceUnavailable, oerr)
		}
		defer f.Close()
		r = f
	}

	var w io.Writer = cmd.OutOrStdout()
	if outPath != "-" {
		f, cerr := os.Create(outPath)
		if cerr != nil {
			return res, fmt.Errorf("%w: %w", crypto.ErrResourceUnavailable, cerr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil {
				err = multierror.Append(err, cerr)
			}
		}()
		w = f
	}

	return transform.Stream(r, w, key, mode, opts...)
}
