// Package handlers is made to handle requests
package handlers

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mvcipher/config"
	"mvcipher/crypto"
	"mvcipher/models"
	"mvcipher/transform"
)

type CipherHandler struct {
	logger         *zap.Logger
	maxUploadBytes int64
	maxLineBytes   int
}

func NewCipherHandler(cfg *config.Config, logger *zap.Logger) *CipherHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CipherHandler{
		logger:         logger,
		maxUploadBytes: cfg.Server.MaxUploadBytes,
		maxLineBytes:   cfg.Cipher.MaxLineBytes,
	}
}

func (h *CipherHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Cipher API is running",
		"version": "1.0.0",
	})
}

func (h *CipherHandler) EncryptFile(c *gin.Context) {
	h.transformFile(c, crypto.Encrypt)
}

func (h *CipherHandler) DecryptFile(c *gin.Context) {
	h.transformFile(c, crypto.Decrypt)
}

func (h *CipherHandler) transformFile(c *gin.Context, mode crypto.Mode) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	if err := c.Request.ParseMultipartForm(h.maxUploadBytes); err != nil {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to parse form: %v", err),
		})
		return
	}

	rawKey := c.PostForm("key")
	if rawKey == "" {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: "Key is required",
		})
		return
	}

	key, err := crypto.NewKeyword(rawKey)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: fmt.Sprintf("Invalid key: %v", err),
		})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: "File is required",
		})
		return
	}
	defer file.Close()

	var out bytes.Buffer
	res, err := transform.Stream(file, &out, key, mode,
		transform.WithMaxLineBytes(h.maxLineBytes),
		transform.WithLogger(h.logger))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, bufio.ErrTooLong) {
			status = http.StatusBadRequest
		}
		_ = c.Error(err)
		c.JSON(status, models.CipherResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to %s file: %v", mode, err),
		})
		return
	}

	ext := filepath.Ext(header.Filename)
	baseFilename := strings.TrimSuffix(filepath.Base(header.Filename), ext)
	outputFilename := fmt.Sprintf("%s_%s%s", baseFilename, mode.PastTense(), ext)

	// Set headers for file download
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", outputFilename))
	c.Header("Content-Length", strconv.Itoa(out.Len()))

	c.Header("X-Cipher-Mode", mode.String())
	c.Header("X-Cipher-Keyword-Length", strconv.Itoa(key.Len()))
	c.Header("X-Cipher-Lines", strconv.Itoa(res.Lines))
	c.Header("X-Cipher-Letters", strconv.Itoa(res.Letters))

	c.Data(http.StatusOK, "text/plain; charset=utf-8", out.Bytes())
}

func (h *CipherHandler) TransformText(c *gin.Context) {
	var req models.TextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: fmt.Sprintf("Invalid request: %v", err),
		})
		return
	}

	key, err := crypto.NewKeyword(req.Key)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: fmt.Sprintf("Invalid key: %v", err),
		})
		return
	}

	mode, err := crypto.ParseMode(req.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: fmt.Sprintf("Invalid mode: %v", err),
		})
		return
	}

	var out bytes.Buffer
	res, err := transform.Stream(strings.NewReader(req.Text), &out, key, mode,
		transform.WithMaxLineBytes(h.maxLineBytes),
		transform.WithLogger(h.logger))
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to %s text: %v", mode, err),
		})
		return
	}

	result := out.String()
	if !strings.HasSuffix(req.Text, "\n") {
		result = strings.TrimSuffix(result, "\n")
	}

	c.JSON(http.StatusOK, models.CipherResponse{
		Success: true,
		Message: fmt.Sprintf("Text %s with a %d letter keyword", mode.PastTense(), key.Len()),
		Mode:    mode.String(),
		Result:  result,
		Lines:   res.Lines,
		Letters: res.Letters,
	})
}
