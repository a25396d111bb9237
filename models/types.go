// Package models contain needed models
package models

// TextRequest represents a request to transform inline text
type TextRequest struct {
	Key  string `json:"key" binding:"required"`
	Mode string `json:"mode" binding:"required"`
	Text string `json:"text"`
}

// CipherResponse represents the JSON body returned by the cipher API.
// File endpoints only use it for errors.
type CipherResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Mode    string `json:"mode,omitempty"`
	Result  string `json:"result,omitempty"`
	Lines   int    `json:"lines,omitempty"`
	Letters int    `json:"letters,omitempty"`
}
