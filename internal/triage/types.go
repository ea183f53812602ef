package triage

import (
	"errors"
	"strings"

	"github.com/shahar-caura/triage/internal/extract"
)

// Request is a ticket submitted for classification.
type Request struct {
	Ticket string `json:"ticket"`
	Model  string `json:"model"`
}

// Validate reports ErrEmptyTicket when the ticket is blank after trimming.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Ticket) == "" {
		return ErrEmptyTicket
	}
	return nil
}

// Result holds the extracted tier and the model's verbatim answer.
type Result struct {
	Level     extract.Level `json:"level"`
	Reasoning string        `json:"reasoning"`
}

// Message is a single chat turn sent to the model backend.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

var (
	// ErrEmptyTicket indicates the ticket text was empty or whitespace only.
	ErrEmptyTicket = errors.New("please enter a valid ticket description")

	// ErrUnknownModel indicates the requested model is not in the catalog.
	ErrUnknownModel = errors.New("unknown model")

	// ErrClassificationFailed indicates the model backend call failed.
	ErrClassificationFailed = errors.New("classification failed")
)
