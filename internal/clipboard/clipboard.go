// Package clipboard provides the abstract clipboard backend the pipeline
// sources/sinks use for :clip and :to clip, backed by the host clipboard.
package clipboard

import (
	"github.com/atotto/clipboard"

	"github.com/wrenfield/rp/internal/rperr"
)

// Provider reads and writes the host clipboard as a single text blob.
type Provider interface {
	Read() (string, error)
	Write(s string) error
}

// System is the default Provider, backed by the host clipboard.
type System struct{}

func (System) Read() (string, error) {
	s, err := clipboard.ReadAll()
	if err != nil {
		return "", rperr.New(rperr.CodeClipboardRead, "clipboard read: %v", err)
	}
	return s, nil
}

func (System) Write(s string) error {
	if err := clipboard.WriteAll(s); err != nil {
		return rperr.New(rperr.CodeClipboardWrite, "clipboard write: %v", err)
	}
	return nil
}
