// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package clipboard provides the text sources the tracker polls: the system
// clipboard or a plain file.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"os"

	sysclip "github.com/atotto/clipboard"
)

// ErrNoBackend is returned when the platform offers no way to read the
// clipboard (on Linux: none of wl-paste, xclip, or xsel is installed).
var ErrNoBackend = errors.New("no clipboard backend available")

// Source returns the current text. Errors are expected to be transient.
type Source interface {
	Text(ctx context.Context) (string, error)
}

// System reads the system clipboard.
type System struct {
	read func() (string, error)
}

// NewSystem returns a source backed by the system clipboard, or ErrNoBackend
// when the clipboard cannot be read on this machine.
func NewSystem() (*System, error) {
	if sysclip.Unsupported {
		return nil, fmt.Errorf("%w: install wl-clipboard, xclip, or xsel", ErrNoBackend)
	}
	return &System{read: sysclip.ReadAll}, nil
}

// Text returns the clipboard content.
func (s *System) Text(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	text, err := s.read()
	if err != nil {
		return "", fmt.Errorf("reading clipboard: %w", err)
	}
	return text, nil
}

// FileSource reads the whole content of a file on every call.
type FileSource struct {
	Path string
}

func (s FileSource) Text(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", s.Path, err)
	}
	return string(data), nil
}
