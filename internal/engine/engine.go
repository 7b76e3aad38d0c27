// Package engine abstracts the speech-to-text backends behind a small
// interface. Implementations may be a no-op (stub) or backed by
// whisper.cpp (build tag: whisper_cpp).
package engine

import (
	"errors"
	"fmt"
	"os"
)

// Kind selects a model family.
type Kind string

const (
	KindWhisper  Kind = "whisper"
	KindParakeet Kind = "parakeet"
)

// ParseKind validates an engine name from config.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindWhisper, KindParakeet:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown engine %q (supported: whisper, parakeet)", s)
}

// Engine runs transcription over mono 16 kHz PCM32F samples.
// Implementations are not safe for concurrent use; the dispatch worker
// is the sole caller once the process is serving.
type Engine interface {
	Transcribe(samples []float32) (string, error)
	Close() error
}

// New loads the engine for kind from modelPath. Whisper expects a model
// file, parakeet a model directory; a missing path or the wrong shape
// is a configuration error and nothing gets loaded.
func New(kind Kind, modelPath string) (Engine, error) {
	info, err := os.Stat(modelPath)
	if err != nil {
		return nil, fmt.Errorf("model path not found: %s", modelPath)
	}
	switch kind {
	case KindWhisper:
		if info.IsDir() {
			return nil, errors.New("whisper model path must be a file")
		}
		return newWhisper(modelPath)
	case KindParakeet:
		if !info.IsDir() {
			return nil, errors.New("parakeet model path must be a directory")
		}
		return newParakeet(modelPath)
	default:
		return nil, fmt.Errorf("unknown engine %q", kind)
	}
}
