//go:build !whisper_cpp

package engine

// Default stub (no cgo) so the project builds without the whisper_cpp tag.
type stubEngine struct{}

func newWhisper(modelPath string) (Engine, error) { return &stubEngine{}, nil }

func (e *stubEngine) Transcribe(samples []float32) (string, error) { return "", nil }

func (e *stubEngine) Close() error { return nil }
