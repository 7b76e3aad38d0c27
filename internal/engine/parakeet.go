package engine

import "fmt"

// newParakeet is a placeholder until a usable Go parakeet binding
// exists. New still checks the directory shape first, so a bad
// --model-path fails the same way for both engines.
func newParakeet(modelDir string) (Engine, error) {
	return nil, fmt.Errorf("parakeet backend not built in (model dir: %s)", modelDir)
}
