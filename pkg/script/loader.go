package script

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyScript is returned when a script document has no content.
	ErrEmptyScript = errors.New("script: document is empty")
	// ErrUnknownOperation is returned for steps naming no known operation.
	ErrUnknownOperation = errors.New("script: unknown operation")
	// ErrInvalidStep is returned for steps whose fields cannot be applied.
	ErrInvalidStep = errors.New("script: invalid step")
)

// Load decodes a script from JSON or YAML.
func Load(data []byte) (Script, error) {
	return parseScript(data, "input")
}

// LoadFile reads and decodes a script file.
func LoadFile(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("script: read %s: %w", path, err)
	}
	return parseScript(data, path)
}

func parseScript(data []byte, source string) (Script, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Script{}, fmt.Errorf("%w: %s", ErrEmptyScript, source)
	}

	var doc Script
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = Script{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Script{}, fmt.Errorf("script: parse %s: invalid JSON or YAML: %w", source, err)
	}
	return doc, nil
}
