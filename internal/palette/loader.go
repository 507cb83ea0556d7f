package palette

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// LoadBaseColours reads base colours from a JSON or text file. Colour values
// are not checked here; see ParseBaseSpec.
//
// JSON is an array of {"hex": "#2171B5", "deviceType": "Sensor"} objects.
// The text format has one "Device Type=#hex" entry per line; blank lines and
// lines starting with '#' are ignored.
func LoadBaseColours(path string) ([]BaseColour, error) {
	data, err := os.ReadFile(path) // #nosec G304 - User-specified input file, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to read base colours: %w", err)
	}

	bases, err := ParseBaseColours(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return bases, nil
}

// ParseBaseColours decodes base colours from JSON or the line-based text format.
func ParseBaseColours(data []byte) ([]BaseColour, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil, fmt.Errorf("no base colours provided")
	}

	// Try JSON first.
	if strings.HasPrefix(trimmed, "[") {
		return parseJSON([]byte(trimmed))
	}

	return parseTextFormat(string(data))
}

func parseJSON(data []byte) ([]BaseColour, error) {
	var raw []BaseColour
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON base colours: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("no base colours provided")
	}

	bases := make([]BaseColour, 0, len(raw))
	for i, b := range raw {
		if strings.TrimSpace(b.DeviceType) == "" {
			return nil, fmt.Errorf("entry %d: missing deviceType", i+1)
		}
		bases = Merge(bases, BaseColour{Hex: resolveOrRaw(b.Hex), DeviceType: strings.TrimSpace(b.DeviceType)})
	}
	return bases, nil
}

// parseTextFormat parses "label=colour" lines, # for comments.
func parseTextFormat(content string) ([]BaseColour, error) {
	bases := make([]BaseColour, 0)

	lines := strings.Split(content, "\n")
	for lineNum, line := range lines {
		line = strings.TrimSpace(line)

		// Skip empty lines and comments.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		base, err := ParseBaseSpec(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum+1, err)
		}
		bases = Merge(bases, base)
	}

	if len(bases) == 0 {
		return nil, fmt.Errorf("no base colours provided")
	}
	return bases, nil
}
