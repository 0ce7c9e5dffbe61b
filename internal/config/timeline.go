package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/soccerstatsqc/league-dashboard/internal/domain/timeline"
	"gopkg.in/yaml.v3"
)

// LoadTimelineOptions reads timeline geometry overrides from a YAML file.
// Keys missing from the file keep their defaults.
func LoadTimelineOptions(path string) (timeline.Options, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return timeline.Options{}, fmt.Errorf("read %s: %w", path, err)
	}

	return ParseTimelineOptions(raw)
}

func ParseTimelineOptions(raw []byte) (timeline.Options, error) {
	opts := timeline.DefaultOptions()

	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)
	if err := decoder.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return timeline.Options{}, fmt.Errorf("decode timeline options: %w", err)
	}

	return opts.Normalize(), nil
}
