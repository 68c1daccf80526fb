package tasks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Supported backing file formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Codec converts the full task list to and from its on-disk form
type Codec interface {
	Name() string
	Marshal(tasks []Task) ([]byte, error)
	Unmarshal(data []byte) ([]Task, error)
}

// CodecFor returns the codec registered for a format name
func CodecFor(format string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatJSON:
		return JSONCodec{}, nil
	case FormatYAML, "yml":
		return YAMLCodec{}, nil
	case FormatTOML:
		return TOMLCodec{}, nil
	default:
		return nil, fmt.Errorf("unsupported format %q (supported: json, yaml, toml)", format)
	}
}

// FormatFromPath infers the format from a file extension, defaulting to JSON
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// JSONCodec stores the list as an indented top-level array
type JSONCodec struct{}

func (JSONCodec) Name() string { return FormatJSON }

func (JSONCodec) Marshal(tasks []Task) ([]byte, error) {
	if tasks == nil {
		tasks = []Task{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(tasks); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (JSONCodec) Unmarshal(data []byte) ([]Task, error) {
	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// YAMLCodec stores the list as a top-level sequence
type YAMLCodec struct{}

func (YAMLCodec) Name() string { return FormatYAML }

func (YAMLCodec) Marshal(tasks []Task) ([]byte, error) {
	if tasks == nil {
		tasks = []Task{}
	}
	return yaml.Marshal(tasks)
}

func (YAMLCodec) Unmarshal(data []byte) ([]Task, error) {
	var tasks []Task
	if err := yaml.Unmarshal(data, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// TOMLCodec stores the list as [[tasks]] tables; TOML has no top-level arrays
type TOMLCodec struct{}

type tomlDocument struct {
	Tasks []Task `toml:"tasks"`
}

func (TOMLCodec) Name() string { return FormatTOML }

func (TOMLCodec) Marshal(tasks []Task) ([]byte, error) {
	if tasks == nil {
		tasks = []Task{}
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(tomlDocument{Tasks: tasks}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (TOMLCodec) Unmarshal(data []byte) ([]Task, error) {
	var doc tomlDocument
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.Tasks, nil
}
