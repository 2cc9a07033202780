package diagram

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/fishbone/pkg/errors"
)

// Input formats supported by ReadFile and Decode.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// ValidInputFormats is the set of supported input encodings.
var ValidInputFormats = map[string]bool{
	FormatTOML: true,
	FormatYAML: true,
	FormatJSON: true,
}

// ReadFile loads and validates a diagram from path, picking the decoder
// from the file extension (.toml, .yaml/.yml, .json).
func ReadFile(path string) (Diagram, error) {
	format, err := formatForPath(path)
	if err != nil {
		return Diagram{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Diagram{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "diagram file %s", path)
		}
		return Diagram{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}

	return Decode(data, format)
}

// Decode parses data in the given format and validates the result.
func Decode(data []byte, format string) (Diagram, error) {
	var d Diagram
	var err error

	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &d)
	case FormatYAML:
		err = yaml.Unmarshal(data, &d)
	case FormatJSON:
		err = json.Unmarshal(data, &d)
	default:
		return Diagram{}, errors.New(errors.ErrCodeInvalidFormat,
			"unsupported input format %q (must be toml, yaml, or json)", format)
	}
	if err != nil {
		return Diagram{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode %s diagram", format)
	}

	if err := d.Validate(); err != nil {
		return Diagram{}, err
	}
	return d, nil
}

// formatForPath maps a file extension to an input format.
func formatForPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat,
			"cannot infer diagram format from %q (use .toml, .yaml, or .json)", filepath.Base(path))
	}
}
