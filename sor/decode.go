package sor

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"sor-reader/sor/dstruct"
)

func DecodeSOR(bs []byte, options Options) ([]byte, error) {
	document, err := dstruct.DecodeBytes(bs)
	if err != nil {
		return nil, errors.Wrap(err, "DecodeSOR error")
	}
	return Render(*document, options)
}

func Render(document dstruct.Document, options Options) ([]byte, error) {
	var value any = document.ToLinkedHashMap()
	if options.Debug {
		value = document
	}

	jsonBytes, err := marshalJSON(value, options.Indent)
	if err != nil {
		return nil, errors.Wrap(err, "Render error")
	}

	switch options.Format {
	case FormatJSON, "":
		return jsonBytes, nil
	case FormatYAML:
		yamlBytes, err := convertToYAML(jsonBytes, options.Indent)
		if err != nil {
			return nil, errors.Wrap(err, "Render error")
		}
		return yamlBytes, nil
	default:
		return nil, errors.Errorf(`Render error: unknown format "%s"`, options.Format)
	}
}

func marshalJSON(value any, indent int) ([]byte, error) {
	if indent <= 0 {
		return json.Marshal(value)
	}
	return json.MarshalIndent(value, "", strings.Repeat(" ", indent))
}

// convertToYAML re-reads the JSON rendering as a YAML node tree, which keeps
// the key order, and prints it in block style.
func convertToYAML(jsonBytes []byte, indent int) ([]byte, error) {
	node := yaml.Node{}
	if err := yaml.Unmarshal(jsonBytes, &node); err != nil {
		return nil, errors.Wrap(err, "convertToYAML error: read JSON")
	}
	resetStyle(&node)

	buf := bytes.Buffer{}
	encoder := yaml.NewEncoder(&buf)
	if indent > 0 {
		encoder.SetIndent(indent)
	}
	if err := encoder.Encode(&node); err != nil {
		return nil, errors.Wrap(err, "convertToYAML error: write YAML")
	}
	if err := encoder.Close(); err != nil {
		return nil, errors.Wrap(err, "convertToYAML error: close encoder")
	}
	return buf.Bytes(), nil
}

func resetStyle(node *yaml.Node) {
	// the encoder still quotes strings that would read back as another type
	node.Style = 0
	for _, child := range node.Content {
		resetStyle(child)
	}
}
