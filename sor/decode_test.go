package sor

import (
	"encoding/json"
	"testing"

	"github.com/iancoleman/orderedmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"sor-reader/sor/lbytes"
	"sor-reader/sor/sorfixture"
)

func TestIsSORFile(t *testing.T) {
	assert.True(t, IsSORFile(sorfixture.Default()))
	assert.False(t, IsSORFile(nil))
	assert.False(t, IsSORFile([]byte("Map")))
	assert.False(t, IsSORFile([]byte("Map\x00\x64\x00")))
	assert.False(t, IsSORFile([]byte(`{"Map": {}}`)))
}

func TestDecodeSOR_JSON(t *testing.T) {
	bs, err := DecodeSOR(sorfixture.Default(), DefaultOptions())
	require.NoError(t, err)

	lhm := orderedmap.New()
	require.NoError(t, json.Unmarshal(bs, lhm))
	assert.Equal(
		t,
		[]string{
			"Map",
			"GenParams",
			"SupParams",
			"FxdParams",
			"DataPts",
			"KeyEvents",
			sorfixture.UnknownBlockName,
			"Cksum",
		},
		lhm.Keys(),
	)
	assert.Contains(t, string(bs), "\n  \"Map\": {")
}

func TestDecodeSOR_Compact(t *testing.T) {
	options := DefaultOptions()
	options.Indent = 0

	bs, err := DecodeSOR(sorfixture.Default(), options)
	require.NoError(t, err)
	assert.NotContains(t, string(bs), "\n")
}

func TestDecodeSOR_Debug(t *testing.T) {
	options := DefaultOptions()
	options.Debug = true

	bs, err := DecodeSOR(sorfixture.Default(), options)
	require.NoError(t, err)

	decoded := struct {
		Blocks []struct {
			Name string `json:"name"`
		} `json:"blocks"`
	}{}
	require.NoError(t, json.Unmarshal(bs, &decoded))
	require.Len(t, decoded.Blocks, 8)
	assert.Equal(t, "Map", decoded.Blocks[0].Name)
	assert.Equal(t, "Cksum", decoded.Blocks[7].Name)
}

func TestDecodeSOR_YAML(t *testing.T) {
	options := DefaultOptions()
	options.Format = FormatYAML

	bs, err := DecodeSOR(sorfixture.Default(), options)
	require.NoError(t, err)

	node := yaml.Node{}
	require.NoError(t, yaml.Unmarshal(bs, &node))
	require.Equal(t, yaml.DocumentNode, node.Kind)
	root := node.Content[0]
	require.Equal(t, yaml.MappingNode, root.Kind)
	// keys and values alternate
	assert.Equal(t, "Map", root.Content[0].Value)
	assert.Equal(t, "GenParams", root.Content[2].Value)

	decoded := map[string]map[string]any{}
	require.NoError(t, yaml.Unmarshal(bs, &decoded))
	assert.Equal(t, "beef", decoded["Cksum"]["checksum"])
	assert.Equal(t, "CABLE-0042", decoded["GenParams"]["cable_id"])
}

func TestDecodeSOR_YAMLKeepsStringTypes(t *testing.T) {
	options := DefaultOptions()
	options.Format = FormatYAML
	bs := sorfixture.Build(sorfixture.ChecksumSection(0x0001))

	rendered, err := DecodeSOR(bs, options)
	require.NoError(t, err)

	decoded := map[string]map[string]any{}
	require.NoError(t, yaml.Unmarshal(rendered, &decoded))
	assert.Equal(t, "0001", decoded["Cksum"]["checksum"])
}

func TestDecodeSOR_UnknownFormat(t *testing.T) {
	options := DefaultOptions()
	options.Format = Format("xml")

	_, err := DecodeSOR(sorfixture.Default(), options)
	assert.Error(t, err)
}

func TestDecodeSOR_Truncated(t *testing.T) {
	bs := sorfixture.Default()

	_, err := DecodeSOR(bs[:len(bs)/2], DefaultOptions())
	require.Error(t, err)
	assert.True(t, lbytes.IsTruncatedInput(err))
}
