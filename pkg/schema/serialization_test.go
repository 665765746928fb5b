package schema_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/mamdani/internal/testutils"
	"github.com/aretw0/mamdani/pkg/schema"
)

func TestDecodeFile_Formats(t *testing.T) {
	for _, file := range []string{"greenhouse.toml", "greenhouse.json"} {
		t.Run(file, func(t *testing.T) {
			doc, err := schema.DecodeFile(filepath.Join("testdata", file))
			require.NoError(t, err)
			require.NoError(t, schema.Validate(doc))

			assert.Equal(t, "greenhouse", doc.Name)
			assert.Equal(t, []string{"light", "soil"}, doc.Inputs)
			require.Len(t, doc.Variables, 3)
			assert.Equal(t, schema.CategorySpec{Name: "Clair", Min: 60, Max: 100}, doc.Variables[0].Categories[1])
			require.Len(t, doc.Controllers, 1)
			assert.Equal(t, schema.RuleSpec{A: "Clair", B: "Sec", Then: "Ouvert"}, doc.Controllers[0].Rules[0])
			assert.Equal(t, []string{"light", "soil"}, doc.Stages[0].From)
		})
	}
}

func TestDecodeFile_Missing(t *testing.T) {
	_, err := schema.DecodeFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecode_RejectsUnknownFields(t *testing.T) {
	_, err := schema.Decode([]byte("name: x\nvariabels: []\n"), schema.FormatYAML)
	assert.Error(t, err)

	_, err = schema.Decode([]byte(`{"name": "x", "stagez": []}`), schema.FormatJSON)
	assert.Error(t, err)

	_, err = schema.Decode([]byte("name: x"), schema.Format("xml"))
	assert.Error(t, err)
}

func TestEncode_TOMLKeepsDocument(t *testing.T) {
	doc := testutils.IrrigationDocument(t)

	data, err := schema.Encode(doc, schema.FormatTOML)
	require.NoError(t, err)

	back, err := schema.Decode(data, schema.FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, doc, back)
}

func TestFromMap(t *testing.T) {
	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(`{
		"name": "tiny",
		"variables": [{"name": "x", "categories": [{"name": "lo", "min": "0", "max": 1}]}]
	}`), &raw))

	doc, err := schema.FromMap(raw)
	require.NoError(t, err)
	assert.Equal(t, "tiny", doc.Name)
	assert.Equal(t, 0.0, doc.Variables[0].Categories[0].Min)
	assert.Equal(t, 1.0, doc.Variables[0].Categories[0].Max)

	_, err = schema.FromMap(map[string]any{"name": "x", "bogus": true})
	assert.Error(t, err)
}

func TestFormats(t *testing.T) {
	assert.Equal(t, schema.FormatTOML, schema.FormatFromPath("a/b.TOML"))
	assert.Equal(t, schema.FormatJSON, schema.FormatFromPath("b.json"))
	assert.Equal(t, schema.FormatYAML, schema.FormatFromPath("b.yml"))

	f, err := schema.ParseFormat("yml")
	require.NoError(t, err)
	assert.Equal(t, schema.FormatYAML, f)
	_, err = schema.ParseFormat("ini")
	assert.Error(t, err)
}
