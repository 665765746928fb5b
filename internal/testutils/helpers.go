package testutils

import (
	_ "embed"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aretw0/mamdani/pkg/schema"
)

//go:embed irrigation.yaml
var irrigationYAML []byte

// IrrigationYAML returns the raw irrigation document used across tests.
func IrrigationYAML() []byte {
	return append([]byte(nil), irrigationYAML...)
}

// IrrigationDocument decodes a fresh copy of the irrigation document.
// It fails the test immediately on error.
func IrrigationDocument(t testing.TB) *schema.Document {
	t.Helper()

	doc, err := schema.Decode(irrigationYAML, schema.FormatYAML)
	require.NoError(t, err, "Failed to decode irrigation document")
	return doc
}

// WriteIrrigation writes the irrigation document into a temp dir and returns its path.
func WriteIrrigation(t testing.TB) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "irrigation.yaml")
	require.NoError(t, os.WriteFile(path, irrigationYAML, 0o644), "Failed to write irrigation document")
	return path
}

// IrrigationInputs are the reference inputs of the irrigation example.
func IrrigationInputs() map[string]float64 {
	return map[string]float64{
		"nappe":       1.75,
		"humidity":    65,
		"temperature": 33,
		"sensibility": 10,
	}
}
