package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/mamdani"
	"github.com/aretw0/mamdani/internal/testutils"
	"github.com/aretw0/mamdani/pkg/domain"
)

func newServer(t *testing.T) *Server {
	t.Helper()
	engine, err := mamdani.New("", mamdani.WithDocument(testutils.IrrigationDocument(t)))
	require.NoError(t, err)
	return NewServer(engine, mamdani.Version, nil)
}

func TestHandleFuzzify(t *testing.T) {
	s := newServer(t)

	res, err := s.handleFuzzify(context.Background(), mcp.CallToolRequest{}, FuzzifyArgs{Variable: "humidity", Value: 50})
	require.NoError(t, err)
	assert.Equal(t, domain.Membership{"Sec": 0.5, "Humide": 0.5}, res.Membership)

	_, err = s.handleFuzzify(context.Background(), mcp.CallToolRequest{}, FuzzifyArgs{Variable: "humidity", Value: -1})
	assert.ErrorIs(t, err, domain.ErrOutOfRange)
}

func TestHandleInfer(t *testing.T) {
	s := newServer(t)

	res, err := s.handleInfer(context.Background(), mcp.CallToolRequest{}, InferArgs{Controller: "spray", A: 65, B: 33, Explain: true})
	require.NoError(t, err)
	assert.Equal(t, domain.Membership{"Moyenne": 0.625, "Longue": 0.375}, res.Membership)
	assert.NotEmpty(t, res.Activations)

	_, err = s.handleInfer(context.Background(), mcp.CallToolRequest{}, InferArgs{Controller: "missing"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHandleEvaluate(t *testing.T) {
	s := newServer(t)

	rec, err := s.handleEvaluate(context.Background(), mcp.CallToolRequest{}, EvaluateArgs{Inputs: testutils.IrrigationInputs()})
	require.NoError(t, err)
	assert.Equal(t, "att_spray", rec.Output)
	assert.InDelta(t, 15.895573627159429, rec.Crisp, 1e-9)
}

func validateRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = "validate"
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text
}

func TestHandleValidate(t *testing.T) {
	s := newServer(t)

	data, err := json.Marshal(testutils.IrrigationDocument(t))
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	res, err := s.handleValidate(context.Background(), validateRequest(map[string]any{"document": doc}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Contains(t, resultText(t, res), `document "irrigation" is valid (5 variables`)
}

func TestHandleValidate_Rejects(t *testing.T) {
	s := newServer(t)

	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{"missing document", map[string]any{}, "document must be an object"},
		{"unknown field", map[string]any{"document": map[string]any{"name": "x", "bogus": 1}}, "bogus"},
		{
			"invalid document",
			map[string]any{"document": map[string]any{
				"name": "tiny",
				"variables": []any{map[string]any{
					"name":       "x",
					"categories": []any{map[string]any{"name": "lo", "min": "5", "max": 0}},
				}},
			}},
			`field "variables[0].categories[0]"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := s.handleValidate(context.Background(), validateRequest(tt.args))
			require.NoError(t, err)
			assert.True(t, res.IsError)
			assert.Contains(t, resultText(t, res), tt.want)
		})
	}
}
