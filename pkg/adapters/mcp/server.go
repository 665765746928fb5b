package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/mamdani/pkg/controller"
	"github.com/aretw0/mamdani/pkg/domain"
	"github.com/aretw0/mamdani/pkg/ports"
	"github.com/aretw0/mamdani/pkg/schema"
)

const documentURI = "mamdani://document"

// FuzzifyArgs are the arguments of the fuzzify tool.
type FuzzifyArgs struct {
	Variable string  `json:"variable"`
	Value    float64 `json:"value"`
}

// FuzzifyResult aligns with the HTTP response and provides a unified structure across adapters.
type FuzzifyResult struct {
	Variable   string            `json:"variable" jsonschema_description:"Variable that was fuzzified"`
	Value      float64           `json:"value" jsonschema_description:"Crisp input value"`
	Membership domain.Membership `json:"membership" jsonschema_description:"Degree of membership per category"`
}

// InferArgs are the arguments of the infer tool.
type InferArgs struct {
	Controller string  `json:"controller"`
	A          float64 `json:"a"`
	B          float64 `json:"b"`
	Explain    bool    `json:"explain,omitempty"`
}

// InferResult is returned by the infer tool.
type InferResult struct {
	Controller  string                  `json:"controller" jsonschema_description:"Controller that was applied"`
	Membership  domain.Membership       `json:"membership" jsonschema_description:"Degree of membership per output category"`
	Activations []controller.Activation `json:"activations,omitempty" jsonschema_description:"Rules that fired, when requested"`
}

// EvaluateArgs are the arguments of the evaluate tool.
type EvaluateArgs struct {
	Inputs map[string]float64 `json:"inputs"`
}

// Server wraps the inference engine and exposes it as an MCP Server.
type Server struct {
	engine    ports.InferenceEngine
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine ports.InferenceEngine, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		engine:    engine,
		logger:    logger,
		mcpServer: server.NewMCPServer("mamdani-mcp", version),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	// TOOL: fuzzify
	fuzzifyTool := mcp.NewTool("fuzzify",
		mcp.WithDescription("Convert a crisp value into degrees of membership of a variable's categories."),
		mcp.WithString("variable", mcp.Required(), mcp.Description("Variable name")),
		mcp.WithNumber("value", mcp.Required(), mcp.Description("Crisp value inside the variable's domain")),
		mcp.WithOutputSchema[FuzzifyResult](),
	)
	s.mcpServer.AddTool(fuzzifyTool, mcp.NewStructuredToolHandler(s.handleFuzzify))

	// TOOL: infer
	inferTool := mcp.NewTool("infer",
		mcp.WithDescription("Apply a rule controller to two crisp inputs using max-min inference."),
		mcp.WithString("controller", mcp.Required(), mcp.Description("Controller name")),
		mcp.WithNumber("a", mcp.Required(), mcp.Description("Crisp value of the first input variable")),
		mcp.WithNumber("b", mcp.Required(), mcp.Description("Crisp value of the second input variable")),
		mcp.WithBoolean("explain", mcp.Description("Also list the rules that fired")),
		mcp.WithOutputSchema[InferResult](),
	)
	s.mcpServer.AddTool(inferTool, mcp.NewStructuredToolHandler(s.handleInfer))

	// TOOL: evaluate
	evaluateTool := mcp.NewTool("evaluate",
		mcp.WithDescription("Run the full stage pipeline and return the crisp output of every stage."),
		mcp.WithObject("inputs", mcp.Required(), mcp.Description("Map of pipeline input name to crisp value")),
		mcp.WithOutputSchema[domain.Record](),
	)
	s.mcpServer.AddTool(evaluateTool, mcp.NewStructuredToolHandler(s.handleEvaluate))

	// TOOL: describe
	s.mcpServer.AddTool(mcp.NewTool("describe",
		mcp.WithDescription("Get the active pipeline document: variables, controllers and stages."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		jsonBytes, err := json.Marshal(s.engine.Document())
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("describe failed: %v", err)), nil
		}
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	// TOOL: validate
	s.mcpServer.AddTool(mcp.NewTool("validate",
		mcp.WithDescription("Check a pipeline document without loading it. Reports every problem found."),
		mcp.WithObject("document", mcp.Required(), mcp.Description("Pipeline document: name, inputs, variables, controllers and stages")),
	), s.handleValidate)
}

func (s *Server) handleValidate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, ok := request.GetArguments()["document"].(map[string]any)
	if !ok {
		return mcp.NewToolResultError("document must be an object"), nil
	}
	doc, err := schema.FromMap(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := schema.Validate(doc); err != nil {
		errs := schema.ValidationErrors(err)
		if len(errs) == 0 {
			errs = []error{err}
		}
		lines := make([]string, len(errs))
		for i, e := range errs {
			lines[i] = "- " + e.Error()
		}
		s.logger.Debug("MCP validate rejected document", "name", doc.Name, "errors", len(errs))
		return mcp.NewToolResultError(fmt.Sprintf("document %q is invalid:\n%s", doc.Name, strings.Join(lines, "\n"))), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("document %q is valid (%d variables, %d controllers, %d stages)",
		doc.Name, len(doc.Variables), len(doc.Controllers), len(doc.Stages))), nil
}

func (s *Server) handleFuzzify(ctx context.Context, request mcp.CallToolRequest, args FuzzifyArgs) (FuzzifyResult, error) {
	m, err := s.engine.Fuzzify(ctx, args.Variable, args.Value)
	if err != nil {
		s.logger.Debug("MCP fuzzify failed", "variable", args.Variable, "err", err)
		return FuzzifyResult{}, fmt.Errorf("fuzzify failed: %w", err)
	}
	return FuzzifyResult{Variable: args.Variable, Value: args.Value, Membership: m}, nil
}

func (s *Server) handleInfer(ctx context.Context, request mcp.CallToolRequest, args InferArgs) (InferResult, error) {
	m, err := s.engine.Infer(ctx, args.Controller, args.A, args.B)
	if err != nil {
		s.logger.Debug("MCP infer failed", "controller", args.Controller, "err", err)
		return InferResult{}, fmt.Errorf("infer failed: %w", err)
	}
	res := InferResult{Controller: args.Controller, Membership: m}
	if args.Explain {
		res.Activations, err = s.engine.Explain(ctx, args.Controller, args.A, args.B)
		if err != nil {
			return InferResult{}, fmt.Errorf("explain failed: %w", err)
		}
	}
	return res, nil
}

func (s *Server) handleEvaluate(ctx context.Context, request mcp.CallToolRequest, args EvaluateArgs) (domain.Record, error) {
	rec, err := s.engine.Evaluate(ctx, args.Inputs)
	if err != nil {
		s.logger.Debug("MCP evaluate failed", "err", err)
		return domain.Record{}, fmt.Errorf("evaluate failed: %w", err)
	}
	return *rec, nil
}

func (s *Server) registerResources() {
	// EXPOSE: mamdani://document
	s.mcpServer.AddResource(mcp.NewResource(documentURI, "Active Pipeline Document",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.engine.Document())
		if err != nil {
			return nil, fmt.Errorf("failed to encode document: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      documentURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
