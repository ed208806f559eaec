package mcp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/core/domain"
)

// ConvertInput is the input schema for the convert tool.
type ConvertInput struct {
	Feature    string   `json:"feature" jsonschema:"the conversion feature to run (e.g. images-to-pdf, text-to-pdf, merge-pdf)"`
	Paths      []string `json:"paths" jsonschema:"ordered list of local file paths to convert"`
	OutputPath string   `json:"output_path,omitempty" jsonschema:"where to write the resulting PDF (defaults next to the first input)"`
}

// ConvertOutput is the output schema for the convert tool.
type ConvertOutput struct {
	OutputPath string              `json:"output_path"`
	Converted  int                 `json:"converted"`
	Skipped    int                 `json:"skipped"`
	Items      []ItemOutcomeOutput `json:"items"`
}

// ItemOutcomeOutput reports the per-item result of a conversion.
type ItemOutcomeOutput struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// ListFeaturesOutput is the output schema for the list_features tool.
type ListFeaturesOutput struct {
	Features []FeatureOutput `json:"features"`
}

// FeatureOutput describes a single conversion feature.
type FeatureOutput struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert an ordered batch of local files into a single PDF",
	}, s.handleConvert)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_features",
		Description: "List the available conversion features",
	}, s.handleListFeatures)
}

// handleConvert handles the convert tool invocation.
func (s *Server) handleConvert(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ConvertInput,
) (*mcp.CallToolResult, ConvertOutput, error) {
	if len(input.Paths) == 0 {
		return nil, ConvertOutput{}, domain.ErrEmptyBatch
	}

	feature := domain.Feature(input.Feature)
	if input.Feature == "" {
		feature = domain.FeatureImagesToPDF
	}

	batch := make([]domain.InputItem, 0, len(input.Paths))
	for _, path := range input.Paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, ConvertOutput{}, fmt.Errorf("reading %s: %w", path, err)
		}
		batch = append(batch, domain.NewInputItem(filepath.Base(path), "", content))
	}

	result, err := s.ports.Converter.Convert(ctx, feature, batch, nil)
	if err != nil {
		return nil, ConvertOutput{}, err
	}

	outputPath := input.OutputPath
	if outputPath == "" {
		dir := filepath.Dir(input.Paths[0])
		outputPath = filepath.Join(dir, domain.DefaultOutputName(feature, batch[0].Name))
	}

	if err := os.WriteFile(outputPath, result.PDF, 0o644); err != nil {
		return nil, ConvertOutput{}, fmt.Errorf("writing output: %w", err)
	}

	output := ConvertOutput{
		OutputPath: outputPath,
		Converted:  result.Converted(),
		Skipped:    result.Skipped(),
		Items:      make([]ItemOutcomeOutput, len(result.Outcomes)),
	}

	for i := range result.Outcomes {
		output.Items[i] = ItemOutcomeOutput{
			Name:   result.Outcomes[i].Name,
			Status: string(result.Outcomes[i].Status),
			Reason: result.Outcomes[i].Reason,
		}
	}

	return nil, output, nil
}

// handleListFeatures handles the list_features tool invocation.
func (s *Server) handleListFeatures(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, ListFeaturesOutput, error) {
	infos := s.ports.Converter.Features()

	output := ListFeaturesOutput{
		Features: make([]FeatureOutput, len(infos)),
	}

	for i := range infos {
		output.Features[i] = FeatureOutput{
			ID:          string(infos[i].ID),
			Title:       infos[i].Title,
			Description: infos[i].Description,
			Available:   infos[i].Available,
		}
	}

	return nil, output, nil
}
