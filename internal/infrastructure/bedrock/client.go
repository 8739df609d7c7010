package bedrock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/document"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/kurochkinivan/damage_assessor/internal/domain"
)

const (
	toolName = "record_damage_assessment"

	instruction = "You are an automotive insurance claims assessor. Analyze this vehicle damage image. " +
		"Identify the vehicle make, model, and color. Describe all visible damage in detail. " +
		"Provide a repair cost estimate range in USD."
)

var (
	// ErrModelNotConfigured is permanent until the configuration is fixed.
	ErrModelNotConfigured = errors.New("inference model is not configured: BEDROCK_MODEL_ID is not set")
	ErrUnsupportedImage   = errors.New("image format is not supported by the inference model")
	// ErrProvider wraps transport and provider failures, these may succeed on a later attempt.
	ErrProvider = errors.New("inference provider error")
	// ErrSchemaMismatch means the model answered but its output is not a valid assessment.
	ErrSchemaMismatch = errors.New("model output does not match the assessment schema")
)

var imageFormats = map[string]types.ImageFormat{
	"image/jpeg": types.ImageFormatJpeg,
	"image/png":  types.ImageFormatPng,
	"image/gif":  types.ImageFormatGif,
	"image/webp": types.ImageFormatWebp,
}

type Converser interface {
	Converse(
		ctx context.Context,
		params *bedrockruntime.ConverseInput,
		optFns ...func(*bedrockruntime.Options),
	) (*bedrockruntime.ConverseOutput, error)
}

type Client struct {
	converser Converser
	modelID   string
	timeout   time.Duration
}

func New(converser Converser, modelID string, timeout time.Duration) *Client {
	return &Client{
		converser: converser,
		modelID:   modelID,
		timeout:   timeout,
	}
}

func NewFromConfig(awsCfg aws.Config, modelID string, timeout time.Duration) *Client {
	return New(bedrockruntime.NewFromConfig(awsCfg), modelID, timeout)
}

// Assess asks the model for a damage assessment of the image. It never retries.
func (c *Client) Assess(ctx context.Context, image []byte, contentType string) (*domain.DamageAssessment, error) {
	if c.modelID == "" {
		return nil, ErrModelNotConfigured
	}

	format, ok := imageFormats[contentType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedImage, contentType)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	out, err := c.converser.Converse(ctx, c.buildInput(image, format))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProvider, err)
	}

	return decodeAssessment(out)
}

func (c *Client) buildInput(image []byte, format types.ImageFormat) *bedrockruntime.ConverseInput {
	return &bedrockruntime.ConverseInput{
		ModelId: aws.String(c.modelID),
		Messages: []types.Message{
			{
				Role: types.ConversationRoleUser,
				Content: []types.ContentBlock{
					&types.ContentBlockMemberImage{
						Value: types.ImageBlock{
							Format: format,
							Source: &types.ImageSourceMemberBytes{Value: image},
						},
					},
					&types.ContentBlockMemberText{Value: instruction},
				},
			},
		},
		InferenceConfig: &types.InferenceConfiguration{
			MaxTokens:   aws.Int32(1024),
			Temperature: aws.Float32(0.1),
		},
		ToolConfig: &types.ToolConfiguration{
			Tools: []types.Tool{
				&types.ToolMemberToolSpec{
					Value: types.ToolSpecification{
						Name:        aws.String(toolName),
						Description: aws.String("Record the structured damage assessment of the vehicle in the image."),
						InputSchema: &types.ToolInputSchemaMemberJson{
							Value: document.NewLazyDocument(assessmentSchema()),
						},
					},
				},
			},
			ToolChoice: &types.ToolChoiceMemberTool{
				Value: types.SpecificToolChoice{Name: aws.String(toolName)},
			},
		},
	}
}

func decodeAssessment(out *bedrockruntime.ConverseOutput) (*domain.DamageAssessment, error) {
	msg, ok := out.Output.(*types.ConverseOutputMemberMessage)
	if !ok {
		return nil, fmt.Errorf("%w: response has no message", ErrSchemaMismatch)
	}

	for _, block := range msg.Value.Content {
		toolUse, ok := block.(*types.ContentBlockMemberToolUse)
		if !ok || aws.ToString(toolUse.Value.Name) != toolName || toolUse.Value.Input == nil {
			continue
		}

		raw, err := toolUse.Value.Input.MarshalSmithyDocument()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSchemaMismatch, err)
		}

		var assessment domain.DamageAssessment
		if err := json.Unmarshal(raw, &assessment); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSchemaMismatch, err)
		}

		if err := assessment.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSchemaMismatch, err)
		}

		return &assessment, nil
	}

	return nil, fmt.Errorf("%w: model did not call %s (stop reason %q)", ErrSchemaMismatch, toolName, out.StopReason)
}
