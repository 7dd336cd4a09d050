package adapter

import (
	"context"
	"fmt"

	"github.com/jinford/catan-llm-player/internal/module/llm/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
)

const (
	// DefaultBaseURL はOpenRouterのチャット補完エンドポイント
	DefaultBaseURL = "https://openrouter.ai/api/v1"
)

// OpenRouterClient はOpenRouter経由でチャット補完APIを呼び出すクライアント
// リトライはプレイヤー側が試行回数として管理するため、ここでは行わない
type OpenRouterClient struct {
	client openai.Client
}

// NewOpenRouterClient はAPIキーとベースURLを指定してOpenRouterClientを作成する
func NewOpenRouterClient(apiKey, baseURL string) (*OpenRouterClient, error) {
	if apiKey == "" {
		return nil, domain.ErrAPIKeyNotSet
	}

	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
	)

	return &OpenRouterClient{
		client: client,
	}, nil
}

// Complete はチャット補完APIを1回呼び出し、応答を返す
// domain.Clientインターフェースを実装
func (c *OpenRouterClient) Complete(ctx context.Context, req domain.CompletionRequest) (domain.CompletionResponse, error) {
	if req.Model == "" {
		return domain.CompletionResponse{}, fmt.Errorf("%w: model is required", domain.ErrInvalidRequest)
	}

	// ChatCompletion APIパラメータの構築
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(req.SystemPrompt))
	}
	messages = append(messages, openai.UserMessage(req.Prompt))

	params := openai.ChatCompletionNewParams{
		Model:    shared.ChatModel(req.Model),
		Messages: messages,
	}

	// json_schema形式のレスポンスフォーマットが指定された場合
	if req.ResponseSchema != nil {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{
				Type: "json_schema",
				JSONSchema: shared.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   req.ResponseSchema.Name,
					Strict: openai.Bool(req.ResponseSchema.Strict),
					Schema: req.ResponseSchema.Schema,
				},
			},
		}
	}

	// API呼び出し
	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return domain.CompletionResponse{}, fmt.Errorf("chat completion call failed: %w", err)
	}

	// レスポンスの変換
	// choiceが空でもエラーにせず、空応答の扱いは呼び出し側に委ねる
	choices := make([]domain.Choice, 0, len(completion.Choices))
	for _, choice := range completion.Choices {
		choices = append(choices, domain.Choice{
			Content: choice.Message.Content,
		})
	}

	return domain.CompletionResponse{
		Choices:    choices,
		Model:      string(completion.Model),
		TokensUsed: int(completion.Usage.TotalTokens),
	}, nil
}

// インターフェース実装の確認
var _ domain.Client = (*OpenRouterClient)(nil)
