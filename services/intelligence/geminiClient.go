package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/pros100kyiv/HUBbase-sub001/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const maxToolRounds = 6

const systemPrompt = `You are the assistant of a salon's front desk.
You answer questions about the salon's schedule, masters, clients and
appointments. Use the provided tools to read real data before answering;
never invent schedules or bookings. Answer briefly, in the language the
user writes in. Dates are YYYY-MM-DD, times are HH:MM.`

type GeminiClient struct {
	model *genai.GenerativeModel
}

func NewGeminiClient(apiKey string) *GeminiClient {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		panic(fmt.Sprintf("failed to create Gemini client: %v", err))
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	model.Tools = Declarations()
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}
	return &GeminiClient{model: model}
}

// ToolExec runs one tool call and returns its result payload.
type ToolExec func(name string, args map[string]any) (map[string]any, error)

// Chat sends one user message on top of the stored history and resolves any
// tool calls the model makes, up to maxToolRounds rounds. It returns the
// final text and the tool calls that were executed.
func (g *GeminiClient) Chat(ctx context.Context, history []models.AIMessage, text string, exec ToolExec) (string, []models.AIToolCall, error) {
	session := g.model.StartChat()
	session.History = toGenaiHistory(history)

	var calls []models.AIToolCall

	resp, err := session.SendMessage(ctx, genai.Text(text))
	if err != nil {
		return "", nil, fmt.Errorf("gemini chat error: %w", err)
	}

	for round := 0; round < maxToolRounds; round++ {
		fns := functionCalls(resp)
		if len(fns) == 0 {
			break
		}
		parts := make([]genai.Part, 0, len(fns))
		for _, fc := range fns {
			result, err := exec(fc.Name, fc.Args)
			if err != nil {
				result = map[string]any{"error": err.Error()}
			}
			calls = append(calls, models.AIToolCall{Name: fc.Name, Args: fc.Args, Result: result})
			parts = append(parts, genai.FunctionResponse{Name: fc.Name, Response: result})
		}
		resp, err = session.SendMessage(ctx, parts...)
		if err != nil {
			return "", calls, fmt.Errorf("gemini tool response error: %w", err)
		}
	}

	return responseText(resp), calls, nil
}

func toGenaiHistory(history []models.AIMessage) []*genai.Content {
	out := make([]*genai.Content, 0, len(history))
	for _, m := range history {
		role := "user"
		if m.Role == "model" {
			role = "model"
		}
		out = append(out, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(m.Text)},
		})
	}
	return out
}

func functionCalls(resp *genai.GenerateContentResponse) []genai.FunctionCall {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil
	}
	var fns []genai.FunctionCall
	for _, part := range resp.Candidates[0].Content.Parts {
		if fc, ok := part.(genai.FunctionCall); ok {
			fns = append(fns, fc)
		}
	}
	return fns
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}
