// Package provider implements the language-model collaborators on the
// OpenAI Responses API.
package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"

	mindsight "github.com/mindsight-labs/mindsight-sdk-go"
)

// Client wraps an OpenAI client for the companion's three model calls:
// chat completion, translation, and the structured weekly reflection.
// Its Complete and Translate methods satisfy mindsight.CompleteFunc and
// mindsight.TranslateFunc.
type Client struct {
	client *openai.Client
	model  string
}

// New creates a provider client. model is the Responses API model name.
func New(apiKey, model string) *Client {
	c := openai.NewClient(option.WithAPIKey(apiKey))
	return &Client{client: &c, model: model}
}

// Complete produces the companion's next chat reply.
func (c *Client) Complete(ctx context.Context, system string, messages []mindsight.ChatMessage) (string, error) {
	if len(messages) == 0 {
		return "", errors.New("provider: empty message history")
	}

	items := make([]responses.ResponseInputItemUnionParam, 0, len(messages))
	for _, m := range messages {
		role := responses.EasyInputMessageRoleUser
		if m.Role == "assistant" {
			role = responses.EasyInputMessageRoleAssistant
		}
		items = append(items, responses.ResponseInputItemParamOfMessage(m.Content, role))
	}

	params := responses.ResponseNewParams{
		Model:           c.model,
		MaxOutputTokens: openai.Int(400),
		Instructions:    openai.String(system),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: items,
		},
	}

	resp, err := callWithRetry(ctx, c.client, params)
	if err != nil {
		return "", err
	}
	out := strings.TrimSpace(resp.OutputText())
	if out == "" {
		return "", errors.New("provider: empty model output")
	}
	return out, nil
}

// Translate renders text in the target language. Callers treat any error as
// "keep the original text".
func (c *Client) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	prompt := fmt.Sprintf("Translate this text to %s. Reply with the translation only.\n\n%s", targetLanguage, text)

	params := responses.ResponseNewParams{
		Model:           c.model,
		MaxOutputTokens: openai.Int(600),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(prompt, responses.EasyInputMessageRoleUser),
			},
		},
	}

	resp, err := callWithRetry(ctx, c.client, params)
	if err != nil {
		return "", err
	}
	out := strings.TrimSpace(resp.OutputText())
	if out == "" {
		return "", errors.New("provider: empty translation")
	}
	return out, nil
}

var reflectionSchema = generateSchema[mindsight.WeeklyReflection]()

// Reflect produces a structured weekly reflection over the given entries
// using strict JSON-schema output.
func (c *Client) Reflect(ctx context.Context, entries []mindsight.MoodEntry) (mindsight.WeeklyReflection, error) {
	format := responses.ResponseFormatTextConfigUnionParam{
		OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
			Name:        "WeeklyReflection",
			Schema:      reflectionSchema,
			Strict:      openai.Bool(true),
			Description: openai.String("Weekly mood reflection JSON"),
			Type:        "json_schema",
		},
	}

	params := responses.ResponseNewParams{
		Model:           c.model,
		MaxOutputTokens: openai.Int(800),
		Instructions:    openai.String(mindsight.ReflectionInstructions),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(mindsight.BuildReflectionInput(entries), responses.EasyInputMessageRoleUser),
			},
		},
		Text: responses.ResponseTextConfigParam{
			Format: format,
		},
	}

	resp, err := callWithRetry(ctx, c.client, params)
	if err != nil {
		return mindsight.WeeklyReflection{}, err
	}

	var out mindsight.WeeklyReflection
	if err := decodeModelJSON(resp.OutputText(), &out); err != nil {
		return mindsight.WeeklyReflection{}, fmt.Errorf("unmarshal reflection: %w", err)
	}
	out.Summary = strings.TrimSpace(out.Summary)
	out.GentleNudge = strings.TrimSpace(out.GentleNudge)
	return out, nil
}

// callWithRetry retries rate-limit and server errors with a short backoff.
func callWithRetry(ctx context.Context, client *openai.Client, params responses.ResponseNewParams) (*responses.Response, error) {
	const maxRetries = 3
	waitTimes := []time.Duration{2 * time.Second, 5 * time.Second, 10 * time.Second}

	for attempt := 0; attempt < maxRetries; attempt++ {
		resp, err := client.Responses.New(ctx, params)
		if err != nil {
			if (isRateLimitError(err) || isServerError(err)) && attempt < maxRetries-1 {
				select {
				case <-time.After(waitTimes[attempt]):
					continue
				case <-ctx.Done():
					return nil, ctx.Err()
				}
			}
			return nil, err
		}
		return resp, nil
	}
	return nil, fmt.Errorf("failed after %d attempts due to OpenAI API issues", maxRetries)
}

func isRateLimitError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "429") ||
		strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "too many requests")
}

func isServerError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "500") ||
		strings.Contains(errStr, "internal server error") ||
		strings.Contains(errStr, "server_error")
}

// decodeModelJSON unmarshals JSON from a model response, tolerating extra
// text around the object.
func decodeModelJSON(outputText string, v any) error {
	s := strings.TrimSpace(outputText)
	if s == "" {
		return errors.New("empty model output")
	}

	if err := json.Unmarshal([]byte(s), v); err == nil {
		return nil
	}

	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start == -1 || end == -1 || end <= start {
		return fmt.Errorf("no JSON object found in model output (len=%d)", len(s))
	}
	if err := json.Unmarshal([]byte(s[start:end+1]), v); err != nil {
		return fmt.Errorf("unmarshal extracted JSON: %w", err)
	}
	return nil
}

// generateSchema reflects T into a JSON schema the Responses API accepts in
// strict mode.
func generateSchema[T any]() map[string]interface{} {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	var v T
	schema := reflector.Reflect(v)

	b, err := schema.MarshalJSON()
	if err != nil {
		panic(err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		panic(err)
	}
	ensureStrictCompliance(m)
	return m
}

// ensureStrictCompliance rewrites a schema in place to satisfy the strict
// output rules: every object closes additionalProperties and requires all
// of its properties, recursively.
func ensureStrictCompliance(schema map[string]interface{}) {
	if t, ok := schema["type"].(string); ok && t == "object" {
		schema["additionalProperties"] = false
		if props, ok := schema["properties"].(map[string]interface{}); ok {
			required := make([]string, 0, len(props))
			for name := range props {
				required = append(required, name)
			}
			if len(required) > 0 {
				schema["required"] = required
			}
		}
	}

	if props, ok := schema["properties"].(map[string]interface{}); ok {
		for _, p := range props {
			if pm, ok := p.(map[string]interface{}); ok {
				ensureStrictCompliance(pm)
			}
		}
	}
	if items, ok := schema["items"].(map[string]interface{}); ok {
		ensureStrictCompliance(items)
	}
	if ap, ok := schema["additionalProperties"].(map[string]interface{}); ok {
		ensureStrictCompliance(ap)
	}
}
