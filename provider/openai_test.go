package provider

import (
	"errors"
	"testing"
)

func TestGenerateSchema_StrictCompliance(t *testing.T) {
	schema := reflectionSchema

	if schema["type"] != "object" {
		t.Fatalf("expected object schema, got %v", schema["type"])
	}
	if ap, ok := schema["additionalProperties"].(bool); !ok || ap {
		t.Fatalf("expected additionalProperties=false, got %v", schema["additionalProperties"])
	}

	props, ok := schema["properties"].(map[string]interface{})
	if !ok {
		t.Fatal("missing properties")
	}
	for _, field := range []string{"summary", "dominant_moods", "gentle_nudge"} {
		if _, ok := props[field]; !ok {
			t.Errorf("missing property %q", field)
		}
	}

	required, ok := schema["required"].([]string)
	if !ok || len(required) != len(props) {
		t.Fatalf("strict mode requires every property, got %v", schema["required"])
	}
}

func TestDecodeModelJSON_Plain(t *testing.T) {
	var out struct {
		Summary string `json:"summary"`
	}
	if err := decodeModelJSON(`{"summary":"ok"}`, &out); err != nil {
		t.Fatal(err)
	}
	if out.Summary != "ok" {
		t.Fatalf("got %q", out.Summary)
	}
}

func TestDecodeModelJSON_WrappedInText(t *testing.T) {
	var out struct {
		Summary string `json:"summary"`
	}
	input := "Here is the JSON you asked for:\n{\"summary\":\"ok\"}\nHope that helps!"
	if err := decodeModelJSON(input, &out); err != nil {
		t.Fatal(err)
	}
	if out.Summary != "ok" {
		t.Fatalf("got %q", out.Summary)
	}
}

func TestDecodeModelJSON_EmptyAndGarbage(t *testing.T) {
	var out map[string]interface{}
	if err := decodeModelJSON("", &out); err == nil {
		t.Fatal("expected error for empty output")
	}
	if err := decodeModelJSON("no json here", &out); err == nil {
		t.Fatal("expected error for non-JSON output")
	}
}

func TestErrorClassifiers(t *testing.T) {
	if !isRateLimitError(errors.New("HTTP 429 Too Many Requests")) {
		t.Error("429 not classified as rate limit")
	}
	if !isRateLimitError(errors.New("rate limit exceeded")) {
		t.Error("rate limit text not classified")
	}
	if isRateLimitError(nil) || isServerError(nil) {
		t.Error("nil must not classify")
	}
	if !isServerError(errors.New("500 Internal Server Error")) {
		t.Error("500 not classified as server error")
	}
	if isServerError(errors.New("400 bad request")) || isRateLimitError(errors.New("400 bad request")) {
		t.Error("400 must not classify")
	}
}
