package query

import (
	"testing"
)

func TestValidate(t *testing.T) {
	ev := NewEvaluator()

	if err := ev.Validate(""); err != nil {
		t.Fatalf("empty expression should validate: %v", err)
	}
	if err := ev.Validate("[].id"); err != nil {
		t.Fatalf("valid expression rejected: %v", err)
	}
	if err := ev.Validate("[?broken"); err == nil {
		t.Fatal("expected error for malformed expression")
	}
}

func TestEvaluateProjectsJobFields(t *testing.T) {
	ev := NewEvaluator()

	jobs := []any{
		map[string]any{"id": "1", "attributes": map[string]any{"name": "fetch-price"}},
		map[string]any{"id": "2", "attributes": map[string]any{"name": "submit-answer"}},
	}

	result, err := ev.Evaluate("[].attributes.name", jobs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names, ok := result.([]any)
	if !ok || len(names) != 2 {
		t.Fatalf("unexpected result: %#v", result)
	}
	if names[0] != "fetch-price" || names[1] != "submit-answer" {
		t.Fatalf("unexpected projection: %#v", names)
	}
}

func TestEvaluateFilter(t *testing.T) {
	ev := NewEvaluator()

	jobs := []any{
		map[string]any{"id": "1", "attributes": map[string]any{"name": "fetch-price"}},
		map[string]any{"id": "2", "attributes": map[string]any{"name": "submit-answer"}},
	}

	result, err := ev.Evaluate(`[?attributes.name=='fetch-price'].id`, jobs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ids, ok := result.([]any)
	if !ok || len(ids) != 1 || ids[0] != "1" {
		t.Fatalf("unexpected filter result: %#v", result)
	}
}
