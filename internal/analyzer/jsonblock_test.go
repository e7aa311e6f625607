package analyzer

import "testing"

func TestExtractJSONBlockFenced(t *testing.T) {
	reply := "Here is my analysis:\n```json\n{\"sentiment\":\"positive\"}\n```\nHope this helps."

	block, ok := ExtractJSONBlock(reply)
	if !ok {
		t.Fatalf("expected fenced block to be found")
	}
	if block != `{"sentiment":"positive"}` {
		t.Fatalf("unexpected block: %q", block)
	}
}

func TestExtractJSONBlockBraceScan(t *testing.T) {
	reply := `Some text {"sentiment":"Neutral","reasoning":"y"} trailing`

	block, ok := ExtractJSONBlock(reply)
	if !ok {
		t.Fatalf("expected brace scan to find block")
	}
	if block != `{"sentiment":"Neutral","reasoning":"y"}` {
		t.Fatalf("unexpected block: %q", block)
	}
}

func TestExtractJSONBlockNoBraces(t *testing.T) {
	if _, ok := ExtractJSONBlock("I cannot answer"); ok {
		t.Fatalf("expected no block for brace-free reply")
	}
}

func TestExtractJSONBlockUnterminatedFence(t *testing.T) {
	reply := "```json\n{\"sentiment\":\"Positive\",\"reasoning\":\"x\"}"

	block, ok := ExtractJSONBlock(reply)
	if !ok {
		t.Fatalf("expected brace-scan fallback for unterminated fence")
	}
	if block != `{"sentiment":"Positive","reasoning":"x"}` {
		t.Fatalf("unexpected block: %q", block)
	}
}

func TestExtractJSONBlockEmpty(t *testing.T) {
	if _, ok := ExtractJSONBlock(""); ok {
		t.Fatalf("expected no block for empty reply")
	}
}
