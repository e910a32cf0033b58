package service

import (
	"encoding/json"
	"reflect"
	"testing"
)

func parseUpstream(t *testing.T, raw string) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal([]byte(raw), &body); err != nil {
		t.Fatalf("bad test fixture: %v", err)
	}
	return body
}

func TestExtractTranslation(t *testing.T) {
	body := parseUpstream(t, `{"result":{"texts":[{"text":"Hallo","alternatives":[{"text":"Hi"},{"text":"Hey"}]}]}}`)

	data, alternatives := extractTranslation(body)
	if data != "Hallo" {
		t.Errorf("data = %q, want Hallo", data)
	}
	if !reflect.DeepEqual(alternatives, []string{"Hi", "Hey"}) {
		t.Errorf("alternatives = %v, want [Hi Hey]", alternatives)
	}
}

func TestExtractTranslation_EmptyResult(t *testing.T) {
	data, alternatives := extractTranslation(parseUpstream(t, `{"result":{}}`))
	if data != "" {
		t.Errorf("data = %q, want empty", data)
	}
	if alternatives == nil || len(alternatives) != 0 {
		t.Errorf("alternatives = %v, want empty slice", alternatives)
	}
}

func TestExtractTranslation_DegradedShapes(t *testing.T) {
	cases := []string{
		`{}`,
		`{"result":null}`,
		`{"result":{"texts":[]}}`,
		`{"result":{"texts":"oops"}}`,
		`{"result":{"texts":[42]}}`,
		`{"result":{"texts":[{"text":7}]}}`,
	}
	for _, raw := range cases {
		data, alternatives := extractTranslation(parseUpstream(t, raw))
		if data != "" || len(alternatives) != 0 {
			t.Errorf("fixture %s: got data=%q alternatives=%v, want defaults", raw, data, alternatives)
		}
	}
}

func TestExtractTranslation_PartialAlternatives(t *testing.T) {
	// text 缺失或类型不对的备选被跳过,顺序保持原样
	body := parseUpstream(t, `{"result":{"texts":[{"text":"Hallo","alternatives":[{"text":"Hi"},{"note":"?"},{"text":3},{"text":"Hey"}]}]}}`)

	data, alternatives := extractTranslation(body)
	if data != "Hallo" {
		t.Errorf("data = %q, want Hallo", data)
	}
	if !reflect.DeepEqual(alternatives, []string{"Hi", "Hey"}) {
		t.Errorf("alternatives = %v, want [Hi Hey]", alternatives)
	}
}
