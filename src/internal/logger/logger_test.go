package logger

import (
	"testing"
)

func TestSanitizePayloadMasksCredentials(t *testing.T) {
	payload := map[string]any{
		"username": "jane01",
		"password": "secret123",
		"nested": map[string]any{
			"idNumber": "9001015009087",
			"Token":    "abc.def.ghi",
		},
	}

	got, ok := SanitizePayload(payload).(map[string]any)
	if !ok {
		t.Fatalf("expected map payload, got %T", SanitizePayload(payload))
	}
	if got["username"] != "jane01" {
		t.Fatalf("expected username to be kept, got %v", got["username"])
	}
	if got["password"] != "******" {
		t.Fatalf("expected password to be masked, got %v", got["password"])
	}

	nested := got["nested"].(map[string]any)
	if nested["idNumber"] != "******" || nested["Token"] != "******" {
		t.Fatalf("expected nested secrets to be masked, got %v", nested)
	}
}

func TestSanitizePayloadUnmarshalableValue(t *testing.T) {
	if got := SanitizePayload(make(chan int)); got != "<unavailable>" {
		t.Fatalf("expected <unavailable>, got %v", got)
	}
}
