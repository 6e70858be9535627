package parse

import (
	"encoding/json"
	"testing"
)

func TestStripCodeFences(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"no fence", `{"vendor":"Acme"}`, `{"vendor":"Acme"}`},
		{"plain fence", "```\n{\"vendor\":\"Acme\"}\n```", `{"vendor":"Acme"}`},
		{"json tag", "```json\n{\"vendor\":\"Acme\"}\n```", `{"vendor":"Acme"}`},
		{"surrounding whitespace", "  ```json\n{}\n```  ", "{}"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripCodeFences(tc.raw); got != tc.want {
				t.Errorf("StripCodeFences(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestStructured(t *testing.T) {
	raw := "```json\n{\"vendor\":\"City Cabs\",\"cost\":45.5}\n```"
	obj, err := Structured(raw)
	if err != nil {
		t.Fatalf("Structured returned error: %v", err)
	}
	if obj["vendor"] != "City Cabs" {
		t.Errorf("vendor = %v, want City Cabs", obj["vendor"])
	}
	n, ok := obj["cost"].(json.Number)
	if !ok {
		t.Fatalf("cost is %T, want json.Number", obj["cost"])
	}
	if f, _ := n.Float64(); f != 45.5 {
		t.Errorf("cost = %v, want 45.5", f)
	}
}

func TestStructuredRejectsNonObjects(t *testing.T) {
	for _, raw := range []string{"", "not json at all", `"a string"`, `[1,2,3]`, "42"} {
		if _, err := Structured(raw); err == nil {
			t.Errorf("Structured(%q) expected error, got nil", raw)
		}
	}
}
