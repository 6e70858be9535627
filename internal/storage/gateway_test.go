package storage

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestObjectPath(t *testing.T) {
	owner := uuid.New()

	p := ObjectPath("receipts", owner, "taxi receipt.jpg")
	if !strings.HasPrefix(p, "receipts/"+owner.String()+"/") {
		t.Errorf("path = %q, want receipts/<owner>/ prefix", p)
	}
	if !strings.HasSuffix(p, "-taxi_receipt.jpg") {
		t.Errorf("path = %q, want sanitized original name as suffix", p)
	}

	// unique per call, even for the same name
	if p2 := ObjectPath("receipts", owner, "taxi receipt.jpg"); p2 == p {
		t.Error("two uploads of the same filename must not collide")
	}
}

func TestObjectPathStripsDirectories(t *testing.T) {
	owner := uuid.New()
	p := ObjectPath("odometer", owner, "../../etc/passwd")
	if strings.Contains(p, "..") {
		t.Errorf("path = %q, must not contain traversal segments", p)
	}
	if !strings.HasSuffix(p, "-passwd") {
		t.Errorf("path = %q, want only the base name kept", p)
	}
}

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"receipt.jpg", "receipt.jpg"},
		{"my receipt (1).png", "my_receipt__1_.png"},
		{"", "upload"},
		{"   ", "upload"},
	}
	for _, tc := range cases {
		if got := sanitizeName(tc.in); got != tc.want {
			t.Errorf("sanitizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
