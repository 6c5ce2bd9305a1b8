package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	tmpl := Template()
	if !strings.HasPrefix(tmpl, "{{.Name}} version ") {
		t.Errorf("Template() = %q, want cobra name placeholder prefix", tmpl)
	}
	if !strings.Contains(tmpl, "commit: "+Commit) {
		t.Errorf("Template() missing commit: %q", tmpl)
	}
}

func TestUserAgent(t *testing.T) {
	if got, want := UserAgent(), "depvis/"+Version; got != want {
		t.Errorf("UserAgent() = %q, want %q", got, want)
	}
}
