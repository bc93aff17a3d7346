package sanitize_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-uispec/pkg/sanitize"
)

func TestSVG(t *testing.T) {
	cases := []struct {
		name  string
		input string
		keeps []string
		drops []string
		empty bool
	}{
		{
			name:  "keeps drawing elements",
			input: `<svg viewBox="0 0 24 24" fill="none"><path d="M5 13l4 4L19 7" stroke="#10B981"/></svg>`,
			keeps: []string{"<svg", "viewBox", "<path", `d="M5 13l4 4L19 7"`},
		},
		{
			name:  "strips script elements and content",
			input: `<svg viewBox="0 0 24 24"><script>alert(1)</script><circle cx="12" cy="12" r="10"/></svg>`,
			keeps: []string{"<circle"},
			drops: []string{"script", "alert"},
		},
		{
			name:  "strips event handler attributes",
			input: `<svg viewBox="0 0 24 24"><rect x="0" y="0" onclick="steal()" width="24" height="24"/></svg>`,
			keeps: []string{"<rect"},
			drops: []string{"onclick", "steal"},
		},
		{
			name:  "strips foreignObject",
			input: `<svg><foreignObject><iframe src="https://evil.example"></iframe></foreignObject><path d="M0 0"/></svg>`,
			keeps: []string{"<path"},
			drops: []string{"foreignObject", "iframe", "evil.example"},
		},
		{
			name:  "script only markup sanitizes to nothing",
			input: `<script>alert(1)</script>`,
			empty: true,
		},
		{
			name:  "whitespace only input",
			input: "   \n\t",
			empty: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := sanitize.SVG(tc.input)
			if tc.empty {
				if got != "" {
					t.Fatalf("expected empty output, got %q", got)
				}
				return
			}
			if got == "" {
				t.Fatalf("output unexpectedly empty")
			}
			for _, fragment := range tc.keeps {
				if !strings.Contains(got, fragment) {
					t.Errorf("output lost %q: %s", fragment, got)
				}
			}
			for _, fragment := range tc.drops {
				if strings.Contains(got, fragment) {
					t.Errorf("output kept %q: %s", fragment, got)
				}
			}
		})
	}
}
