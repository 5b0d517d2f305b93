package ssr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceCustomElements(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "resident status badge",
			in:   `<status-badge kind="resident" status="needs-attention"></status-badge>`,
			want: []string{`class="badge badge-caution"`, "Needs Attention"},
		},
		{
			name: "vital status badge",
			in:   `<status-badge kind="vital" status="elevated"></status-badge>`,
			want: []string{`class="badge badge-caution"`, "Elevated"},
		},
		{
			name: "unknown status falls back to neutral",
			in:   `<status-badge kind="resident" status="mystery"></status-badge>`,
			want: []string{`class="badge badge-neutral"`, "Unknown"},
		},
		{
			name: "category icon",
			in:   `<category-icon category="medicine"></category-icon>`,
			want: []string{`class="icon icon-category-medicine"`, `aria-hidden="true"`},
		},
		{
			name: "surrounding markup is kept",
			in:   `<div class="row"><status-badge kind="reminder" status="pending"></status-badge></div>`,
			want: []string{`<div class="row">`, `<span`, "</div>"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			err := ReplaceCustomElements(&out, strings.NewReader(tt.in))
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func TestExpandDocument(t *testing.T) {
	in := `<!DOCTYPE html><html lang="en"><head><title>Dashboard</title></head>` +
		`<body><status-badge kind="contact" status="emergency"></status-badge></body></html>`

	var out strings.Builder
	err := ExpandDocument(&out, strings.NewReader(in))
	require.NoError(t, err)

	assert.Contains(t, out.String(), "<!DOCTYPE html>")
	assert.Contains(t, out.String(), "<title>Dashboard</title>")
	assert.Contains(t, out.String(), `class="badge badge-alert"`)
	assert.Contains(t, out.String(), "Emergency")
}
