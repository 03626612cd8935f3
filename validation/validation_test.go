package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		request string
		wantErr bool
	}{
		{
			name:    "valid yaml request",
			request: `{"format": "yaml", "content": "a: 1"}`,
		},
		{
			name:    "valid request with mode",
			request: `{"format": "json", "mode": "operations", "content": "{}"}`,
		},
		{
			name:    "missing content",
			request: `{"format": "yaml"}`,
			wantErr: true,
		},
		{
			name:    "missing format",
			request: `{"content": "a: 1"}`,
			wantErr: true,
		},
		{
			name:    "unknown format",
			request: `{"format": "xml", "content": "<a/>"}`,
			wantErr: true,
		},
		{
			name:    "unknown mode",
			request: `{"format": "yaml", "mode": "rows", "content": "a: 1"}`,
			wantErr: true,
		},
		{
			name:    "empty content",
			request: `{"format": "yaml", "content": ""}`,
			wantErr: true,
		},
		{
			name:    "unexpected field",
			request: `{"format": "yaml", "content": "a: 1", "extra": true}`,
			wantErr: true,
		},
		{
			name:    "not json at all",
			request: `format: yaml`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate([]byte(tt.request))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
