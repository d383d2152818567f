package utils

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizePath(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		want        string
		expectError bool
	}{
		{
			name: "relative path",
			path: "logs/app.log",
			want: filepath.Join("logs", "app.log"),
		},
		{
			name: "absolute path",
			path: "/var/log/app.log",
			want: "/var/log/app.log",
		},
		{
			name: "redundant segments cleaned",
			path: "logs//./app.log",
			want: filepath.Join("logs", "app.log"),
		},
		{
			name:        "empty path",
			path:        "",
			expectError: true,
		},
		{
			name:        "traversal sequence",
			path:        "../etc/passwd",
			expectError: true,
		},
		{
			name:        "nested traversal",
			path:        "logs/../../etc/passwd",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizePath(tt.path)
			if tt.expectError {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
