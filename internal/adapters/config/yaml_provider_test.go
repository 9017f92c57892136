package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/AntonioJCosta/myshell/internal/core/domain/settings"
)

func TestNewYAMLProvider(t *testing.T) {
	provider, err := NewYAMLProvider("/tmp/config.yaml")
	if err != nil {
		t.Errorf("NewYAMLProvider() unexpected error = %v", err)
	}
	if _, ok := provider.(*YAMLProvider); !ok {
		t.Errorf("NewYAMLProvider() did not return a *YAMLProvider, got %T", provider)
	}

	if _, err := NewYAMLProvider(""); err == nil {
		t.Error("NewYAMLProvider(\"\") expected an error, got nil")
	}
}

func TestYAMLProvider_GetSettings(t *testing.T) {
	custom := settings.Default()
	custom.Prompt = "$ "
	custom.MaxLineLength = 0
	custom.Log.Level = "debug"

	tests := []struct {
		name                string
		content             *string // nil means the file does not exist
		want                settings.Settings
		wantErr             bool
		wantErrorMsgSnippet string
	}{
		{
			name:    "missing file yields defaults",
			content: nil,
			want:    settings.Default(),
		},
		{
			name:    "empty file yields defaults",
			content: ptr(""),
			want:    settings.Default(),
		},
		{
			name:    "comment-only file yields defaults",
			content: ptr("# nothing configured yet\n"),
			want:    settings.Default(),
		},
		{
			name: "partial file overrides only the given keys",
			content: ptr(`
prompt: "$ "
max_line_length: 0
log:
  level: debug
`),
			want: custom,
		},
		{
			name:                "unknown key is rejected",
			content:             ptr("promt: \"> \"\n"),
			wantErr:             true,
			wantErrorMsgSnippet: "failed to unmarshal settings",
		},
		{
			name:                "negative limit is rejected",
			content:             ptr("max_tokens: -1\n"),
			wantErr:             true,
			wantErrorMsgSnippet: "limits cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if tt.content != nil {
				if err := os.WriteFile(path, []byte(*tt.content), 0600); err != nil {
					t.Fatalf("Failed to create test file %s: %v", path, err)
				}
			}

			provider, err := NewYAMLProvider(path)
			if err != nil {
				t.Fatalf("NewYAMLProvider() failed unexpectedly: %v", err)
			}

			got, err := provider.GetSettings()

			if (err != nil) != tt.wantErr {
				t.Fatalf("GetSettings() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !strings.Contains(err.Error(), tt.wantErrorMsgSnippet) {
					t.Errorf("GetSettings() error = %q, want error to contain %q", err.Error(), tt.wantErrorMsgSnippet)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GetSettings() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	t.Setenv("HOME", "/home/someone")

	got, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() unexpected error = %v", err)
	}
	if !strings.HasSuffix(got, filepath.Join("myshell", "config.yaml")) {
		t.Errorf("DefaultPath() = %q, want it to end in myshell/config.yaml", got)
	}
}

func ptr(s string) *string { return &s }
