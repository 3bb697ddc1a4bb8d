package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty source returns ErrSourceEmpty",
			config:  Config{Source: "", DataDir: "/tmp/data"},
			wantErr: ErrSourceEmpty,
		},
		{
			name:    "unknown source returns ErrSourceUnknown",
			config:  Config{Source: "s3", DataDir: "/tmp/data"},
			wantErr: ErrSourceUnknown,
		},
		{
			name:    "http source without base url",
			config:  Config{Source: SourceHTTP},
			wantErr: ErrBaseURLMissing,
		},
		{
			name:    "unknown format",
			config:  Config{Source: SourceDir, Format: "pdf"},
			wantErr: ErrFormatUnknown,
		},
		{
			name:    "unknown order",
			config:  Config{Source: SourceDir, Order: "random"},
			wantErr: ErrOrderUnknown,
		},
		{
			name:    "valid dir config",
			config:  Config{Source: SourceDir, DataDir: "/tmp/data", Format: FormatHTML, Order: "alphabetical"},
			wantErr: nil,
		},
		{
			name:    "valid http config",
			config:  Config{Source: SourceHTTP, BaseURL: "https://example.org/data"},
			wantErr: nil,
		},
		{
			name:    "dir with empty DataDir is valid at config level",
			config:  Config{Source: SourceDir, DataDir: ""},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]string{"": FormatText, "text": FormatText, "html": FormatHTML, " json ": FormatJSON} {
		got, err := ParseFormat(in)
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseFormat(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrFormatUnknown) {
		t.Fatalf("expected ErrFormatUnknown, got %v", err)
	}
}
