package main

import (
	"context"
	"testing"

	"github.com/riskscope/riskscope/internal/store"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("LOCAL_STORAGE_PATH", "")
	t.Setenv("S3_BUCKET", "assessments")
	t.Setenv("RISKSCOPE_DEV", "1")

	cfg := loadConfig()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.LocalStoragePath != "/tmp/riskscope-data" {
		t.Errorf("LocalStoragePath = %q, want default", cfg.LocalStoragePath)
	}
	if cfg.S3.Bucket != "assessments" {
		t.Errorf("S3.Bucket = %q, want assessments", cfg.S3.Bucket)
	}
	if !cfg.Dev {
		t.Error("expected Dev with RISKSCOPE_DEV=1")
	}
}

func TestNewStorage(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		cfg     config
		wantNil bool
		wantErr bool
	}{
		{name: "disabled", cfg: config{}, wantNil: true},
		{name: "local", cfg: config{StorageBackend: "local", LocalStoragePath: t.TempDir()}},
		{name: "s3 without bucket", cfg: config{StorageBackend: "s3"}, wantErr: true},
		{name: "gcs without bucket", cfg: config{StorageBackend: "gcs"}, wantErr: true},
		{name: "unknown", cfg: config{StorageBackend: "ftp"}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := newStorage(ctx, tc.cfg)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if (got == nil) != tc.wantNil {
				t.Fatalf("storage = %v, wantNil %v", got, tc.wantNil)
			}
			if !tc.wantNil {
				if _, ok := got.(*store.LocalStorage); !ok {
					t.Errorf("storage = %T, want *store.LocalStorage", got)
				}
			}
		})
	}
}

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("RISKSCOPE_TEST_VAR", "")
	if got := envOrDefault("RISKSCOPE_TEST_VAR", "fallback"); got != "fallback" {
		t.Errorf("envOrDefault = %q, want fallback", got)
	}
	t.Setenv("RISKSCOPE_TEST_VAR", "set")
	if got := envOrDefault("RISKSCOPE_TEST_VAR", "fallback"); got != "set" {
		t.Errorf("envOrDefault = %q, want set", got)
	}
}
