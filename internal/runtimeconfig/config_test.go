package runtimeconfig

import (
	"errors"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig should validate, got %v", err)
	}
}

func TestValidateContentDirRequired(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Content.Dir = "   "
	if err := cfg.Validate(); !errors.Is(err, ErrContentDirRequired) {
		t.Fatalf("expected ErrContentDirRequired, got %v", err)
	}
}

func TestValidateCatalogDriver(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Features.Catalog = true
	cfg.Storage.Driver = "mongodb"
	if err := cfg.Validate(); !errors.Is(err, ErrStorageDriverUnknown) {
		t.Fatalf("expected ErrStorageDriverUnknown, got %v", err)
	}

	cfg.Storage.Driver = "sqlite"
	cfg.Storage.DSN = ""
	if err := cfg.Validate(); !errors.Is(err, ErrStorageDSNRequired) {
		t.Fatalf("expected ErrStorageDSNRequired, got %v", err)
	}
}

func TestValidateLintLanguages(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Lint.AllowedLanguages = nil
	if err := cfg.Validate(); !errors.Is(err, ErrLintLanguagesRequired) {
		t.Fatalf("expected ErrLintLanguagesRequired, got %v", err)
	}
}

func TestValidateLogging(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = ""
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingProviderRequired) {
		t.Fatalf("expected ErrLoggingProviderRequired, got %v", err)
	}

	cfg.Logging.Provider = "zap"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}

	cfg.Logging.Provider = "gologger"
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}

	cfg.Logging.Level = "debug"
	cfg.Logging.Format = "logfmt"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}
}
