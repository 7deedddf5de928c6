package common

import (
	"testing"
	"time"
)

func TestGitHubConfig_GetTimeout_Default(t *testing.T) {
	cfg := GitHubConfig{}
	if got := cfg.GetTimeout(); got != 30*time.Second {
		t.Errorf("Expected 30s default timeout, got %v", got)
	}
}

func TestGitHubConfig_GetTimeout_Parsed(t *testing.T) {
	cfg := GitHubConfig{Timeout: "5s"}
	if got := cfg.GetTimeout(); got != 5*time.Second {
		t.Errorf("Expected 5s timeout, got %v", got)
	}
}

func TestGitHubConfig_GetTimeout_Invalid(t *testing.T) {
	cfg := GitHubConfig{Timeout: "soon"}
	if got := cfg.GetTimeout(); got != 30*time.Second {
		t.Errorf("Expected 30s fallback for invalid timeout, got %v", got)
	}
}
