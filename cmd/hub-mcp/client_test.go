package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bobmcallan/hub-mcp/internal/hub/common"
)

func testLogger() *common.Logger {
	return common.NewSilentLogger()
}

func testClient(baseURL, token string) *githubClient {
	return newGitHubClient(common.GitHubConfig{
		BaseURL: baseURL,
		Token:   token,
		Timeout: "5s",
	}, testLogger())
}

func TestGitHubClient_Get_Success(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/users/octocat" {
			t.Errorf("Expected /users/octocat, got %s", r.URL.Path)
		}
		if accept := r.Header.Get("Accept"); accept != "application/vnd.github+json" {
			t.Errorf("Expected GitHub Accept header, got %q", accept)
		}
		if ua := r.Header.Get("User-Agent"); !strings.HasPrefix(ua, "hub-mcp/") {
			t.Errorf("Expected hub-mcp User-Agent, got %q", ua)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"login": "octocat"})
	}))
	defer mockServer.Close()

	client := testClient(mockServer.URL, "")
	body, err := client.get(context.Background(), "/users/octocat")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var result map[string]string
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if result["login"] != "octocat" {
		t.Errorf("Expected login=octocat, got %s", result["login"])
	}
}

func TestGitHubClient_Auth_BearerWhenTokenSet(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer ghp_testtoken" {
			t.Errorf("Expected bearer auth header, got %q", auth)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"login": "octocat"})
	}))
	defer mockServer.Close()

	client := testClient(mockServer.URL, "ghp_testtoken")
	if _, err := client.get(context.Background(), "/user"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

func TestGitHubClient_Auth_NoHeaderWhenTokenAbsent(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "" {
			t.Errorf("Expected no Authorization header, got %q", auth)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"login": "octocat"})
	}))
	defer mockServer.Close()

	client := testClient(mockServer.URL, "")
	if _, err := client.get(context.Background(), "/users/octocat"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

func TestGitHubClient_Get_ErrorMessageFromBody(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Not Found"})
	}))
	defer mockServer.Close()

	client := testClient(mockServer.URL, "")
	_, err := client.get(context.Background(), "/users/nonexistent")
	if err == nil {
		t.Fatal("Expected error for 404 response")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("Error should contain the status code, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "Not Found") {
		t.Errorf("Error should carry GitHub's message, got %q", err.Error())
	}
}

func TestGitHubClient_Get_ServerUnavailable(t *testing.T) {
	client := testClient("http://localhost:1", "")
	if _, err := client.get(context.Background(), "/users/octocat"); err == nil {
		t.Fatal("Expected error when server is unavailable")
	}
}

func TestGitHubClient_Post_SendsJSONBody(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Expected application/json Content-Type, got %q", ct)
		}
		raw, _ := io.ReadAll(r.Body)
		var payload map[string]interface{}
		if err := json.Unmarshal(raw, &payload); err != nil {
			t.Fatalf("Request body is not valid JSON: %v", err)
		}
		if payload["name"] != "my-repo" {
			t.Errorf("Expected name=my-repo in body, got %v", payload["name"])
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"full_name": "octocat/my-repo"})
	}))
	defer mockServer.Close()

	client := testClient(mockServer.URL, "")
	body, err := client.post(context.Background(), "/user/repos", map[string]interface{}{"name": "my-repo"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(string(body), "octocat/my-repo") {
		t.Errorf("Response body should contain full name, got %s", string(body))
	}
}

func TestGitHubClient_Delete_NoContentIsSuccess(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("Expected DELETE, got %s", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer mockServer.Close()

	client := testClient(mockServer.URL, "")
	body, err := client.del(context.Background(), "/repos/octocat/my-repo")
	if err != nil {
		t.Fatalf("Expected 204 with empty body to be success, got error: %v", err)
	}
	if len(body) != 0 {
		t.Errorf("Expected empty body, got %q", string(body))
	}
}

func TestGitHubClient_DefaultBaseURL(t *testing.T) {
	client := newGitHubClient(common.GitHubConfig{}, testLogger())
	if client.baseURL != "https://api.github.com" {
		t.Errorf("Expected api.github.com default, got %s", client.baseURL)
	}
}
