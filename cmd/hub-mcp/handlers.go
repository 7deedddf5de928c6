package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/hub-mcp/internal/hub/common"
	"github.com/bobmcallan/hub-mcp/internal/hub/models"
)

// --- Helpers ---

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

// requireString returns the named string argument, or an error result when
// it is missing or empty. Failures never propagate as Go errors past a
// handler — every outcome is a string result.
func requireString(request mcp.CallToolRequest, key string) (string, *mcp.CallToolResult) {
	v, err := request.RequireString(key)
	if err != nil || v == "" {
		return "", errorResult(fmt.Sprintf("Error: %s parameter is required", key))
	}
	return v, nil
}

// --- Handlers ---

func handleGetVersion() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := fmt.Sprintf("Hub MCP Server\nVersion: %s\nBuild: %s\nCommit: %s\nStatus: OK",
			common.GetVersion(), common.GetBuild(), common.GetGitCommit())
		return textResult(result), nil
	}
}

func handleGetUserInfo(c *githubClient) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		username, errRes := requireString(request, "username")
		if errRes != nil {
			return errRes, nil
		}

		body, err := c.get(ctx, "/users/"+url.PathEscape(username))
		if err != nil {
			return errorResult(fmt.Sprintf("Error fetching user info: %v", err)), nil
		}

		var user models.User
		if err := json.Unmarshal(body, &user); err != nil {
			return errorResult(fmt.Sprintf("Error parsing response: %v", err)), nil
		}

		return textResult(formatUser(&user)), nil
	}
}

func handleCreateRepository(c *githubClient) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, errRes := requireString(request, "name")
		if errRes != nil {
			return errRes, nil
		}

		reqBody := map[string]interface{}{
			"name":        name,
			"description": request.GetString("description", ""),
			"private":     request.GetBool("private", false),
		}

		body, err := c.post(ctx, "/user/repos", reqBody)
		if err != nil {
			return errorResult(fmt.Sprintf("Error creating repository: %v", err)), nil
		}

		var repo models.Repository
		if err := json.Unmarshal(body, &repo); err != nil {
			return errorResult(fmt.Sprintf("Error parsing response: %v", err)), nil
		}

		// The response, not the request, is authoritative for what got created
		return textResult(formatRepositoryCreated(&repo)), nil
	}
}

func handleDeleteRepository(c *githubClient) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		owner, errRes := requireString(request, "owner")
		if errRes != nil {
			return errRes, nil
		}
		repo, errRes := requireString(request, "repo")
		if errRes != nil {
			return errRes, nil
		}

		// GitHub answers with 204 No Content; any 2xx means deleted
		if _, err := c.del(ctx, fmt.Sprintf("/repos/%s/%s", url.PathEscape(owner), url.PathEscape(repo))); err != nil {
			return errorResult(fmt.Sprintf("Error deleting repository: %v", err)), nil
		}

		return textResult(fmt.Sprintf("Repository %s/%s was deleted successfully!", owner, repo)), nil
	}
}

func handleCreatePullRequest(c *githubClient) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		owner, errRes := requireString(request, "owner")
		if errRes != nil {
			return errRes, nil
		}
		repo, errRes := requireString(request, "repo")
		if errRes != nil {
			return errRes, nil
		}
		title, errRes := requireString(request, "title")
		if errRes != nil {
			return errRes, nil
		}
		head, errRes := requireString(request, "head")
		if errRes != nil {
			return errRes, nil
		}
		base, errRes := requireString(request, "base")
		if errRes != nil {
			return errRes, nil
		}

		reqBody := map[string]interface{}{
			"title": title,
			"head":  head,
			"base":  base,
			"body":  request.GetString("body", ""),
		}

		body, err := c.post(ctx, fmt.Sprintf("/repos/%s/%s/pulls", url.PathEscape(owner), url.PathEscape(repo)), reqBody)
		if err != nil {
			return errorResult(fmt.Sprintf("Error creating pull request: %v", err)), nil
		}

		var pr models.PullRequest
		if err := json.Unmarshal(body, &pr); err != nil {
			return errorResult(fmt.Sprintf("Error parsing response: %v", err)), nil
		}

		return textResult(formatPullRequestCreated(&pr)), nil
	}
}

func handleMergePullRequest(c *githubClient) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		owner, errRes := requireString(request, "owner")
		if errRes != nil {
			return errRes, nil
		}
		repo, errRes := requireString(request, "repo")
		if errRes != nil {
			return errRes, nil
		}
		pullNumber := request.GetInt("pull_number", 0)
		if pullNumber <= 0 {
			return errorResult("Error: pull_number parameter is required"), nil
		}

		// commit_message is only sent when non-empty so GitHub keeps its default
		reqBody := map[string]interface{}{}
		if msg := request.GetString("commit_message", ""); msg != "" {
			reqBody["commit_message"] = msg
		}

		body, err := c.put(ctx, fmt.Sprintf("/repos/%s/%s/pulls/%d/merge",
			url.PathEscape(owner), url.PathEscape(repo), pullNumber), reqBody)
		if err != nil {
			return errorResult(fmt.Sprintf("Error merging pull request: %v", err)), nil
		}

		var merge models.MergeResult
		if err := json.Unmarshal(body, &merge); err != nil {
			return errorResult(fmt.Sprintf("Error parsing response: %v", err)), nil
		}

		return textResult(formatMergeResult(pullNumber, &merge)), nil
	}
}

func handleListRepositories(c *githubClient) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		username := request.GetString("username", "")

		path := "/user/repos"
		if username != "" {
			path = "/users/" + url.PathEscape(username) + "/repos"
		}

		body, err := c.get(ctx, path)
		if err != nil {
			return errorResult(fmt.Sprintf("Error listing repositories: %v", err)), nil
		}

		var repos []models.Repository
		if err := json.Unmarshal(body, &repos); err != nil {
			return errorResult(fmt.Sprintf("Error parsing response: %v", err)), nil
		}

		return textResult(formatRepositoryList(repos)), nil
	}
}

func handleHelloWorld() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := request.GetString("name", "World")
		return textResult(fmt.Sprintf("Hello, %s!", name)), nil
	}
}
