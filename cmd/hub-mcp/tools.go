package main

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerTools registers all MCP tools on the server, wiring each to a handler
// that calls the GitHub REST API via the client.
func registerTools(s *server.MCPServer, c *githubClient) {
	s.AddTool(createGetVersionTool(), handleGetVersion())
	s.AddTool(createGetUserInfoTool(), handleGetUserInfo(c))
	s.AddTool(createCreateRepositoryTool(), handleCreateRepository(c))
	s.AddTool(createDeleteRepositoryTool(), handleDeleteRepository(c))
	s.AddTool(createCreatePullRequestTool(), handleCreatePullRequest(c))
	s.AddTool(createMergePullRequestTool(), handleMergePullRequest(c))
	s.AddTool(createListRepositoriesTool(), handleListRepositories(c))
	s.AddTool(createHelloWorldTool(), handleHelloWorld())
}

// --- Tool definitions ---

func createGetVersionTool() mcp.Tool {
	return mcp.NewTool("get_version",
		mcp.WithDescription("Get the Hub MCP server version and status. Use this to verify connectivity."),
	)
}

func createGetUserInfoTool() mcp.Tool {
	return mcp.NewTool("github_user_info",
		mcp.WithDescription("Get information about a GitHub user: name, bio, repo count, followers, location, and account age."),
		mcp.WithString("username", mcp.Required(), mcp.Description("GitHub username to look up (e.g., 'torvalds')")),
	)
}

func createCreateRepositoryTool() mcp.Tool {
	return mcp.NewTool("create_repository",
		mcp.WithDescription("Create a new GitHub repository for the authenticated user. Requires a token with repo scope."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Name of the repository to create")),
		mcp.WithString("description", mcp.Description("Short description of the repository (default: empty)")),
		mcp.WithBoolean("private", mcp.Description("Create as a private repository (default: false)")),
	)
}

func createDeleteRepositoryTool() mcp.Tool {
	return mcp.NewTool("delete_repository",
		mcp.WithDescription("Delete a GitHub repository. Requires a token with delete_repo scope. This cannot be undone."),
		mcp.WithString("owner", mcp.Required(), mcp.Description("Owner of the repository (user or organisation)")),
		mcp.WithString("repo", mcp.Required(), mcp.Description("Name of the repository to delete")),
	)
}

func createCreatePullRequestTool() mcp.Tool {
	return mcp.NewTool("create_pull_request",
		mcp.WithDescription("Create a pull request in a repository from a head branch into a base branch."),
		mcp.WithString("owner", mcp.Required(), mcp.Description("Owner of the repository")),
		mcp.WithString("repo", mcp.Required(), mcp.Description("Name of the repository")),
		mcp.WithString("title", mcp.Required(), mcp.Description("Title of the pull request")),
		mcp.WithString("head", mcp.Required(), mcp.Description("Branch with the changes (e.g., 'feature/login')")),
		mcp.WithString("base", mcp.Required(), mcp.Description("Branch to merge into (e.g., 'main')")),
		mcp.WithString("body", mcp.Description("Pull request description in markdown (default: empty)")),
	)
}

func createMergePullRequestTool() mcp.Tool {
	return mcp.NewTool("merge_pull_request",
		mcp.WithDescription("Merge an open pull request by number."),
		mcp.WithString("owner", mcp.Required(), mcp.Description("Owner of the repository")),
		mcp.WithString("repo", mcp.Required(), mcp.Description("Name of the repository")),
		mcp.WithNumber("pull_number", mcp.Required(), mcp.Description("Number of the pull request to merge")),
		mcp.WithString("commit_message", mcp.Description("Extra detail to append to the merge commit message (default: GitHub's own)")),
	)
}

func createListRepositoriesTool() mcp.Tool {
	return mcp.NewTool("list_repositories",
		mcp.WithDescription("List repositories for a user, or for the authenticated user if no username is given. Shows at most 10."),
		mcp.WithString("username", mcp.Description("GitHub username. Omit to list the authenticated user's repositories.")),
	)
}

func createHelloWorldTool() mcp.Tool {
	return mcp.NewTool("hello_world",
		mcp.WithDescription("A simple test tool. Says hello without calling GitHub."),
		mcp.WithString("name", mcp.Description("Who to greet (default: 'World')")),
	)
}
