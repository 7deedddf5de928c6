package main

import (
	"fmt"
	"strings"

	"github.com/bobmcallan/hub-mcp/internal/hub/models"
)

// maxListedRepos caps list_repositories output to keep tool responses small.
const maxListedRepos = 10

// valueOr returns the pointed-to string, or fallback when the field was
// null or absent in the GitHub response.
func valueOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

// formatUser formats a GitHub user profile as a multi-line summary.
func formatUser(u *models.User) string {
	created := "N/A"
	if !u.CreatedAt.IsZero() {
		created = u.CreatedAt.Format("2006-01-02")
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("User: %s (@%s)\n", valueOr(u.Name, "N/A"), u.Login))
	sb.WriteString(fmt.Sprintf("Bio: %s\n", valueOr(u.Bio, "N/A")))
	sb.WriteString(fmt.Sprintf("Public Repos: %d\n", u.PublicRepos))
	sb.WriteString(fmt.Sprintf("Followers: %d\n", u.Followers))
	sb.WriteString(fmt.Sprintf("Following: %d\n", u.Following))
	sb.WriteString(fmt.Sprintf("Location: %s\n", valueOr(u.Location, "N/A")))
	sb.WriteString(fmt.Sprintf("Company: %s\n", valueOr(u.Company, "N/A")))
	sb.WriteString(fmt.Sprintf("Created: %s", created))
	return sb.String()
}

// formatRepositoryCreated formats the result of a repository creation.
// Fields come from the API response — the server is authoritative for
// what actually got created.
func formatRepositoryCreated(r *models.Repository) string {
	var sb strings.Builder
	sb.WriteString("Repository created successfully!\n")
	sb.WriteString(fmt.Sprintf("Name: %s\n", r.FullName))
	sb.WriteString(fmt.Sprintf("URL: %s\n", r.HTMLURL))
	sb.WriteString(fmt.Sprintf("Description: %s\n", valueOr(r.Description, "N/A")))
	sb.WriteString(fmt.Sprintf("Private: %t", r.Private))
	return sb.String()
}

// formatPullRequestCreated formats the result of a pull request creation.
func formatPullRequestCreated(pr *models.PullRequest) string {
	var sb strings.Builder
	sb.WriteString("Pull Request created successfully!\n")
	sb.WriteString(fmt.Sprintf("Title: %s\n", pr.Title))
	sb.WriteString(fmt.Sprintf("PR #: %d\n", pr.Number))
	sb.WriteString(fmt.Sprintf("URL: %s\n", pr.HTMLURL))
	sb.WriteString(fmt.Sprintf("State: %s", pr.State))
	return sb.String()
}

// formatMergeResult formats the result of a pull request merge.
func formatMergeResult(pullNumber int, m *models.MergeResult) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Pull Request #%d merged successfully!\n", pullNumber))
	sb.WriteString(fmt.Sprintf("Message: %s\n", m.Message))
	sb.WriteString(fmt.Sprintf("SHA: %s", m.SHA))
	return sb.String()
}

// formatRepositoryList formats a repository listing, capped at maxListedRepos
// entries with a trailing note when the list was truncated.
func formatRepositoryList(repos []models.Repository) string {
	if len(repos) == 0 {
		return "No repositories found."
	}

	shown := repos
	if len(shown) > maxListedRepos {
		shown = shown[:maxListedRepos]
	}

	var sb strings.Builder
	sb.WriteString("Repositories:\n")
	for i, repo := range shown {
		sb.WriteString(fmt.Sprintf("- %s: %s (%s)", repo.FullName, valueOr(repo.Description, "No description"), repo.HTMLURL))
		if i < len(shown)-1 {
			sb.WriteString("\n")
		}
	}

	if len(repos) > maxListedRepos {
		sb.WriteString(fmt.Sprintf("\n\n(Showing %d of %d repositories)", maxListedRepos, len(repos)))
	}

	return sb.String()
}
