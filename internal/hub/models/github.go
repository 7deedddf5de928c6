// Package models defines typed structures for GitHub REST API responses.
// Nullable fields are pointers; display defaults are applied at format
// time only, never when constructing requests.
package models

import "time"

// User represents a GitHub user as returned by GET /users/{username}.
type User struct {
	Login       string    `json:"login"`
	Name        *string   `json:"name"`
	Bio         *string   `json:"bio"`
	Company     *string   `json:"company"`
	Location    *string   `json:"location"`
	HTMLURL     string    `json:"html_url"`
	PublicRepos int       `json:"public_repos"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	CreatedAt   time.Time `json:"created_at"`
}

// Repository represents a GitHub repository.
type Repository struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	FullName      string  `json:"full_name"`
	Description   *string `json:"description"`
	HTMLURL       string  `json:"html_url"`
	Private       bool    `json:"private"`
	Fork          bool    `json:"fork"`
	DefaultBranch string  `json:"default_branch"`
	Stargazers    int     `json:"stargazers_count"`
}

// PullRequest represents a GitHub pull request.
type PullRequest struct {
	Number  int     `json:"number"`
	Title   string  `json:"title"`
	State   string  `json:"state"`
	HTMLURL string  `json:"html_url"`
	Body    *string `json:"body"`
	Merged  bool    `json:"merged"`
}

// MergeResult is the response body of PUT /repos/{owner}/{repo}/pulls/{n}/merge.
type MergeResult struct {
	SHA     string `json:"sha"`
	Merged  bool   `json:"merged"`
	Message string `json:"message"`
}
