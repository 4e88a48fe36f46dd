package azuredevops

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a minimal Azure DevOps REST API client scoped to one
// organization.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	org        string
}

// NewClient creates a new Azure DevOps client. The organization may be a
// bare name or a full organization URL.
func NewClient(organization, pat string) *Client {
	// Normalize organization URL
	org := strings.TrimSuffix(organization, "/")
	if !strings.HasPrefix(org, "https://") {
		org = "https://dev.azure.com/" + org
	}

	// Extract just the org name for building source URLs
	orgName := extractOrgName(org)

	return &Client{
		baseURL: org,
		token:   pat,
		org:     orgName,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func extractOrgName(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		return baseURL
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) > 0 {
		return u.Host + "/" + parts[0]
	}
	return u.Host
}

// Organization returns the organization identifier.
func (c *Client) Organization() string {
	return c.org
}

// BaseURL returns the base URL of the Azure DevOps organization.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Repository represents an Azure DevOps Git repository.
type Repository struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	URL           string `json:"url"`
	RemoteURL     string `json:"remoteUrl"`
	DefaultBranch string `json:"defaultBranch"`
}

// RepositoryItem represents a file or folder in a repository.
type RepositoryItem struct {
	ObjectID      string `json:"objectId"`
	GitObjectType string `json:"gitObjectType"`
	CommitID      string `json:"commitId"`
	Path          string `json:"path"`
	URL           string `json:"url"`
}

// GetRepository returns a single repository by project and name.
func (c *Client) GetRepository(ctx context.Context, projectID, repoID string) (*Repository, error) {
	endpoint := fmt.Sprintf("/%s/_apis/git/repositories/%s?api-version=7.0", projectID, repoID)

	resp, err := c.doRequest(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, err
	}

	var repo Repository
	if err := json.Unmarshal(resp, &repo); err != nil {
		return nil, fmt.Errorf("failed to parse repository response: %w", err)
	}

	return &repo, nil
}

// GetRepositoryItems returns items (files/folders) at a given path.
func (c *Client) GetRepositoryItems(ctx context.Context, projectID, repoID, path string) ([]RepositoryItem, error) {
	endpoint := fmt.Sprintf("/%s/_apis/git/repositories/%s/items?scopePath=%s&recursionLevel=OneLevel&api-version=7.0",
		projectID, repoID, url.QueryEscape(path))

	resp, err := c.doRequest(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, err
	}

	var result struct {
		Value []RepositoryItem `json:"value"`
		Count int              `json:"count"`
	}

	if err := json.Unmarshal(resp, &result); err != nil {
		return nil, fmt.Errorf("failed to parse items response: %w", err)
	}

	return result.Value, nil
}

// GetTags returns all tag names in a repository.
func (c *Client) GetTags(ctx context.Context, projectID, repoID string) ([]string, error) {
	var tags []string
	continuationToken := ""

	for {
		endpoint := fmt.Sprintf("/%s/_apis/git/repositories/%s/refs?filter=tags&api-version=7.0", projectID, repoID)
		if continuationToken != "" {
			endpoint += "&continuationToken=" + url.QueryEscape(continuationToken)
		}

		resp, headers, err := c.doRequestWithHeaders(ctx, "GET", endpoint, nil)
		if err != nil {
			return nil, err
		}

		var result struct {
			Value []struct {
				Name     string `json:"name"`
				ObjectID string `json:"objectId"`
			} `json:"value"`
		}

		if err := json.Unmarshal(resp, &result); err != nil {
			return nil, fmt.Errorf("failed to parse tags response: %w", err)
		}

		for _, ref := range result.Value {
			// Remove refs/tags/ prefix
			tags = append(tags, strings.TrimPrefix(ref.Name, "refs/tags/"))
		}

		// Check for continuation token
		continuationToken = headers.Get("x-ms-continuationtoken")
		if continuationToken == "" {
			break
		}
	}

	return tags, nil
}

func (c *Client) doRequest(ctx context.Context, method, endpoint string, body interface{}) ([]byte, error) {
	resp, _, err := c.doRequestWithHeaders(ctx, method, endpoint, body)
	return resp, err
}

func (c *Client) doRequestWithHeaders(ctx context.Context, method, endpoint string, body interface{}) ([]byte, http.Header, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	url := c.baseURL + endpoint
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Set Basic Auth with PAT
	auth := base64.StdEncoding.EncodeToString([]byte(":" + c.token))
	req.Header.Set("Authorization", "Basic "+auth)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	return respBody, resp.Header, nil
}
