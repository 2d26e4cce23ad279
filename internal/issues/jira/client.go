// Package jira is a minimal Jira REST v2 client covering the two calls the
// workflow needs: searching issues by status and transitioning one.
package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/quayside-dev/stride/internal/config"
	"github.com/quayside-dev/stride/internal/messages"
	"github.com/quayside-dev/stride/internal/state"
)

// Credentials authenticate Jira REST calls (basic auth, email + API token).
type Credentials struct {
	Email string
	Token string
}

type searchResponse struct {
	Issues []searchIssue `json:"issues"`
}

type searchIssue struct {
	Key    string `json:"key"`
	Fields struct {
		Summary string `json:"summary"`
	} `json:"fields"`
}

type transitionsResponse struct {
	Transitions []transition `json:"transitions"`
}

type transition struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type transitionRequest struct {
	Transition struct {
		ID string `json:"id"`
	} `json:"transition"`
}

// Issues lists the project's issues currently in the given status.
func Issues(ctx context.Context, cfg config.Jira, creds Credentials, status string) ([]state.Issue, error) {
	jql := fmt.Sprintf("project = %s AND status = %q", cfg.Project, status)
	query := url.Values{"jql": {jql}, "fields": {"summary"}}
	endpoint := fmt.Sprintf("%s/rest/api/2/search?%s", cfg.URL, query.Encode())

	var resp searchResponse
	if err := call(ctx, creds, http.MethodGet, endpoint, nil, http.StatusOK, &resp); err != nil {
		return nil, fmt.Errorf(messages.JiraSearchFailedFmt, err)
	}

	issues := make([]state.Issue, 0, len(resp.Issues))
	for _, issue := range resp.Issues {
		issues = append(issues, state.JiraIssue{Key: issue.Key, Summary: issue.Fields.Summary})
	}
	return issues, nil
}

// TransitionIssue moves an issue to the transition whose name matches
// status. Jira transitions are addressed by id, so the available ones are
// listed first and matched by name.
func TransitionIssue(ctx context.Context, cfg config.Jira, creds Credentials, key string, status string) error {
	listEndpoint := fmt.Sprintf("%s/rest/api/2/issue/%s/transitions", cfg.URL, key)

	var available transitionsResponse
	if err := call(ctx, creds, http.MethodGet, listEndpoint, nil, http.StatusOK, &available); err != nil {
		return fmt.Errorf(messages.JiraTransitionsFailedFmt, key, err)
	}

	var id string
	for _, t := range available.Transitions {
		if t.Name == status {
			id = t.ID
			break
		}
	}
	if id == "" {
		return fmt.Errorf(messages.JiraNoTransitionFmt, key, status)
	}

	var req transitionRequest
	req.Transition.ID = id
	if err := call(ctx, creds, http.MethodPost, listEndpoint, &req, http.StatusNoContent, nil); err != nil {
		return fmt.Errorf(messages.JiraTransitionFailedFmt, key, err)
	}
	return nil
}

// call performs one authenticated JSON round trip and decodes the response
// into out when out is non-nil.
func call(ctx context.Context, creds Credentials, method, endpoint string, body any, wantStatus int, out any) error {
	var payload *bytes.Buffer
	if body != nil {
		payload = &bytes.Buffer{}
		if err := json.NewEncoder(payload).Encode(body); err != nil {
			return err
		}
	}

	var req *http.Request
	var err error
	if payload != nil {
		req, err = http.NewRequestWithContext(ctx, method, endpoint, payload)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, endpoint, nil)
	}
	if err != nil {
		return err
	}
	req.SetBasicAuth(creds.Email, creds.Token)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return fmt.Errorf(messages.JiraUnexpectedStatusFmt, resp.Status, endpoint)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
