package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/server/middleware"
)

// StepsContext holds state shared between step definitions
type StepsContext struct {
	tc               *TestContext
	response         *http.Response
	responseBody     []byte
	authToken        string
	userID           string
	assetManagerGUID string
	assetManagerName string
	guids            map[string]string
	importErr        error
}

// NewStepsContext creates a new steps context
func NewStepsContext(tc *TestContext) *StepsContext {
	return &StepsContext{
		tc:    tc,
		guids: make(map[string]string),
	}
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		return ctx, s.tc.Reset()
	})

	// Background steps
	sc.Step(`^an exchange server is running$`, s.anExchangeServerIsRunning)
	sc.Step(`^I am authenticated as "([^"]*)"$`, s.iAmAuthenticatedAs)
	sc.Step(`^I act for the asset manager "([^"]*)"$`, s.iActForTheAssetManager)

	// Request steps
	sc.Step(`^I send a (GET|POST|PUT|DELETE) request to "([^"]*)"$`, s.iSendARequestTo)
	sc.Step(`^I send a (GET|POST|PUT|DELETE) request to "([^"]*)" with body:$`, s.iSendARequestWithBody)
	sc.Step(`^I send an unauthenticated (GET|POST|PUT|DELETE) request to "([^"]*)"$`, s.iSendAnUnauthenticatedRequest)
	sc.Step(`^I remember the new guid as "([^"]*)"$`, s.iRememberTheNewGUIDAs)

	// Response steps
	sc.Step(`^the response status should be (\d+)$`, s.theResponseStatusShouldBe)
	sc.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, s.theResponseFieldShouldBe)
	sc.Step(`^the response should be a list of (\d+) elements?$`, s.theResponseShouldBeAListOf)
	sc.Step(`^the response error code should be "([^"]*)"$`, s.theResponseErrorCodeShouldBe)

	s.registerExchangeSteps(sc)
}

func (s *StepsContext) anExchangeServerIsRunning() error {
	resp, err := s.tc.HTTPClient.Get(s.tc.ServerURL + "/health")
	if err != nil {
		return fmt.Errorf("server not reachable: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server unhealthy: status %d", resp.StatusCode)
	}
	return nil
}

func (s *StepsContext) iAmAuthenticatedAs(userID string) error {
	token, err := s.tc.Tokens.Issue(userID, time.Hour)
	if err != nil {
		return err
	}
	s.userID = userID
	s.authToken = token
	return nil
}

// iActForTheAssetManager looks the asset manager up by qualified name and
// creates it when it is not registered yet.
func (s *StepsContext) iActForTheAssetManager(name string) error {
	if err := s.doRequest("GET", "/asset-managers?qualifiedName="+url.QueryEscape(name), nil, true); err != nil {
		return err
	}
	if s.response.StatusCode == http.StatusNotFound {
		body := fmt.Sprintf(`{"properties":{"qualifiedName":%q}}`, name)
		if err := s.doRequest("POST", "/asset-managers", []byte(body), true); err != nil {
			return err
		}
		if s.response.StatusCode != http.StatusCreated {
			return fmt.Errorf("failed to create asset manager %s: %d %s", name, s.response.StatusCode, s.responseBody)
		}
	} else if s.response.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to look up asset manager %s: %d %s", name, s.response.StatusCode, s.responseBody)
	}

	guid, err := s.responseGUID()
	if err != nil {
		return err
	}
	s.assetManagerGUID = guid
	s.assetManagerName = name
	s.guids[name] = guid
	return nil
}

func (s *StepsContext) iSendARequestTo(method, path string) error {
	return s.doRequest(method, s.expand(path), nil, true)
}

func (s *StepsContext) iSendARequestWithBody(method, path string, body *godog.DocString) error {
	return s.doRequest(method, s.expand(path), []byte(s.expand(body.Content)), true)
}

func (s *StepsContext) iSendAnUnauthenticatedRequest(method, path string) error {
	return s.doRequest(method, s.expand(path), nil, false)
}

func (s *StepsContext) iRememberTheNewGUIDAs(alias string) error {
	if s.response == nil || s.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("no element was created: %s", s.describeResponse())
	}
	guid, err := s.responseGUID()
	if err != nil {
		return err
	}
	s.guids[alias] = guid
	return nil
}

func (s *StepsContext) theResponseStatusShouldBe(expected int) error {
	if s.response == nil {
		return fmt.Errorf("no response received")
	}
	if s.response.StatusCode != expected {
		return fmt.Errorf("expected status %d, got %s", expected, s.describeResponse())
	}
	return nil
}

func (s *StepsContext) theResponseFieldShouldBe(path, expected string) error {
	var doc any
	if err := json.Unmarshal(s.responseBody, &doc); err != nil {
		return fmt.Errorf("response is not JSON: %w", err)
	}
	value, err := lookup(doc, path)
	if err != nil {
		return err
	}
	if got := fmt.Sprint(value); got != s.expand(expected) {
		return fmt.Errorf("expected %s to be %q, got %q", path, s.expand(expected), got)
	}
	return nil
}

func (s *StepsContext) theResponseShouldBeAListOf(count int) error {
	var items []json.RawMessage
	if err := json.Unmarshal(s.responseBody, &items); err != nil {
		return fmt.Errorf("response is not a JSON list: %w", err)
	}
	if len(items) != count {
		return fmt.Errorf("expected %d elements, got %d: %s", count, len(items), s.responseBody)
	}
	return nil
}

func (s *StepsContext) theResponseErrorCodeShouldBe(code string) error {
	return s.theResponseFieldShouldBe("error.code", code)
}

func (s *StepsContext) doRequest(method, path string, body []byte, authenticated bool) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequest(method, s.tc.ServerURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authenticated && s.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.authToken)
	}
	if authenticated && s.assetManagerGUID != "" {
		req.Header.Set(middleware.AssetManagerHeader, s.assetManagerGUID)
	}

	resp, err := s.tc.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	s.response = resp
	s.responseBody, err = io.ReadAll(resp.Body)
	return err
}

func (s *StepsContext) responseGUID() (string, error) {
	var resp struct {
		GUID string `json:"guid"`
	}
	if err := json.Unmarshal(s.responseBody, &resp); err != nil {
		return "", fmt.Errorf("failed to decode guid: %w", err)
	}
	if resp.GUID == "" {
		return "", fmt.Errorf("response carries no guid: %s", s.responseBody)
	}
	return resp.GUID, nil
}

func (s *StepsContext) describeResponse() string {
	if s.response == nil {
		return "no response"
	}
	return fmt.Sprintf("%d: %s", s.response.StatusCode, s.responseBody)
}

var placeholder = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// expand replaces {{alias}} with remembered guids. {{assetManagerName}} is
// the asset manager the scenario acts for.
func (s *StepsContext) expand(text string) string {
	return placeholder.ReplaceAllStringFunc(text, func(m string) string {
		name := strings.TrimSpace(m[2 : len(m)-2])
		if name == "assetManagerName" {
			return s.assetManagerName
		}
		if guid, ok := s.guids[name]; ok {
			return guid
		}
		return m
	})
}

// lookup walks a dotted path such as "elementHeader.status" or "0.guid".
func lookup(doc any, path string) (any, error) {
	current := doc
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			v, ok := node[part]
			if !ok {
				return nil, fmt.Errorf("field %q not found in %s", part, path)
			}
			current = v
		case []any:
			i, err := strconv.Atoi(part)
			if err != nil || i < 0 || i >= len(node) {
				return nil, fmt.Errorf("index %q out of range in %s", part, path)
			}
			current = node[i]
		default:
			return nil, fmt.Errorf("cannot descend into %q of %s", part, path)
		}
	}
	return current, nil
}
