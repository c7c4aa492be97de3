package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	"github.com/hexapixel/backend/internal/domain/entity"
)

// InitializeScenario registers all step definitions. Each scenario gets a
// fresh server, database, and redis instance.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		*test = *newTestContext()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		test.close()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Seeding steps
	ctx.Given(`^a super admin exists with username "([^"]*)" and password "([^"]*)"$`, test.aSuperAdminExists)
	ctx.Given(`^a manager exists with username "([^"]*)" and password "([^"]*)"$`, test.aManagerExists)
	ctx.Given(`^an employee exists with username "([^"]*)" and password "([^"]*)"$`, test.anEmployeeExists)
	ctx.Given(`^an income item named "([^"]*)" exists$`, test.anIncomeItemExists)
	ctx.Given(`^an outcome item named "([^"]*)" exists$`, test.anOutcomeItemExists)
	ctx.Given(`^I am logged in as "([^"]*)" with password "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^I am not authenticated$`, test.iAmNotAuthenticated)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.When(`^I capture the response field "([^"]*)" as "([^"]*)"$`, test.iCaptureTheResponseFieldAs)

	// Response steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response message should be "([^"]*)"$`, test.theResponseMessageShouldBe)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) elements$`, test.theResponseFieldShouldHaveElements)
}

func (tc *testContext) theAPIServerIsRunning() error {
	resp, err := tc.client.Get(tc.server.URL + "/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}
	return nil
}

func (tc *testContext) aSuperAdminExists(username, password string) error {
	seeded, err := tc.seedUser(username, password, "Super Admin", entity.RoleSuperAdmin)
	if err != nil {
		return err
	}
	tc.currentUserID = seeded.ID
	tc.placeholderValues["userId"] = seeded.ID.String()
	return nil
}

func (tc *testContext) aManagerExists(username, password string) error {
	seeded, err := tc.seedUser(username, password, "Manager", entity.RoleManager)
	if err != nil {
		return err
	}
	tc.placeholderValues["userId"] = seeded.ID.String()
	return nil
}

func (tc *testContext) anEmployeeExists(username, password string) error {
	seeded, err := tc.seedUser(username, password, "Employee", entity.RoleEmployee)
	if err != nil {
		return err
	}
	tc.placeholderValues["userId"] = seeded.ID.String()
	return nil
}

func (tc *testContext) anIncomeItemExists(name string) error {
	return tc.seedItem(entity.KindIncome, name)
}

func (tc *testContext) anOutcomeItemExists(name string) error {
	return tc.seedItem(entity.KindOutcome, name)
}

func (tc *testContext) seedItem(kind entity.TransactionKind, name string) error {
	seeded := entity.NewItem(kind, name)
	if err := tc.itemRepo.Create(context.Background(), seeded); err != nil {
		return err
	}
	tc.currentItemID = seeded.ID
	tc.placeholderValues["itemId"] = seeded.ID.String()
	return nil
}

func (tc *testContext) iAmLoggedInAs(username, password string) error {
	body, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return err
	}

	resp, err := tc.client.Post(
		tc.server.URL+"/api/users/login",
		"application/json",
		bytes.NewReader(body),
	)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login failed with status %d", resp.StatusCode)
	}

	var envelope struct {
		Result struct {
			Token string `json:"token"`
		} `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return err
	}
	if envelope.Result.Token == "" {
		return fmt.Errorf("login response contained no token")
	}

	tc.accessToken = envelope.Result.Token
	return nil
}

func (tc *testContext) iAmNotAuthenticated() error {
	tc.accessToken = ""
	return nil
}

func (tc *testContext) iSendARequestTo(method, path string) error {
	return tc.sendRequest(method, path, nil)
}

func (tc *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	return tc.sendRequest(method, path, []byte(tc.substitute(body.Content)))
}

func (tc *testContext) sendRequest(method, path string, body []byte) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, tc.server.URL+tc.substitute(path), reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	resp, err := tc.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	tc.response = resp
	tc.body, err = io.ReadAll(resp.Body)
	return err
}

func (tc *testContext) iCaptureTheResponseFieldAs(path, name string) error {
	value, ok := tc.lookupField(path)
	if !ok {
		return fmt.Errorf("response field %q not found in %s", path, tc.body)
	}
	tc.placeholderValues[name] = fmt.Sprintf("%v", value)
	return nil
}

func (tc *testContext) theResponseStatusShouldBe(expected int) error {
	if tc.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if tc.response.StatusCode != expected {
		return fmt.Errorf("expected status %d, got %d, body: %s", expected, tc.response.StatusCode, tc.body)
	}
	return nil
}

func (tc *testContext) theResponseMessageShouldBe(expected string) error {
	value, ok := tc.lookupField("message")
	if !ok {
		return fmt.Errorf("response has no message field: %s", tc.body)
	}
	if value != expected {
		return fmt.Errorf("expected message %q, got %q", expected, value)
	}
	return nil
}

func (tc *testContext) theResponseFieldShouldBe(path, expected string) error {
	value, ok := tc.lookupField(path)
	if !ok {
		return fmt.Errorf("response field %q not found in %s", path, tc.body)
	}
	actual := fmt.Sprintf("%v", value)
	if actual != tc.substitute(expected) {
		return fmt.Errorf("expected field %q to be %q, got %q", path, expected, actual)
	}
	return nil
}

func (tc *testContext) theResponseFieldShouldExist(path string) error {
	if _, ok := tc.lookupField(path); !ok {
		return fmt.Errorf("response field %q not found in %s", path, tc.body)
	}
	return nil
}

func (tc *testContext) theResponseFieldShouldHaveElements(path string, count int) error {
	value, ok := tc.lookupField(path)
	if !ok {
		return fmt.Errorf("response field %q not found in %s", path, tc.body)
	}
	list, ok := value.([]any)
	if !ok {
		return fmt.Errorf("response field %q is not a list", path)
	}
	if len(list) != count {
		return fmt.Errorf("expected field %q to have %d elements, got %d", path, count, len(list))
	}
	return nil
}

// substitute replaces {name} placeholders with captured values.
func (tc *testContext) substitute(input string) string {
	for name, value := range tc.placeholderValues {
		input = strings.ReplaceAll(input, "{"+name+"}", value)
	}
	return input
}

// lookupField walks a dot-separated path through the decoded response body.
func (tc *testContext) lookupField(path string) (any, bool) {
	var decoded any
	if err := json.Unmarshal(tc.body, &decoded); err != nil {
		return nil, false
	}

	current := decoded
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[part]
			if !ok {
				return nil, false
			}
			current = value
		case []any:
			index, err := strconv.Atoi(part)
			if err != nil || index < 0 || index >= len(node) {
				return nil, false
			}
			current = node[index]
		default:
			return nil, false
		}
	}
	return current, true
}
