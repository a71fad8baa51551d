package integration

import (
	"context"
	"os"
	"testing"

	"github.com/cucumber/godog"
)

// TestExchangeFeatures runs the exchange scenarios against a PostgreSQL
// container. EXCHANGE_FEATURE_TAGS narrows the run, e.g. "~@import".
func TestExchangeFeatures(t *testing.T) {
	if os.Getenv("EXCHANGE_INTEGRATION") == "" {
		t.Skip("exchange integration tests need Docker. Set EXCHANGE_INTEGRATION=1 to run the glossary, data asset and import scenarios.")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tc, err := NewTestContext(ctx)
	if err != nil {
		t.Fatalf("starting exchange database: %v", err)
	}
	defer tc.Close(ctx)

	suite := godog.TestSuite{
		Name: "metadata-exchange",
		ScenarioInitializer: func(sc *godog.ScenarioContext) {
			NewStepsContext(tc).RegisterSteps(sc)
		},
		Options: &godog.Options{
			Format:   "progress",
			Paths:    []string{"features"},
			Tags:     os.Getenv("EXCHANGE_FEATURE_TAGS"),
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("exchange feature scenarios failed")
	}
}
