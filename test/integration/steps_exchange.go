package integration

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/cucumber/godog"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/loader"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/logger"
)

func (s *StepsContext) registerExchangeSteps(sc *godog.ScenarioContext) {
	sc.Step(`^I import the exchange document:$`, s.iImportTheExchangeDocument)
	sc.Step(`^the import should succeed$`, s.theImportShouldSucceed)
	sc.Step(`^the import should fail$`, s.theImportShouldFail)
	sc.Step(`^the repository should hold (\d+) "([^"]*)" elements?$`, s.theRepositoryShouldHold)
	sc.Step(`^the external identifier "([^"]*)" should resolve to "([^"]*)"$`, s.theExternalIdentifierShouldResolveTo)
	sc.Step(`^I resolve the external identifier "([^"]*)" as "([^"]*)"$`, s.iResolveTheExternalIdentifierAs)
}

// iImportTheExchangeDocument applies a document the way an operator would:
// through exchangectl in binary mode, through the loader otherwise.
func (s *StepsContext) iImportTheExchangeDocument(doc *godog.DocString) error {
	dir, err := os.MkdirTemp("", "exchange-import")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "document.yml")
	if err := os.WriteFile(path, []byte(doc.Content), 0o600); err != nil {
		return err
	}

	user := s.userID
	if user == "" {
		user = "integration"
	}

	if s.tc.BinaryPath == "" {
		l := loader.NewLoader(s.tc.Exchange.AssetManagers, s.tc.Exchange.Glossaries, s.tc.Exchange.DataAssets, user).
			WithLogger(logger.Nop())
		_, s.importErr = l.LoadFromFile(context.Background(), path)
		return nil
	}

	cmd := exec.Command(s.tc.BinaryPath, "import", path, "--user", user)
	cmd.Env = binaryEnv(s.tc.DatabaseURL)
	if out, err := cmd.CombinedOutput(); err != nil {
		s.importErr = fmt.Errorf("%w: %s", err, out)
	} else {
		s.importErr = nil
	}
	return nil
}

func (s *StepsContext) theImportShouldSucceed() error {
	return s.importErr
}

func (s *StepsContext) theImportShouldFail() error {
	if s.importErr == nil {
		return fmt.Errorf("expected the import to fail")
	}
	return nil
}

func (s *StepsContext) theRepositoryShouldHold(expected int, typeName string) error {
	var count int64
	if err := s.tc.DB.Table("entities").Where("type_name = ?", typeName).Count(&count).Error; err != nil {
		return err
	}
	if count != int64(expected) {
		return fmt.Errorf("expected %d %s elements, found %d", expected, typeName, count)
	}
	return nil
}

func (s *StepsContext) theExternalIdentifierShouldResolveTo(identifier, alias string) error {
	guid, err := s.resolve(identifier)
	if err != nil {
		return err
	}
	if want := s.expand("{{" + alias + "}}"); guid != want {
		return fmt.Errorf("expected %s to resolve to %s, got %s", identifier, want, guid)
	}
	return nil
}

func (s *StepsContext) iResolveTheExternalIdentifierAs(identifier, alias string) error {
	guid, err := s.resolve(identifier)
	if err != nil {
		return err
	}
	s.guids[alias] = guid
	return nil
}

func (s *StepsContext) resolve(identifier string) (string, error) {
	if s.assetManagerGUID == "" {
		return "", fmt.Errorf("no asset manager selected")
	}
	path := fmt.Sprintf("/asset-managers/%s/external-identifiers/%s", s.assetManagerGUID, url.PathEscape(identifier))
	if err := s.doRequest("GET", path, nil, true); err != nil {
		return "", err
	}
	if s.response.StatusCode != 200 {
		return "", fmt.Errorf("failed to resolve %s: %s", identifier, s.describeResponse())
	}
	return s.responseGUID()
}
