package audit

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger()
	logger.SetWriter(&buf)

	event := ExchangeEvent{
		UserID:    "erinoverview",
		ClientIP:  "192.168.1.1",
		Operation: "createGlossary",
		TypeName:  "Glossary",
		GUID:      "g-1",
		Success:   true,
	}

	logger.Log(event)

	output := buf.String()

	if !strings.HasPrefix(output, "<86>1 ") {
		t.Errorf("Expected PRI 86 (authpriv.info) at the start of %q", output)
	}
	if !strings.Contains(output, " exchange ") {
		t.Error("Expected app name 'exchange' in output")
	}
	if !strings.Contains(output, "erinoverview") {
		t.Error("Expected user in output")
	}
	if !strings.Contains(output, "192.168.1.1") {
		t.Error("Expected client IP in output")
	}
	if !strings.Contains(output, "performed createGlossary on Glossary g-1") {
		t.Error("Expected success message in output")
	}
}

func TestExchangeEvent(t *testing.T) {
	tests := []struct {
		name    string
		event   ExchangeEvent
		wantMsg string
		wantSev Severity
	}{
		{
			name: "successful change",
			event: ExchangeEvent{
				UserID:    "erinoverview",
				Operation: "updateGlossaryTerm",
				TypeName:  "GlossaryTerm",
				GUID:      "t-1",
				Success:   true,
			},
			wantMsg: "erinoverview performed updateGlossaryTerm on GlossaryTerm t-1",
			wantSev: SeverityInfo,
		},
		{
			name: "failed create has no guid",
			event: ExchangeEvent{
				UserID:       "erinoverview",
				Operation:    "createDataAsset",
				TypeName:     "DataAsset",
				Success:      false,
				ErrorMessage: "qualifiedName DataSet::orders is already in use",
			},
			wantMsg: "erinoverview tried to perform createDataAsset on DataAsset: qualifiedName DataSet::orders is already in use",
			wantSev: SeverityWarning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.Message(); got != tt.wantMsg {
				t.Errorf("Message() = %q, want %q", got, tt.wantMsg)
			}
			if tt.event.Severity() != tt.wantSev {
				t.Errorf("Severity() = %v, want %v", tt.event.Severity(), tt.wantSev)
			}
			if tt.event.Facility() != FacilityAuthPriv {
				t.Errorf("Facility() = %v, want %v", tt.event.Facility(), FacilityAuthPriv)
			}
			if tt.event.MessageID() != "exchange" {
				t.Errorf("MessageID() = %v, want exchange", tt.event.MessageID())
			}
		})
	}
}

func TestAuthenticateEvent(t *testing.T) {
	ok := AuthenticateEvent{UserID: "erinoverview", ClientIP: "10.0.0.1", Success: true}
	if !strings.Contains(ok.Message(), "successfully authenticated") {
		t.Errorf("Message() = %q", ok.Message())
	}

	failed := AuthenticateEvent{ClientIP: "10.0.0.1", ErrorMessage: "token is expired"}
	if failed.Message() != "unknown user failed to authenticate with a bearer token: token is expired" {
		t.Errorf("Message() = %q", failed.Message())
	}
	if failed.Severity() != SeverityWarning {
		t.Errorf("Severity() = %v, want %v", failed.Severity(), SeverityWarning)
	}
	if failed.StructuredData()[SDIDAction]["result"] != "failure" {
		t.Errorf("StructuredData action.result = %v, want failure", failed.StructuredData()[SDIDAction]["result"])
	}
}

func TestImportEvent(t *testing.T) {
	event := ImportEvent{
		UserID:           "erinoverview",
		Source:           "sales.yaml",
		AssetManagerGUID: "am-1",
		Created:          3,
		Updated:          2,
		Success:          true,
	}

	if event.Message() != "erinoverview imported sales.yaml (3 created, 2 updated)" {
		t.Errorf("Message() = %q", event.Message())
	}
	sd := event.StructuredData()
	if sd[SDIDImport]["created"] != "3" {
		t.Errorf("StructuredData import.created = %v, want 3", sd[SDIDImport]["created"])
	}
	if sd[SDIDCorrelation]["asset_manager"] != "am-1" {
		t.Errorf("StructuredData correlation.asset_manager = %v, want am-1", sd[SDIDCorrelation]["asset_manager"])
	}
}

func TestStructuredData(t *testing.T) {
	event := ExchangeEvent{
		UserID:             "erinoverview",
		ClientIP:           "10.0.0.1",
		Operation:          "removeComment",
		TypeName:           "Comment",
		GUID:               "c-1",
		AssetManagerGUID:   "am-1",
		ExternalIdentifier: "crm-42",
		Success:            true,
	}

	sd := event.StructuredData()

	if sd[SDIDAuth]["user"] != "erinoverview" {
		t.Errorf("StructuredData auth.user = %v, want 'erinoverview'", sd[SDIDAuth]["user"])
	}
	if sd[SDIDSubject]["guid"] != "c-1" {
		t.Errorf("StructuredData subject.guid = %v, want 'c-1'", sd[SDIDSubject]["guid"])
	}
	if sd[SDIDClient]["ip"] != "10.0.0.1" {
		t.Errorf("StructuredData client.ip = %v, want '10.0.0.1'", sd[SDIDClient]["ip"])
	}
	if sd[SDIDCorrelation]["external_identifier"] != "crm-42" {
		t.Errorf("StructuredData correlation.external_identifier = %v, want 'crm-42'", sd[SDIDCorrelation]["external_identifier"])
	}
	if sd[SDIDAction]["result"] != "success" {
		t.Errorf("StructuredData action.result = %v, want 'success'", sd[SDIDAction]["result"])
	}
}

func TestStructuredData_WithoutCorrelation(t *testing.T) {
	sd := ExchangeEvent{UserID: "u", Operation: "createGlossary", TypeName: "Glossary"}.StructuredData()
	if _, ok := sd[SDIDCorrelation]; ok {
		t.Error("Expected no correlation element without an asset manager")
	}
	if _, ok := sd[SDIDSubject]["guid"]; ok {
		t.Error("Expected no subject guid")
	}
}

func TestAuditToggle(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger()
	logger.SetWriter(&buf)

	// Save original state
	originalEnabled := auditEnabled
	defer func() {
		auditEnabled = originalEnabled
	}()

	// Test with audit disabled
	SetEnabled(false)
	if IsEnabled() {
		t.Error("Expected audit to be disabled")
	}

	// Test with audit enabled
	SetEnabled(true)
	if !IsEnabled() {
		t.Error("Expected audit to be enabled")
	}
}

func TestEscapeSDValue(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"simple", `"simple"`},
		{`with"quote`, `"with\"quote"`},
		{`with\backslash`, `"with\\backslash"`},
		{`with]bracket`, `"with\]bracket"`},
		{`all"special\chars]`, `"all\"special\\chars\]"`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := escapeSDValue(tt.input)
			if got != tt.want {
				t.Errorf("escapeSDValue(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatStructuredData_Sorted(t *testing.T) {
	got := formatStructuredData(map[string]map[string]string{
		SDIDSubject: {"type": "Glossary", "guid": "g-1"},
		SDIDAction:  {"result": "success", "operation": "createGlossary"},
	})
	want := `[action@32473 operation="createGlossary" result="success"][subject@32473 guid="g-1" type="Glossary"]`
	if got != want {
		t.Errorf("formatStructuredData() = %q, want %q", got, want)
	}
}

func TestLog_PersistsToStore(t *testing.T) {
	var buf bytes.Buffer
	DefaultLogger.SetWriter(&buf)
	originalEnabled := auditEnabled
	defer func() {
		DefaultLogger.SetWriter(os.Stdout)
		auditEnabled = originalEnabled
		SetStore(nil)
	}()
	SetEnabled(true)

	s, mock := newMockStore(t)
	SetStore(s)
	expectInsert(mock, "import", "erinoverview imported sales.yaml (1 created, 0 updated)")

	Log(ImportEvent{UserID: "erinoverview", Source: "sales.yaml", Created: 1, Success: true})

	if !strings.Contains(buf.String(), " import ") {
		t.Errorf("Expected the import event on the syslog writer, got %q", buf.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
