package audit

import "fmt"

func result(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}

func severity(success bool) Severity {
	if success {
		return SeverityInfo
	}
	return SeverityWarning
}

// ExchangeEvent records a change an asset manager made through the
// exchange API.
type ExchangeEvent struct {
	UserID   string
	ClientIP string
	// Operation is the exchange operation, for example createGlossaryTerm.
	Operation          string
	TypeName           string
	GUID               string
	AssetManagerGUID   string
	ExternalIdentifier string
	Success            bool
	ErrorMessage       string
}

func (e ExchangeEvent) MessageID() string {
	return "exchange"
}

func (e ExchangeEvent) Message() string {
	subject := e.TypeName
	if e.GUID != "" {
		subject = fmt.Sprintf("%s %s", e.TypeName, e.GUID)
	}
	if e.Success {
		return fmt.Sprintf("%s performed %s on %s", e.UserID, e.Operation, subject)
	}
	msg := fmt.Sprintf("%s tried to perform %s on %s", e.UserID, e.Operation, subject)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e ExchangeEvent) Severity() Severity {
	return severity(e.Success)
}

func (e ExchangeEvent) Facility() int {
	return FacilityAuthPriv
}

func (e ExchangeEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDAuth: {
			"user": e.UserID,
		},
		SDIDSubject: {
			"type": e.TypeName,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": e.Operation,
			"result":    result(e.Success),
		},
	}
	if e.GUID != "" {
		sd[SDIDSubject]["guid"] = e.GUID
	}
	if e.AssetManagerGUID != "" {
		sd[SDIDCorrelation] = map[string]string{
			"asset_manager": e.AssetManagerGUID,
		}
		if e.ExternalIdentifier != "" {
			sd[SDIDCorrelation]["external_identifier"] = e.ExternalIdentifier
		}
	}
	return sd
}

// AuthenticateEvent records a bearer token being accepted or rejected.
type AuthenticateEvent struct {
	UserID       string
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e AuthenticateEvent) MessageID() string {
	return "authn"
}

func (e AuthenticateEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s successfully authenticated with a bearer token", e.UserID)
	}
	msg := fmt.Sprintf("%s failed to authenticate with a bearer token", e.userOrUnknown())
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e AuthenticateEvent) userOrUnknown() string {
	if e.UserID == "" {
		return "unknown user"
	}
	return e.UserID
}

func (e AuthenticateEvent) Severity() Severity {
	return severity(e.Success)
}

func (e AuthenticateEvent) Facility() int {
	return FacilityAuthPriv
}

func (e AuthenticateEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"authenticator": "jwt",
			"user":          e.UserID,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "authenticate",
			"result":    result(e.Success),
		},
	}
}

// ImportEvent records an exchange document being applied.
type ImportEvent struct {
	UserID           string
	Source           string
	AssetManagerGUID string
	Created          int
	Updated          int
	Success          bool
	ErrorMessage     string
}

func (e ImportEvent) MessageID() string {
	return "import"
}

func (e ImportEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s imported %s (%d created, %d updated)", e.UserID, e.Source, e.Created, e.Updated)
	}
	msg := fmt.Sprintf("%s tried to import %s", e.UserID, e.Source)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e ImportEvent) Severity() Severity {
	return severity(e.Success)
}

func (e ImportEvent) Facility() int {
	return FacilityAuthPriv
}

func (e ImportEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.UserID,
		},
		SDIDImport: {
			"source":  e.Source,
			"created": fmt.Sprintf("%d", e.Created),
			"updated": fmt.Sprintf("%d", e.Updated),
		},
		SDIDCorrelation: {
			"asset_manager": e.AssetManagerGUID,
		},
		SDIDAction: {
			"operation": "import",
			"result":    result(e.Success),
		},
	}
}
