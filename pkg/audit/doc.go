// Package audit writes an RFC5424 audit trail of the changes made through
// the exchange.
//
// Every mutating exchange request, token authentication and document import
// is recorded as an Event. Events are written to stdout as syslog lines and,
// once SetStore has been called, persisted to the messages table.
//
//	audit.Log(audit.ExchangeEvent{
//	    UserID:    "erinoverview",
//	    Operation: "createGlossary",
//	    TypeName:  "Glossary",
//	    GUID:      guid,
//	    Success:   true,
//	})
//
// Set EXCHANGE_AUDIT_ENABLED=false to turn auditing off.
package audit
