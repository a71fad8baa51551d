// Package errs defines the three error categories surfaced by the exchange
// layer: invalid parameter, user not authorized and property server problems.
package errs

import (
	"github.com/code19m/errx"
)

const (
	CodeInvalidParameter  = "INVALID_PARAMETER"
	CodeUserNotAuthorized = "USER_NOT_AUTHORIZED"
	CodePropertyServer    = "PROPERTY_SERVER_ERROR"
)

// NullParameter reports a required parameter that was not supplied.
func NullParameter(name string) error {
	return errx.New(
		"required parameter "+name+" is missing",
		errx.WithCode(CodeInvalidParameter),
		errx.WithType(errx.T_Validation),
		errx.WithFields(errx.M{name: "required"}),
	)
}

// InvalidParameter reports a supplied parameter with an unusable value.
func InvalidParameter(name, reason string) error {
	return errx.New(
		"parameter "+name+" is invalid: "+reason,
		errx.WithCode(CodeInvalidParameter),
		errx.WithType(errx.T_Validation),
		errx.WithFields(errx.M{name: reason}),
	)
}

// UnknownGUID reports a GUID that does not identify an element of the expected type.
func UnknownGUID(guid, typeName string) error {
	return errx.New(
		"no "+typeName+" with guid "+guid,
		errx.WithCode(CodeInvalidParameter),
		errx.WithType(errx.T_NotFound),
		errx.WithDetails(errx.D{"guid": guid, "type_name": typeName}),
	)
}

// UnknownExternalIdentifier reports an identifier the asset manager has not
// registered in its scope.
func UnknownExternalIdentifier(scopeGUID, identifier string) error {
	return errx.New(
		"external identifier "+identifier+" is not known to "+scopeGUID,
		errx.WithCode(CodeInvalidParameter),
		errx.WithType(errx.T_NotFound),
		errx.WithFields(errx.M{"externalIdentifier": "unknown"}),
		errx.WithDetails(errx.D{"scope_guid": scopeGUID, "identifier": identifier}),
	)
}

// Duplicate reports a unique property value that is already taken.
func Duplicate(name, value string) error {
	return errx.New(
		name+" "+value+" is already in use",
		errx.WithCode(CodeInvalidParameter),
		errx.WithType(errx.T_Conflict),
		errx.WithFields(errx.M{name: "duplicate"}),
		errx.WithDetails(errx.D{"value": value}),
	)
}

// UserNotAuthorized reports a caller that may not act on an element.
func UserNotAuthorized(userID, guid, reason string) error {
	return errx.New(
		"user "+userID+" is not authorized to change "+guid+": "+reason,
		errx.WithCode(CodeUserNotAuthorized),
		errx.WithType(errx.T_Forbidden),
		errx.WithDetails(errx.D{"user_id": userID, "guid": guid}),
	)
}

// PropertyServer wraps a failure of the underlying repository. Errors that
// already belong to one of the exchange categories are returned unchanged.
func PropertyServer(err error) error {
	if err == nil {
		return nil
	}
	if errx.IsCodeIn(err, CodeInvalidParameter, CodeUserNotAuthorized, CodePropertyServer) {
		return err
	}
	return errx.Wrap(
		err,
		errx.WithCode(CodePropertyServer),
		errx.WithType(errx.T_Internal),
	)
}

func IsInvalidParameter(err error) bool {
	return errx.IsCodeIn(err, CodeInvalidParameter)
}

func IsUserNotAuthorized(err error) bool {
	return errx.IsCodeIn(err, CodeUserNotAuthorized)
}

func IsPropertyServer(err error) bool {
	return errx.IsCodeIn(err, CodePropertyServer)
}

// IsNotFound reports an unknown GUID or external identifier.
func IsNotFound(err error) bool {
	return err != nil && errx.GetType(err) == errx.T_NotFound
}

// IsDuplicate reports a unique value or relationship that already exists.
func IsDuplicate(err error) bool {
	return err != nil && errx.GetType(err) == errx.T_Conflict
}
