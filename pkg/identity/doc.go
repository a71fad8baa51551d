// Package identity carries the authenticated caller of an exchange request.
//
// The JWT middleware builds an Identity from the token claims, adds request
// context such as the remote IP and the asset manager header, and stores it
// in the request context:
//
//	id := identity.FromClaims(claims).WithRemoteIP(ip)
//	ctx = identity.Set(ctx, id)
//
// Handlers read it back with identity.Get or identity.UserID.
package identity
