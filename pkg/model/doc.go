// Package model defines the database models of the metadata repository.
//
// Every exchanged element is stored as a generic Entity whose type-specific
// properties live in a JSONB column. The facades in pkg/exchange map these
// rows onto glossaries, terms, data assets and comments.
//
// # Core Models
//
//   - Entity: an element with its header fields and properties
//   - Classification: a named, versioned tag attached to an entity
//   - Relationship: a typed link between two entities
//   - ExternalIdentifier: an asset manager's own key for an entity
//
// # Database Schema
//
//   - entities: all elements
//   - classifications: per-entity classifications
//   - relationships: links between entities
//   - external_identifiers: correlation records, scoped by asset manager
//   - messages: audit trail written by pkg/audit
package model
