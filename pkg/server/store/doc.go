// Package store provides storage abstractions for the exchange server.
//
// The interfaces decouple the generic handlers from the database so they can
// be tested with mocks. The gorm subpackage implements them on PostgreSQL.
//
// # Available Stores
//
//   - EntityStore: entities and their classifications
//   - RelationshipStore: typed links between entities
//   - ExternalIDStore: correlation between asset manager identifiers and GUIDs
//   - HealthStore: database connectivity
//
// # Usage
//
//	entities := gorm.NewEntityStore(db)
//	entity, err := entities.FetchEntity(ctx, guid)
//	if errors.Is(err, store.ErrEntityNotFound) {
//	    // Handle not found
//	}
package store
