// Package events publishes a notification for every change the exchange
// makes to the repository.
package events

import (
	"context"
	"time"
)

type Type string

const (
	ElementCreated       Type = "NewElement"
	ElementUpdated       Type = "UpdatedElement"
	ElementStatusChanged Type = "UpdatedElementStatus"
	ElementDeleted       Type = "DeletedElement"
	ElementClassified    Type = "ClassifiedElement"
	ElementReclassified  Type = "ReclassifiedElement"
	ElementDeclassified  Type = "DeclassifiedElement"
	RelationshipCreated  Type = "NewRelationship"
	RelationshipUpdated  Type = "UpdatedRelationship"
	RelationshipDeleted  Type = "DeletedRelationship"
)

// Event describes one change. Element events carry ElementGUID, relationship
// events carry RelationshipGUID and both ends.
type Event struct {
	ID                 string    `json:"id"`
	Type               Type      `json:"eventType"`
	TypeName           string    `json:"typeName"`
	ElementGUID        string    `json:"elementGUID,omitempty"`
	QualifiedName      string    `json:"qualifiedName,omitempty"`
	ClassificationName string    `json:"classificationName,omitempty"`
	RelationshipGUID   string    `json:"relationshipGUID,omitempty"`
	End1GUID           string    `json:"end1GUID,omitempty"`
	End2GUID           string    `json:"end2GUID,omitempty"`
	HomeCollectionID   string    `json:"homeMetadataCollectionId,omitempty"`
	UserID             string    `json:"userId"`
	Version            int64     `json:"version"`
	Time               time.Time `json:"eventTime"`
}

// Publisher sends events to the out topic.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// Discard is a Publisher that drops every event.
var Discard Publisher = discard{}

type discard struct{}

func (discard) Publish(context.Context, Event) error { return nil }
func (discard) Close() error                         { return nil }
