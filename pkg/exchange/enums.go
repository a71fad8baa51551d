package exchange

import (
	"github.com/doodlesbykumbi/metadata-exchange/pkg/model"
)

//go:generate go run github.com/dmarkham/enumer -type ElementStatus -trimprefix ElementStatus -transform snake-upper -json -yaml -output element_status.gen.go
//go:generate go run github.com/dmarkham/enumer -type GlossaryTermStatus -trimprefix GlossaryTermStatus -transform snake-upper -json -yaml -output glossary_term_status.gen.go
//go:generate go run github.com/dmarkham/enumer -type TermRelationshipStatus -trimprefix TermRelationshipStatus -transform snake-upper -json -yaml -output term_relationship_status.gen.go
//go:generate go run github.com/dmarkham/enumer -type CommentType -trimprefix CommentType -transform snake-upper -json -yaml -output comment_type.gen.go
//go:generate go run github.com/dmarkham/enumer -type SynchronizationDirection -trimprefix SynchronizationDirection -transform snake-upper -json -yaml -output synchronization_direction.gen.go
//go:generate go run github.com/dmarkham/enumer -type KeyPattern -trimprefix KeyPattern -transform snake-upper -json -yaml -output key_pattern.gen.go

// ElementStatus is the lifecycle status reported in an element header. The
// ordinals match the stored instance status.
type ElementStatus int

const (
	ElementStatusUnknown               = ElementStatus(model.StatusUnknown)
	ElementStatusDraft                 = ElementStatus(model.StatusDraft)
	ElementStatusPrepared              = ElementStatus(model.StatusPrepared)
	ElementStatusProposed              = ElementStatus(model.StatusProposed)
	ElementStatusApproved              = ElementStatus(model.StatusApproved)
	ElementStatusRejected              = ElementStatus(model.StatusRejected)
	ElementStatusApprovedConcept       = ElementStatus(model.StatusApprovedConcept)
	ElementStatusUnderDevelopment      = ElementStatus(model.StatusUnderDevelopment)
	ElementStatusDevelopmentComplete   = ElementStatus(model.StatusDevelopmentComplete)
	ElementStatusApprovedForDeployment = ElementStatus(model.StatusApprovedForDeployment)
	ElementStatusStandby               = ElementStatus(model.StatusStandby)
	ElementStatusActive                = ElementStatus(model.StatusActive)
	ElementStatusFailed                = ElementStatus(model.StatusFailed)
	ElementStatusDisabled              = ElementStatus(model.StatusDisabled)
	ElementStatusComplete              = ElementStatus(model.StatusComplete)
	ElementStatusDeprecated            = ElementStatus(model.StatusDeprecated)
	ElementStatusOther                 = ElementStatus(model.StatusOther)
	ElementStatusDeleted               = ElementStatus(model.StatusDeleted)
)

// GlossaryTermStatus is the subset of statuses a controlled glossary term
// moves through.
type GlossaryTermStatus int

const (
	GlossaryTermStatusDraft      GlossaryTermStatus = 0
	GlossaryTermStatusPrepared   GlossaryTermStatus = 1
	GlossaryTermStatusProposed   GlossaryTermStatus = 2
	GlossaryTermStatusApproved   GlossaryTermStatus = 3
	GlossaryTermStatusRejected   GlossaryTermStatus = 4
	GlossaryTermStatusActive     GlossaryTermStatus = 5
	GlossaryTermStatusDeprecated GlossaryTermStatus = 6
	GlossaryTermStatusOther      GlossaryTermStatus = 7
	GlossaryTermStatusDeleted    GlossaryTermStatus = 99
)

var termStatuses = map[GlossaryTermStatus]model.InstanceStatus{
	GlossaryTermStatusDraft:      model.StatusDraft,
	GlossaryTermStatusPrepared:   model.StatusPrepared,
	GlossaryTermStatusProposed:   model.StatusProposed,
	GlossaryTermStatusApproved:   model.StatusApproved,
	GlossaryTermStatusRejected:   model.StatusRejected,
	GlossaryTermStatusActive:     model.StatusActive,
	GlossaryTermStatusDeprecated: model.StatusDeprecated,
	GlossaryTermStatusOther:      model.StatusOther,
	GlossaryTermStatusDeleted:    model.StatusDeleted,
}

// InstanceStatus returns the stored status for s. Unknown values map to
// model.StatusUnknown.
func (s GlossaryTermStatus) InstanceStatus() model.InstanceStatus {
	return termStatuses[s]
}

// TermRelationshipStatus is stored on term relationships and categorizations.
type TermRelationshipStatus int

const (
	TermRelationshipStatusDraft      TermRelationshipStatus = 0
	TermRelationshipStatusActive     TermRelationshipStatus = 1
	TermRelationshipStatusDeprecated TermRelationshipStatus = 2
	TermRelationshipStatusObsolete   TermRelationshipStatus = 3
	TermRelationshipStatusOther      TermRelationshipStatus = 99
)

// CommentType says what kind of contribution a comment is.
type CommentType int

const (
	CommentTypeStandardComment CommentType = 0
	CommentTypeQuestion        CommentType = 1
	CommentTypeAnswer          CommentType = 2
	CommentTypeSuggestion      CommentType = 3
	CommentTypeUsageExperience CommentType = 4
	CommentTypeRequirement     CommentType = 5
	CommentTypeOther           CommentType = 99
)

// SynchronizationDirection says which side is allowed to change an element.
type SynchronizationDirection int

const (
	SynchronizationDirectionBothDirections SynchronizationDirection = 0
	SynchronizationDirectionToThirdParty   SynchronizationDirection = 1
	SynchronizationDirectionFromThirdParty SynchronizationDirection = 2
	SynchronizationDirectionOther          SynchronizationDirection = 99
)

// KeyPattern describes how the asset manager manages its identifiers.
type KeyPattern int

const (
	KeyPatternLocalKey     KeyPattern = 0
	KeyPatternRecycledKey  KeyPattern = 1
	KeyPatternNaturalKey   KeyPattern = 2
	KeyPatternMirrorKey    KeyPattern = 3
	KeyPatternAggregateKey KeyPattern = 4
	KeyPatternCallersKey   KeyPattern = 5
	KeyPatternStableKey    KeyPattern = 6
	KeyPatternOther        KeyPattern = 99
)
