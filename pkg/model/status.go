package model

// InstanceStatus is the lifecycle status stored on entities and relationships.
// The ordinals are part of the stored data and must not change.
type InstanceStatus int

const (
	StatusUnknown               InstanceStatus = 0
	StatusDraft                 InstanceStatus = 1
	StatusPrepared              InstanceStatus = 2
	StatusProposed              InstanceStatus = 3
	StatusApproved              InstanceStatus = 4
	StatusRejected              InstanceStatus = 5
	StatusApprovedConcept       InstanceStatus = 6
	StatusUnderDevelopment      InstanceStatus = 7
	StatusDevelopmentComplete   InstanceStatus = 8
	StatusApprovedForDeployment InstanceStatus = 9
	StatusStandby               InstanceStatus = 10
	StatusActive                InstanceStatus = 15
	StatusFailed                InstanceStatus = 16
	StatusDisabled              InstanceStatus = 17
	StatusComplete              InstanceStatus = 18
	StatusDeprecated            InstanceStatus = 19
	StatusOther                 InstanceStatus = 50
	StatusDeleted               InstanceStatus = 99
)
