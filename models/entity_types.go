package models

// EntityType identifies which aggregate a [Change] or [SyncConflict] refers to.
// The value doubles as the discriminator for the payload union carried in
// Change.Data, so every constant here must have a matching branch in
// [Change.DecodePayload].
type EntityType string

const (
	// EntityTrip is a trip aggregate: title, dates, day plan.
	EntityTrip EntityType = "trip"

	// EntityPerson is a traveller attached to a trip.
	EntityPerson EntityType = "person"

	// EntityItem is a single packable item belonging to a trip.
	EntityItem EntityType = "item"

	// EntityRuleOverride is a per-trip adjustment of a packing rule
	// (quantity override or exclusion).
	EntityRuleOverride EntityType = "rule_override"

	// EntityDefaultItemRule is a reusable rule describing which items a
	// trip should carry and in what quantity.
	EntityDefaultItemRule EntityType = "default_item_rule"

	// EntityRulePack is a shareable named bundle of default item rules.
	EntityRulePack EntityType = "rule_pack"

	// EntityTripRule links a default item rule to a trip.
	EntityTripRule EntityType = "trip_rule"
)

// IsValid reports whether t is one of the known entity kinds.
func (t EntityType) IsValid() bool {
	switch t {
	case EntityTrip, EntityPerson, EntityItem, EntityRuleOverride,
		EntityDefaultItemRule, EntityRulePack, EntityTripRule:
		return true
	default:
		return false
	}
}

// String returns the wire representation of the entity type.
func (t EntityType) String() string {
	return string(t)
}

// Operation is the kind of local mutation recorded in a [Change].
type Operation string

const (
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// IsValid reports whether op is a known operation.
func (op Operation) IsValid() bool {
	switch op {
	case OpCreate, OpUpdate, OpDelete:
		return true
	default:
		return false
	}
}
