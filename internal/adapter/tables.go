package adapter

import (
	"fmt"

	"github.com/MKhiriev/go-pack-sync/models"
)

// Remote entity tables. Each row carries the client-generated id as its
// primary key; inserts always pass it explicitly.
const (
	TableTrips            = "trips"
	TableTripPeople       = "trip_people"
	TableTripItems        = "trip_items"
	TableDefaultItemRules = "trip_default_item_rules"
	TableRulePacks        = "rule_packs"
	TableTripRules        = "trip_rules"
	TableRuleOverrides    = "trip_rule_overrides"
)

// TableFor resolves the remote table a change of the given entity type is
// pushed to. The switch is exhaustive over [models.EntityType].
func TableFor(entityType models.EntityType) (string, error) {
	switch entityType {
	case models.EntityTrip:
		return TableTrips, nil
	case models.EntityPerson:
		return TableTripPeople, nil
	case models.EntityItem:
		return TableTripItems, nil
	case models.EntityDefaultItemRule:
		return TableDefaultItemRules, nil
	case models.EntityRulePack:
		return TableRulePacks, nil
	case models.EntityTripRule:
		return TableTripRules, nil
	case models.EntityRuleOverride:
		return TableRuleOverrides, nil
	default:
		return "", fmt.Errorf("%w: %q", models.ErrUnknownEntityType, entityType)
	}
}
