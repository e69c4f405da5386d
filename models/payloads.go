package models

// Payload variants carried in Change.Data, one per entity kind. All
// aggregates are versioned and soft-deletable; the owning user id travels on
// the change record itself, not inside the payload.

// TripData is the trip aggregate: the overall plan plus a per-day packing
// breakdown. Days are diffed index-by-index, so day order is significant.
type TripData struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	StartDate   string    `json:"startDate,omitempty"`
	EndDate     string    `json:"endDate,omitempty"`
	Days        []TripDay `json:"days,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	Version     int64     `json:"version"`
	Deleted     bool      `json:"deleted"`
}

// TripDay is one day of a trip with its expected weather and items.
type TripDay struct {
	Date           string    `json:"date"`
	ExpectedClimate string   `json:"expectedClimate,omitempty"`
	Items          []DayItem `json:"items,omitempty"`
}

// DayItem is an item instance placed on a specific day.
type DayItem struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
	Packed   bool   `json:"packed"`
}

// PersonData is a traveller attached to a trip.
type PersonData struct {
	ID      string `json:"id"`
	TripID  string `json:"tripId"`
	Name    string `json:"name"`
	Age     int    `json:"age,omitempty"`
	Gender  string `json:"gender,omitempty"`
	Version int64  `json:"version"`
	Deleted bool   `json:"deleted"`
}

// ItemData is a packable item scoped to a trip, optionally assigned to a
// person and a day.
type ItemData struct {
	ID         string `json:"id"`
	TripID     string `json:"tripId"`
	Name       string `json:"name"`
	Category   string `json:"category,omitempty"`
	Quantity   int    `json:"quantity"`
	Packed     bool   `json:"packed"`
	PersonID   string `json:"personId,omitempty"`
	DayIndex   *int   `json:"dayIndex,omitempty"`
	Notes      string `json:"notes,omitempty"`
	RuleID     string `json:"ruleId,omitempty"`
	RuleHash   string `json:"ruleHash,omitempty"`
	Version    int64  `json:"version"`
	Deleted    bool   `json:"deleted"`
}

// RuleOverrideData adjusts a rule's computed quantity for one trip, person
// or day, or excludes the rule entirely.
type RuleOverrideData struct {
	ID            string `json:"id"`
	TripID        string `json:"tripId"`
	RuleID        string `json:"ruleId"`
	OverrideCount *int   `json:"overrideCount,omitempty"`
	IsExcluded    bool   `json:"isExcluded"`
	PersonID      string `json:"personId,omitempty"`
	DayIndex      *int   `json:"dayIndex,omitempty"`
	Version       int64  `json:"version"`
	Deleted       bool   `json:"deleted"`
}

// DefaultItemRuleData describes how many of an item a trip should carry,
// derived from trip shape (days, people) and optional conditions.
type DefaultItemRuleData struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	CategoryID      string          `json:"categoryId,omitempty"`
	SubcategoryID   string          `json:"subcategoryId,omitempty"`
	Calculation     RuleCalculation `json:"calculation"`
	Conditions      []RuleCondition `json:"conditions,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	OriginalRuleID  string          `json:"originalRuleId,omitempty"`
	PackIDs         []string        `json:"packIds,omitempty"`
	Version         int64           `json:"version"`
	Deleted         bool            `json:"deleted"`
}

// RuleCalculation is the quantity formula of a default item rule.
type RuleCalculation struct {
	BaseQuantity int  `json:"baseQuantity"`
	PerPerson    bool `json:"perPerson"`
	PerDay       bool `json:"perDay"`
	Extra        int  `json:"extra,omitempty"`
	DaysPattern  *DaysPattern `json:"daysPattern,omitempty"`
}

// DaysPattern spreads a rule over every N days (e.g. laundry cadence).
type DaysPattern struct {
	Every int `json:"every"`
	Roundup bool `json:"roundUp"`
}

// RuleCondition gates a rule on a trip attribute.
type RuleCondition struct {
	Type     string `json:"type"`
	Operator string `json:"operator"`
	Value    any    `json:"value"`
	Notes    string `json:"notes,omitempty"`
}

// RulePackData is a shareable named bundle of default item rules.
type RulePackData struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Author      *RulePackAuthor   `json:"author,omitempty"`
	Metadata    *RulePackMetadata `json:"metadata,omitempty"`
	Stats       *RulePackStats    `json:"stats,omitempty"`
	RuleIDs     []string          `json:"ruleIds,omitempty"`
	Color       string            `json:"color,omitempty"`
	Icon        string            `json:"icon,omitempty"`
	Version     int64             `json:"version"`
	Deleted     bool              `json:"deleted"`
}

// RulePackAuthor identifies who published a rule pack.
type RulePackAuthor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RulePackMetadata carries descriptive pack attributes.
type RulePackMetadata struct {
	Created    string   `json:"created,omitempty"`
	Modified   string   `json:"modified,omitempty"`
	IsBuiltIn  bool     `json:"isBuiltIn"`
	IsShared   bool     `json:"isShared"`
	Visibility string   `json:"visibility,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Category   string   `json:"category,omitempty"`
	Locale     string   `json:"locale,omitempty"`
}

// RulePackStats carries usage counters maintained by the remote authority.
type RulePackStats struct {
	UsageCount int     `json:"usageCount"`
	Rating     float64 `json:"rating,omitempty"`
	ReviewCount int    `json:"reviewCount,omitempty"`
}

// TripRuleData links a default item rule to a trip.
type TripRuleData struct {
	ID      string `json:"id"`
	TripID  string `json:"tripId"`
	RuleID  string `json:"ruleId"`
	Version int64  `json:"version"`
	Deleted bool   `json:"deleted"`
}
