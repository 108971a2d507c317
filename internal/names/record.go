package names

// Gender values observed in the dataset. Records carry free strings; these
// constants exist for filters and the add command, not for enforcement.
const (
	GenderMale    = "male"
	GenderFemale  = "female"
	GenderNeutral = "neutral"
)

// Popularity tiers observed in the dataset, roughly ordered by prevalence.
const (
	PopularityRare     = "rare"
	PopularityUncommon = "uncommon"
	PopularityCommon   = "common"
	PopularityPopular  = "popular"
)

// Record is a single name entry in the database. The JSON field names match
// the names.json file consumed by the app.
type Record struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Gender     string   `json:"gender"`
	Origins    []string `json:"origins"`
	Styles     []string `json:"styles"`
	Meaning    string   `json:"meaning"`
	Popularity string   `json:"popularity"`
}

// HasOrigin reports whether the record carries the given origin tag.
func (r Record) HasOrigin(origin string) bool {
	for _, o := range r.Origins {
		if o == origin {
			return true
		}
	}
	return false
}

// HasStyle reports whether the record carries the given style tag.
func (r Record) HasStyle(style string) bool {
	for _, s := range r.Styles {
		if s == style {
			return true
		}
	}
	return false
}
