package clean

// Accepted value vocabularies. Whitelist steps drop rows whose value
// falls outside the vocabulary; whether blank values survive is decided
// per step.
var (
	ValidTitleStatuses = []string{
		"clean", "rebuilt", "missing", "salvage", "lien", "parts only",
	}

	ValidTransmissions = []string{"automatic", "manual"}

	ValidFuels = []string{"gas", "diesel", "hybrid", "electric"}

	ValidTypes = []string{
		"sedan", "suv", "pickup", "truck", "other", "coupe",
		"hatchback", "wagon", "van", "convertible", "minivan",
		"bus", "offroad",
	}
)

// FillTitleStatus marks rows without a title status as "missing".
func FillTitleStatus() Step {
	return FillBlank(FieldTitleStatus, "missing")
}

// ReplaceTypeAliases folds the minivan spelling variants into
// "minivan".
func ReplaceTypeAliases() Step {
	return Replace(FieldType, map[string]string{
		"mini van": "minivan",
		"mini-van": "minivan",
	})
}
