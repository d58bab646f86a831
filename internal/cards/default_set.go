package cards

import "embed"

//go:embed data/starter.json
var starterData embed.FS

// LoadStarterSet parses the embedded default card set and builds a
// Registry from it. Panics if the embedded file is missing — that would be
// a build-time defect, not a runtime one, since the JSON ships inside the
// binary. Malformed JSON or invalid card definitions are reported through
// the returned errors instead.
func LoadStarterSet() (*Registry, []error) {
	data, err := starterData.ReadFile("data/starter.json")
	if err != nil {
		panic("cards: embedded starter set missing: " + err.Error())
	}

	types, errs := LoadJSON(data)
	return NewRegistry(types), errs
}
