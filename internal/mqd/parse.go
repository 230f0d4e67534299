package mqd

import (
	"fmt"

	"github.com/dekarrin/minq/internal/grammar"
	"github.com/dekarrin/minq/internal/world"
)

// topLevelData is the top-level structure containing all keys in a complete
// MQD 'data' type file.
type topLevelData struct {
	Format    string              `toml:"format"`
	Type      string              `toml:"type"`
	Templates []marshaledTemplate `toml:"template"`
	Objects   []marshaledObject   `toml:"object"`
}

type marshaledTemplate struct {
	Pattern string `toml:"pattern"`
}

type marshaledObject struct {
	Descriptor string `toml:"descriptor"`
	Kind       string `toml:"kind"`
}

// Data contains catalogs loaded from an MQD data file, ready for immediate
// use by an interpreter.
type Data struct {
	// Grammar holds every template defined by the file, in file order.
	Grammar grammar.Catalog

	// World holds every game object defined by the file, in file order.
	World world.Catalog
}

// parseData validates every definition in the unmarshaled file and builds the
// catalogs from them.
func parseData(mqd topLevelData) (Data, error) {
	var data Data

	if len(mqd.Templates) < 1 {
		return data, fmt.Errorf("data file does not define any templates")
	}
	if len(mqd.Objects) < 1 {
		return data, fmt.Errorf("data file does not define any objects")
	}

	templates := make([]grammar.Template, len(mqd.Templates))
	for i, mt := range mqd.Templates {
		t, err := grammar.ParseTemplate(mt.Pattern)
		if err != nil {
			return data, fmt.Errorf("template[%d]: %w", i, err)
		}
		templates[i] = t
	}

	objects := make([]world.GameObject, len(mqd.Objects))
	for i, mo := range mqd.Objects {
		g, err := world.NewObject(mo.Descriptor, mo.Kind)
		if err != nil {
			return data, fmt.Errorf("object[%d]: %w", i, err)
		}
		objects[i] = g
	}

	data.Grammar = grammar.NewCatalog(templates)
	data.World = world.NewCatalog(objects)
	return data, nil
}
