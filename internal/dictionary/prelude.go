package dictionary

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed prelude.yaml
var preludeYAML []byte

type preludeDoc struct {
	Words []preludeWord `yaml:"words"`
}

type preludeWord struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// LoadPrelude registers the embedded built-in word signatures.
func LoadPrelude(d *Dictionary) error {
	return loadPreludeBytes(d, preludeYAML)
}

// LoadPreludeFile registers word signatures from a user-supplied prelude,
// same format as the embedded one.
func LoadPreludeFile(d *Dictionary, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read prelude: %w", err)
	}
	return loadPreludeBytes(d, data)
}

func loadPreludeBytes(d *Dictionary, data []byte) error {
	var doc preludeDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse prelude: %w", err)
	}
	for _, w := range doc.Words {
		if err := d.DefinePrimitive(w.Name, w.Type); err != nil {
			return fmt.Errorf("prelude: %w", err)
		}
	}
	return nil
}
