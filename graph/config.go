package graph

import (
	"io/ioutil"

	"github.com/ztrue/tracerr"
	"gopkg.in/yaml.v2"
)

// ConfigFile is the name `astdot init` writes and `astdot graph` reads.
const ConfigFile = "astdot.yaml"

type Config struct {
	// ContinueOnError writes a comment line in place of a statement the
	// exporter cannot produce and keeps going, instead of stopping at the
	// first unknown node.
	ContinueOnError bool `yaml:"continue_on_error"`

	// LabelTrueLiterals emits `[label="true"]` for true literals. By default
	// they get no label statement at all.
	LabelTrueLiterals bool `yaml:"label_true_literals"`

	// Wrap encloses the output in `digraph { }`, writes edges with `->` and
	// escapes backslashes and quotes in labels.
	Wrap bool `yaml:"wrap"`
}

func LoadConfig(path string) (Config, error) {
	var c Config

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return c, tracerr.Wrap(err)
	}

	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return c, tracerr.Wrap(err)
	}

	return c, nil
}

func (c Config) Save(path string) error {
	out, err := yaml.Marshal(c)
	if err != nil {
		return tracerr.Wrap(err)
	}

	return tracerr.Wrap(ioutil.WriteFile(path, out, 0644))
}
