/*
File    : sugar/internal/sugarconfig/sugarconfig.go
Package : sugarconfig

Optional .sugarrc.yaml loading, feeding eval.Config. Nothing in the
teacher reads a dotfile config - go-mix's stack sizes, REPL banner, and
prompt are all compile-time constants in main/main.go - so this package
has no direct teacher file to adapt; it is grounded on the teacher's
own dependency choice instead, reusing gopkg.in/yaml.v3 (already a
direct teacher dependency, see go-mix's go.mod) for the one ambient
concern - user-tunable runtime configuration - the teacher's constants
never needed.
*/
package sugarconfig

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sugarlang/sugar/eval"
)

// FileName is the dotfile Load looks for in the given directory.
const FileName = ".sugarrc.yaml"

// Config mirrors eval.Config with YAML tags; zero fields fall back to
// eval's own defaults.
type Config struct {
	OxySize int `yaml:"oxy_size"`
	GCSize  int `yaml:"gc_size"`
}

// Load reads dir/.sugarrc.yaml if present and returns the eval.Config
// it describes. A missing file is not an error: it yields
// eval.DefaultConfig(). A malformed file is.
func Load(dir string) (eval.Config, error) {
	path := dir + string(os.PathSeparator) + FileName
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return eval.DefaultConfig(), nil
	}
	if err != nil {
		return eval.Config{}, err
	}

	var raw Config
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return eval.Config{}, err
	}

	cfg := eval.DefaultConfig()
	if raw.OxySize > 0 {
		cfg.OxySize = raw.OxySize
	}
	if raw.GCSize > 0 {
		cfg.GCSize = raw.GCSize
	}
	return cfg, nil
}
