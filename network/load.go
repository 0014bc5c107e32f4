package network

import (
	"fmt"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load reads a TOML network file:
//
//	name = "Erode district"
//
//	[[roads]]
//	from = "Erode"
//	to = "Bhavani"
//	minutes = 16
//
// The result is validated before it is returned.
func Load(path string) (Network, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return Network{}, fmt.Errorf("network: failed to load %s: %w", path, err)
	}

	var n Network
	if err := k.Unmarshal("", &n); err != nil {
		return Network{}, fmt.Errorf("network: failed to decode %s: %w", path, err)
	}
	if err := n.Validate(); err != nil {
		return Network{}, fmt.Errorf("%s: %w", path, err)
	}

	return n, nil
}
