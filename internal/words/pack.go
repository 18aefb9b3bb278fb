package words

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/robalobadob/hangman/internal/game"
)

// Pack is a word pack document. A tier left out keeps its default list.
//
//	easy:   [cat, dog]
//	normal: [kettle]
//	hard:   [syzygy]
type Pack struct {
	Easy   []string `yaml:"easy" toml:"easy"`
	Normal []string `yaml:"normal" toml:"normal"`
	Hard   []string `yaml:"hard" toml:"hard"`
}

func (p *Pack) tiers() map[game.Difficulty][]string {
	return map[game.Difficulty][]string{
		game.Easy:   p.Easy,
		game.Normal: p.Normal,
		game.Hard:   p.Hard,
	}
}

// LoadPack reads a word pack, choosing the decoder from the extension
// (.yaml, .yml or .toml).
func LoadPack(path string) (*Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("words: read pack: %w", err)
	}
	var p Pack
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("words: parse yaml pack %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &p); err != nil {
			return nil, fmt.Errorf("words: parse toml pack %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("words: unsupported pack format %q", ext)
	}
	return &p, nil
}
