// assets/embed.go
//
// Default word lists, one file per difficulty tier. Blank lines and
// lines starting with '#' are ignored.

package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed easy.txt normal.txt hard.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// Tier returns the embedded list named tier ("easy", "normal" or "hard").
func Tier(tier string) ([]string, error) {
	return readLines(tier + ".txt")
}
