package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

//go:embed all:scene
var sceneFS embed.FS

// ReadScene returns the source of a scene script and the URL it was read
// from. gameDir/scene/name wins over the built-in scene of the same name.
func ReadScene(gameDir, name string) (src string, url string, err error) {
	if gameDir != "" {
		p := filepath.Join(gameDir, "scene", name)
		data, err := os.ReadFile(p)
		if err == nil {
			return string(data), filepath.ToSlash(p), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", "", fmt.Errorf("failed to read scene %s: %w", p, err)
		}
	}

	p := path.Join("scene", name)
	data, err := sceneFS.ReadFile(p)
	if err != nil {
		return "", "", fmt.Errorf("scene %s not found: %w", name, err)
	}
	return string(data), "builtin:" + p, nil
}
