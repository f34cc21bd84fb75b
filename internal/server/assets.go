package server

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"maps"
	"net/http"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/rs/zerolog/log"
)

//go:embed web
var webFS embed.FS

// assetHandler serves the embedded web shell. Scripts are minified once at startup.
type assetHandler struct {
	files   map[string][]byte
	modTime time.Time
}

func newAssetHandler(minify bool) (*assetHandler, error) {
	root, err := fs.Sub(webFS, "web")
	if err != nil {
		return nil, err
	}

	h := &assetHandler{files: make(map[string][]byte), modTime: time.Now()}
	err = fs.WalkDir(root, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(root, name)
		if err != nil {
			return err
		}
		if minify && path.Ext(name) == ".js" {
			data, err = minifyScript(name, data)
			if err != nil {
				return err
			}
		}
		h.files[name] = data
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading web assets: %w", err)
	}
	return h, nil
}

func minifyScript(name string, src []byte) ([]byte, error) {
	result := api.Transform(string(src), api.TransformOptions{
		Loader:            api.LoaderJS,
		Target:            api.ES2020,
		MinifyWhitespace:  true,
		MinifyIdentifiers: true,
		MinifySyntax:      true,
		Sourcefile:        name,
	})
	if len(result.Errors) > 0 {
		msg := result.Errors[0]
		return nil, fmt.Errorf("minifying %s: %s", name, msg.Text)
	}
	log.Debug().Str("file", name).Int("before", len(src)).Int("after", len(result.Code)).Msg("Minified script")
	return result.Code, nil
}

// names lists the embedded files in lexical order.
func (h *assetHandler) names() []string {
	return slices.Sorted(maps.Keys(h.files))
}

func (h *assetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(path.Clean(r.URL.Path), "/")
	if name == "" {
		name = "index.html"
	}
	data, ok := h.files[name]
	if !ok {
		http.NotFound(w, r)
		return
	}
	http.ServeContent(w, r, name, h.modTime, bytes.NewReader(data))
}
