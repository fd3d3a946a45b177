package scene

import (
	"path/filepath"

	"github.com/rs/zerolog"

	"space/assets"
	"space/datafile"
	"space/gfx"
)

// Options select where assets come from and how failures are covered.
type Options struct {
	Root         string // assets root; holds data/, model/ and textures/
	Placeholders bool   // replace models that fail to load with procedural meshes
	Lighting     bool
}

// Load reads the motion and skybox tables, which must succeed, then the
// models and the cubemap, whose failures are logged and covered.
func Load(d *gfx.Device, opts Options, log zerolog.Logger) (*Renderer, error) {
	dataDir := filepath.Join(opts.Root, "data")
	table, err := LoadMotionTable(dataDir, log)
	if err != nil {
		return nil, err
	}
	skyPath := filepath.Join(dataDir, SkyboxFile)
	skyPos, err := datafile.LoadAll(skyPath, 3*SkyboxVertices)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", skyPath).Int("count", len(skyPos)).Msg("floats loaded")

	cube, err := assets.LoadCubemap(filepath.Join(opts.Root, "textures", "skybox"), assets.SkyboxFaces)
	if err != nil {
		log.Warn().Err(err).Msg("cubemap incomplete")
	}
	sky, err := NewSkybox(d, skyPos, cube)
	if err != nil {
		return nil, err
	}

	entities := Space(table)
	models := make(map[string]*assets.Model)
	for _, e := range entities {
		if _, ok := models[e.Model]; ok {
			continue
		}
		models[e.Model] = loadModel(d, opts, e.Model, log)
	}

	r := NewRenderer(d, entities, models, sky, log)
	r.SetLighting(opts.Lighting)
	log.Info().Int("entities", len(entities)).Int("rows", table.Len()).Int("models", len(models)).Msg("scene loaded")
	return r, nil
}

func loadModel(d *gfx.Device, opts Options, key string, log zerolog.Logger) *assets.Model {
	path := ModelPath(opts.Root, key)
	m, err := assets.LoadModel(d, path)
	if err == nil {
		log.Debug().Str("model", key).Int("meshes", len(m.Meshes)).Int("triangles", m.Triangles()).Msg("model loaded")
		return m
	}
	log.Warn().Err(err).Str("model", key).Msg("model failed to load")
	if !opts.Placeholders || len(m.Meshes) > 0 {
		return m
	}
	ph := placeholders[key]
	return assets.PlaceholderModel(d, key, ph.shape, ph.color)
}
