package scene

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/df07/go-importance-raytracer/pkg/core"
)

// DefaultTexturePath is the equirectangular earth map used by the texture scenes
const DefaultTexturePath = "earthmap.jpg"

// Options carries the inputs a recipe needs besides its literal parameters
type Options struct {
	Random      *rand.Rand  // Drives random placement and noise tables; nil means seed 42
	TexturePath string      // Image for the earth texture; empty means DefaultTexturePath
	Logger      core.Logger // Receives texture load warnings; may be nil
}

func (o Options) withDefaults() Options {
	if o.Random == nil {
		o.Random = rand.New(rand.NewSource(42))
	}
	if o.TexturePath == "" {
		o.TexturePath = DefaultTexturePath
	}
	if o.Logger == nil {
		o.Logger = nopLogger{}
	}
	return o
}

type nopLogger struct{}

func (nopLogger) Printf(format string, args ...interface{}) {}

// Recipe is a named scene constructor
type Recipe struct {
	Name        string
	Description string
	Build       func(opts Options) *Scene
}

var recipes = []Recipe{
	{"bouncing-spheres", "Random spheres with motion blur and depth of field", NewBouncingSpheresScene},
	{"checkered-spheres", "Two spheres sharing a 3D checker texture", NewCheckeredSpheresScene},
	{"earth", "Image-textured globe", NewEarthScene},
	{"perlin-spheres", "Marble Perlin noise on a ground and a sphere", NewPerlinSpheresScene},
	{"quads", "Five colored quads", NewQuadsScene},
	{"simple-light", "Noise spheres lit by a sphere and a quad light", NewSimpleLightScene},
	{"cornell-box", "Cornell box with an aluminum box, light sampled", NewCornellBoxScene},
	{"cornell-smoke", "Cornell box with two smoke boxes", NewCornellSmokeScene},
	{"cornell-glass", "Cornell box with a glass sphere, light and sphere sampled", NewCornellGlassScene},
	{"final-scene", "Boxes, media, textures and instanced spheres", NewFinalScene},
	{"final-scene-extreme", "The final scene at 10000 samples per pixel", NewFinalSceneExtreme},
}

// Recipes returns every registered scene in display order
func Recipes() []Recipe {
	return append([]Recipe(nil), recipes...)
}

// Lookup finds a recipe by name
func Lookup(name string) (Recipe, error) {
	for _, r := range recipes {
		if r.Name == name {
			return r, nil
		}
	}
	names := make([]string, len(recipes))
	for i, r := range recipes {
		names[i] = r.Name
	}
	return Recipe{}, fmt.Errorf("unknown scene %q (available: %s)", name, strings.Join(names, ", "))
}

// Build constructs the named scene
func Build(name string, opts Options) (*Scene, error) {
	recipe, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return recipe.Build(opts.withDefaults()), nil
}
