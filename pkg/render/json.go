package render

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"github.com/matzehuels/rocket/pkg/parts"
	"github.com/matzehuels/rocket/pkg/rocket"
)

// JSONOption configures JSON rendering via [JSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	seed    uint64
	hasSeed bool
	palette string
	text    []Option
}

// WithJSONSeed records the seed the rocket was built with, enabling
// reproducible rebuilds.
func WithJSONSeed(seed uint64) JSONOption {
	return func(r *jsonRenderer) { r.seed = seed; r.hasSeed = true }
}

// WithJSONPalette records the requested palette name.
func WithJSONPalette(name string) JSONOption {
	return func(r *jsonRenderer) { r.palette = name }
}

// WithJSONText passes options to the text renderer used for the art field.
func WithJSONText(opts ...Option) JSONOption {
	return func(r *jsonRenderer) { r.text = append(r.text, opts...) }
}

type jsonOutput struct {
	ID       string        `json:"id"`
	Height   int           `json:"height"`
	Width    int           `json:"width"`
	Ratio    float64       `json:"ratio"`
	Seed     *uint64       `json:"seed,omitempty"`
	Palette  string        `json:"palette,omitempty"`
	Sections []jsonSection `json:"sections"`
	Art      string        `json:"art"`
}

type jsonSection struct {
	ID        string `json:"id"`
	Category  string `json:"category"`
	Width     *int   `json:"width,omitempty"`
	Connector int    `json:"connector"`
	Height    int    `json:"height"`
}

// JSON renders r as an indented JSON document.
func JSON(r *rocket.Rocket, opts ...JSONOption) ([]byte, error) {
	var jr jsonRenderer
	for _, opt := range opts {
		opt(&jr)
	}

	secs := r.Sections()
	out := jsonOutput{
		ID:       DesignID(r).String(),
		Height:   r.Height(),
		Width:    Width(secs),
		Ratio:    r.Ratio(),
		Palette:  jr.palette,
		Sections: make([]jsonSection, len(secs)),
		Art:      Sections(secs, jr.text...),
	}
	if jr.hasSeed {
		out.Seed = &jr.seed
	}
	for i, p := range secs {
		s := jsonSection{
			ID:        p.ID,
			Category:  p.Category.Kind().String(),
			Connector: p.Connector,
			Height:    p.Height,
		}
		if w, ok := parts.WidthOf(p.Category); ok {
			s.Width = &w
		}
		out.Sections[i] = s
	}
	return json.MarshalIndent(out, "", "  ")
}

// designSpace namespaces design IDs.
var designSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/matzehuels/rocket/design"))

// DesignID returns a name-based UUID derived from the part IDs of r, top to
// bottom. Rockets assembled from the same parts in the same order share an ID.
func DesignID(r *rocket.Rocket) uuid.UUID {
	return uuid.NewSHA1(designSpace, []byte(strings.Join(r.IDs(), "\n")))
}
