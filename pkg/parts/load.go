package parts

import (
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/rocket/pkg/errors"
)

// catalogFile is the TOML layout read by [Load]:
//
//	[[part]]
//	id = "body-wide"
//	category = "body"
//	connector = 3
//	weight = 10
//	shape = '''│   │'''
//
// Transitions, engines and exhausts also set width, the joint they attach
// under. Height is taken from the number of shape rows.
type catalogFile struct {
	Parts []filePart `toml:"part"`
}

type filePart struct {
	ID        string `toml:"id"`
	Category  string `toml:"category"`
	Width     int    `toml:"width"`
	Connector int    `toml:"connector"`
	Weight    int    `toml:"weight"`
	Shape     string `toml:"shape"`
}

// Load decodes a TOML part catalog from r and validates it like [New].
// Unknown keys are rejected so that typos do not silently change a part.
func Load(r io.Reader) (*Catalog, error) {
	var file catalogFile
	md, err := toml.NewDecoder(r).Decode(&file)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "decode part catalog")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errors.New(errors.ErrCodeInvalidCatalog, "unknown catalog keys: %s", strings.Join(keys, ", "))
	}
	if len(file.Parts) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidCatalog, "part catalog is empty")
	}

	defs := make([]Part, 0, len(file.Parts))
	for i, fp := range file.Parts {
		kind, ok := ParseKind(strings.ToLower(strings.TrimSpace(fp.Category)))
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidCatalog, "part %d (%q): unknown category %q", i, fp.ID, fp.Category)
		}
		cat, err := NewCategory(kind, fp.Width)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "part %d (%q)", i, fp.ID)
		}
		// A multi-line TOML string closed on its own line ends with "\n".
		shape := strings.TrimSuffix(fp.Shape, "\n")
		defs = append(defs, Part{
			ID:        fp.ID,
			Shape:     shape,
			Height:    strings.Count(shape, "\n") + 1,
			Connector: fp.Connector,
			Category:  cat,
			Weight:    fp.Weight,
		})
	}
	return New(defs)
}

// LoadFile reads a TOML part catalog from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "part catalog %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "open part catalog %s", path)
	}
	defer f.Close()
	return Load(f)
}
