package catalog

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	apperr "github.com/matzehuels/rustbrew/pkg/errors"
)

// Load reads and decodes the snapshot at path.
//
// Returns an [apperr.ErrCodeIO] error if the file cannot be opened or read
// and an [apperr.ErrCodeParse] error if its content does not decode into a
// catalog. No partial catalog is ever returned.
func Load(path string) (Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeIO, err, "open catalog %s", path)
	}
	defer f.Close()

	c, err := Decode(bufio.NewReader(f))
	if err != nil {
		if apperr.GetCode(err) == "" {
			return nil, apperr.Wrap(apperr.ErrCodeIO, err, "read catalog %s", path)
		}
		return nil, err
	}
	return c, nil
}

// Decode reads a whole catalog document from r.
//
// The document must be a single JSON array of formula objects. Every
// required field must be present and non-null, names must be non-empty and
// nothing but whitespace may follow the array. Unknown fields are ignored.
// A read failure from r is returned unwrapped so callers can classify it.
func Decode(r io.Reader) (Catalog, error) {
	dec := json.NewDecoder(r)

	var raw []rawFormula
	if err := dec.Decode(&raw); err != nil {
		return nil, classify(err)
	}
	if raw == nil {
		return nil, apperr.New(apperr.ErrCodeParse, "catalog must be a JSON array, got null")
	}
	if _, err := dec.Token(); err != io.EOF {
		if err != nil {
			return nil, classify(err)
		}
		return nil, apperr.New(apperr.ErrCodeParse, "unexpected data after catalog array")
	}

	c := make(Catalog, 0, len(raw))
	for i := range raw {
		f, err := raw[i].formula()
		if err != nil {
			return nil, apperr.Wrap(apperr.ErrCodeParse, err, "formula %d", i)
		}
		c = append(c, f)
	}
	return c, nil
}

// classify separates JSON syntax and type errors from reader failures.
func classify(err error) error {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr),
		err == io.EOF, err == io.ErrUnexpectedEOF:
		return apperr.Wrap(apperr.ErrCodeParse, err, "decode catalog")
	default:
		return err
	}
}

// rawFormula mirrors Formula with pointers so missing fields can be told
// apart from empty ones.
type rawFormula struct {
	Name                    *string   `json:"name"`
	BuildDependencies       *[]string `json:"build_dependencies"`
	Dependencies            *[]string `json:"dependencies"`
	TestDependencies        *[]string `json:"test_dependencies"`
	RecommendedDependencies *[]string `json:"recommended_dependencies"`
	OptionalDependencies    []string  `json:"optional_dependencies"`
}

func (r *rawFormula) formula() (Formula, error) {
	if r.Name == nil {
		return Formula{}, fmt.Errorf("missing field %q", "name")
	}
	if *r.Name == "" {
		return Formula{}, fmt.Errorf("field %q is empty", "name")
	}
	required := []struct {
		field string
		value *[]string
	}{
		{"build_dependencies", r.BuildDependencies},
		{"dependencies", r.Dependencies},
		{"test_dependencies", r.TestDependencies},
		{"recommended_dependencies", r.RecommendedDependencies},
	}
	for _, req := range required {
		if req.value == nil {
			return Formula{}, fmt.Errorf("%s: missing field %q", *r.Name, req.field)
		}
	}
	return Formula{
		Name:                    *r.Name,
		BuildDependencies:       *r.BuildDependencies,
		Dependencies:            *r.Dependencies,
		TestDependencies:        *r.TestDependencies,
		RecommendedDependencies: *r.RecommendedDependencies,
		OptionalDependencies:    r.OptionalDependencies,
	}, nil
}
