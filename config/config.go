package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/st1ckyband1t/Transportation-Optimisation/network"
)

// Sentinel errors for configuration loading.
var (
	// ErrParse indicates the file is not valid YAML.
	ErrParse = errors.New("config: invalid YAML")

	// ErrInvalid indicates the file parsed but violates the schema.
	ErrInvalid = errors.New("config: invalid configuration")

	// ErrNoExtraLinks indicates Alternative() was called on a file that
	// defines no extra_links, so no alternative scenario exists.
	ErrNoExtraLinks = errors.New("config: no extra_links defined")
)

// validate is the package's validator instance.
var validate = validator.New()

// LinkSpec describes one link row of the file.
type LinkSpec struct {
	From          string   `yaml:"from" validate:"required"`
	To            string   `yaml:"to" validate:"required"`
	Km            float64  `yaml:"km" validate:"gte=0"`
	Capacity      *float64 `yaml:"capacity,omitempty" validate:"omitempty,gte=0"`
	Bidirectional bool     `yaml:"bidirectional"`
}

// options converts the row's optional fields into link options.
func (l LinkSpec) options() []network.LinkOption {
	var opts []network.LinkOption
	if l.Capacity != nil {
		opts = append(opts, network.WithCapacity(*l.Capacity))
	}
	if l.Bidirectional {
		opts = append(opts, network.WithBidirectional())
	}

	return opts
}

// DemandSpec describes one demand row of the file.
type DemandSpec struct {
	Origin      string  `yaml:"origin" validate:"required"`
	Destination string  `yaml:"destination" validate:"required"`
	Trips       float64 `yaml:"trips" validate:"gte=0"`
}

// File is the parsed study description.
type File struct {
	Nodes      []string     `yaml:"nodes" validate:"omitempty,dive,min=1"`
	Links      []LinkSpec   `yaml:"links" validate:"required,min=1,dive"`
	Demands    []DemandSpec `yaml:"demands" validate:"omitempty,dive"`
	ExtraLinks []LinkSpec   `yaml:"extra_links" validate:"omitempty,dive"`
}

// Load reads and parses the YAML study file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes and validates a YAML study description.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if err := validate.Struct(&f); err != nil {
		return nil, formatValidationError(err)
	}

	return &f, nil
}

// Baseline materializes the road-only network: declared nodes, links,
// and demands. Semantic errors from the network constructors (unknown
// demand endpoint, self-link, ...) pass through unchanged.
func (f *File) Baseline() (*network.Network, error) {
	n := network.NewNetwork()
	for _, id := range f.Nodes {
		if err := n.AddNode(id); err != nil {
			return nil, err
		}
	}
	for _, l := range f.Links {
		if err := n.AddLink(l.From, l.To, l.Km, l.options()...); err != nil {
			return nil, err
		}
	}
	for _, d := range f.Demands {
		if err := n.AddDemand(d.Origin, d.Destination, d.Trips); err != nil {
			return nil, err
		}
	}

	return n, nil
}

// Alternative materializes the augmented network: the baseline plus every
// extra_links row. Returns ErrNoExtraLinks when the file defines none.
func (f *File) Alternative() (*network.Network, error) {
	if len(f.ExtraLinks) == 0 {
		return nil, ErrNoExtraLinks
	}
	n, err := f.Baseline()
	if err != nil {
		return nil, err
	}
	for _, l := range f.ExtraLinks {
		if err = n.AddLink(l.From, l.To, l.Km, l.options()...); err != nil {
			return nil, err
		}
	}

	return n, nil
}

// formatValidationError flattens validator's field errors into one
// ErrInvalid-wrapped message naming every offending field.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s fails %q", fe.Namespace(), fe.Tag()))
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(parts, "; "))
}
