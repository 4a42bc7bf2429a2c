package dataset

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/yijing-api/internal/domain"
	"gopkg.in/yaml.v3"
)

// Errors returned while loading a dataset.
var (
	// ErrInvalidDataset is returned when the document cannot be decoded or a
	// record fails validation.
	ErrInvalidDataset = errors.New("invalid hexagram dataset")

	// ErrDuplicateNumber is returned when two records share a number.
	ErrDuplicateNumber = errors.New("duplicate hexagram number")
)

//go:embed hexagrams.yaml
var embedded []byte

// document is the on-disk layout of a dataset file.
type document struct {
	Hexagrams []domain.Hexagram `yaml:"hexagrams"`
}

// Dataset is an immutable set of hexagram records addressed by number.
// It is safe for concurrent reads; records must not be modified.
type Dataset struct {
	byNumber map[int]*domain.Hexagram
	ordered  []*domain.Hexagram
}

// Parse decodes and validates a YAML dataset. A dataset may be
// incomplete: missing numbers are reported at lookup time.
func Parse(r io.Reader) (*Dataset, error) {
	var doc document

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidDataset, err)
	}

	validate := validator.New()
	ds := &Dataset{
		byNumber: make(map[int]*domain.Hexagram, len(doc.Hexagrams)),
		ordered:  make([]*domain.Hexagram, 0, len(doc.Hexagrams)),
	}

	for i := range doc.Hexagrams {
		record := &doc.Hexagrams[i]
		if err := validate.Struct(record); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrInvalidDataset, i, err)
		}
		if _, exists := ds.byNumber[record.Number]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateNumber, record.Number)
		}
		ds.byNumber[record.Number] = record
		ds.ordered = append(ds.ordered, record)
	}

	sort.Slice(ds.ordered, func(i, j int) bool {
		return ds.ordered[i].Number < ds.ordered[j].Number
	})

	return ds, nil
}

// LoadFile reads and parses the dataset at path.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open hexagram dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Parse(f)
}

// LoadEmbedded parses the dataset bundled with the binary.
func LoadEmbedded() (*Dataset, error) {
	return Parse(bytes.NewReader(embedded))
}

// Lookup returns the record for number and whether it exists.
func (d *Dataset) Lookup(number int) (*domain.Hexagram, bool) {
	if d == nil {
		return nil, false
	}
	h, ok := d.byNumber[number]
	return h, ok
}

// All returns the records ordered by number.
func (d *Dataset) All() []*domain.Hexagram {
	if d == nil {
		return nil
	}
	out := make([]*domain.Hexagram, len(d.ordered))
	copy(out, d.ordered)
	return out
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.ordered)
}
