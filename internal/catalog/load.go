package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// fieldsFile is the on-disk shape of a field catalog document.
type fieldsFile struct {
	Fields []Field `yaml:"fields"`
}

// ratiosFile is the on-disk shape of a ratio catalog document.
type ratiosFile struct {
	Ratios []Ratio `yaml:"ratios"`
}

// ParseFields builds a field catalog from YAML.
func ParseFields(data []byte) (*Catalog, error) {
	var doc fieldsFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse field catalog: %w", err)
	}
	c, err := New(doc.Fields)
	if err != nil {
		return nil, fmt.Errorf("build field catalog: %w", err)
	}
	return c, nil
}

// LoadFields reads a field catalog from a YAML file.
func LoadFields(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read field catalog: %w", err)
	}
	return ParseFields(data)
}

// ParseRatios builds a ratio catalog from YAML.
func ParseRatios(data []byte) (*RatioCatalog, error) {
	var doc ratiosFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse ratio catalog: %w", err)
	}
	rc, err := NewRatioCatalog(doc.Ratios)
	if err != nil {
		return nil, fmt.Errorf("build ratio catalog: %w", err)
	}
	return rc, nil
}

// LoadRatios reads a ratio catalog from a YAML file.
func LoadRatios(path string) (*RatioCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ratio catalog: %w", err)
	}
	return ParseRatios(data)
}
