package catalog

import (
	"errors"
	"fmt"
)

// Chain identifies the network an audited project is deployed on.
type Chain struct {
	Name  string `yaml:"name" json:"name"`
	Color string `yaml:"color" json:"color"`
	// Icon is an opaque reference resolved by the presenter.
	Icon string `yaml:"icon,omitempty" json:"icon,omitempty"`
}

// Findings holds the number of issues per severity bucket.
type Findings struct {
	Critical int `yaml:"critical" json:"critical"`
	High     int `yaml:"high" json:"high"`
	Medium   int `yaml:"medium" json:"medium"`
	Low      int `yaml:"low" json:"low"`
	Info     int `yaml:"info" json:"info"`
}

// Badge is a single severity indicator.
type Badge struct {
	Severity string `json:"severity"`
	Count    int    `json:"count"`
}

// Badges returns one badge per severity with a positive count, most severe first.
func (f Findings) Badges() []Badge {
	var out []Badge
	for _, b := range []Badge{
		{Severity: "Critical", Count: f.Critical},
		{Severity: "High", Count: f.High},
		{Severity: "Medium", Count: f.Medium},
		{Severity: "Low", Count: f.Low},
		{Severity: "Info", Count: f.Info},
	} {
		if b.Count > 0 {
			out = append(out, b)
		}
	}
	return out
}

func (f Findings) Total() int {
	return f.Critical + f.High + f.Medium + f.Low + f.Info
}

func (f Findings) validate() error {
	if f.Critical < 0 || f.High < 0 || f.Medium < 0 || f.Low < 0 || f.Info < 0 {
		return fmt.Errorf("negative severity count in %+v", f)
	}
	return nil
}

// AuditRecord is the unit of display. Curated records carry the full metadata,
// records discovered from a file listing only carry the name, size and links.
type AuditRecord struct {
	Name        string            `yaml:"name" json:"name"`
	Date        string            `yaml:"date,omitempty" json:"date,omitempty"`
	Client      string            `yaml:"client,omitempty" json:"client,omitempty"`
	Chain       *Chain            `yaml:"chain,omitempty" json:"chain,omitempty"`
	Findings    *Findings         `yaml:"findings,omitempty" json:"findings,omitempty"`
	DocumentURL string            `yaml:"documentUrl" json:"documentUrl"`
	Description string            `yaml:"description,omitempty" json:"description,omitempty"`
	SizeLabel   string            `yaml:"-" json:"sizeLabel,omitempty"`
	FileName    string            `yaml:"-" json:"fileName,omitempty"`
	HTMLURL     string            `yaml:"-" json:"htmlUrl,omitempty"`
	Socials     map[string]string `yaml:"socials,omitempty" json:"socials,omitempty"`
}

var (
	ErrMissingName     = errors.New("record has no name")
	ErrMissingDocument = errors.New("record has no document url")
)

// Validate reports whether the record can be displayed.
func (r AuditRecord) Validate() error {
	if r.Name == "" {
		return ErrMissingName
	}
	if r.DocumentURL == "" {
		return fmt.Errorf("%q: %w", r.Name, ErrMissingDocument)
	}
	if r.Findings != nil {
		if err := r.Findings.validate(); err != nil {
			return fmt.Errorf("%q: %w", r.Name, err)
		}
	}
	return nil
}

// IsRemote reports whether the record was derived from a remote file listing.
func (r AuditRecord) IsRemote() bool {
	return r.FileName != ""
}
