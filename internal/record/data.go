package record

import (
	"errors"
	"fmt"
)

// ErrEmptyPool is returned when a pool the generator draws from has no values.
var ErrEmptyPool = errors.New("empty pool")

// tag and sentence counts drawn per record
const (
	minTags      = 3
	maxTags      = 6
	minSentences = 2
	maxSentences = 5
)

// Pools holds the candidate values each record field is drawn from.
type Pools struct {
	FirstNames  []string
	LastNames   []string
	Companies   []string
	Cities      []string
	Streets     []string
	Departments []string
	Roles       []string
	Tags        []string
	Sentences   []string
	Themes      []string
	Languages   []string
}

// DefaultPools returns the stock pools. Each call returns fresh slices.
func DefaultPools() Pools {
	return Pools{
		FirstNames: []string{
			"James", "Mary", "Robert", "Patricia", "John",
			"Jennifer", "Michael", "Linda", "William", "Elizabeth",
		},
		LastNames: []string{
			"Smith", "Johnson", "Williams", "Brown", "Jones",
			"Garcia", "Miller", "Davis", "Rodriguez", "Martinez",
		},
		Companies: []string{
			"TechCorp", "InnovateSoft", "GlobalLogistics", "BioGen",
			"EcoEnergy", "FinStream", "MediaHub", "AlphaDesign",
		},
		Cities: []string{
			"New York", "San Francisco", "London", "Tokyo",
			"Berlin", "Paris", "Sydney", "Toronto",
		},
		Streets: []string{"Main St", "Oak Ave", "Park Blvd", "Cedar Ln"},
		Departments: []string{
			"Engineering", "Marketing", "Sales", "HR", "Legal", "Operations",
		},
		Roles: []string{
			"Manager", "Senior Developer", "Analyst", "Specialist", "Director",
		},
		Tags: []string{
			"productivity", "efficiency", "innovation", "management",
			"software", "hardware", "cloud", "ai", "data",
		},
		Sentences: []string{
			"Providing high-quality solutions for modern businesses.",
			"Leading the industry in innovation and customer satisfaction.",
			"Specializing in cloud-native applications and scalable architectures.",
			"Dedicated to sustainable growth and ethical technology development.",
			"Transforming the digital landscape with cutting-edge tools.",
			"A pioneer in data-driven decision making and automation.",
			"Building the future of interconnected systems and smart devices.",
		},
		Themes:    []string{"light", "dark", "system"},
		Languages: []string{"en-US", "en-GB", "de-DE", "fr-FR", "ja-JP"},
	}
}

// Validate reports the first pool that cannot serve a draw.
func (p Pools) Validate() error {
	named := []struct {
		name string
		vals []string
	}{
		{"first names", p.FirstNames},
		{"last names", p.LastNames},
		{"companies", p.Companies},
		{"cities", p.Cities},
		{"streets", p.Streets},
		{"departments", p.Departments},
		{"roles", p.Roles},
		{"tags", p.Tags},
		{"sentences", p.Sentences},
		{"themes", p.Themes},
		{"languages", p.Languages},
	}
	for _, n := range named {
		if len(n.vals) == 0 {
			return fmt.Errorf("%s: %w", n.name, ErrEmptyPool)
		}
	}

	// sampling without replacement needs enough distinct values
	if len(p.Tags) < maxTags {
		return fmt.Errorf("tags: need at least %d values, have %d", maxTags, len(p.Tags))
	}
	if len(p.Sentences) < maxSentences {
		return fmt.Errorf("sentences: need at least %d values, have %d", maxSentences, len(p.Sentences))
	}
	return nil
}
