package record

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
)

// ErrInvalidCount is returned when a negative record count is requested.
var ErrInvalidCount = errors.New("record count must not be negative")

const (
	// DefaultBaseUnix is the epoch of record 0, 2023-11-14T22:13:20Z.
	DefaultBaseUnix = 1700000000

	// Step is the spacing between consecutive record timestamps.
	Step = time.Hour

	timestampLayout = "2006-01-02T15:04:05Z"
)

// Generator produces records from an explicit random source.
// It is not safe for concurrent use.
type Generator struct {
	rng   *rand.Rand
	pools Pools
	base  time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed makes the generator reproducible.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithRand sets the random source directly.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		g.rng = r
	}
}

// WithPools replaces the default pools.
func WithPools(p Pools) Option {
	return func(g *Generator) {
		g.pools = p
	}
}

// WithBaseTime sets the timestamp of record 0.
func WithBaseTime(t time.Time) Option {
	return func(g *Generator) {
		g.base = t.UTC()
	}
}

// New creates a generator. Without WithSeed or WithRand the source is seeded
// from the runtime's random state, so output differs between runs.
func New(opts ...Option) *Generator {
	g := &Generator{
		pools: DefaultPools(),
		base:  time.Unix(DefaultBaseUnix, 0).UTC(),
	}
	for _, o := range opts {
		o(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return g
}

// Generate produces n records with ids 0..n-1.
func (g *Generator) Generate(n int) ([]Record, error) {
	if n < 0 {
		return nil, fmt.Errorf("generate %d: %w", n, ErrInvalidCount)
	}
	if err := g.pools.Validate(); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	records := make([]Record, 0, n)
	for i := range n {
		records = append(records, g.Record(i))
	}
	return records, nil
}

// Record produces the record at position id. Only the id and timestamp
// depend on the position; every other field is a fresh draw.
// The pools must be valid.
func (g *Generator) Record(id int) Record {
	p := g.pools
	first := g.pick(p.FirstNames)
	last := g.pick(p.LastNames)
	company := g.pick(p.Companies)

	return Record{
		Metadata: Metadata{
			ID:        id,
			UUID:      g.uuid(),
			Timestamp: g.timestamp(id),
			Version:   g.version(),
		},
		Profile: Profile{
			Name:  first + " " + last,
			Email: email(first, last, company),
			Phone: g.phone(),
			Address: Address{
				Street:     fmt.Sprintf("%d %s", g.between(100, 9999), g.pick(p.Streets)),
				City:       g.pick(p.Cities),
				PostalCode: fmt.Sprintf("%d", g.between(10000, 99999)),
				Coordinates: Coordinates{
					Lat: round(g.uniform(-90, 90), 6),
					Lng: round(g.uniform(-180, 180), 6),
				},
			},
			IsActive: g.rng.Float64() > 0.2,
			Balance:  round(g.uniform(1000, 50000), 2),
		},
		Work: Work{
			Company:    company,
			Department: g.pick(p.Departments),
			Role:       g.pick(p.Roles),
			Salary:     g.between(60000, 180000),
			Tags:       g.sample(p.Tags, g.between(minTags, maxTags)),
		},
		About: strings.Join(g.sample(p.Sentences, g.between(minSentences, maxSentences)), " "),
		Preferences: Preferences{
			Notifications: Notifications{
				Email: true,
				SMS:   g.rng.Float64() > 0.5,
				Push:  g.rng.Float64() > 0.3,
			},
			Theme:    g.pick(p.Themes),
			Language: g.pick(p.Languages),
		},
	}
}

// Timestamp returns the timestamp assigned to record id. The offset is
// computed in whole seconds; a Duration would overflow past ~2.5M records.
func (g *Generator) Timestamp(id int) time.Time {
	secs := g.base.Unix() + int64(id)*int64(Step/time.Second)
	return time.Unix(secs, int64(g.base.Nanosecond())).UTC()
}

func (g *Generator) timestamp(id int) string {
	return g.Timestamp(id).Format(timestampLayout)
}

// uuid renders 128 random bits as 32 lowercase hex characters.
func (g *Generator) uuid() string {
	return fmt.Sprintf("%016x%016x", g.rng.Uint64(), g.rng.Uint64())
}

func (g *Generator) version() string {
	major := uint64(g.between(1, 5))
	minor := uint64(g.between(0, 9))
	patch := uint64(g.between(0, 99))
	return semver.New(major, minor, patch, "", "").String()
}

// phone generates a US number: +1-XXX-XXX-XXXX.
func (g *Generator) phone() string {
	return fmt.Sprintf("+1-%d-%d-%d",
		g.between(200, 999), g.between(200, 999), g.between(1000, 9999))
}

func email(first, last, company string) string {
	return strings.ToLower(first + "." + last + "@" + company + ".com")
}

// pick returns a random element from a string slice.
func (g *Generator) pick(s []string) string {
	return s[g.rng.IntN(len(s))]
}

// sample returns k distinct elements of s in draw order, using a partial
// Fisher-Yates shuffle over a copy.
func (g *Generator) sample(s []string, k int) []string {
	buf := make([]string, len(s))
	copy(buf, s)
	for i := range k {
		j := i + g.rng.IntN(len(buf)-i)
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf[:k:k]
}

// between returns an int in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}

// uniform returns a float in [lo, hi).
func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
