package assumptions

import (
	"fmt"
	"sort"
	"sync"

	"github.com/castlemilk/finplan-engine/internal/engineerrors"
)

// Key identifies one bundle slot in the registry.
type Key struct {
	Region  string
	Version string
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s", k.Region, k.Version)
}

// Registry is the process-wide, read-only accessor for assumptions
// bundles. There is no mutation method on this interface -- bundles are
// loaded once, at construction, from compiled-in constants.
//
//go:generate mockgen -source=registry.go -destination=registry_mock.go -package=assumptions
type Registry interface {
	// Get returns the bundle for an exact (region, version) pair.
	Get(region, version string) (Bundle, error)
	// GetLatest returns the newest version registered for a region,
	// comparing version strings lexically (bundle versions are quarter
	// tags like "2024-Q4", which sort correctly as strings).
	GetLatest(region string) (Bundle, error)
	// List enumerates every registered (region, version) key, sorted by
	// region then version.
	List() []Key
}

// registry is a sync.RWMutex-guarded map of bundles, generalized from
// the teacher's MemoryStore: read-heavy, write-once at construction, safe
// to share across goroutines without further synchronization once built.
type registry struct {
	mu      sync.RWMutex
	bundles map[Key]Bundle
}

// NewRegistry builds a Registry from a fixed set of bundles. Returns a
// CalibrationError if any bundle fails its internal invariants (regime
// probabilities, correlation symmetry) -- this is a build-time check,
// never expected to trip in production use since bundles are constants.
func NewRegistry(bundles ...Bundle) (Registry, error) {
	r := &registry{bundles: make(map[Key]Bundle, len(bundles))}
	for _, b := range bundles {
		if err := Validate(b); err != nil {
			return nil, err
		}
		r.bundles[Key{Region: b.Region, Version: b.Version}] = b
	}
	return r, nil
}

// MustNewRegistry panics on a calibration failure. Used only to build the
// package-level default registry over compiled-in constants, where a
// failure indicates a bug in this repository, not bad runtime input.
func MustNewRegistry(bundles ...Bundle) Registry {
	r, err := NewRegistry(bundles...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *registry) Get(region, version string) (Bundle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.bundles[Key{Region: region, Version: version}]
	if !ok {
		return Bundle{}, &engineerrors.AssumptionNotFoundError{Region: region, Version: version}
	}
	return b, nil
}

func (r *registry) GetLatest(region string) (Bundle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var best Bundle
	found := false
	for k, b := range r.bundles {
		if k.Region != region {
			continue
		}
		if !found || k.Version > best.Version {
			best = b
			found = true
		}
	}
	if !found {
		return Bundle{}, &engineerrors.AssumptionNotFoundError{Region: region}
	}
	return best, nil
}

func (r *registry) List() []Key {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]Key, 0, len(r.bundles))
	for k := range r.bundles {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Region != keys[j].Region {
			return keys[i].Region < keys[j].Region
		}
		return keys[i].Version < keys[j].Version
	})
	return keys
}
