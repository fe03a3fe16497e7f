package registry

import (
	"sort"
	"strings"
	"sync"

	"github.com/gosimple/slug"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/anicoll/openwb-integration/internal/pkg/model"
)

// Descriptor is the static metadata resolved for a reading: display name,
// unit, measurement category and accumulation semantics. A nil decode means
// the generic coercion rule applies.
type Descriptor struct {
	Name        string
	Unit        model.Unit
	DeviceClass model.DeviceClass
	StateClass  model.StateClass
	decode      decodeFunc
}

// Decode applies the descriptor's decoding rule to a raw value. It never
// fails; every input maps to some output.
func (d Descriptor) Decode(raw any) any {
	if d.decode != nil {
		return d.decode(raw)
	}
	return coerceValue(raw)
}

// Reading pairs a raw key from an observed snapshot with its resolved
// descriptor. The decoded value lives on the Registry and is read through
// CurrentValue.
type Reading struct {
	Key  string
	Slug string
	Desc Descriptor
}

// Registry discovers raw keys as they appear in snapshots and resolves each
// one to a descriptor exactly once. The set of known keys only grows for the
// lifetime of the polling session.
type Registry struct {
	mu       sync.RWMutex
	logger   *zap.Logger
	readings map[string]*reading
}

type reading struct {
	Reading
	value any
}

func New() *Registry {
	return &Registry{
		logger:   zap.L(),
		readings: make(map[string]*reading),
	}
}

// Observe folds a snapshot into the registry: values of known keys are
// re-decoded, unseen keys are resolved and added. It returns only the newly
// discovered raw keys, in lexicographic order.
func (r *Registry) Observe(snapshot model.Snapshot) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	discovered := []string{}
	for key, raw := range snapshot {
		rd, ok := r.readings[key]
		if !ok {
			rd = &reading{Reading: resolve(key)}
			r.readings[key] = rd
			discovered = append(discovered, key)
		}
		rd.value = rd.Desc.Decode(raw)
	}
	sort.Strings(discovered)

	if len(discovered) > 0 {
		r.logger.Info("discovered readings", zap.Strings("keys", discovered))
	}
	return discovered
}

// Reading returns the resolved reading for a raw key.
func (r *Registry) Reading(key string) (Reading, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rd, ok := r.readings[key]
	if !ok {
		return Reading{}, false
	}
	return rd.Reading, true
}

// CurrentValue returns the most recently decoded value for a raw key.
func (r *Registry) CurrentValue(key string) any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rd, ok := r.readings[key]
	if !ok {
		return nil
	}
	return rd.value
}

// Statuses returns the publishable state of every known reading, ordered by
// raw key.
func (r *Registry) Statuses() []model.ReadingStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := lo.Keys(r.readings)
	sort.Strings(keys)

	statuses := make([]model.ReadingStatus, 0, len(keys))
	for _, key := range keys {
		statuses = append(statuses, r.readings[key].status())
	}
	return statuses
}

// StatusesFor returns the publishable state of the given raw keys, skipping
// unknown ones.
func (r *Registry) StatusesFor(keys []string) []model.ReadingStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()

	statuses := make([]model.ReadingStatus, 0, len(keys))
	for _, key := range keys {
		if rd, ok := r.readings[key]; ok {
			statuses = append(statuses, rd.status())
		}
	}
	return statuses
}

func (rd *reading) status() model.ReadingStatus {
	return model.ReadingStatus{
		Key:         rd.Key,
		Slug:        rd.Slug,
		Name:        rd.Desc.Name,
		Value:       rd.value,
		Unit:        rd.Desc.Unit,
		DeviceClass: rd.Desc.DeviceClass,
		StateClass:  rd.Desc.StateClass,
	}
}

// resolve looks the normalized key up in the static metadata table, falling
// back to a generic descriptor. Resolution happens once per key; a resolved
// descriptor never changes.
func resolve(key string) Reading {
	normalized := NormalizeKey(key)
	desc := readingMetadata[normalized]
	if name, ok := displayNames[normalized]; ok {
		desc.Name = name
	} else {
		desc.Name = fallbackName(key)
	}

	return Reading{
		Key:  key,
		Slug: strings.ReplaceAll(slug.Make(key), "-", "_"),
		Desc: desc,
	}
}
