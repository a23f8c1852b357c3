// Package randomlog generates random but well-formed event logs for
// property-based round-trip tests: encode a random log, decode it, assert
// structural equality against the original.
package randomlog

import (
	"math/rand"

	"github.com/PM-IDE/bxes/model"
	"github.com/PM-IDE/bxes/value"
)

// Options bounds the shape of a generated log.
type Options struct {
	MaxVariants   int
	MaxEvents     int
	MaxAttributes int
	DistinctNames int
	DistinctKeys  int
}

// DefaultOptions returns a modestly sized generation budget, enough to
// exercise repeated values and attribute pairs without a slow test.
func DefaultOptions() Options {
	return Options{
		MaxVariants:   8,
		MaxEvents:     12,
		MaxAttributes: 5,
		DistinctNames: 6,
		DistinctKeys:  5,
	}
}

// Generate builds a random EventLog using r, with shapes bounded by opts.
// Values repeat across events and variants on purpose: the point of these
// tests is to exercise interning, not to maximize distinct payloads.
func Generate(r *rand.Rand, opts Options) *model.EventLog {
	names := make([]value.String, opts.DistinctNames)
	for i := range names {
		names[i] = value.String(randWord(r, "event"))
	}

	keys := make([]value.String, opts.DistinctKeys)
	for i := range keys {
		keys[i] = value.String(randWord(r, "key"))
	}

	log := &model.EventLog{
		Version:  1,
		Metadata: randAttributes(r, keys, opts),
	}

	variantCount := r.Intn(opts.MaxVariants) + 1
	log.Variants = make([]model.TraceVariant, variantCount)
	for i := range log.Variants {
		log.Variants[i] = randVariant(r, names, keys, opts)
	}

	return log
}

func randVariant(r *rand.Rand, names, keys []value.String, opts Options) model.TraceVariant {
	eventCount := r.Intn(opts.MaxEvents) + 1
	events := make([]model.Event, eventCount)
	for i := range events {
		events[i] = randEvent(r, names, keys, opts)
	}

	return model.TraceVariant{
		TracesCount: uint32(r.Intn(100) + 1),
		Metadata:    randAttributes(r, keys, opts),
		Events:      events,
	}
}

func randEvent(r *rand.Rand, names, keys []value.String, opts Options) model.Event {
	return model.Event{
		Name:       names[r.Intn(len(names))],
		Timestamp:  r.Int63(),
		Lifecycle:  randLifecycle(r),
		Attributes: randAttributes(r, keys, opts),
	}
}

func randLifecycle(r *rand.Rand) value.Value {
	if r.Intn(2) == 0 {
		return value.BrafLifecycle(r.Intn(int(value.MaxBrafLifecycle) + 1))
	}

	return value.StandardLifecycle(r.Intn(int(value.MaxStandardLifecycle) + 1))
}

func randAttributes(r *rand.Rand, keys []value.String, opts Options) []model.Attribute {
	n := r.Intn(opts.MaxAttributes + 1)
	attrs := make([]model.Attribute, n)
	for i := range attrs {
		attrs[i] = model.Attribute{
			Key:   keys[r.Intn(len(keys))],
			Value: randValue(r),
		}
	}

	return attrs
}

func randValue(r *rand.Rand) value.Value {
	switch r.Intn(8) {
	case 0:
		return value.Int32(r.Int31())
	case 1:
		return value.Int64(r.Int63())
	case 2:
		return value.Uint32(r.Uint32())
	case 3:
		return value.Float64(r.Float64())
	case 4:
		return value.String(randWord(r, "val"))
	case 5:
		return value.Bool(r.Intn(2) == 0)
	case 6:
		return value.Timestamp(r.Int63())
	default:
		var g value.Guid
		r.Read(g[:])
		return g
	}
}

var wordBank = []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta"}

func randWord(r *rand.Rand, prefix string) string {
	return prefix + "_" + wordBank[r.Intn(len(wordBank))]
}
