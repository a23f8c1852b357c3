// Package writer implements the bxes write path: two traversal passes build
// the interning tables, then four length-prefixed sections are streamed out
// in the fixed order values, pairs, metadata, variants.
//
// The traversal order matches the original Rust writer (write_context.rs /
// writer_utils.rs): a values-only pass assigns every distinct value its
// index, then a pairs-only pass assigns every distinct (key,value) its index;
// the pairs section later resolves each pair's key and value against the
// already-interned value indices. Running two passes over
// the same document order, rather than caching a flattened walk, keeps the
// two index spaces trivially consistent with each other.
package writer

import (
	"io"

	"github.com/PM-IDE/bxes/codec"
	"github.com/PM-IDE/bxes/errs"
	"github.com/PM-IDE/bxes/iobin"
	"github.com/PM-IDE/bxes/model"
	"github.com/PM-IDE/bxes/value"
	"github.com/PM-IDE/bxes/writectx"
)

// Encode writes log's four sections to dst in the bxes wire format. It
// writes no version header; the layouts in package layout add one.
func Encode(dst io.WriteSeeker, log *model.EventLog) error {
	ctx := writectx.New()
	InternValues(ctx, log)
	InternPairs(ctx, log)

	w := iobin.NewWriter(dst)

	if err := WriteValuesSection(w, ctx); err != nil {
		return err
	}
	if err := WritePairsSection(w, ctx); err != nil {
		return err
	}
	if err := WriteMetadataSection(w, ctx, log.Metadata); err != nil {
		return err
	}
	if err := WriteVariantsSection(w, ctx, log.Variants); err != nil {
		return err
	}

	return nil
}

// InternValues runs the values-only traversal pass, visiting every value in
// document order: log metadata, then per variant its metadata and its
// events' names, lifecycles, and attribute keys/values. Exported so layouts
// that write sections to separate files (package layout's split writer) can
// share the same traversal.
func InternValues(ctx *writectx.Context, log *model.EventLog) {
	internAttributeValues(ctx, log.Metadata)

	for _, variant := range log.Variants {
		internAttributeValues(ctx, variant.Metadata)

		for _, ev := range variant.Events {
			ctx.InternValue(ev.Name)
			if ev.Lifecycle != nil {
				ctx.InternValue(ev.Lifecycle)
			}
			internAttributeValues(ctx, ev.Attributes)
		}
	}
}

func internAttributeValues(ctx *writectx.Context, attrs []model.Attribute) {
	for _, a := range attrs {
		ctx.InternValue(a.Key)
		ctx.InternValue(a.Value)
	}
}

// InternPairs runs the pairs-only traversal pass, in the same document order
// as InternValues, assigning every distinct (key,value) attribute an index.
// Lifecycle is deliberately not interned as a pair: it has no key and is
// always written inline in the event record.
func InternPairs(ctx *writectx.Context, log *model.EventLog) {
	internAttributePairs(ctx, log.Metadata)

	for _, variant := range log.Variants {
		internAttributePairs(ctx, variant.Metadata)

		for _, ev := range variant.Events {
			internAttributePairs(ctx, ev.Attributes)
		}
	}
}

func internAttributePairs(ctx *writectx.Context, attrs []model.Attribute) {
	for _, a := range attrs {
		ctx.InternPair(a.Key, a.Value)
	}
}

// WriteValuesSection writes the values section: a u32 count backpatched
// after every interned value has been emitted in first-seen order.
func WriteValuesSection(w *iobin.Writer, ctx *writectx.Context) error {
	return w.WriteCountPrefixed(func() (uint32, error) {
		values := ctx.Values()
		for _, v := range values {
			if err := codec.WriteValue(w, v); err != nil {
				return 0, err
			}
		}

		return uint32(len(values)), nil
	})
}

// WritePairsSection writes the pairs section: each entry is the key's and
// value's indices into the already-written values section.
func WritePairsSection(w *iobin.Writer, ctx *writectx.Context) error {
	return w.WriteCountPrefixed(func() (uint32, error) {
		pairs := ctx.Pairs()
		for _, p := range pairs {
			keyIdx, ok := ctx.LookupValue(p.Key)
			if !ok {
				return 0, errs.ErrFailedToFindValueIndex
			}
			valIdx, ok := ctx.LookupValue(p.Val)
			if !ok {
				return 0, errs.ErrFailedToFindValueIndex
			}
			if err := w.WriteUint32(keyIdx); err != nil {
				return 0, err
			}
			if err := w.WriteUint32(valIdx); err != nil {
				return 0, err
			}
		}

		return uint32(len(pairs)), nil
	})
}

// WriteMetadataSection writes the log-level metadata section: each entry is
// a pair index into the pairs section.
func WriteMetadataSection(w *iobin.Writer, ctx *writectx.Context, metadata []model.Attribute) error {
	return writePairIndices(w, ctx, metadata)
}

func writePairIndices(w *iobin.Writer, ctx *writectx.Context, attrs []model.Attribute) error {
	return w.WriteCountPrefixed(func() (uint32, error) {
		for _, a := range attrs {
			idx, ok := ctx.LookupPair(a.Key, a.Value)
			if !ok {
				return 0, errs.ErrFailedToFindKeyValueIndex
			}
			if err := w.WriteUint32(idx); err != nil {
				return 0, err
			}
		}

		return uint32(len(attrs)), nil
	})
}

// WriteVariantsSection writes the variants section: each variant carries its
// multiplicity, its own metadata pair-index list, and its ordered events.
func WriteVariantsSection(w *iobin.Writer, ctx *writectx.Context, variants []model.TraceVariant) error {
	return w.WriteCountPrefixed(func() (uint32, error) {
		for _, variant := range variants {
			if err := writeVariant(w, ctx, variant); err != nil {
				return 0, err
			}
		}

		return uint32(len(variants)), nil
	})
}

func writeVariant(w *iobin.Writer, ctx *writectx.Context, variant model.TraceVariant) error {
	if err := w.WriteUint32(variant.TracesCount); err != nil {
		return err
	}
	if err := writePairIndices(w, ctx, variant.Metadata); err != nil {
		return err
	}

	return w.WriteCountPrefixed(func() (uint32, error) {
		for _, ev := range variant.Events {
			if err := writeEvent(w, ctx, ev); err != nil {
				return 0, err
			}
		}

		return uint32(len(variant.Events)), nil
	})
}

func writeEvent(w *iobin.Writer, ctx *writectx.Context, ev model.Event) error {
	nameIdx, ok := ctx.LookupValue(ev.Name)
	if !ok {
		return errs.ErrFailedToFindValueIndex
	}
	if err := w.WriteUint32(nameIdx); err != nil {
		return err
	}
	if err := w.WriteInt64(ev.Timestamp); err != nil {
		return err
	}

	lifecycle := ev.Lifecycle
	if lifecycle == nil {
		lifecycle = value.StandardLifecycle(value.StdUnspecified)
	}
	if err := codec.WriteValue(w, lifecycle); err != nil {
		return err
	}

	return writePairIndices(w, ctx, ev.Attributes)
}
