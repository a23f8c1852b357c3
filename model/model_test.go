package model_test

import (
	"testing"

	"github.com/PM-IDE/bxes/model"
	"github.com/PM-IDE/bxes/value"
	"github.com/stretchr/testify/assert"
)

func event(name string, ts int64, attrs ...model.Attribute) model.Event {
	return model.Event{
		Name:       value.String(name),
		Timestamp:  ts,
		Lifecycle:  value.StandardLifecycle(value.StdComplete),
		Attributes: attrs,
	}
}

func TestEventEqualIgnoresNilVsEmptyAttributes(t *testing.T) {
	a := event("start", 1)
	a.Attributes = nil

	b := event("start", 1)
	b.Attributes = []model.Attribute{}

	assert.True(t, a.Equal(b))
}

func TestEventEqualDetectsAttributeDifference(t *testing.T) {
	a := event("start", 1, model.Attribute{Key: "k", Value: value.Int32(1)})
	b := event("start", 1, model.Attribute{Key: "k", Value: value.Int32(2)})

	assert.False(t, a.Equal(b))
}

func TestTraceVariantEqual(t *testing.T) {
	v1 := model.TraceVariant{TracesCount: 3, Events: []model.Event{event("a", 1), event("b", 2)}}
	v2 := model.TraceVariant{TracesCount: 3, Events: []model.Event{event("a", 1), event("b", 2)}}
	v3 := model.TraceVariant{TracesCount: 4, Events: []model.Event{event("a", 1), event("b", 2)}}

	assert.True(t, v1.Equal(v2))
	assert.False(t, v1.Equal(v3))
}

func TestEventLogEqualNilSafety(t *testing.T) {
	var a, b *model.EventLog
	assert.True(t, a.Equal(b))

	log := &model.EventLog{Version: 1}
	assert.False(t, log.Equal(nil))
	assert.False(t, (*model.EventLog)(nil).Equal(log))
}

func TestEventLogEqualOrderSensitive(t *testing.T) {
	v1 := model.TraceVariant{Events: []model.Event{event("a", 1)}}
	v2 := model.TraceVariant{Events: []model.Event{event("b", 2)}}

	l1 := &model.EventLog{Version: 1, Variants: []model.TraceVariant{v1, v2}}
	l2 := &model.EventLog{Version: 1, Variants: []model.TraceVariant{v2, v1}}

	assert.False(t, l1.Equal(l2))
}
