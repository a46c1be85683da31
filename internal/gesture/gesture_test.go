package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEvent struct {
	info     Descriptor
	released int
}

func (e *fakeEvent) Release() { e.released++ }

// fakeBackend records every build and post so tests can check descriptor
// contents and resource handling.
type fakeBackend struct {
	fail        bool
	built       []*fakeEvent
	posted      []*fakeEvent
	lastTouches []Contact
}

func (b *fakeBackend) FromGesture(info Descriptor, touches []Contact) Event {
	b.lastTouches = touches
	if b.fail {
		return nil
	}
	ev := &fakeEvent{info: info}
	b.built = append(b.built, ev)
	return ev
}

func (b *fakeBackend) Post(ev Event) {
	b.posted = append(b.posted, ev.(*fakeEvent))
}

func TestPostMagnifyPostsExactlyOneEvent(t *testing.T) {
	backend := &fakeBackend{}
	inj := NewInjector(backend, backend)

	ok := inj.PostMagnify(0.5, PhaseBegan)
	require.True(t, ok)

	require.Len(t, backend.posted, 1)
	ev := backend.posted[0]
	assert.Equal(t, hidMagnifySubtype, ev.info.Subtype)
	assert.Equal(t, hidPhaseBegan, ev.info.Phase)
	assert.Equal(t, 0.5, ev.info.Magnification)
}

func TestPhaseMappingIsBijective(t *testing.T) {
	cases := []struct {
		phase Phase
		want  int
	}{
		{PhaseBegan, hidPhaseBegan},
		{PhaseChanged, hidPhaseChanged},
		{PhaseEnded, hidPhaseEnded},
	}

	for _, tc := range cases {
		backend := &fakeBackend{}
		inj := NewInjector(backend, backend)

		require.True(t, inj.PostMagnify(1.0, tc.phase))
		require.Len(t, backend.built, 1)
		assert.Equal(t, tc.want, backend.built[0].info.Phase)
	}
}

func TestUnknownPhaseFallsBackToChanged(t *testing.T) {
	for _, phase := range []Phase{Phase(-1), Phase(3), Phase(42)} {
		backend := &fakeBackend{}
		inj := NewInjector(backend, backend)

		require.True(t, inj.PostMagnify(1.0, phase))
		require.Len(t, backend.built, 1)
		assert.Equal(t, hidPhaseChanged, backend.built[0].info.Phase)
	}
}

func TestMagnificationPassedThroughUnmodified(t *testing.T) {
	backend := &fakeBackend{}
	inj := NewInjector(backend, backend)

	require.True(t, inj.PostMagnify(-2.75, PhaseChanged))
	require.Len(t, backend.built, 1)
	assert.Equal(t, -2.75, backend.built[0].info.Magnification)
}

func TestContactListIsEmpty(t *testing.T) {
	backend := &fakeBackend{}
	inj := NewInjector(backend, backend)

	require.True(t, inj.PostMagnify(0.1, PhaseChanged))
	require.NotNil(t, backend.lastTouches)
	assert.Empty(t, backend.lastTouches)
}

func TestConstructionFailureNeverPosts(t *testing.T) {
	backend := &fakeBackend{fail: true}
	inj := NewInjector(backend, backend)

	for i := 0; i < 5; i++ {
		assert.False(t, inj.PostMagnify(float64(i), PhaseChanged))
	}
	assert.Empty(t, backend.posted)
}

func TestEventReleasedAfterPost(t *testing.T) {
	backend := &fakeBackend{}
	inj := NewInjector(backend, backend)

	require.True(t, inj.PostMagnify(0.25, PhaseEnded))
	require.Len(t, backend.built, 1)
	assert.Equal(t, 1, backend.built[0].released)
}
