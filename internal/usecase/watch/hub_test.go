package watch

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"roost/internal/domain/entity"
	"roost/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHub() *Hub {
	return NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func staticQuery(result []*entity.Location) Query {
	return func(context.Context) ([]*entity.Location, error) {
		return result, nil
	}
}

func receive(t *testing.T, sub *Subscription) []*entity.Location {
	t.Helper()

	select {
	case result, ok := <-sub.C:
		require.True(t, ok, "channel closed before delivery")

		return result
	case <-time.After(time.Second):
		t.Fatal("no delivery within timeout")

		return nil
	}
}

func TestHub_Subscribe_DeliversCurrentResultImmediately(t *testing.T) {
	hub := testHub()
	defer hub.Close()

	initial := []*entity.Location{{ID: "loc-1"}}
	sub, err := hub.Subscribe(context.Background(), staticQuery(initial))
	require.NoError(t, err)
	defer sub.Cancel()

	assert.Equal(t, initial, receive(t, sub))
	assert.Equal(t, 1, hub.Len())
}

func TestHub_Subscribe_QueryErrorFailsSubscription(t *testing.T) {
	hub := testHub()
	defer hub.Close()

	queryErr := errors.New("store unavailable")
	_, err := hub.Subscribe(context.Background(), func(context.Context) ([]*entity.Location, error) {
		return nil, queryErr
	})
	assert.ErrorIs(t, err, queryErr)
	assert.Equal(t, 0, hub.Len())
}

func TestHub_Notify_RerunsEachSubscriberQuery(t *testing.T) {
	hub := testHub()
	defer hub.Close()

	var current atomic.Pointer[[]*entity.Location]
	first := []*entity.Location{{ID: "loc-1"}}
	current.Store(&first)

	sub, err := hub.Subscribe(context.Background(), func(context.Context) ([]*entity.Location, error) {
		return *current.Load(), nil
	})
	require.NoError(t, err)
	defer sub.Cancel()

	assert.Equal(t, first, receive(t, sub))

	second := []*entity.Location{{ID: "loc-1"}, {ID: "loc-2"}}
	current.Store(&second)
	hub.Notify(context.Background())

	assert.Equal(t, second, receive(t, sub))
}

func TestHub_Notify_SlowConsumerSeesLatestResult(t *testing.T) {
	hub := testHub()
	defer hub.Close()

	var version atomic.Int32
	sub, err := hub.Subscribe(context.Background(), func(context.Context) ([]*entity.Location, error) {
		return []*entity.Location{{ID: "v", RatingCount: int(version.Load())}}, nil
	})
	require.NoError(t, err)
	defer sub.Cancel()

	// Nobody reads between notifications; the buffered slot must hold the
	// newest result, not the oldest.
	for i := 1; i <= 3; i++ {
		version.Store(int32(i))
		hub.Notify(context.Background())
	}

	result := receive(t, sub)
	require.Len(t, result, 1)
	assert.Equal(t, 3, result[0].RatingCount)
}

func TestHub_Cancel_StopsDeliveryForThatSubscriberOnly(t *testing.T) {
	hub := testHub()
	defer hub.Close()

	subA, err := hub.Subscribe(context.Background(), staticQuery([]*entity.Location{{ID: "a"}}))
	require.NoError(t, err)
	subB, err := hub.Subscribe(context.Background(), staticQuery([]*entity.Location{{ID: "b"}}))
	require.NoError(t, err)

	receive(t, subA)
	receive(t, subB)
	require.Equal(t, 2, hub.Len())

	subA.Cancel()
	assert.Equal(t, 1, hub.Len())

	// Cancelled channel closes; the survivor keeps receiving.
	_, ok := <-subA.C
	assert.False(t, ok)

	hub.Notify(context.Background())
	assert.Equal(t, []*entity.Location{{ID: "b"}}, receive(t, subB))
}

func TestHub_Cancel_IsIdempotent(t *testing.T) {
	hub := testHub()
	defer hub.Close()

	sub, err := hub.Subscribe(context.Background(), staticQuery(nil))
	require.NoError(t, err)

	sub.Cancel()
	sub.Cancel()
	assert.Equal(t, 0, hub.Len())
}

func TestHub_Close_DetachesEverySubscriber(t *testing.T) {
	hub := testHub()

	sub, err := hub.Subscribe(context.Background(), staticQuery([]*entity.Location{{ID: "a"}}))
	require.NoError(t, err)
	receive(t, sub)

	hub.Close()
	assert.Equal(t, 0, hub.Len())

	_, ok := <-sub.C
	assert.False(t, ok)

	// Notify after close is a no-op
	hub.Notify(context.Background())
}

func TestHub_Subscribe_AfterCloseReturnsClosedChannel(t *testing.T) {
	hub := testHub()
	hub.Close()

	sub, err := hub.Subscribe(context.Background(), staticQuery(nil))
	require.NoError(t, err)

	_, ok := <-sub.C
	assert.False(t, ok)
	sub.Cancel()
}
