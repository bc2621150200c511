package session_test

import (
	"fmt"
	"sync"
	"testing"

	"pizzahome/internal/core/domain/model/kernel"
	"pizzahome/internal/core/domain/model/menu"
	"pizzahome/internal/core/domain/model/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, name string, size menu.Size, price int) session.CartItem {
	t.Helper()
	item, err := session.NewCartItem(name, size, price)
	require.NoError(t, err)
	return item
}

func TestSessionCart(t *testing.T) {
	store := session.NewStore()

	t.Run("subtotal follows cart contents", func(t *testing.T) {
		sess, release := store.Acquire("+923001112233")
		defer release()

		require.NoError(t, sess.AddToCart(mustItem(t, "Margherita", menu.SizeLarge, 800)))
		require.NoError(t, sess.AddToCart(mustItem(t, "Pepsi 1.5L", menu.SizeOne, 250)))

		assert.Equal(t, 1050, sess.Subtotal())
		assert.Len(t, sess.Cart(), 2)
		assert.False(t, sess.CartIsEmpty())

		sess.ClearCart()
		assert.Zero(t, sess.Subtotal())
		assert.True(t, sess.CartIsEmpty())
	})

	t.Run("quantity counts toward subtotal", func(t *testing.T) {
		sess, release := store.Acquire("+923009998877")
		defer release()

		item, err := session.NewCartItemWithQty("Fries", menu.SizeOne, 120, 3)
		require.NoError(t, err)
		require.NoError(t, sess.AddToCart(item))

		assert.Equal(t, 360, sess.Subtotal())
	})

	t.Run("rejects unconstructed cart item", func(t *testing.T) {
		sess, release := store.Acquire("+923001000000")
		defer release()

		assert.Error(t, sess.AddToCart(session.CartItem{}))
		assert.True(t, sess.CartIsEmpty())
	})
}

func TestSessionFlags(t *testing.T) {
	store := session.NewStore()
	sess, release := store.Acquire("+923004445566")
	defer release()

	_, ok := sess.DeliveryFee()
	assert.False(t, ok)

	sess.MarkAwaitingAddress()
	assert.True(t, sess.AwaitingAddress())

	sess.SetAddress("Street 5, City Center")
	assert.False(t, sess.AwaitingAddress())
	assert.Equal(t, "Street 5, City Center", sess.Address())

	sess.SetDeliveryFee(0)
	fee, ok := sess.DeliveryFee()
	assert.True(t, ok, "a zero fee is still a resolved fee")
	assert.Zero(t, fee)

	_, ok = sess.PendingOrderID()
	assert.False(t, ok)

	id := kernel.NewOrderID()
	sess.SetPendingOrderID(id)
	got, ok := sess.PendingOrderID()
	require.True(t, ok)
	assert.True(t, got.IsEqual(id))

	assert.Nil(t, sess.LastLocation())
	point, err := kernel.NewGeoPoint(33.6, 73.0)
	require.NoError(t, err)
	sess.RememberLocation(point)
	require.NotNil(t, sess.LastLocation())
	assert.True(t, sess.LastLocation().IsEqual(point))
}

func TestStoreRemove(t *testing.T) {
	store := session.NewStore()

	sess, release := store.Acquire("+923007776655")
	require.NoError(t, sess.AddToCart(mustItem(t, "Pepperoni", menu.SizeMedium, 700)))
	store.Remove("+923007776655")
	release()

	fresh, release := store.Acquire("+923007776655")
	defer release()
	assert.True(t, fresh.CartIsEmpty())
}

func TestStoreSerializesPerCustomer(t *testing.T) {
	store := session.NewStore()

	const (
		workers       = 8
		addsPerWorker = 50
	)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < addsPerWorker; i++ {
				sess, release := store.Acquire("+923000000001")
				_ = sess.AddToCart(mustCartItem("Fries", 120))
				release()
			}
		}()
	}
	wg.Wait()

	sess, release := store.Acquire("+923000000001")
	defer release()
	assert.Len(t, sess.Cart(), workers*addsPerWorker)
	assert.Equal(t, workers*addsPerWorker*120, sess.Subtotal())
}

func TestStoreCustomersAreIndependent(t *testing.T) {
	store := session.NewStore()

	var wg sync.WaitGroup
	for c := 0; c < 20; c++ {
		wg.Add(1)
		go func(c int) {
			defer wg.Done()
			id := fmt.Sprintf("+92300%07d", c)
			sess, release := store.Acquire(id)
			defer release()
			_ = sess.AddToCart(mustCartItem("Margherita", 300))
		}(c)
	}
	wg.Wait()

	assert.Equal(t, 20, store.Len())
}

func mustCartItem(name string, price int) session.CartItem {
	item, err := session.NewCartItem(name, menu.SizeOne, price)
	if err != nil {
		panic(err)
	}
	return item
}
