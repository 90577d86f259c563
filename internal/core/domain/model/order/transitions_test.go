package order_test

import (
	"fmt"
	"testing"

	"epicerie/internal/core/domain/model/kernel"
	"epicerie/internal/core/domain/model/order"
	"epicerie/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allowedTriple mirrors the documented transition table independently of the
// implementation, so the grid test below catches a drifting table.
type allowedTriple struct {
	from         order.Status
	role         kernel.Role
	deliveryType order.DeliveryType
	target       order.Status
}

func expectedTransitions() []allowedTriple {
	both := func(from order.Status, role kernel.Role, targets ...order.Status) []allowedTriple {
		var out []allowedTriple
		for _, dt := range []order.DeliveryType{order.Pickup, order.HomeDelivery} {
			for _, target := range targets {
				out = append(out, allowedTriple{from, role, dt, target})
			}
		}
		return out
	}

	var expected []allowedTriple
	expected = append(expected, both(order.Pending, kernel.RoleEpicier, order.Accepted, order.Cancelled)...)
	expected = append(expected, both(order.Accepted, kernel.RoleEpicier, order.Preparing, order.Cancelled)...)
	expected = append(expected, both(order.Preparing, kernel.RoleEpicier, order.Ready)...)
	expected = append(expected,
		allowedTriple{order.Ready, kernel.RoleEpicier, order.Pickup, order.Delivered},
		allowedTriple{order.Ready, kernel.RoleLivreur, order.HomeDelivery, order.InDelivery},
		allowedTriple{order.Ready, kernel.RoleLivreur, order.HomeDelivery, order.Delivered},
	)
	expected = append(expected, both(order.InDelivery, kernel.RoleLivreur, order.Delivered)...)
	return expected
}

// TestTransitionGrid exercises every (status, role, deliveryType, target)
// combination and checks that exactly the documented triples are allowed.
// Everything outside the table must be rejected locally.
func TestTransitionGrid(t *testing.T) {
	allowed := make(map[allowedTriple]bool)
	for _, triple := range expectedTransitions() {
		allowed[triple] = true
	}

	statuses := []order.Status{
		order.Pending, order.Accepted, order.Preparing, order.Ready,
		order.InDelivery, order.Delivered, order.Cancelled,
	}
	roles := []kernel.Role{kernel.RoleClient, kernel.RoleEpicier, kernel.RoleLivreur}
	deliveryTypes := []order.DeliveryType{order.Pickup, order.HomeDelivery}

	for _, from := range statuses {
		for _, role := range roles {
			for _, dt := range deliveryTypes {
				for _, target := range statuses {
					triple := allowedTriple{from, role, dt, target}
					name := fmt.Sprintf("%s_%s_%s_to_%s", from, role, dt, target)

					t.Run(name, func(t *testing.T) {
						got := from.CanTransition(role, dt, target)
						assert.Equal(t, allowed[triple], got)

						newStatus, err := from.TransitionTo(role, dt, target)
						if allowed[triple] {
							require.NoError(t, err)
							assert.Equal(t, target, newStatus)
						} else {
							require.Error(t, err)
							require.ErrorIs(t, err, errs.ErrValueIsInvalid)
							assert.Equal(t, order.StatusUnknown, newStatus)
						}
					})
				}
			}
		}
	}
}

func TestTransitionTo_RejectsInvalidInput(t *testing.T) {
	t.Run("unknown target", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(kernel.RoleEpicier, order.Pickup, order.StatusUnknown)
		require.Error(t, err)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(kernel.RoleUnknown, order.Pickup, order.Accepted)
		require.Error(t, err)
	})
}

func TestAllowedTargets(t *testing.T) {
	t.Run("epicier on pending order", func(t *testing.T) {
		targets := order.Pending.AllowedTargets(kernel.RoleEpicier, order.HomeDelivery)
		assert.ElementsMatch(t, []order.Status{order.Accepted, order.Cancelled}, targets)
	})

	t.Run("livreur on ready home-delivery order", func(t *testing.T) {
		targets := order.Ready.AllowedTargets(kernel.RoleLivreur, order.HomeDelivery)
		assert.ElementsMatch(t, []order.Status{order.InDelivery, order.Delivered}, targets)
	})

	t.Run("livreur has nothing on ready pickup order", func(t *testing.T) {
		assert.Empty(t, order.Ready.AllowedTargets(kernel.RoleLivreur, order.Pickup))
	})

	t.Run("epicier only hands over ready pickup orders", func(t *testing.T) {
		targets := order.Ready.AllowedTargets(kernel.RoleEpicier, order.Pickup)
		assert.Equal(t, []order.Status{order.Delivered}, targets)

		assert.Empty(t, order.Ready.AllowedTargets(kernel.RoleEpicier, order.HomeDelivery))
	})

	t.Run("client may never set a status", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Accepted, order.Preparing, order.Ready,
			order.InDelivery, order.Delivered, order.Cancelled,
		} {
			assert.Empty(t, s.AllowedTargets(kernel.RoleClient, order.Pickup), s.String())
			assert.Empty(t, s.AllowedTargets(kernel.RoleClient, order.HomeDelivery), s.String())
		}
	})

	t.Run("terminal statuses offer nothing to anyone", func(t *testing.T) {
		for _, s := range []order.Status{order.Delivered, order.Cancelled} {
			for _, role := range []kernel.Role{kernel.RoleClient, kernel.RoleEpicier, kernel.RoleLivreur} {
				assert.Empty(t, s.AllowedTargets(role, order.HomeDelivery))
			}
		}
	})
}
