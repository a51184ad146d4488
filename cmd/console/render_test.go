package main

import (
	"bytes"
	"strings"
	"testing"

	"dispatch-console/internal/features/shipments/domain"

	"github.com/stretchr/testify/assert"
)

func TestRenderShipments(t *testing.T) {
	rows := []domain.Shipment{
		{ID: "1", TrackingID: "TRK-1", Customer: "Unknown Customer", Origin: "NYC", Destination: "Boston",
			Status: domain.StatusInTransit, EstimatedDelivery: "TBD", Amount: "$50.00"},
	}

	t.Run("Populated", func(t *testing.T) {
		var buf bytes.Buffer
		renderShipments(&buf, domain.FetchState{Phase: domain.PhaseLoaded, Shipments: rows})

		out := buf.String()
		assert.Contains(t, out, "TRACKING ID")
		assert.Contains(t, out, "TRK-1")
		assert.Contains(t, out, "In Transit")
		assert.Contains(t, out, "$50.00")
	})

	t.Run("Empty", func(t *testing.T) {
		var buf bytes.Buffer
		renderShipments(&buf, domain.FetchState{Phase: domain.PhaseLoaded, Shipments: []domain.Shipment{}})
		assert.Equal(t, "No shipments found.\n", buf.String())
	})

	t.Run("FailedWithStaleRows", func(t *testing.T) {
		var buf bytes.Buffer
		renderShipments(&buf, domain.FetchState{
			Phase:     domain.PhaseFailed,
			Message:   "Failed to load shipments: timeout",
			Shipments: rows,
		})

		out := buf.String()
		assert.True(t, strings.HasPrefix(out, "Failed to load shipments: timeout\n"))
		assert.Contains(t, out, "Showing last loaded shipments:")
		assert.Contains(t, out, "TRK-1")
	})

	t.Run("FailedWithoutRows", func(t *testing.T) {
		var buf bytes.Buffer
		renderShipments(&buf, domain.FetchState{Phase: domain.PhaseFailed, Message: "Failed to load shipments: down"})
		assert.Equal(t, "Failed to load shipments: down\n", buf.String())
	})

	t.Run("Skipped", func(t *testing.T) {
		var buf bytes.Buffer
		renderShipments(&buf, domain.FetchState{
			Phase:     domain.PhaseLoaded,
			Shipments: rows,
			Skipped:   []domain.SkippedRecord{{Index: 3, OrderID: "9", Reason: "missing amount"}},
		})
		assert.Contains(t, buf.String(), "1 order(s) skipped:")
		assert.Contains(t, buf.String(), "#3 9: missing amount")
	})
}

func TestRenderSummary(t *testing.T) {
	summary := domain.Summarize([]domain.Shipment{
		{Status: domain.StatusDelivered, AmountValue: 1234.5},
		{Status: domain.StatusFailed, AmountValue: 10},
	})

	var buf bytes.Buffer
	renderSummary(&buf, summary, domain.NewProjector())

	out := buf.String()
	assert.Contains(t, out, "Total")
	assert.Contains(t, out, "Delivered")
	assert.Contains(t, out, "$1,244.50")
	assert.NotContains(t, out, "Unmapped")
}

func TestRenderSteps(t *testing.T) {
	var buf bytes.Buffer
	renderSteps(&buf, domain.RenderSteps(domain.DisplayPickedUp))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		"[x] Ordered",
		"[x] Picked Up  <- current",
		"[ ] In Transit",
		"[ ] Out for Delivery",
		"[ ] Delivered",
	}, lines)
}

func TestStepsCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"steps", "in_transit"})

	assert.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "[x] In Transit  <- current")

	cmd = newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"steps", "LOST"})
	assert.Error(t, cmd.Execute())
}
