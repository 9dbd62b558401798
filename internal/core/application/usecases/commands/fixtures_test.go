package commands_test

import (
	"testing"

	"hmpaquetes/internal/core/domain/model/document"
	"hmpaquetes/internal/core/domain/model/kernel"
	"hmpaquetes/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/require"
)

func testShipment(t *testing.T, id int64, status shipment.Status) *shipment.Shipment {
	t.Helper()
	s, err := shipment.Restore(shipment.Snapshot{
		ID:     id,
		Code:   "HM2025",
		Weight: kernel.NewWeight(12),
		Status: status,
	})
	require.NoError(t, err)
	return s
}

func testItem(t *testing.T, id, shipmentID int64, kind document.Kind) *document.Item {
	t.Helper()
	item, err := document.RestoreItem(id, shipmentID, document.Ref{Kind: kind, ID: 1}, true, false)
	require.NoError(t, err)
	return item
}
