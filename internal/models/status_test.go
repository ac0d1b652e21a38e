package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// IsCancelable must hold exactly for Pending, over the whole enum.
func TestIsCancelable(t *testing.T) {
	for _, status := range AuctionStatuses {
		status := status
		t.Run(string(status), func(t *testing.T) {
			auction := Auction{AuctionID: 1, Status: status}
			require.Equal(t, status == AuctionPending, IsCancelable(auction))
		})
	}
}

func TestCanTransition(t *testing.T) {
	allowed := map[[2]AuctionStatus]bool{
		{AuctionPending, AuctionActive}:    true,
		{AuctionPending, AuctionCancelled}: true,
		{AuctionActive, AuctionEnded}:      true,
		{AuctionEnded, AuctionCompleted}:   true,
	}

	for _, from := range AuctionStatuses {
		for _, to := range AuctionStatuses {
			from, to := from, to
			t.Run(string(from)+"_to_"+string(to), func(t *testing.T) {
				require.Equal(t, allowed[[2]AuctionStatus{from, to}], CanTransition(from, to))
			})
		}
	}
}

// No transition may skip a state forward: Pending cannot jump to Ended or
// Completed, Active cannot jump to Completed.
func TestCanTransition_NoSkips(t *testing.T) {
	require.False(t, CanTransition(AuctionPending, AuctionEnded))
	require.False(t, CanTransition(AuctionPending, AuctionCompleted))
	require.False(t, CanTransition(AuctionActive, AuctionCompleted))
}

// Cancelled is reachable only from Pending.
func TestCanTransition_CancelOnlyFromPending(t *testing.T) {
	for _, from := range AuctionStatuses {
		require.Equal(t, from == AuctionPending, CanTransition(from, AuctionCancelled), "from %s", from)
	}
}

func TestAuctionStatus_Valid(t *testing.T) {
	for _, status := range AuctionStatuses {
		require.True(t, status.Valid(), "status %s", status)
	}
	require.False(t, AuctionStatus("Archived").Valid())
	require.False(t, AuctionStatus("").Valid())
}
