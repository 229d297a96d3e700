package auction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCountdown(t *testing.T) {
	req := require.New(t)
	now := time.UnixMilli(1_700_000_000_000)
	end := now.Add(2*24*time.Hour + 3*time.Hour + 4*time.Minute + 5*time.Second)

	req.Equal("2d : 3h : 4m : 5s", Countdown(end.UnixMilli(), now))
	req.Equal("0d : 0h : 0m : 0s", Countdown(now.UnixMilli()-1, now))
	req.Equal("0d : 0h : 0m : 0s", Countdown(0, now))
}

func TestTruncate(t *testing.T) {
	req := require.New(t)
	addr := "0x939ae6a4c8dfdbb1f7085189574f0a938013952a"
	req.Equal("0x939ae68013952a", Truncate(addr, 8, 8, 11))
	req.Equal("0x93....952a", Truncate(addr, 4, 4, 12))
	req.Equal("short", Truncate("short", 8, 8, 11))
}

func TestIsLive(t *testing.T) {
	req := require.New(t)
	now := time.UnixMilli(1_700_000_000_000)
	a := &Auction{Live: true, Duration: now.UnixMilli() + 1}
	req.True(a.IsLive(now))
	req.False(a.HasEnded(now))

	a.Live = false
	req.False(a.IsLive(now))

	a = &Auction{Live: true, Duration: now.UnixMilli() - 1}
	req.False(a.IsLive(now))
	req.True(a.HasEnded(now))
	req.Equal(now.UnixMilli()-1, a.EndsAt().UnixMilli())
}

func TestToCard(t *testing.T) {
	req := require.New(t)
	now := time.UnixMilli(1_700_000_000_000)
	future := now.Add(time.Hour).UnixMilli()
	past := now.Add(-time.Hour).UnixMilli()

	cases := []struct {
		desc      string
		auction   *Auction
		showOffer bool
		status    CardStatus
		actions   []string
		disabled  bool
	}{
		{"market biddable live", &Auction{Live: true, Biddable: true, Duration: future}, false, CardStatusLive, []string{ActionPlaceBid}, false},
		{"market biddable ended", &Auction{Live: true, Biddable: true, Duration: past}, false, CardStatusEnded, []string{ActionPlaceBid}, true},
		{"market fixed price", &Auction{Live: true, Duration: future}, false, CardStatusLive, []string{ActionBuyNow}, false},
		{"market fixed price ended", &Auction{Duration: past}, false, CardStatusEnded, []string{ActionBuyNow}, true},
		{"owner live", &Auction{Live: true, Duration: future}, true, CardStatusLive, []string{ActionAuctionLive}, false},
		{"owner idle", &Auction{Duration: past}, true, CardStatusEnded, []string{ActionList, ActionChange}, false},
	}
	for _, c := range cases {
		card := ToCard(c.auction, c.showOffer, now)
		req.Equal(c.status, card.Status, c.desc)
		req.Equal(c.actions, card.Actions, c.desc)
		req.Equal(c.disabled, card.Disabled, c.desc)
	}

	live := ToCard(&Auction{Live: true, Duration: future}, false, now)
	req.Equal("0d : 1h : 0m : 0s", live.EndingIn)
	ended := ToCard(&Auction{Duration: past}, false, now)
	req.Equal("0d : 0h : 0m : 0s", ended.EndingIn)

	req.Len(ToCards([]*Auction{{}, {}}, false, now), 2)
}
