package auction

import (
	"fmt"
	"strings"
	"time"
)

// Countdown formats the time left until endMs as "Xd : Xh : Xm : Xs", all zeros once elapsed
func Countdown(endMs int64, now time.Time) string {
	left := endMs - now.UnixMilli()
	if left < 0 {
		left = 0
	}
	secs := left / 1000
	days := secs / 86400
	hours := (secs % 86400) / 3600
	mins := (secs % 3600) / 60
	secs = secs % 60
	return fmt.Sprintf("%dd : %dh : %dm : %ds", days, hours, mins, secs)
}

// Truncate shortens text longer than maxLength to its first startChars and last endChars
// characters, padding the head with dots up to maxLength.
func Truncate(text string, startChars, endChars, maxLength int) string {
	if len(text) <= maxLength {
		return text
	}
	if startChars > len(text) {
		startChars = len(text)
	}
	if endChars > len(text) {
		endChars = len(text)
	}
	start := text[:startChars]
	end := text[len(text)-endChars:]
	if pad := maxLength - len(start) - len(end); pad > 0 {
		start += strings.Repeat(".", pad)
	}
	return start + end
}

const (
	ActionPlaceBid    = "Place a Bid"
	ActionBuyNow      = "Buy NOW"
	ActionAuctionLive = "Auction Live"
	ActionList        = "List"
	ActionChange      = "Change"
)

type CardStatus string

const (
	CardStatusLive  CardStatus = "live"
	CardStatusEnded CardStatus = "ended"
)

// Card is the listing tile of an auction
type Card struct {
	*Auction
	Status   CardStatus `json:"status"`
	EndingIn string     `json:"endingIn"`
	Actions  []string   `json:"actions"`
	Disabled bool       `json:"disabled"`
}

// ToCard lays out the listing tile. Owner tiles (showOffer) offer listing and repricing,
// market tiles offer bidding or buying.
func ToCard(a *Auction, showOffer bool, now time.Time) *Card {
	c := &Card{
		Auction:  a,
		Status:   CardStatusEnded,
		EndingIn: Countdown(0, now),
	}
	if a.IsLive(now) {
		c.Status = CardStatusLive
		c.EndingIn = Countdown(a.Duration, now)
	}

	switch {
	case showOffer && a.IsLive(now):
		c.Actions = []string{ActionAuctionLive}
	case showOffer:
		c.Actions = []string{ActionList, ActionChange}
	case a.Biddable:
		c.Actions = []string{ActionPlaceBid}
		c.Disabled = a.HasEnded(now)
	default:
		c.Actions = []string{ActionBuyNow}
		c.Disabled = a.HasEnded(now)
	}
	return c
}

func ToCards(auctions []*Auction, showOffer bool, now time.Time) []*Card {
	res := make([]*Card, 0, len(auctions))
	for _, a := range auctions {
		res = append(res, ToCard(a, showOffer, now))
	}
	return res
}
