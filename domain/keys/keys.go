package keys

import (
	"strconv"
	"strings"
)

const (
	// PfxHealthCheck is used for prefixing health check cache key
	PfxHealthCheck = "healthcheck"
	// PfxAuction is used for prefixing auction read cache keys
	PfxAuction = "auction"
	// PfxToast is used for prefixing toast keys
	PfxToast = "toast"
	// PfxEns is used for prefixing ens lookups
	PfxEns = "ens"
)

// CustomKey is used to join the customized key by componets with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey is used to join the redis key by componets
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}

// ChainKey scopes key to one chain id
func ChainKey(chainId, key string) string {
	return RedisKey("chain", chainId, key)
}

// LiveAuctionsKey caches the market listing
func LiveAuctionsKey() string {
	return RedisKey("live")
}

// AuctionKey caches one auction
func AuctionKey(id int64) string {
	return RedisKey("item", strconv.FormatInt(id, 10))
}

// BiddersKey caches the bids of one auction
func BiddersKey(id int64) string {
	return RedisKey("bidders", strconv.FormatInt(id, 10))
}

// CollectionsKey caches the auctions owned by an account
func CollectionsKey(account string) string {
	return RedisKey("collections", strings.ToLower(account))
}
