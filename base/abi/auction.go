package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var AuctionABI abi.ABI

func init() {
	_abi, err := abi.JSON(strings.NewReader(auctionABIJson))
	if err != nil {
		panic("Failed to parse ABI")
	}
	AuctionABI = _abi
}

var auctionABIJson = `
[
  {
    "inputs": [
      { "internalType": "string", "name": "name", "type": "string" },
      { "internalType": "string", "name": "description", "type": "string" },
      { "internalType": "uint256", "name": "price", "type": "uint256" }
    ],
    "name": "createAuction",
    "outputs": [],
    "stateMutability": "payable",
    "type": "function"
  },
  {
    "inputs": [
      { "internalType": "uint256", "name": "domain", "type": "uint256" },
      { "internalType": "uint256", "name": "price", "type": "uint256" }
    ],
    "name": "changePrice",
    "outputs": [],
    "stateMutability": "nonpayable",
    "type": "function"
  },
  {
    "inputs": [
      { "internalType": "uint256", "name": "domain", "type": "uint256" },
      { "internalType": "bool", "name": "biddable", "type": "bool" },
      { "internalType": "uint256", "name": "sec", "type": "uint256" },
      { "internalType": "uint256", "name": "min", "type": "uint256" },
      { "internalType": "uint256", "name": "hour", "type": "uint256" },
      { "internalType": "uint256", "name": "day", "type": "uint256" }
    ],
    "name": "offerAuction",
    "outputs": [],
    "stateMutability": "nonpayable",
    "type": "function"
  },
  {
    "inputs": [
      { "internalType": "uint256", "name": "domain", "type": "uint256" }
    ],
    "name": "buyAuctionedItem",
    "outputs": [],
    "stateMutability": "payable",
    "type": "function"
  },
  {
    "inputs": [
      { "internalType": "uint256", "name": "domain", "type": "uint256" }
    ],
    "name": "placeBid",
    "outputs": [],
    "stateMutability": "payable",
    "type": "function"
  },
  {
    "inputs": [
      { "internalType": "uint256", "name": "domain", "type": "uint256" },
      { "internalType": "uint256", "name": "id", "type": "uint256" }
    ],
    "name": "claimPrize",
    "outputs": [],
    "stateMutability": "nonpayable",
    "type": "function"
  },
  {
    "inputs": [],
    "name": "getLiveAuctions",
    "outputs": [
      {
        "components": [
          { "internalType": "uint256", "name": "domain", "type": "uint256" },
          { "internalType": "address", "name": "owner", "type": "address" },
          { "internalType": "address", "name": "seller", "type": "address" },
          { "internalType": "address", "name": "winner", "type": "address" },
          { "internalType": "string", "name": "name", "type": "string" },
          { "internalType": "string", "name": "description", "type": "string" },
          { "internalType": "uint256", "name": "duration", "type": "uint256" },
          { "internalType": "string", "name": "image", "type": "string" },
          { "internalType": "uint256", "name": "price", "type": "uint256" },
          { "internalType": "bool", "name": "biddable", "type": "bool" },
          { "internalType": "bool", "name": "sold", "type": "bool" },
          { "internalType": "bool", "name": "live", "type": "bool" }
        ],
        "internalType": "struct Auction.AuctionStruct[]",
        "name": "",
        "type": "tuple[]"
      }
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [
      { "internalType": "uint256", "name": "domain", "type": "uint256" }
    ],
    "name": "getAuction",
    "outputs": [
      {
        "components": [
          { "internalType": "uint256", "name": "domain", "type": "uint256" },
          { "internalType": "address", "name": "owner", "type": "address" },
          { "internalType": "address", "name": "seller", "type": "address" },
          { "internalType": "address", "name": "winner", "type": "address" },
          { "internalType": "string", "name": "name", "type": "string" },
          { "internalType": "string", "name": "description", "type": "string" },
          { "internalType": "uint256", "name": "duration", "type": "uint256" },
          { "internalType": "string", "name": "image", "type": "string" },
          { "internalType": "uint256", "name": "price", "type": "uint256" },
          { "internalType": "bool", "name": "biddable", "type": "bool" },
          { "internalType": "bool", "name": "sold", "type": "bool" },
          { "internalType": "bool", "name": "live", "type": "bool" }
        ],
        "internalType": "struct Auction.AuctionStruct",
        "name": "",
        "type": "tuple"
      }
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [
      { "internalType": "uint256", "name": "domain", "type": "uint256" }
    ],
    "name": "getBidders",
    "outputs": [
      {
        "components": [
          { "internalType": "address", "name": "bidder", "type": "address" },
          { "internalType": "uint256", "name": "price", "type": "uint256" },
          { "internalType": "uint256", "name": "timestamp", "type": "uint256" },
          { "internalType": "bool", "name": "refunded", "type": "bool" },
          { "internalType": "bool", "name": "won", "type": "bool" }
        ],
        "internalType": "struct Auction.BidderStruct[]",
        "name": "",
        "type": "tuple[]"
      }
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [],
    "name": "getMyAuctions",
    "outputs": [
      {
        "components": [
          { "internalType": "uint256", "name": "domain", "type": "uint256" },
          { "internalType": "address", "name": "owner", "type": "address" },
          { "internalType": "address", "name": "seller", "type": "address" },
          { "internalType": "address", "name": "winner", "type": "address" },
          { "internalType": "string", "name": "name", "type": "string" },
          { "internalType": "string", "name": "description", "type": "string" },
          { "internalType": "uint256", "name": "duration", "type": "uint256" },
          { "internalType": "string", "name": "image", "type": "string" },
          { "internalType": "uint256", "name": "price", "type": "uint256" },
          { "internalType": "bool", "name": "biddable", "type": "bool" },
          { "internalType": "bool", "name": "sold", "type": "bool" },
          { "internalType": "bool", "name": "live", "type": "bool" }
        ],
        "internalType": "struct Auction.AuctionStruct[]",
        "name": "",
        "type": "tuple[]"
      }
    ],
    "stateMutability": "view",
    "type": "function"
  }
]
`
