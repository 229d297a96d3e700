package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
)

var (
	keyAccount = NewKey[string]("connectedAccount")
	keyCount   = NewKey[int]("count")
	keyList    = NewKey[[]string]("list")
)

type testsuite struct {
	suite.Suite
	s *Store
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) SetupTest() {
	ts.s = New()
}

func (ts *testsuite) TestGetUnset() {
	v, ok := Get(ts.s, keyAccount)
	ts.False(ok)
	ts.Equal("", v)
}

func (ts *testsuite) TestSetGet() {
	Set(ts.s, keyAccount, "0xabc")
	Set(ts.s, keyList, []string{"a", "b"})

	v, ok := Get(ts.s, keyAccount)
	ts.True(ok)
	ts.Equal("0xabc", v)

	l, ok := Get(ts.s, keyList)
	ts.True(ok)
	ts.Equal([]string{"a", "b"}, l)
}

func (ts *testsuite) TestLastWriteWins() {
	Set(ts.s, keyCount, 1)
	Set(ts.s, keyCount, 2)
	v, _ := Get(ts.s, keyCount)
	ts.Equal(2, v)
}

func (ts *testsuite) TestSubscribe() {
	got := []string{}
	cancel := Subscribe(ts.s, keyAccount, func(v string) {
		got = append(got, v)
	})

	Set(ts.s, keyAccount, "0x1")
	Set(ts.s, keyCount, 7)
	Set(ts.s, keyAccount, "0x2")
	cancel()
	Set(ts.s, keyAccount, "0x3")

	ts.Equal([]string{"0x1", "0x2"}, got)
}

func (ts *testsuite) TestSubscribeAll() {
	changes := []Change{}
	cancel := ts.s.SubscribeAll(func(c Change) {
		changes = append(changes, c)
	})
	defer cancel()

	Set(ts.s, keyAccount, "0x1")
	Set(ts.s, keyCount, 7)

	ts.Equal([]Change{
		{Key: "connectedAccount", Value: "0x1"},
		{Key: "count", Value: 7},
	}, changes)
}

func (ts *testsuite) TestSubscriberMayWrite() {
	cancel := Subscribe(ts.s, keyAccount, func(v string) {
		Set(ts.s, keyCount, len(v))
	})
	defer cancel()

	Set(ts.s, keyAccount, "0xabcd")
	v, ok := Get(ts.s, keyCount)
	ts.True(ok)
	ts.Equal(6, v)
}

func (ts *testsuite) TestCancelTwice() {
	calls := 0
	cancel := ts.s.SubscribeAll(func(Change) { calls++ })
	other := ts.s.SubscribeAll(func(Change) {})
	defer other()
	cancel()
	cancel()
	Set(ts.s, keyCount, 1)
	ts.Equal(0, calls)
}

func (ts *testsuite) TestReset() {
	Set(ts.s, keyAccount, "0x1")
	Set(ts.s, keyCount, 3)

	resetAccount := []string{}
	cancel := Subscribe(ts.s, keyAccount, func(v string) {
		resetAccount = append(resetAccount, v)
	})
	defer cancel()

	ts.s.Reset()
	ts.Empty(ts.s.Snapshot())
	ts.Equal([]string{""}, resetAccount)
	_, ok := Get(ts.s, keyAccount)
	ts.False(ok)
}

func (ts *testsuite) TestSnapshotIsCopy() {
	Set(ts.s, keyCount, 1)
	snap := ts.s.Snapshot()
	snap["count"] = 100
	v, _ := Get(ts.s, keyCount)
	ts.Equal(1, v)
}

func (ts *testsuite) TestConcurrentWrites() {
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			Set(ts.s, keyCount, i)
			Get(ts.s, keyCount)
		}(i)
	}
	wg.Wait()
	_, ok := Get(ts.s, keyCount)
	ts.True(ok)
}
