package feed

import (
	"testing"

	"github.com/stretchr/testify/require"

	"itchfeed/internal/orderbook"
	"itchfeed/internal/symboldir"
	"itchfeed/internal/wire"
)

type recordingSubscriber struct {
	trades       []TradeEvent
	bboUpdates   []BBOEvent
	symbolsAdded []uint16
	parseErrors  []string
}

func (r *recordingSubscriber) OnTrade(e TradeEvent)   { r.trades = append(r.trades, e) }
func (r *recordingSubscriber) OnBBOUpdate(e BBOEvent) { r.bboUpdates = append(r.bboUpdates, e) }
func (r *recordingSubscriber) OnSymbolAdded(locate uint16, _ symboldir.Symbol) {
	r.symbolsAdded = append(r.symbolsAdded, locate)
}
func (r *recordingSubscriber) OnParseError(reason string, _ []byte, _ int) {
	r.parseErrors = append(r.parseErrors, reason)
}

func TestFeedAddOrderEmitsBBOUpdate(t *testing.T) {
	f := New(64)
	sub := &recordingSubscriber{}
	f.SetSubscriber(sub)
	d := wire.NewDecoder(f)

	d.ParseMessage(fakeAddOrder(1, 100, 1001, 'B', 100, 1500000))

	require.Len(t, sub.bboUpdates, 1)
	ev := sub.bboUpdates[0]
	require.Equal(t, orderbook.Price(1500000), ev.New.BidPrice)
	require.EqualValues(t, 1, f.Counters.OrdersAdded)
}

func TestFeedQuantityOnlyChangeDoesNotFireBBO(t *testing.T) {
	f := New(64)
	sub := &recordingSubscriber{}
	f.SetSubscriber(sub)
	d := wire.NewDecoder(f)

	d.ParseMessage(fakeAddOrder(1, 100, 1, 'B', 100, 1500000))
	d.ParseMessage(fakeAddOrder(1, 100, 2, 'B', 50, 1500000)) // same price, more qty at level
	sub.bboUpdates = nil

	// Reduce the first order's quantity without changing the top price.
	d.ParseMessage(fakeOrderExecuted(1, 200, 1, 10, 999))

	require.Empty(t, sub.bboUpdates, "quantity-only change at the same top price must not fire a BBO event")
}

func TestFeedDuplicateAddIsNoOp(t *testing.T) {
	f := New(64)
	sub := &recordingSubscriber{}
	f.SetSubscriber(sub)
	d := wire.NewDecoder(f)

	d.ParseMessage(fakeAddOrder(1, 100, 1001, 'B', 100, 1500000))
	sub.bboUpdates = nil
	before := f.Counters.OrdersAdded

	d.ParseMessage(fakeAddOrder(1, 101, 1001, 'S', 50, 999))

	require.Equal(t, before, f.Counters.OrdersAdded, "duplicate add must not increment the counter")
	require.Empty(t, sub.bboUpdates, "duplicate add must not emit a BBO event")
}

func TestFeedLocateFilterSkipsUnlistedLocates(t *testing.T) {
	f := New(64)
	f.SetLocateFilter([]uint16{5})
	d := wire.NewDecoder(f)

	d.ParseMessage(fakeAddOrder(1, 100, 1, 'B', 100, 1500000))
	require.EqualValues(t, 0, f.Counters.OrdersAdded)

	d.ParseMessage(fakeAddOrder(5, 100, 2, 'B', 100, 1500000))
	require.EqualValues(t, 1, f.Counters.OrdersAdded)
}

func TestFeedTradeEmittedBeforeMutation(t *testing.T) {
	f := New(64)
	sub := &recordingSubscriber{}
	f.SetSubscriber(sub)
	d := wire.NewDecoder(f)

	d.ParseMessage(fakeAddOrder(1, 100, 1001, 'B', 100, 1500000))
	d.ParseMessage(fakeOrderExecuted(1, 200, 1001, 30, 555))

	require.Len(t, sub.trades, 1)
	trade := sub.trades[0]
	require.Equal(t, orderbook.Price(1500000), trade.Price)
	require.EqualValues(t, 30, trade.Quantity)
	require.Equal(t, orderbook.Buy, trade.Side)

	order := f.Book().GetBook(1).GetOrder(1001)
	require.EqualValues(t, 70, order.Quantity)
}

func TestFeedStockDirectoryAddsSymbol(t *testing.T) {
	f := New(64)
	sub := &recordingSubscriber{}
	f.SetSubscriber(sub)
	d := wire.NewDecoder(f)

	d.ParseMessage(fakeStockDirectory(7, "AAPL    ", 'Q', 'N'))

	require.Equal(t, []uint16{7}, sub.symbolsAdded)
	info, ok := f.Symbols().GetInfo(7)
	require.True(t, ok)
	require.Equal(t, symboldir.Symbol([8]byte{'A', 'A', 'P', 'L', ' ', ' ', ' ', ' '}), info.Symbol)
}

func TestFeedParseErrorRelayed(t *testing.T) {
	f := New(64)
	sub := &recordingSubscriber{}
	f.SetSubscriber(sub)
	d := wire.NewDecoder(f)

	d.ParseMessage([]byte{'Z'})
	require.Equal(t, []string{"unknown message type"}, sub.parseErrors)
}

func TestFeedReset(t *testing.T) {
	f := New(64)
	d := wire.NewDecoder(f)
	d.ParseMessage(fakeAddOrder(1, 100, 1001, 'B', 100, 1500000))
	require.EqualValues(t, 1, f.Counters.OrdersAdded)

	f.Reset()

	require.EqualValues(t, 0, f.Counters.OrdersAdded)
	require.False(t, f.Book().HasBook(1))
	require.Equal(t, 0, f.Symbols().SymbolCount())
}
