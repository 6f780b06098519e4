// Package feed glues the wire decoder to the order-book engine: it
// implements wire.Subscriber, translates every order-modifying message
// into a Manager/OrderBook mutation, and emits feed-level events (trade,
// BBO change, symbol added) to an optionally-attached Subscriber. It is
// the system's single write entry point, in the same spirit as the
// teacher's OrderService: every path that touches book state funnels
// through Feed's wire.Subscriber methods.
package feed

import (
	"itchfeed/internal/orderbook"
	"itchfeed/internal/seq"
	"itchfeed/internal/symboldir"
	"itchfeed/internal/telemetry"
	"itchfeed/internal/wire"
)

// Feed owns the book manager, the symbol directory, an optional locate
// filter, and the apply-sequence stamper. It is not safe for concurrent
// use — spec.md §5 requires the whole core, Feed included, to run on a
// single thread with callbacks dispatched inline.
type Feed struct {
	books    *orderbook.Manager
	symbols  *symboldir.Directory
	sub      Subscriber
	filter   map[uint16]bool
	stamper  *seq.Stamper
	Counters telemetry.Counters
}

// New returns a Feed backed by its own book manager and symbol
// directory. blockSize configures the shared order pool's allocation
// granularity (<=0 picks the pool package's default).
func New(blockSize int) *Feed {
	return &Feed{
		books:   orderbook.NewManager(blockSize),
		symbols: symboldir.New(),
		stamper: seq.New(0),
	}
}

// SetSubscriber attaches (or, passed nil, detaches) the feed-level
// event subscriber.
func (f *Feed) SetSubscriber(sub Subscriber) { f.sub = sub }

// SetLocateFilter restricts processing to the given locates; passing nil
// disables filtering.
func (f *Feed) SetLocateFilter(locates []uint16) {
	if locates == nil {
		f.filter = nil
		return
	}
	m := make(map[uint16]bool, len(locates))
	for _, l := range locates {
		m[l] = true
	}
	f.filter = m
}

// Book returns the book manager, for direct query access (BBO, depth)
// by a downstream caller — the plain-method substitute for the gRPC
// query surface this engine does not expose (see SPEC_FULL.md §2).
func (f *Feed) Book() *orderbook.Manager { return f.books }

// Symbols returns the symbol directory.
func (f *Feed) Symbols() *symboldir.Directory { return f.symbols }

// Reset clears every book, the symbol directory, and the stamper/counters,
// so one process can be reused across independent replay runs.
// Grounded on original_source's FeedHandler::reset().
func (f *Feed) Reset() {
	f.books.Reset()
	f.symbols = symboldir.New()
	f.stamper.Reset(0)
	f.Counters.Reset()
}

func (f *Feed) allowed(locate uint16) bool {
	if f.filter == nil {
		return true
	}
	return f.filter[locate]
}

// emitBBOIfChanged compares oldBBO against the book's current BBO and,
// if either side's price differs (spec.md §9's price-only criterion),
// emits a BBOEvent.
func (f *Feed) emitBBOIfChanged(locate uint16, oldBBO orderbook.BBO, ts uint64) {
	if f.sub == nil {
		return
	}
	book := f.books.GetBook(locate)
	newBBO := book.BBO()
	if oldBBO.Changed(newBBO) {
		f.sub.OnBBOUpdate(BBOEvent{Locate: locate, Old: oldBBO, New: newBBO, Timestamp: ts, ApplySeq: f.stamper.Next()})
		f.Counters.BBOUpdates++
	}
}

func (f *Feed) snapshotBBO(locate uint16) orderbook.BBO {
	if f.sub == nil {
		return orderbook.BBO{}
	}
	return f.books.GetBook(locate).BBO()
}

var _ wire.Subscriber = (*Feed)(nil)

func (f *Feed) OnSystemEvent(locate uint16, ts uint64, m wire.SystemEvent) {
	f.Counters.MessagesProcessed++
}

func (f *Feed) OnStockDirectory(locate uint16, ts uint64, m wire.StockDirectory) {
	f.symbols.AddSymbol(locate, symboldir.Symbol(m.Stock()), m.MarketCategory(), m.FinancialStatus())
	if f.sub != nil {
		f.sub.OnSymbolAdded(locate, symboldir.Symbol(m.Stock()))
	}
	f.Counters.SymbolsAdded++
	f.Counters.MessagesProcessed++
}

func (f *Feed) OnStockTradingAction(locate uint16, ts uint64, m wire.StockTradingAction) {
	f.Counters.MessagesProcessed++
}

func (f *Feed) OnRegSHORestriction(locate uint16, ts uint64, m wire.RegSHORestriction) {
	f.Counters.MessagesProcessed++
}

func (f *Feed) OnMarketParticipantPosition(locate uint16, ts uint64, m wire.MarketParticipantPosition) {
	f.Counters.MessagesProcessed++
}

func (f *Feed) OnMWCBDeclineLevel(locate uint16, ts uint64, m wire.MWCBDeclineLevel) {
	f.Counters.MessagesProcessed++
}

func (f *Feed) OnMWCBStatus(locate uint16, ts uint64, m wire.MWCBStatus) {
	f.Counters.MessagesProcessed++
}

func (f *Feed) OnIPOQuotingPeriod(locate uint16, ts uint64, m wire.IPOQuotingPeriod) {
	f.Counters.MessagesProcessed++
}

func (f *Feed) OnLULDAuctionCollar(locate uint16, ts uint64, m wire.LULDAuctionCollar) {
	f.Counters.MessagesProcessed++
}

func (f *Feed) OnOperationalHalt(locate uint16, ts uint64, m wire.OperationalHalt) {
	f.Counters.MessagesProcessed++
}

func side(b byte) orderbook.Side {
	if b == 'B' {
		return orderbook.Buy
	}
	return orderbook.Sell
}

func (f *Feed) OnAddOrder(locate uint16, ts uint64, m wire.AddOrder) {
	if !f.allowed(locate) {
		return
	}
	book := f.books.GetBook(locate)
	oldBBO := f.snapshotBBO(locate)

	_, ok := book.AddOrder(f.books.Pool(), m.OrderRef(), side(m.Side()), orderbook.Price(m.Price()), m.Shares(), locate, ts)
	if !ok {
		return
	}
	f.Counters.OrdersAdded++
	f.Counters.MessagesProcessed++
	f.emitBBOIfChanged(locate, oldBBO, ts)
}

func (f *Feed) OnAddOrderMPID(locate uint16, ts uint64, m wire.AddOrderMPID) {
	if !f.allowed(locate) {
		return
	}
	book := f.books.GetBook(locate)
	oldBBO := f.snapshotBBO(locate)

	_, ok := book.AddOrder(f.books.Pool(), m.OrderRef(), side(m.Side()), orderbook.Price(m.Price()), m.Shares(), locate, ts)
	if !ok {
		return
	}
	f.Counters.OrdersAdded++
	f.Counters.MessagesProcessed++
	f.emitBBOIfChanged(locate, oldBBO, ts)
}

// emitTrade sends a trade event to the subscriber, if one is attached,
// using the side the caller has already resolved.
func (f *Feed) emitTrade(locate uint16, price orderbook.Price, qty orderbook.Quantity, orderRef orderbook.OrderId, matchNumber uint64, s orderbook.Side, ts uint64) {
	if f.sub == nil {
		return
	}
	f.sub.OnTrade(TradeEvent{
		Locate: locate, Price: price, Quantity: qty, OrderRef: orderRef,
		MatchNumber: matchNumber, Side: s, Timestamp: ts, ApplySeq: f.stamper.Next(),
	})
}

func (f *Feed) OnOrderExecuted(locate uint16, ts uint64, m wire.OrderExecuted) {
	if !f.allowed(locate) {
		return
	}
	book := f.books.GetBook(locate)
	oldBBO := f.snapshotBBO(locate)

	orderRef := m.OrderRef()
	if o := book.GetOrder(orderRef); o != nil {
		f.emitTrade(locate, o.Price, m.ExecutedShares(), orderRef, m.MatchNumber(), o.Side, ts)
	}
	book.ExecuteOrder(f.books.Pool(), orderRef, m.ExecutedShares())

	f.Counters.OrdersExecuted++
	f.Counters.Trades++
	f.Counters.MessagesProcessed++
	f.emitBBOIfChanged(locate, oldBBO, ts)
}

func (f *Feed) OnOrderExecutedWithPrice(locate uint16, ts uint64, m wire.OrderExecutedWithPrice) {
	if !f.allowed(locate) {
		return
	}
	book := f.books.GetBook(locate)
	oldBBO := f.snapshotBBO(locate)

	orderRef := m.OrderRef()
	execPrice := orderbook.Price(m.ExecutionPrice())
	if o := book.GetOrder(orderRef); o != nil {
		f.emitTrade(locate, execPrice, m.ExecutedShares(), orderRef, m.MatchNumber(), o.Side, ts)
	}
	book.ExecuteOrder(f.books.Pool(), orderRef, m.ExecutedShares())

	f.Counters.OrdersExecuted++
	f.Counters.Trades++
	f.Counters.MessagesProcessed++
	f.emitBBOIfChanged(locate, oldBBO, ts)
}

func (f *Feed) OnOrderCancel(locate uint16, ts uint64, m wire.OrderCancel) {
	if !f.allowed(locate) {
		return
	}
	book := f.books.GetBook(locate)
	oldBBO := f.snapshotBBO(locate)

	book.CancelOrder(f.books.Pool(), m.OrderRef(), m.CancelledShares())

	f.Counters.OrdersCancelled++
	f.Counters.MessagesProcessed++
	f.emitBBOIfChanged(locate, oldBBO, ts)
}

func (f *Feed) OnOrderDelete(locate uint16, ts uint64, m wire.OrderDelete) {
	if !f.allowed(locate) {
		return
	}
	book := f.books.GetBook(locate)
	oldBBO := f.snapshotBBO(locate)

	book.DeleteOrder(f.books.Pool(), m.OrderRef())

	f.Counters.OrdersDeleted++
	f.Counters.MessagesProcessed++
	f.emitBBOIfChanged(locate, oldBBO, ts)
}

func (f *Feed) OnOrderReplace(locate uint16, ts uint64, m wire.OrderReplace) {
	if !f.allowed(locate) {
		return
	}
	book := f.books.GetBook(locate)
	oldBBO := f.snapshotBBO(locate)

	book.ReplaceOrder(f.books.Pool(), m.OriginalOrderRef(), m.NewOrderRef(), m.Shares(), orderbook.Price(m.Price()), ts)

	f.Counters.OrdersReplaced++
	f.Counters.MessagesProcessed++
	f.emitBBOIfChanged(locate, oldBBO, ts)
}

func (f *Feed) OnTrade(locate uint16, ts uint64, m wire.Trade) {
	if !f.allowed(locate) {
		return
	}
	f.emitTrade(locate, orderbook.Price(m.Price()), m.Shares(), m.OrderRef(), m.MatchNumber(), side(m.Side()), ts)
	f.Counters.Trades++
	f.Counters.MessagesProcessed++
}

func (f *Feed) OnCrossTrade(locate uint16, ts uint64, m wire.CrossTrade) {
	if !f.allowed(locate) {
		return
	}
	// A cross carries no resting order and no side; spec.md §4.10
	// defaults the side since the message itself doesn't distinguish one.
	f.emitTrade(locate, orderbook.Price(m.CrossPrice()), orderbook.Quantity(m.Shares()), 0, m.MatchNumber(), orderbook.Buy, ts)
	f.Counters.Trades++
	f.Counters.MessagesProcessed++
}

func (f *Feed) OnBrokenTrade(locate uint16, ts uint64, m wire.BrokenTrade) {
	f.Counters.MessagesProcessed++
}

func (f *Feed) OnNOII(locate uint16, ts uint64, m wire.NOII) {
	f.Counters.MessagesProcessed++
}

func (f *Feed) OnRPII(locate uint16, ts uint64, m wire.RPII) {
	f.Counters.MessagesProcessed++
}

func (f *Feed) OnParseError(reason string, data []byte, length int) {
	if f.sub != nil {
		f.sub.OnParseError(reason, data, length)
	}
}
