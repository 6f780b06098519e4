package orderbook

import "testing"

func newTestBook() (*OrderBook, *OrderPool) {
	return NewOrderBook(1), newOrderPool(64)
}

// Scenario 1 from spec.md §8: single add, BBO reflects it.
func TestScenarioSingleAdd(t *testing.T) {
	book, p := newTestBook()
	_, ok := book.AddOrder(p, 1001, Buy, 1500000, 100, 1, 0)
	if !ok {
		t.Fatal("AddOrder failed")
	}
	if book.Count != 1 {
		t.Errorf("Count = %d, want 1", book.Count)
	}
	bbo := book.BBO()
	if bbo.BidPrice != 1500000 || bbo.BidQty != 100 {
		t.Errorf("bbo = %+v, want bid=1500000/100", bbo)
	}
	if bbo.HasAsk() {
		t.Error("HasAsk() = true, want false")
	}
}

// Scenario 2: partial execution reduces quantity and BBO.
func TestScenarioPartialExecution(t *testing.T) {
	book, p := newTestBook()
	book.AddOrder(p, 1001, Buy, 1500000, 100, 1, 0)

	exec := book.ExecuteOrder(p, 1001, 30)
	if exec != 30 {
		t.Fatalf("ExecuteOrder returned %d, want 30", exec)
	}
	o := book.GetOrder(1001)
	if o == nil || o.Quantity != 70 {
		t.Fatalf("order(1001).Quantity = %v, want 70", o)
	}
	if book.BBO().BidQty != 70 {
		t.Errorf("bbo.BidQty = %d, want 70", book.BBO().BidQty)
	}
}

// Scenario 3: full delete clears BBO.
func TestScenarioFullDelete(t *testing.T) {
	book, p := newTestBook()
	book.AddOrder(p, 1001, Buy, 1500000, 100, 1, 0)

	if !book.DeleteOrder(p, 1001) {
		t.Fatal("DeleteOrder failed")
	}
	if book.Count != 0 {
		t.Errorf("Count = %d, want 0", book.Count)
	}
	if book.BBO().HasBid() {
		t.Error("HasBid() = true, want false")
	}
	if book.BidLevelCount() != 0 {
		t.Errorf("BidLevelCount = %d, want 0", book.BidLevelCount())
	}
}

// Scenario 4: replace preserves side, updates price.
func TestScenarioReplace(t *testing.T) {
	book, p := newTestBook()
	book.AddOrder(p, 1001, Buy, 1500000, 500, 1, 0)

	newOrder, ok := book.ReplaceOrder(p, 1001, 1002, 750, 1505000, 0)
	if !ok {
		t.Fatal("ReplaceOrder failed")
	}
	if book.GetOrder(1001) != nil {
		t.Error("old order should be gone")
	}
	if newOrder.Price != 1505000 || newOrder.Quantity != 750 || newOrder.Side != Buy {
		t.Errorf("new order = %+v, want price=1505000 qty=750 side=Buy", newOrder)
	}
	bbo := book.BBO()
	if bbo.BidPrice != 1505000 || bbo.BidQty != 750 {
		t.Errorf("bbo = %+v, want bid=1505000/750", bbo)
	}
}

// Scenario 5: multi-level depth with FIFO at price.
func TestScenarioDepthAndFIFO(t *testing.T) {
	book, p := newTestBook()
	type add struct {
		id    OrderId
		price Price
	}
	adds := []add{
		{1, 1500000},
		{2, 1499000},
		{3, 1501000},
		{4, 1498000},
		{5, 1499000},
	}
	for _, a := range adds {
		book.AddOrder(p, a.id, Buy, a.price, 100, 1, 0)
	}

	depth := book.BidDepth(3)
	want := []DepthEntry{
		{Price: 1501000, TotalQty: 100, OrderCount: 1},
		{Price: 1500000, TotalQty: 100, OrderCount: 1},
		{Price: 1499000, TotalQty: 200, OrderCount: 2},
	}
	if len(depth) != len(want) {
		t.Fatalf("depth = %+v, want %+v", depth, want)
	}
	for i := range want {
		if depth[i] != want[i] {
			t.Errorf("depth[%d] = %+v, want %+v", i, depth[i], want[i])
		}
	}

	level := book.Bids.FindLevel(1499000)
	if level.Head().ID != 2 {
		t.Errorf("head of 1499000 level = %d, want 2 (arrived before 5)", level.Head().ID)
	}
}

func TestDuplicateAddIsNoOp(t *testing.T) {
	book, p := newTestBook()
	book.AddOrder(p, 1, Buy, 100, 10, 1, 0)
	before := book.Count
	_, ok := book.AddOrder(p, 1, Sell, 999, 5, 1, 0)
	if ok {
		t.Error("duplicate AddOrder should report failure")
	}
	if book.Count != before {
		t.Errorf("Count changed on duplicate add: %d -> %d", before, book.Count)
	}
	o := book.GetOrder(1)
	if o.Side != Buy || o.Price != 100 {
		t.Error("duplicate add must not mutate the existing order")
	}
}

func TestExecuteUnknownOrderIsNoOp(t *testing.T) {
	book, p := newTestBook()
	if exec := book.ExecuteOrder(p, 999, 10); exec != 0 {
		t.Errorf("ExecuteOrder on unknown id = %d, want 0", exec)
	}
}

func TestBBOSentinelWhenNoAsks(t *testing.T) {
	book, _ := newTestBook()
	bbo := book.BBO()
	if bbo.AskPrice != NoAskPrice {
		t.Errorf("AskPrice = %d, want NoAskPrice sentinel", bbo.AskPrice)
	}
	if bbo.HasAsk() {
		t.Error("HasAsk() should be false with sentinel ask price")
	}
	if bbo.Spread() != 0 || bbo.Midpoint() != 0 {
		t.Error("Spread/Midpoint should be 0 with no two-sided market")
	}
}

func TestClearReleasesOrdersAndResetsBBO(t *testing.T) {
	book, p := newTestBook()
	book.AddOrder(p, 1, Buy, 100, 10, 1, 0)
	book.AddOrder(p, 2, Sell, 110, 10, 1, 0)

	book.Clear(p)

	if book.Count != 0 {
		t.Errorf("Count after Clear = %d, want 0", book.Count)
	}
	if book.GetOrder(1) != nil || book.GetOrder(2) != nil {
		t.Error("orders should be unreachable after Clear")
	}
	bbo := book.BBO()
	if bbo.HasBid() || bbo.HasAsk() {
		t.Error("BBO should be empty after Clear")
	}
}
