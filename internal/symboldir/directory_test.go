package symboldir

import "testing"

func sym(s string) Symbol {
	var out Symbol
	copy(out[:], s)
	return out
}

func TestAddAndLookup(t *testing.T) {
	d := New()
	d.AddSymbol(5, sym("AAPL    "), 'Q', 'N')

	info, ok := d.GetInfo(5)
	if !ok {
		t.Fatal("GetInfo(5) not found")
	}
	if info.Symbol != sym("AAPL    ") || info.MarketCategory != 'Q' {
		t.Errorf("info = %+v, unexpected", info)
	}

	locate, ok := d.GetLocate(sym("AAPL    "))
	if !ok || locate != 5 {
		t.Errorf("GetLocate = %d,%v want 5,true", locate, ok)
	}
}

func TestGetInfoUnknownLocate(t *testing.T) {
	d := New()
	if _, ok := d.GetInfo(100); ok {
		t.Error("expected ok=false for never-seen locate")
	}
}

func TestSymbolCount(t *testing.T) {
	d := New()
	d.AddSymbol(1, sym("AAA     "), 'Q', 'N')
	d.AddSymbol(9000, sym("BBB     "), 'Q', 'N')
	if d.SymbolCount() != 2 {
		t.Errorf("SymbolCount = %d, want 2", d.SymbolCount())
	}
}

func TestReassignSymbol(t *testing.T) {
	d := New()
	d.AddSymbol(1, sym("AAA     "), 'Q', 'N')
	d.AddSymbol(1, sym("ZZZ     "), 'G', 'D')

	info, _ := d.GetInfo(1)
	if info.Symbol != sym("ZZZ     ") || info.MarketCategory != 'G' {
		t.Errorf("reassignment not reflected: %+v", info)
	}
	if locate, ok := d.GetLocate(sym("ZZZ     ")); !ok || locate != 1 {
		t.Error("new symbol should resolve to locate 1")
	}
}
