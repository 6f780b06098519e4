package wire

// Every view below is a thin, non-owning window over a message-sized
// slice of the caller's buffer. No field is copied out until an accessor
// is actually called; the slice itself is only valid for as long as the
// caller's buffer is. Field offsets are relative to the start of the
// message (byte 0 is the type tag); prefixLen marks where the common
// header ends and variant-specific fields begin.

// StockLocate returns the 16-bit locate common to every message.
func StockLocate(buf []byte) uint16 { return readU16(buf, 1) }

// TrackingNumber returns the 16-bit tracking number common to every message.
func TrackingNumber(buf []byte) uint16 { return readU16(buf, 3) }

// Timestamp returns the 48-bit nanoseconds-since-midnight timestamp
// common to every message.
func Timestamp(buf []byte) uint64 { return readU48(buf, 5) }

// SystemEvent (type 'S'): event_code:char at prefix+0.
type SystemEvent struct{ buf []byte }

func (m SystemEvent) EventCode() byte { return m.buf[prefixLen] }

// StockDirectory (type 'R').
type StockDirectory struct{ buf []byte }

func (m StockDirectory) Stock() [8]byte {
	var s [8]byte
	copy(s[:], m.buf[prefixLen:prefixLen+8])
	return s
}
func (m StockDirectory) MarketCategory() byte    { return m.buf[prefixLen+8] }
func (m StockDirectory) FinancialStatus() byte   { return m.buf[prefixLen+9] }
func (m StockDirectory) RoundLotSize() uint32    { return readU32(m.buf, prefixLen+10) }
func (m StockDirectory) RoundLotsOnly() byte     { return m.buf[prefixLen+14] }
func (m StockDirectory) IssueClassification() byte { return m.buf[prefixLen+15] }
func (m StockDirectory) IssueSubtype() [2]byte {
	var s [2]byte
	copy(s[:], m.buf[prefixLen+16:prefixLen+18])
	return s
}
func (m StockDirectory) Authenticity() byte        { return m.buf[prefixLen+18] }
func (m StockDirectory) ShortSaleThreshold() byte  { return m.buf[prefixLen+19] }
func (m StockDirectory) IPOFlag() byte             { return m.buf[prefixLen+20] }
func (m StockDirectory) LULDRefPriceTier() byte    { return m.buf[prefixLen+21] }
func (m StockDirectory) ETPFlag() byte             { return m.buf[prefixLen+22] }
func (m StockDirectory) ETPLeverageFactor() uint32 { return readU32(m.buf, prefixLen+23) }
func (m StockDirectory) InverseIndicator() byte    { return m.buf[prefixLen+27] }

// StockTradingAction (type 'H'). The core tracks this type only as a
// counter; no field it carries feeds a book mutation.
type StockTradingAction struct{ buf []byte }

// RegSHORestriction (type 'Y'). Counter-only, see StockTradingAction.
type RegSHORestriction struct{ buf []byte }

// MarketParticipantPosition (type 'L'). Counter-only.
type MarketParticipantPosition struct{ buf []byte }

// MWCBDeclineLevel (type 'V'). Counter-only.
type MWCBDeclineLevel struct{ buf []byte }

// MWCBStatus (type 'W'). Counter-only.
type MWCBStatus struct{ buf []byte }

// IPOQuotingPeriod (type 'K'). Counter-only.
type IPOQuotingPeriod struct{ buf []byte }

// LULDAuctionCollar (type 'J'). Counter-only.
type LULDAuctionCollar struct{ buf []byte }

// OperationalHalt (type 'h'). Counter-only.
type OperationalHalt struct{ buf []byte }

// AddOrder (type 'A').
type AddOrder struct{ buf []byte }

func (m AddOrder) OrderRef() uint64 { return readU64(m.buf, prefixLen) }
func (m AddOrder) Side() byte       { return m.buf[prefixLen+8] }
func (m AddOrder) Shares() uint32   { return readU32(m.buf, prefixLen+9) }
func (m AddOrder) Stock() [8]byte {
	var s [8]byte
	copy(s[:], m.buf[prefixLen+13:prefixLen+21])
	return s
}
func (m AddOrder) Price() uint32 { return readU32(m.buf, prefixLen+21) }

// AddOrderMPID (type 'F'): AddOrder's fields plus a 4-byte attribution.
type AddOrderMPID struct{ buf []byte }

func (m AddOrderMPID) OrderRef() uint64 { return readU64(m.buf, prefixLen) }
func (m AddOrderMPID) Side() byte       { return m.buf[prefixLen+8] }
func (m AddOrderMPID) Shares() uint32   { return readU32(m.buf, prefixLen+9) }
func (m AddOrderMPID) Stock() [8]byte {
	var s [8]byte
	copy(s[:], m.buf[prefixLen+13:prefixLen+21])
	return s
}
func (m AddOrderMPID) Price() uint32 { return readU32(m.buf, prefixLen+21) }
func (m AddOrderMPID) Attribution() [4]byte {
	var s [4]byte
	copy(s[:], m.buf[prefixLen+25:prefixLen+29])
	return s
}

// OrderExecuted (type 'E').
type OrderExecuted struct{ buf []byte }

func (m OrderExecuted) OrderRef() uint64       { return readU64(m.buf, prefixLen) }
func (m OrderExecuted) ExecutedShares() uint32 { return readU32(m.buf, prefixLen+8) }
func (m OrderExecuted) MatchNumber() uint64    { return readU64(m.buf, prefixLen+12) }

// OrderExecutedWithPrice (type 'C'): OrderExecuted's fields, then printable
// flag and an explicit execution price (used instead of the resting
// order's price).
type OrderExecutedWithPrice struct{ buf []byte }

func (m OrderExecutedWithPrice) OrderRef() uint64       { return readU64(m.buf, prefixLen) }
func (m OrderExecutedWithPrice) ExecutedShares() uint32 { return readU32(m.buf, prefixLen+8) }
func (m OrderExecutedWithPrice) MatchNumber() uint64    { return readU64(m.buf, prefixLen+12) }
func (m OrderExecutedWithPrice) Printable() byte        { return m.buf[prefixLen+20] }
func (m OrderExecutedWithPrice) ExecutionPrice() uint32  { return readU32(m.buf, prefixLen+21) }

// OrderCancel (type 'X').
type OrderCancel struct{ buf []byte }

func (m OrderCancel) OrderRef() uint64        { return readU64(m.buf, prefixLen) }
func (m OrderCancel) CancelledShares() uint32 { return readU32(m.buf, prefixLen+8) }

// OrderDelete (type 'D').
type OrderDelete struct{ buf []byte }

func (m OrderDelete) OrderRef() uint64 { return readU64(m.buf, prefixLen) }

// OrderReplace (type 'U').
type OrderReplace struct{ buf []byte }

func (m OrderReplace) OriginalOrderRef() uint64 { return readU64(m.buf, prefixLen) }
func (m OrderReplace) NewOrderRef() uint64      { return readU64(m.buf, prefixLen+8) }
func (m OrderReplace) Shares() uint32           { return readU32(m.buf, prefixLen+16) }
func (m OrderReplace) Price() uint32            { return readU32(m.buf, prefixLen+20) }

// Trade (type 'P'): a non-cross trade that did not result from an
// execution of a displayed order already on the book.
type Trade struct{ buf []byte }

func (m Trade) OrderRef() uint64 { return readU64(m.buf, prefixLen) }
func (m Trade) Side() byte       { return m.buf[prefixLen+8] }
func (m Trade) Shares() uint32   { return readU32(m.buf, prefixLen+9) }
func (m Trade) Stock() [8]byte {
	var s [8]byte
	copy(s[:], m.buf[prefixLen+13:prefixLen+21])
	return s
}
func (m Trade) Price() uint32       { return readU32(m.buf, prefixLen+21) }
func (m Trade) MatchNumber() uint64 { return readU64(m.buf, prefixLen+25) }

// CrossTrade (type 'Q'): the result of an auction cross; carries no
// resting order and no side.
type CrossTrade struct{ buf []byte }

func (m CrossTrade) Shares() uint64 { return readU64(m.buf, prefixLen) }
func (m CrossTrade) Stock() [8]byte {
	var s [8]byte
	copy(s[:], m.buf[prefixLen+8:prefixLen+16])
	return s
}
func (m CrossTrade) CrossPrice() uint32  { return readU32(m.buf, prefixLen+16) }
func (m CrossTrade) MatchNumber() uint64 { return readU64(m.buf, prefixLen+20) }
func (m CrossTrade) CrossType() byte     { return m.buf[prefixLen+28] }

// BrokenTrade (type 'B').
type BrokenTrade struct{ buf []byte }

func (m BrokenTrade) MatchNumber() uint64 { return readU64(m.buf, prefixLen) }

// NOII (type 'I'): net order imbalance indicator.
type NOII struct{ buf []byte }

func (m NOII) PairedShares() uint64    { return readU64(m.buf, prefixLen) }
func (m NOII) ImbalanceShares() uint64 { return readU64(m.buf, prefixLen+8) }
func (m NOII) ImbalanceDirection() byte { return m.buf[prefixLen+16] }
func (m NOII) Stock() [8]byte {
	var s [8]byte
	copy(s[:], m.buf[prefixLen+17:prefixLen+25])
	return s
}
func (m NOII) FarPrice() uint32    { return readU32(m.buf, prefixLen+25) }
func (m NOII) NearPrice() uint32   { return readU32(m.buf, prefixLen+29) }
func (m NOII) RefPrice() uint32    { return readU32(m.buf, prefixLen+33) }
func (m NOII) CrossType() byte     { return m.buf[prefixLen+37] }
func (m NOII) PriceVariationIndicator() byte { return m.buf[prefixLen+38] }

// RPII (type 'N'): retail price improvement indicator.
type RPII struct{ buf []byte }

func (m RPII) Stock() [8]byte {
	var s [8]byte
	copy(s[:], m.buf[prefixLen:prefixLen+8])
	return s
}
func (m RPII) InterestFlag() byte { return m.buf[prefixLen+8] }
