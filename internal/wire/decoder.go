package wire

// Subscriber receives one callback per decoded ITCH message, dispatched
// synchronously from within ParseMessage/Parse. Every method receives the
// common header fields (stock_locate, timestamp) already extracted,
// followed by the message-specific view. Implementations must not retain
// the view or any byte slice it was built from past the call — the
// decoder reuses the caller's buffer on the next call.
type Subscriber interface {
	OnSystemEvent(locate uint16, ts uint64, m SystemEvent)
	OnStockDirectory(locate uint16, ts uint64, m StockDirectory)
	OnStockTradingAction(locate uint16, ts uint64, m StockTradingAction)
	OnRegSHORestriction(locate uint16, ts uint64, m RegSHORestriction)
	OnMarketParticipantPosition(locate uint16, ts uint64, m MarketParticipantPosition)
	OnMWCBDeclineLevel(locate uint16, ts uint64, m MWCBDeclineLevel)
	OnMWCBStatus(locate uint16, ts uint64, m MWCBStatus)
	OnIPOQuotingPeriod(locate uint16, ts uint64, m IPOQuotingPeriod)
	OnLULDAuctionCollar(locate uint16, ts uint64, m LULDAuctionCollar)
	OnOperationalHalt(locate uint16, ts uint64, m OperationalHalt)
	OnAddOrder(locate uint16, ts uint64, m AddOrder)
	OnAddOrderMPID(locate uint16, ts uint64, m AddOrderMPID)
	OnOrderExecuted(locate uint16, ts uint64, m OrderExecuted)
	OnOrderExecutedWithPrice(locate uint16, ts uint64, m OrderExecutedWithPrice)
	OnOrderCancel(locate uint16, ts uint64, m OrderCancel)
	OnOrderDelete(locate uint16, ts uint64, m OrderDelete)
	OnOrderReplace(locate uint16, ts uint64, m OrderReplace)
	OnTrade(locate uint16, ts uint64, m Trade)
	OnCrossTrade(locate uint16, ts uint64, m CrossTrade)
	OnBrokenTrade(locate uint16, ts uint64, m BrokenTrade)
	OnNOII(locate uint16, ts uint64, m NOII)
	OnRPII(locate uint16, ts uint64, m RPII)

	// OnParseError fires for an unrecognized type tag and for MoldUDP64
	// framing errors. For a bad tag, data is the remaining unconsumed
	// buffer starting at that tag and length is however much of it the
	// caller had available.
	OnParseError(reason string, data []byte, length int)
}

// Stats accumulates decoder-wide counters. All fields are plain; the
// decoder is used from a single goroutine, so nothing here needs to be
// atomic.
type Stats struct {
	MessagesParsed uint64
	BytesProcessed uint64
	ParseErrors    uint64
	PerType        [256]uint64
}

// Decoder turns a byte stream into Subscriber callbacks. It holds no
// buffer of its own; every Parse* call operates directly on the slice
// the caller passes in.
type Decoder struct {
	sub   Subscriber
	Stats Stats
}

// NewDecoder returns a Decoder that dispatches every decoded message to sub.
func NewDecoder(sub Subscriber) *Decoder {
	return &Decoder{sub: sub}
}

// Reset zeroes all accumulated stats.
func (d *Decoder) Reset() {
	d.Stats = Stats{}
}

// ParseMessage decodes a single message at the start of buf and returns
// the number of bytes it consumed. It returns 0 if buf is empty or
// shorter than the message the leading tag declares (a short read: the
// caller should wait for more data rather than treat this as an error).
// An unrecognized type tag is reported via OnParseError and treated as
// consuming a single byte, so a caller scanning a corrupt or misaligned
// stream still makes forward progress.
func (d *Decoder) ParseMessage(buf []byte) int {
	if len(buf) == 0 {
		return 0
	}
	tag := buf[0]
	size := MessageSize(tag)
	if size == 0 {
		d.Stats.ParseErrors++
		d.sub.OnParseError("unknown message type", buf, len(buf))
		return 1
	}
	if len(buf) < size {
		return 0
	}

	msg := buf[:size]
	locate := StockLocate(msg)
	ts := Timestamp(msg)

	switch tag {
	case TypeSystemEvent:
		d.sub.OnSystemEvent(locate, ts, SystemEvent{msg})
	case TypeStockDirectory:
		d.sub.OnStockDirectory(locate, ts, StockDirectory{msg})
	case TypeStockTradingAction:
		d.sub.OnStockTradingAction(locate, ts, StockTradingAction{msg})
	case TypeRegSHORestriction:
		d.sub.OnRegSHORestriction(locate, ts, RegSHORestriction{msg})
	case TypeMarketParticipantPos:
		d.sub.OnMarketParticipantPosition(locate, ts, MarketParticipantPosition{msg})
	case TypeMWCBDeclineLevel:
		d.sub.OnMWCBDeclineLevel(locate, ts, MWCBDeclineLevel{msg})
	case TypeMWCBStatus:
		d.sub.OnMWCBStatus(locate, ts, MWCBStatus{msg})
	case TypeIPOQuotingPeriod:
		d.sub.OnIPOQuotingPeriod(locate, ts, IPOQuotingPeriod{msg})
	case TypeLULDAuctionCollar:
		d.sub.OnLULDAuctionCollar(locate, ts, LULDAuctionCollar{msg})
	case TypeOperationalHalt:
		d.sub.OnOperationalHalt(locate, ts, OperationalHalt{msg})
	case TypeAddOrder:
		d.sub.OnAddOrder(locate, ts, AddOrder{msg})
	case TypeAddOrderMPID:
		d.sub.OnAddOrderMPID(locate, ts, AddOrderMPID{msg})
	case TypeOrderExecuted:
		d.sub.OnOrderExecuted(locate, ts, OrderExecuted{msg})
	case TypeOrderExecutedWithPrice:
		d.sub.OnOrderExecutedWithPrice(locate, ts, OrderExecutedWithPrice{msg})
	case TypeOrderCancel:
		d.sub.OnOrderCancel(locate, ts, OrderCancel{msg})
	case TypeOrderDelete:
		d.sub.OnOrderDelete(locate, ts, OrderDelete{msg})
	case TypeOrderReplace:
		d.sub.OnOrderReplace(locate, ts, OrderReplace{msg})
	case TypeTrade:
		d.sub.OnTrade(locate, ts, Trade{msg})
	case TypeCrossTrade:
		d.sub.OnCrossTrade(locate, ts, CrossTrade{msg})
	case TypeBrokenTrade:
		d.sub.OnBrokenTrade(locate, ts, BrokenTrade{msg})
	case TypeNOII:
		d.sub.OnNOII(locate, ts, NOII{msg})
	case TypeRPII:
		d.sub.OnRPII(locate, ts, RPII{msg})
	}

	d.Stats.MessagesParsed++
	d.Stats.BytesProcessed += uint64(size)
	d.Stats.PerType[tag]++
	return size
}

// Parse decodes every complete message in buf in order, stopping at the
// first short read or once buf is exhausted. It returns the number of
// bytes consumed, which is always <= len(buf); any trailing partial
// message is left for the caller to prepend to its next read.
func (d *Decoder) Parse(buf []byte) int {
	consumed := 0
	for consumed < len(buf) {
		n := d.ParseMessage(buf[consumed:])
		if n == 0 {
			break
		}
		consumed += n
	}
	return consumed
}

// moldHeaderLen is the fixed size of a MoldUDP64 packet header: a
// 10-byte session id, an 8-byte sequence number, and a 2-byte message count.
const moldHeaderLen = 20

// ParseMoldUDP64 decodes one MoldUDP64 packet: a fixed header followed by
// message_count repetitions of a 2-byte big-endian length prefix and that
// many bytes of ITCH payload, each payload parsed with ParseMessage. It
// returns the number of complete ITCH messages dispatched. A payload
// whose declared length doesn't match what ParseMessage actually
// consumes is reported via OnParseError and parsing of the packet stops,
// since the stream is no longer self-describing past that point.
func (d *Decoder) ParseMoldUDP64(buf []byte) int {
	if len(buf) < moldHeaderLen {
		return 0
	}
	count := int(readU16(buf, 18))
	offset := moldHeaderLen
	dispatched := 0

	for i := 0; i < count; i++ {
		if len(buf)-offset < 2 {
			d.Stats.ParseErrors++
			d.sub.OnParseError("truncated MoldUDP64 length prefix", buf[offset:], len(buf)-offset)
			break
		}
		plen := int(readU16(buf, offset))
		offset += 2
		if len(buf)-offset < plen {
			d.Stats.ParseErrors++
			d.sub.OnParseError("truncated MoldUDP64 payload", buf[offset:], len(buf)-offset)
			break
		}
		payload := buf[offset : offset+plen]
		n := d.ParseMessage(payload)
		if n != plen {
			d.Stats.ParseErrors++
			d.sub.OnParseError("MoldUDP64 payload length mismatch", payload, plen)
			break
		}
		offset += plen
		dispatched++
	}
	return dispatched
}
