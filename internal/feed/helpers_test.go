package feed

import "encoding/binary"

// The helpers below build raw ITCH 5.0 message bytes so tests can drive
// Feed through a real wire.Decoder instead of hand-constructing wire
// view structs (whose fields are intentionally unexported outside the
// wire package).

func putPrefix(buf []byte, tag byte, locate uint16, ts uint64) {
	buf[0] = tag
	binary.BigEndian.PutUint16(buf[1:3], locate)
	binary.BigEndian.PutUint16(buf[3:5], 0)
	var tsBytes [8]byte
	binary.BigEndian.PutUint64(tsBytes[:], ts)
	copy(buf[5:11], tsBytes[2:8])
}

func stockBytes(s string) [8]byte {
	var out [8]byte
	copy(out[:], s)
	for i := len(s); i < 8; i++ {
		out[i] = ' '
	}
	return out
}

func fakeAddOrder(locate uint16, ts uint64, orderRef uint64, sideByte byte, shares uint32, price uint32) []byte {
	buf := make([]byte, 36)
	putPrefix(buf, 'A', locate, ts)
	binary.BigEndian.PutUint64(buf[11:19], orderRef)
	buf[19] = sideByte
	binary.BigEndian.PutUint32(buf[20:24], shares)
	sb := stockBytes("TEST")
	copy(buf[24:32], sb[:])
	binary.BigEndian.PutUint32(buf[32:36], price)
	return buf
}

func fakeOrderExecuted(locate uint16, ts uint64, orderRef uint64, executedShares uint32, matchNumber uint64) []byte {
	buf := make([]byte, 31)
	putPrefix(buf, 'E', locate, ts)
	binary.BigEndian.PutUint64(buf[11:19], orderRef)
	binary.BigEndian.PutUint32(buf[19:23], executedShares)
	binary.BigEndian.PutUint64(buf[23:31], matchNumber)
	return buf
}

func fakeStockDirectory(locate uint16, symbol string, marketCategory, financialStatus byte) []byte {
	buf := make([]byte, 39)
	putPrefix(buf, 'R', locate, 0)
	sb := stockBytes(symbol)
	copy(buf[11:19], sb[:])
	buf[19] = marketCategory
	buf[20] = financialStatus
	return buf
}
