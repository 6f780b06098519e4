package wire

// Message type tags, one character each, forming the closed 22-variant
// ITCH 5.0 catalogue this decoder understands.
const (
	TypeSystemEvent             = 'S'
	TypeStockDirectory          = 'R'
	TypeStockTradingAction      = 'H'
	TypeRegSHORestriction       = 'Y'
	TypeMarketParticipantPos    = 'L'
	TypeMWCBDeclineLevel        = 'V'
	TypeMWCBStatus              = 'W'
	TypeIPOQuotingPeriod        = 'K'
	TypeLULDAuctionCollar       = 'J'
	TypeOperationalHalt         = 'h'
	TypeAddOrder                = 'A'
	TypeAddOrderMPID            = 'F'
	TypeOrderExecuted           = 'E'
	TypeOrderExecutedWithPrice  = 'C'
	TypeOrderCancel             = 'X'
	TypeOrderDelete             = 'D'
	TypeOrderReplace            = 'U'
	TypeTrade                   = 'P'
	TypeCrossTrade              = 'Q'
	TypeBrokenTrade             = 'B'
	TypeNOII                    = 'I'
	TypeRPII                    = 'N'
)

// sizes maps every known type tag to its fixed on-wire size. A zero entry
// means the byte is not a recognized ITCH 5.0 message type.
var sizes = [256]uint8{
	TypeSystemEvent:            12,
	TypeStockDirectory:         39,
	TypeStockTradingAction:     25,
	TypeRegSHORestriction:      20,
	TypeMarketParticipantPos:   26,
	TypeMWCBDeclineLevel:       35,
	TypeMWCBStatus:             12,
	TypeIPOQuotingPeriod:       28,
	TypeLULDAuctionCollar:      35,
	TypeOperationalHalt:        21,
	TypeAddOrder:               36,
	TypeAddOrderMPID:           40,
	TypeOrderExecuted:          31,
	TypeOrderExecutedWithPrice: 36,
	TypeOrderCancel:            23,
	TypeOrderDelete:            19,
	TypeOrderReplace:           35,
	TypeTrade:                  44,
	TypeCrossTrade:             40,
	TypeBrokenTrade:            19,
	TypeNOII:                   50,
	TypeRPII:                   20,
}

// MessageSize returns the fixed on-wire size of the message type tagged by
// b, or 0 if b is not a recognized ITCH 5.0 type.
func MessageSize(b byte) int {
	return int(sizes[b])
}

// prefixLen is the size of the common header every message shares:
// type tag (1) + stock_locate (2) + tracking_number (2) + timestamp (6).
const prefixLen = 11
