package booking

type Reason string

const (
	ReasonAvailable     Reason = "Available"
	ReasonFullyBooked   Reason = "FullyBooked"
	ReasonBlockedByPeer Reason = "BlockedByPeer"
	ReasonPastTime      Reason = "PastTime"
	ReasonBeforeOpening Reason = "BeforeOpening"
	ReasonAfterClosing  Reason = "AfterClosing"
)

// user-facing messages
var reasonMessages = map[Reason]string{
	ReasonAvailable:     "Slot tersedia",
	ReasonFullyBooked:   "Kapasitas sudah penuh untuk waktu tersebut",
	ReasonBlockedByPeer: "Ruangan sedang dipakai untuk pemesanan lain pada waktu tersebut",
	ReasonPastTime:      "Waktu booking sudah lewat",
	ReasonBeforeOpening: "Booking sebelum jam operasional",
	ReasonAfterClosing:  "Booking melebihi jam operasional",
}

const MessageLostRace = "Slot baru saja dipesan oleh pelanggan lain"

func (r Reason) Message() string {
	if m, ok := reasonMessages[r]; ok {
		return m
	}
	return string(r)
}

type Verdict struct {
	Available bool
	Remaining int
	Reason    Reason
}

func (v Verdict) Message() string {
	return v.Reason.Message()
}

func rejected(reason Reason) Verdict {
	return Verdict{Available: false, Remaining: 0, Reason: reason}
}
