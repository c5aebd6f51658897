package n64gfx

// Console identifies the hardware variant the program runs on, as reported
// by the boot code. Peripherals differ between variants: the iQue Player
// has no cartridge port and needs a different VI pixel advance.
type Console uint32

const (
	// N64 is a retail or development Nintendo 64.
	N64 Console = iota

	// IQue is the iQue Player.
	IQue
)

func (c Console) String() string {
	switch c {
	case N64:
		return "n64"
	case IQue:
		return "ique"
	default:
		return "unknown"
	}
}
