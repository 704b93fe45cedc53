package channel

// Low energy advertising channels and their physical frequencies.
const (
	LEAdvertising37 = 2402e6
	LEAdvertising38 = 2426e6
	LEAdvertising39 = 2480e6
)

// LEChannel maps an absolute frequency to a low energy channel index.
// Only even-MHz frequencies between 2402 and 2480 MHz carry LE channels.
func LEChannel(freq float64) (int, bool) {
	offset := freq - BaseFrequency
	phys := int(offset / 2e6)
	if offset < 0 || float64(phys)*2e6 != offset || phys > 39 {
		return -1, false
	}

	switch {
	case phys == 0:
		return 37, true
	case phys < 12:
		return phys - 1, true
	case phys == 12:
		return 38, true
	case phys < 39:
		return phys - 2, true
	default:
		return 39, true
	}
}

// LEFreq is the inverse of LEChannel.
func LEFreq(lech int) (float64, bool) {
	var phys int
	switch {
	case lech < 0 || lech > 39:
		return 0, false
	case lech == 37:
		phys = 0
	case lech == 38:
		phys = 12
	case lech == 39:
		phys = 39
	case lech < 11:
		phys = lech + 1
	default:
		phys = lech + 2
	}
	return BaseFrequency + float64(phys)*2e6, true
}
