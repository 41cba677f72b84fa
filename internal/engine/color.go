package engine

// colorRef packs an RGB color in [0, 1] as a Win32 COLORREF (0x00BBGGRR).
func colorRef(c [3]float32) uint32 {
	channel := func(v float32) uint32 {
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		return uint32(v*255 + 0.5)
	}
	return channel(c[0]) | channel(c[1])<<8 | channel(c[2])<<16
}
