package tetris

// lcg is the piece randomizer: a plain linear-congruential generator
// reduced mod 7. The modulo bias is part of the contract; a given seed
// must always produce the same piece sequence.
type lcg struct {
	seed int64
}

func (r *lcg) next() int {
	r.seed = (r.seed*1103515245 + 12345) & 0x7FFFFFFF
	return int(r.seed % ShapeCount)
}
