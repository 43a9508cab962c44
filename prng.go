package treap

// Constants of the 48-bit linear-congruential generator (as used by
// java.util.Random and friends).
const (
	prngMult    = 0x5DEECE66D
	prngAdd     = 0xB
	prngModMask = (uint64(1) << 48) - 1
)

// prng produces node priorities. It is not suitable for anything but
// decorrelating tree shape from insertion order.
type prng struct {
	state uint64
}

func (p *prng) next() uint64 {
	p.state = (prngMult*p.state + prngAdd) & prngModMask
	return p.state
}
