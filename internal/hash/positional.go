package hash

// positionalA weighs every byte by a multiplier that starts at 29
// and grows by the byte's position before it is applied:
//  sum += b[i] * (29 + 0 + 1 + ... + i)
type positionalA struct{}

func (positionalA) Hash64(p []byte) uint64 {
	var sum uint64
	mult := uint64(29)
	for i, b := range p {
		mult += uint64(i)
		sum += uint64(b) * mult
	}
	return sum
}

// positionalB offsets every byte by its position
// and scales it by a fixed 31:
//  sum += 31 * (b[i] + i)
type positionalB struct{}

func (positionalB) Hash64(p []byte) uint64 {
	var sum uint64
	for i, b := range p {
		sum += 31 * (uint64(b) + uint64(i))
	}
	return sum
}
