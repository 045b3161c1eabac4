package chipsfx

type numeric interface {
	uint8 | int | int32
}

func clampMin[T numeric](v, min T) T {
	if v < min {
		return min
	}
	return v
}

func clamp[T numeric](v, min, max T) T {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
