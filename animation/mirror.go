package animation

// Mirror reverses frame end to end in place. Applying it twice
// restores the original order.
func Mirror(frame []Led) {
	for i, j := 0, len(frame)-1; i < j; i, j = i+1, j-1 {
		frame[i], frame[j] = frame[j], frame[i]
	}
}
