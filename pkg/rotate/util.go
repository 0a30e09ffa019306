package rotate

import "math/rand"

// Randomise shuffles images in place.
func Randomise(images []string) {
	rand.Shuffle(len(images), func(i, j int) { images[i], images[j] = images[j], images[i] })
}
