package utils

import "time"

// MockStream emits each of the provided fragments on the returned channel
// with the given delay between them, then closes it. It stands in for a model
// token stream in tests.
func MockStream(delay time.Duration, fragments ...string) chan string {
	output := make(chan string)

	go func() {
		defer close(output)

		for _, fragment := range fragments {
			time.Sleep(delay)
			output <- fragment
		}
	}()

	return output
}
