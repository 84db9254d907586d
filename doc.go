// Package hashbench times bulk insertion, mixed hit/miss lookup and bulk
// deletion on hash maps over an increasing sweep of dataset sizes.
//
// Keys are random fixed-length alphanumeric strings and values random
// integers. Each phase of each size is timed once with the monotonic clock;
// there is no warm-up, repetition or statistics.
//
// The measured type is Go's built-in map. Other map libraries can be plugged
// in through the Table interface; Tables lists the ones that ship with the
// package.
//
//	b, err := hashbench.New(hashbench.WithSweep(50_000, 1_000_000))
//	if err != nil {
//		return err
//	}
//	_, err = b.Run(os.Stdout)
package hashbench
