package dataset

import "github.com/pkg/errors"

// Shuffler produces random permutations. *math/rand/v2.Rand satisfies it.
type Shuffler interface {
	Perm(n int) []int
}

// Split partitions the indices 0..n-1 at random into a training and a test set.
//
// The training set gets floor(n*percent/100) indices. Both sets are in random
// order, disjoint, and together cover every index. A fixed generator state
// gives a fixed split.
//
// Returns ErrEmptySplit if either side would be empty.
func Split(n, percent int, rng Shuffler) (train, test []int, err error) {
	if percent < 1 || percent > 99 {
		return nil, nil, errors.Wrapf(ErrEmptySplit, "train percentage %d outside [1, 99]", percent)
	}
	k := n * percent / 100
	if k == 0 || k == n {
		return nil, nil, errors.Wrapf(ErrEmptySplit, "%d%% of %d samples gives %d train and %d test", percent, n, k, n-k)
	}

	perm := rng.Perm(n)
	return perm[:k], perm[k:], nil
}
