package avltree

import (
	"fmt"

	errors2 "github.com/amp-labs/amp-collections/errors"
	"github.com/amp-labs/amp-collections/optional"
	"github.com/amp-labs/amp-collections/sortable"
)

// CheckInvariants walks the whole tree and reports every node that breaks
// ordering, balance or height bookkeeping, plus a mismatched Count. All
// reported errors wrap ErrInvariantViolated. It is O(n) and meant for tests.
func (t *Tree[T]) CheckInvariants() error {
	var errs errors2.Collection

	seen := checkSubtree(t.root, optional.None[T](), optional.None[T](), &errs)
	if seen != t.count {
		errs.Add(fmt.Errorf("%w: count is %d but tree holds %d nodes",
			errors2.ErrInvariantViolated, t.count, seen))
	}

	return errs.GetError()
}

// checkSubtree validates n against the exclusive bounds inherited from its
// ancestors and returns the number of nodes in the subtree.
func checkSubtree[T sortable.Sortable[T]](
	n *node[T], lower, upper optional.Value[T], errs *errors2.Collection,
) int {
	if n == nil {
		return 0
	}

	if lo, ok := lower.Get(); ok && !lo.LessThan(n.value) {
		errs.Add(fmt.Errorf("%w: %v is not greater than ancestor %v", errors2.ErrInvariantViolated, n.value, lo))
	}

	if hi, ok := upper.Get(); ok && !n.value.LessThan(hi) {
		errs.Add(fmt.Errorf("%w: %v is not less than ancestor %v", errors2.ErrInvariantViolated, n.value, hi))
	}

	lh, rh := heightOf(n.left), heightOf(n.right)

	if n.height != 1+max(lh, rh) {
		errs.Add(fmt.Errorf("%w: node %v stores height %d, expected %d",
			errors2.ErrInvariantViolated, n.value, n.height, 1+max(lh, rh)))
	}

	if n.balance != rh-lh {
		errs.Add(fmt.Errorf("%w: node %v stores balance %d, expected %d",
			errors2.ErrInvariantViolated, n.value, n.balance, rh-lh))
	}

	if rh-lh < -1 || rh-lh > 1 {
		errs.Add(fmt.Errorf("%w: node %v is unbalanced", errors2.ErrInvariantViolated, n.value))
	}

	return 1 +
		checkSubtree(n.left, lower, optional.Some(n.value), errs) +
		checkSubtree(n.right, optional.Some(n.value), upper, errs)
}
