package subsetsum

type memoState int8

const (
	unknown memoState = iota
	unreachable
	reachable
)

// TopDown solves subset sum by memoized recursion. Memo rows hold only the
// sums visited so far and are kept across calls, so repeated queries reuse
// earlier work.
// A TopDown is not safe for concurrent use.
type TopDown struct {
	sequence []int
	total    int
	memo     []map[int]memoState
}

// NewTopDown creates a memoizing solver over sequence
func NewTopDown(sequence []int) (*TopDown, error) {
	seq, total, err := validate(sequence)
	if err != nil {
		return nil, err
	}

	memo := make([]map[int]memoState, len(seq)+1)
	for i := range memo {
		memo[i] = map[int]memoState{0: reachable}
	}
	return &TopDown{sequence: seq, total: total, memo: memo}, nil
}

// CheckSum implements Solver
func (t *TopDown) CheckSum(target int) ([]int, bool) {
	if target < 0 || target > t.total {
		return nil, false
	}

	n := len(t.sequence)
	if !t.possible(n, target) {
		return nil, false
	}

	return reconstruct(t.sequence, target, func(i, k int) bool {
		return t.memo[i][k] == reachable
	}), true
}

// possible reports whether sum k is reachable with the first i values.
// Both branches are always evaluated so that reconstruct finds every row it reads filled in.
func (t *TopDown) possible(i, k int) bool {
	if k < 0 {
		return false
	}
	if i == 0 {
		return k == 0
	}
	if state := t.memo[i][k]; state != unknown {
		return state == reachable
	}

	include := t.possible(i-1, k-t.sequence[i-1])
	exclude := t.possible(i-1, k)

	t.memo[i][k] = unreachable
	if include || exclude {
		t.memo[i][k] = reachable
	}
	return include || exclude
}
