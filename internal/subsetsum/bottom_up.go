package subsetsum

// BottomUp solves subset sum by tabulation. Each call builds a fresh
// (n+1) x (target+1) table.
type BottomUp struct {
	sequence []int
	total    int
}

// NewBottomUp creates a tabulating solver over sequence
func NewBottomUp(sequence []int) (*BottomUp, error) {
	seq, total, err := validate(sequence)
	if err != nil {
		return nil, err
	}
	return &BottomUp{sequence: seq, total: total}, nil
}

// CheckSum implements Solver
func (b *BottomUp) CheckSum(target int) ([]int, bool) {
	if target < 0 || target > b.total {
		return nil, false
	}

	table := b.fill(target)
	n := len(b.sequence)
	if !table[n][target] {
		return nil, false
	}

	return reconstruct(b.sequence, target, func(i, k int) bool {
		return table[i][k]
	}), true
}

// fill computes table[i][j]: whether sum j is reachable with the first i values
func (b *BottomUp) fill(target int) [][]bool {
	n := len(b.sequence)
	table := make([][]bool, n+1)
	for i := range table {
		table[i] = make([]bool, target+1)
		table[i][0] = true
	}

	for i := 1; i <= n; i++ {
		v := b.sequence[i-1]
		for j := 1; j <= target; j++ {
			if v <= j {
				table[i][j] = table[i-1][j] || table[i-1][j-v]
			} else {
				table[i][j] = table[i-1][j]
			}
		}
	}
	return table
}
