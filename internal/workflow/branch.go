package workflow

// branchState is the only state the safety policy distinguishes
type branchState int

const (
	offMain branchState = iota
	onMain
)

func classifyBranch(branch, mainBranch string) branchState {
	if branch == mainBranch {
		return onMain
	}
	return offMain
}
