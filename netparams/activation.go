// Copyright (c) 2026 The bitcoin-abc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netparams

// IsStakingRewardsActivated reports whether staking rewards are active
// for a block whose parent has the given median time past. Staking
// rewards require avalanche to be running, a network where the feature
// is eligible, and the Cowperthwaite activation time to have been
// reached.
func IsStakingRewardsActivated(p *Params, avalancheEnabled bool,
	medianTimePast int64) bool {

	if !avalancheEnabled {
		return false
	}
	if !p.EnableStakingRewards {
		return false
	}
	return medianTimePast >= p.CowperthwaiteActivationTime
}

// MedianTimePast returns the median of the given block timestamps, the
// value consensus rules compare activation times against. The slice is
// expected to hold the timestamps of the most recent blocks, newest
// last; it is not modified.
func MedianTimePast(timestamps []int64) int64 {
	if len(timestamps) == 0 {
		return 0
	}

	sorted := append([]int64(nil), timestamps...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j] < sorted[j-1]; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	return sorted[len(sorted)/2]
}
