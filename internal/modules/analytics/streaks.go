package analytics

import "github.com/tradelens/tradelens/internal/domain"

// DetectStreaks scans the chronological win/loss sequence of the
// closed-trade set and returns the longest consecutive win run and loss
// run.
func DetectStreaks(closed domain.Ledger) (maxWinStreak, maxLossStreak int) {
	var run int
	var runIsWin bool

	flush := func() {
		if run == 0 {
			return
		}
		if runIsWin && run > maxWinStreak {
			maxWinStreak = run
		}
		if !runIsWin && run > maxLossStreak {
			maxLossStreak = run
		}
	}

	for _, t := range closed {
		isWin := t.IsWin()
		if run > 0 && isWin == runIsWin {
			run++
			continue
		}
		flush()
		run = 1
		runIsWin = isWin
	}
	flush()

	return maxWinStreak, maxLossStreak
}
