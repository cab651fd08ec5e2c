package pipeline

import (
	"github.com/elitepicks/picksbot/internal/pkg/models"
)

// tierCounts is the fixed scaling table keyed by total candidate count.
// premium is the number of exclusive picks beyond the free prefix. Totals of
// ten or more use the last row over the first ten picks.
var tierCounts = [...]struct{ free, premium int }{
	{0, 0}, // 0
	{1, 0}, // 1
	{1, 1}, // 2
	{2, 1}, // 3
	{2, 2}, // 4
	{3, 2}, // 5
	{4, 2}, // 6
	{4, 3}, // 7
	{5, 3}, // 8
	{6, 3}, // 9
	{6, 4}, // ≥10
}

// Tiers is the two-audience split of the ranked candidate list.
type Tiers struct {
	Free    []models.Pick
	Premium []models.Pick
}

// Distribute partitions the ranked list purely by its length. Free is the
// rank-order prefix; premium is the full capped list with picks past the
// free count marked exclusive, so free subscribers see a subset of the
// premium digest. The one exception is a total of exactly two, where the
// premium digest carries only the exclusive second pick.
func Distribute(picks []models.Pick) Tiers {
	total := len(picks)
	row := total
	if row >= len(tierCounts) {
		row = len(tierCounts) - 1
	}
	counts := tierCounts[row]

	capN := counts.free + counts.premium
	if capN > total {
		capN = total
	}
	capped := picks[:capN]

	free := append([]models.Pick(nil), capped[:counts.free]...)

	premium := make([]models.Pick, 0, len(capped))
	for i, p := range capped {
		p.Exclusive = i >= counts.free
		premium = append(premium, p)
	}
	if total == 2 {
		premium = premium[1:]
	}

	return Tiers{Free: free, Premium: premium}
}
