package shopping

// EffectiveStatus resolves the status that matters for the item's
// acquisition type: the negotiation stage for marketplace items, the
// booking stage for services, and the plain shopping status otherwise.
// Missing variant payloads fall back to the initial stage.
func (i *Item) EffectiveStatus() string {
	switch i.AcquisitionType {
	case AcquisitionMarketplace:
		if i.Marketplace == nil || i.Marketplace.NegotiationStatus == "" {
			return string(NegotiationWatching)
		}

		return string(i.Marketplace.NegotiationStatus)
	case AcquisitionService:
		if i.Service == nil || i.Service.Status == "" {
			return string(ServiceResearching)
		}

		return string(i.Service.Status)
	default:
		return string(i.Status)
	}
}

// IsCompleted reports whether the item has been fully acquired.
func (i *Item) IsCompleted() bool {
	switch i.AcquisitionType {
	case AcquisitionMarketplace:
		return i.Marketplace != nil && i.Marketplace.NegotiationStatus == NegotiationWon
	case AcquisitionService:
		return i.Service != nil && i.Service.Status == ServiceActive
	default:
		return i.Status == StatusBought
	}
}

// FinalPrice returns what the item actually cost: the agreed
// marketplace price when there is one, otherwise the recorded actual
// price. Zero means no price is known yet.
func (i *Item) FinalPrice() int64 {
	if i.AcquisitionType == AcquisitionMarketplace && i.Marketplace != nil && i.Marketplace.AgreedPriceCents > 0 {
		return i.Marketplace.AgreedPriceCents
	}

	return i.ActualPriceCents
}

// NegotiationStage returns the item's stage in the funnel, defaulting
// to watching for items without marketplace data.
func (i *Item) NegotiationStage() NegotiationStatus {
	if i.Marketplace == nil || i.Marketplace.NegotiationStatus == "" {
		return NegotiationWatching
	}

	return i.Marketplace.NegotiationStatus
}

// NextNegotiationStatus returns the stage that follows current in the
// canonical funnel. There is no automatic transition out of agreed:
// won and lost are explicit decisions, so ok is false from agreed
// onward and for unknown stages.
func NextNegotiationStatus(current NegotiationStatus) (NegotiationStatus, bool) {
	for idx, status := range NegotiationFunnel {
		if status != current {
			continue
		}

		if idx >= 3 {
			return "", false
		}

		return NegotiationFunnel[idx+1], true
	}

	return "", false
}

// BoardColumn is one column of the negotiation board.
type BoardColumn struct {
	Status NegotiationStatus
	Items  []*Item
}

// GroupByNegotiationStatus buckets marketplace items into the six fixed
// funnel columns. Non-marketplace items are skipped; items without
// marketplace data land in watching. Every column is present even when
// empty, in canonical order.
func GroupByNegotiationStatus(items []*Item) []BoardColumn {
	columns := make([]BoardColumn, len(NegotiationFunnel))
	index := make(map[NegotiationStatus]int, len(NegotiationFunnel))

	for i, status := range NegotiationFunnel {
		columns[i] = BoardColumn{Status: status}
		index[status] = i
	}

	for _, item := range items {
		if item.AcquisitionType != AcquisitionMarketplace {
			continue
		}

		i, ok := index[item.NegotiationStage()]
		if !ok {
			continue
		}

		columns[i].Items = append(columns[i].Items, item)
	}

	return columns
}

// BoardStats summarizes the negotiation board.
type BoardStats struct {
	Total int
	// Active counts items still in play (not won or lost).
	Active int
	Won    int
	// SavedCents sums asking minus agreed price over won items.
	SavedCents int64
}

// NegotiationBoardStats computes funnel totals over marketplace items.
func NegotiationBoardStats(items []*Item) BoardStats {
	var stats BoardStats

	for _, item := range items {
		if item.AcquisitionType != AcquisitionMarketplace {
			continue
		}

		stats.Total++

		switch item.NegotiationStage() {
		case NegotiationWon:
			stats.Won++

			if item.Marketplace != nil && item.Marketplace.AskingPriceCents > 0 {
				stats.SavedCents += item.Marketplace.AskingPriceCents - item.FinalPrice()
			}
		case NegotiationLost:
		default:
			stats.Active++
		}
	}

	return stats
}

// Stats is the shopping list overview.
type Stats struct {
	TotalBudgetCents int64
	TotalSpentCents  int64
	Needed           int
	Found            int
	Bought           int
}

// ListStats sums budgets and realized spend over all items. Spend only
// counts completed items, using their final price.
func ListStats(items []*Item) Stats {
	var stats Stats

	for _, item := range items {
		stats.TotalBudgetCents += item.MaxPriceCents

		if item.IsCompleted() {
			stats.TotalSpentCents += item.FinalPrice()
		}

		switch item.Status {
		case StatusNeeded:
			stats.Needed++
		case StatusFound:
			stats.Found++
		case StatusBought:
			stats.Bought++
		}
	}

	return stats
}
