package domain

// ItemStatus reports how a single batch item fared.
type ItemStatus string

const (
	// ItemConverted indicates the item contributed pages to the output.
	ItemConverted ItemStatus = "converted"
	// ItemSkipped indicates the item failed and was skipped. Skips are
	// tolerated: one bad file never aborts the batch.
	ItemSkipped ItemStatus = "skipped"
)

// ItemOutcome is the per-item report accompanying a conversion result.
// It makes best-effort skips observable to the caller instead of only
// being logged.
type ItemOutcome struct {
	// ItemID is the InputItem identifier.
	ItemID string

	// Name is the item's display name.
	Name string

	// Status is converted or skipped.
	Status ItemStatus

	// Reason explains a skip. Empty for converted items.
	Reason string
}

// ConversionResult is the output of one conversion call.
type ConversionResult struct {
	// Feature is the conversion kind that produced this result.
	Feature Feature

	// PDF is the finalised document bytes.
	PDF []byte

	// Outcomes holds one entry per input item, in batch order.
	Outcomes []ItemOutcome
}

// Converted returns the number of items that contributed pages.
func (r *ConversionResult) Converted() int {
	return r.count(ItemConverted)
}

// Skipped returns the number of items that were skipped.
func (r *ConversionResult) Skipped() int {
	return r.count(ItemSkipped)
}

func (r *ConversionResult) count(status ItemStatus) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

// ConvertedOutcome builds a success entry for an item.
func ConvertedOutcome(item InputItem) ItemOutcome {
	return ItemOutcome{ItemID: item.ID, Name: item.Name, Status: ItemConverted}
}

// SkippedOutcome builds a skip entry for an item with the failure reason.
func SkippedOutcome(item InputItem, err error) ItemOutcome {
	reason := ""
	if err != nil {
		reason = err.Error()
	}
	return ItemOutcome{ItemID: item.ID, Name: item.Name, Status: ItemSkipped, Reason: reason}
}
