package exchange

import "fmt"

// ValidationError rejects an entire import: the offending collection,
// record index and field are reported and nothing is applied.
type ValidationError struct {
	Collection string
	Index      int
	Field      string
	Reason     string
}

func (e *ValidationError) Error() string {
	if e.Collection == "" {
		return fmt.Sprintf("invalid import document: %s", e.Reason)
	}
	return fmt.Sprintf("invalid %s record at index %d: field %q %s", e.Collection, e.Index, e.Field, e.Reason)
}

func invalid(collection string, index int, field, reason string) *ValidationError {
	return &ValidationError{Collection: collection, Index: index, Field: field, Reason: reason}
}

// validateDocument checks every record of every collection against the
// entity shape. Any failure rejects the whole document.
func validateDocument(doc *Document) error {
	if doc.Accounts == nil {
		return &ValidationError{Reason: "missing collection \"accounts\""}
	}
	if doc.Stocks == nil {
		return &ValidationError{Reason: "missing collection \"stocks\""}
	}
	if doc.Holdings == nil {
		return &ValidationError{Reason: "missing collection \"holdings\""}
	}
	if doc.Tags == nil {
		return &ValidationError{Reason: "missing collection \"tags\""}
	}
	if doc.StockTags == nil {
		return &ValidationError{Reason: "missing collection \"stockTags\""}
	}

	for i, a := range doc.Accounts {
		switch {
		case a.ID == "":
			return invalid("account", i, "id", "is required")
		case a.Name == "":
			return invalid("account", i, "name", "is required")
		case a.CreatedAt <= 0:
			return invalid("account", i, "createdAt", "must be a positive timestamp")
		case a.UpdatedAt <= 0:
			return invalid("account", i, "updatedAt", "must be a positive timestamp")
		}
	}
	for i, s := range doc.Stocks {
		switch {
		case s.ID == "":
			return invalid("stock", i, "id", "is required")
		case s.Name == "":
			return invalid("stock", i, "name", "is required")
		case s.CreatedAt <= 0:
			return invalid("stock", i, "createdAt", "must be a positive timestamp")
		case s.UpdatedAt <= 0:
			return invalid("stock", i, "updatedAt", "must be a positive timestamp")
		}
	}
	for i, h := range doc.Holdings {
		switch {
		case h.ID == "":
			return invalid("holding", i, "id", "is required")
		case h.AccountID == "":
			return invalid("holding", i, "accountId", "is required")
		case h.StockID == "":
			return invalid("holding", i, "stockId", "is required")
		case h.Shares <= 0:
			return invalid("holding", i, "shares", "must be greater than zero")
		case h.AverageCost < 0:
			return invalid("holding", i, "averageCost", "must not be negative")
		case h.CurrentPrice < 0:
			return invalid("holding", i, "currentPrice", "must not be negative")
		case h.LastPriceUpdate <= 0:
			return invalid("holding", i, "lastPriceUpdate", "must be a positive timestamp")
		case h.CreatedAt <= 0:
			return invalid("holding", i, "createdAt", "must be a positive timestamp")
		case h.UpdatedAt <= 0:
			return invalid("holding", i, "updatedAt", "must be a positive timestamp")
		}
	}
	for i, t := range doc.Tags {
		switch {
		case t.ID == "":
			return invalid("tag", i, "id", "is required")
		case t.Name == "":
			return invalid("tag", i, "name", "is required")
		case t.CreatedAt <= 0:
			return invalid("tag", i, "createdAt", "must be a positive timestamp")
		}
	}
	for i, st := range doc.StockTags {
		switch {
		case st.StockID == "":
			return invalid("stockTag", i, "stockId", "is required")
		case st.TagID == "":
			return invalid("stockTag", i, "tagId", "is required")
		}
	}
	return nil
}
