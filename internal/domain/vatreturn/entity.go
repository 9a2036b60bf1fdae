package vatreturn

import "time"

type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
)

// Return is the nine-box UK VAT return for one accounting period. Boxes 1-5
// are pence; boxes 6-9 are whole pounds as HMRC requires. Box 2 and boxes 8-9
// cover EU acquisitions and stay zero for a domestic-only business.
type Return struct {
	ID          string
	UserID      string
	PeriodKey   string
	PeriodStart time.Time
	PeriodEnd   time.Time
	Box1Pence   int64 // VAT due on sales
	Box2Pence   int64 // VAT due on EU acquisitions
	Box3Pence   int64 // total VAT due (box1 + box2)
	Box4Pence   int64 // VAT reclaimed on purchases
	Box5Pence   int64 // net VAT (absolute difference of box3 and box4)
	Box6Pounds  int64 // total sales excluding VAT
	Box7Pounds  int64 // total purchases excluding VAT
	Box8Pounds  int64 // EU supplies of goods
	Box9Pounds  int64 // EU acquisitions of goods
	Status      Status
	SubmittedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ReclaimDue reports whether box4 exceeds box3, meaning HMRC owes the
// business the box5 amount instead of the other way round.
func (r *Return) ReclaimDue() bool {
	return r.Box4Pence > r.Box3Pence
}
