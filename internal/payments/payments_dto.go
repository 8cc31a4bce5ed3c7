package payments

type SessionItem struct {
	Name            string
	UnitAmountMinor int64
	Quantity        int
}

type CreateSessionRequest struct {
	OrderNumber   string
	Currency      string
	Items         []SessionItem
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
}

type Session struct {
	ID  string
	URL string
}
