package notifier

// EventBookingCreated тип события о новой заявке
const EventBookingCreated = "booking.created"

// Amount сумма в двух валютах
type Amount struct {
	MVR int64 `json:"mvr"`
	USD int64 `json:"usd"`
}

// BookingNotification краткая сводка новой заявки для менеджера площадки
type BookingNotification struct {
	Event       string   `json:"event"`
	BookingID   string   `json:"booking_id"`
	FullName    string   `json:"full_name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	CompanyName string   `json:"company_name,omitempty"`
	EventType   string   `json:"event_type"`
	EventDate   string   `json:"event_date"`
	Spaces      []string `json:"spaces"`
	GuestCount  int      `json:"guest_count"`
	PaymentPlan string   `json:"payment_plan,omitempty"`
	GrandTotal  Amount   `json:"grand_total"`
	AmountDue   Amount   `json:"amount_due"`
}
