package domain

type TimeSlot struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	DisplayDate string `json:"display_date"`
	Time        string `json:"time"`
}
