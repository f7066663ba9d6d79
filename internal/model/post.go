package model

import "time"

type Post struct {
	ID        string    `json:"id" bson:"_id"`
	Quote     string    `json:"quote" bson:"quote"`
	Reference string    `json:"reference" bson:"reference"`
	Insight   string    `json:"insight" bson:"insight"`
	Remember  *string   `json:"remember,omitempty" bson:"remember,omitempty"`
	Likes     int64     `json:"likes" bson:"likes"`
	Date      time.Time `json:"date" bson:"date"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// PostUpdate carries the fields of a partial edit. Nil fields are left untouched.
type PostUpdate struct {
	Quote     *string
	Reference *string
	Insight   *string
	Remember  *string
	Date      *time.Time
}

func (u PostUpdate) IsEmpty() bool {
	return u.Quote == nil && u.Reference == nil && u.Insight == nil && u.Remember == nil && u.Date == nil
}

// MidnightUTC truncates t to the start of its calendar day in UTC.
func MidnightUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

const DateLayout = "2006-01-02"

// ParseDate accepts either a calendar date (2006-01-02) or an RFC 3339
// timestamp and returns its UTC midnight.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return MidnightUTC(t), nil
}
