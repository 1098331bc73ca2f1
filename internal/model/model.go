package model

// Contact is the data structure for a person that we know.
// The Id is assigned by the database when the contact is saved; callers leave it zero.
type Contact struct {
	Id        int64  `json:"id"        db:"id"`
	FirstName string `json:"firstname" db:"firstname"`
	LastName  string `json:"lastname"  db:"lastname"`
	Email     string `json:"email"     db:"email"`
	Phone     int64  `json:"phone"     db:"phone"`
}
