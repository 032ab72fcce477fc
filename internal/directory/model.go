package directory

import "time"

// Employee is an intake assignee. Rows are reference data, never mutated
// through the API.
type Employee struct {
	ID        uint64    `gorm:"primaryKey"`
	Name      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// Code is a job-type classification entry. Its human-facing label is
// "<item> - <hsn_code>".
type Code struct {
	ID      uint64 `gorm:"primaryKey"`
	Item    string `gorm:"not null"`
	HSNCode string `gorm:"column:hsn_code;not null"`
}

func (c Code) Label() string {
	return c.Item + " - " + c.HSNCode
}

// User is a sign-in identity. The mobile number alone identifies the
// user; there is no credential. Suitable only behind a trusted network.
type User struct {
	ID        uint64    `gorm:"primaryKey"`
	Name      string    `gorm:"not null"`
	MobileNo  string    `gorm:"uniqueIndex;not null"`
	Role      string    `gorm:"not null;default:'user'"` // user/admin
	CreatedAt time.Time `gorm:"not null"`
}
