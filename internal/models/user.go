package models

type User struct {
	ID        uint64  `gorm:"primarykey" json:"id"`
	FirstName string  `gorm:"type:varchar(20)" json:"first_name"`
	LastName  string  `gorm:"type:varchar(20)" json:"last_name"`
	Age       int     `json:"age"`
	Email     string  `gorm:"type:varchar(40)" json:"email"`
	Role      string  `gorm:"type:varchar(20)" json:"role"`
	Phone     *string `gorm:"type:varchar(20);uniqueIndex" json:"phone"`
}
