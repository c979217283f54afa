package models

type Order struct {
	ID          uint64  `gorm:"primarykey" json:"id"`
	Name        *string `gorm:"type:varchar(20)" json:"name"`
	Description string  `gorm:"type:varchar(200)" json:"description"`
	StartDate   *Date   `json:"start_date"`
	EndDate     *Date   `json:"end_date"`
	Address     string  `gorm:"type:varchar(50)" json:"address"`
	Price       int     `json:"price"`
	CustomerID  *uint64 `gorm:"index" json:"customer_id"`
	ExecutorID  *uint64 `gorm:"index" json:"executor_id"`

	// Constraint-only relations; never preloaded
	Customer *User `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	Executor *User `gorm:"foreignKey:ExecutorID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
}
