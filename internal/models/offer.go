package models

// Offer is a user's bid to execute an order.
type Offer struct {
	ID         uint64  `gorm:"primarykey" json:"id"`
	OrderID    *uint64 `gorm:"index" json:"order_id"`
	ExecutorID *uint64 `gorm:"index" json:"executor_id"`

	// Constraint-only relations; never preloaded
	Order    *Order `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Executor *User  `gorm:"foreignKey:ExecutorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
