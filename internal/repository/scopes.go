package repository

import "gorm.io/gorm"

// WithStatus filters orders by status; an empty status matches every order.
func WithStatus(status string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if status == "" {
			return db
		}
		return db.Where("status = ?", status)
	}
}

func ForCustomer(customerID any) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("customer_id = ?", customerID)
	}
}

func newestFirst(column string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(column + " DESC")
	}
}

// withOrders preloads a customer's orders, newest order date first.
func withOrders(db *gorm.DB) *gorm.DB {
	return db.Preload("Orders", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("order_date DESC")
	})
}

func withCustomer(db *gorm.DB) *gorm.DB {
	return db.Preload("Customer")
}
