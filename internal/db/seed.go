package db

import (
	"gorm.io/gorm"

	"dcjobs/internal/directory"
)

// Seed inserts starter reference data on an empty database: the intake
// form is unusable without at least one employee and one code entry.
// Each table is skipped when it already has rows.
func Seed(gdb *gorm.DB) error {
	var n int64

	if err := gdb.Model(&directory.Employee{}).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		employees := []directory.Employee{
			{Name: "Alice"},
			{Name: "Bob"},
			{Name: "Charlie"},
		}
		if err := gdb.Create(&employees).Error; err != nil {
			return err
		}
	}

	if err := gdb.Model(&directory.Code{}).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		codes := []directory.Code{
			{Item: "Document Printing", HSNCode: "4911"},
			{Item: "Courier Delivery", HSNCode: "9968"},
			{Item: "Document Attestation", HSNCode: "9997"},
			{Item: "Translation", HSNCode: "9983"},
		}
		if err := gdb.Create(&codes).Error; err != nil {
			return err
		}
	}

	if err := gdb.Model(&directory.User{}).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		users := []directory.User{
			{Name: "Admin", MobileNo: "9000000001", Role: "admin"},
			{Name: "Front Desk", MobileNo: "9000000002", Role: "user"},
		}
		if err := gdb.Create(&users).Error; err != nil {
			return err
		}
	}

	return nil
}
