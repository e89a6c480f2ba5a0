package models

import (
	"log"

	"github.com/castellodata/payroll_backend/config"
)

func MigrateTable() {
	db := config.GetDB()

	err := db.AutoMigrate(
		&User{},
		&Branch{},
		&Employee{}, &EmployeeDocument{},
		&PayrollBatch{}, &PayrollEntry{},
		&Alert{},
		&XpEvent{},
		&History{},
	)
	if err != nil {
		log.Fatal(err)
	}
}
