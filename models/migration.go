package models

import (
	"log"

	"github.com/raihanahmadkhan/fintrak-backend/config"
)

func MigrateTable() {
	db := config.GetDB()

	err := db.AutoMigrate(
		&User{},
		&Expense{},
	)
	if err != nil {
		log.Fatal(err)
	}
}
