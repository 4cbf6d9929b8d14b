package database

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// ConnectMySQL opens the GORM connection for the relational backend.
//
// Required env var: MYSQL_DSN, e.g.
// "billing:billing@tcp(mysql:3306)/billing?parseTime=true".
func ConnectMySQL() *gorm.DB {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		log.Fatal("MYSQL_DSN not set; required when STORAGE_BACKEND=mysql")
	}

	var db *gorm.DB
	var err error
	for i := 0; i < 5; i++ {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		log.Printf("mysql connect failed, retrying in 2s (%d/5): %v", i+1, err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		log.Fatalf("failed to connect to mysql after 5 attempts: %v", err)
	}
	return db
}
