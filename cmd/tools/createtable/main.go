package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "aytas:aytas@tcp(localhost:3306)/aytas_flyer?parseTime=true&multiStatements=true&loc=Local"
	}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get DB: %v", err)
	}

	sql := `
	CREATE TABLE IF NOT EXISTS products (
	  id CHAR(36) NOT NULL,
	  name VARCHAR(255) NOT NULL DEFAULT '',
	  ` + "`desc`" + ` VARCHAR(255) NOT NULL DEFAULT '',
	  weight_value VARCHAR(32) NOT NULL DEFAULT '',
	  weight_unit VARCHAR(8) NOT NULL DEFAULT 'gr',
	  price_main VARCHAR(16) NOT NULL DEFAULT '',
	  price_cents VARCHAR(8) NOT NULL DEFAULT '',
	  theme VARCHAR(32) NOT NULL DEFAULT 'theme-yellow',
	  color VARCHAR(32) NOT NULL DEFAULT 'color-gold',
	  image MEDIUMTEXT,
	  image_key VARCHAR(128) NOT NULL DEFAULT '',
	  position INT NOT NULL DEFAULT 0,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS campaigns (
	  id CHAR(36) NOT NULL,
	  title VARCHAR(255) NOT NULL,
	  valid_text VARCHAR(255) NOT NULL DEFAULT '',
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS items (
	  id CHAR(36) NOT NULL,
	  campaign_id CHAR(36) NOT NULL,
	  product_id CHAR(36) NOT NULL,
	  position INT NOT NULL DEFAULT 0,
	  PRIMARY KEY (id),
	  KEY ix_items_campaign_id (campaign_id),
	  KEY ix_items_product_id (product_id),
	  CONSTRAINT fk_items_campaign FOREIGN KEY (campaign_id) REFERENCES campaigns(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
	`

	if _, err := sqlDB.Exec(sql); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	log.Println("✓ products table created successfully")
	log.Println("✓ campaigns table created successfully")
	log.Println("✓ items table created successfully")
}
