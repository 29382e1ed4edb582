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
		log.Fatal("DB_DSN environment variable is required")
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
	CREATE TABLE IF NOT EXISTS orders (
	  id CHAR(36) NOT NULL,
	  order_number VARCHAR(16) NOT NULL,
	  customer_name VARCHAR(255) NOT NULL,
	  customer_phone VARCHAR(32) NOT NULL,
	  customer_email VARCHAR(255) NULL,
	  cart_items JSON NOT NULL,
	  quantity INT NOT NULL,
	  total_cents INT NOT NULL,
	  delivery_address TEXT NOT NULL,
	  payment_method VARCHAR(8) NOT NULL,
	  change_needed TINYINT(1) NOT NULL DEFAULT 0,
	  customer_amount_cents INT NULL,
	  calculated_change_cents INT NULL,
	  special_notes TEXT NULL,
	  status VARCHAR(16) NOT NULL DEFAULT 'pending',
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_orders_status (status),
	  KEY ix_orders_created_at (created_at)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS order_events (
	  id CHAR(36) NOT NULL,
	  order_id CHAR(36) NOT NULL,
	  actor_user_id CHAR(36) NOT NULL,
	  action VARCHAR(16) NOT NULL,
	  from_status VARCHAR(16) NOT NULL,
	  to_status VARCHAR(16) NOT NULL,
	  note TEXT NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_order_events_order_id (order_id),
	  CONSTRAINT fk_order_events_order FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS admin_notifications (
	  id CHAR(36) NOT NULL,
	  order_id CHAR(36) NOT NULL,
	  message TEXT NOT NULL,
	  is_read TINYINT(1) NOT NULL DEFAULT 0,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_admin_notifications_order_id (order_id),
	  KEY ix_admin_notifications_is_read (is_read),
	  CONSTRAINT fk_admin_notifications_order FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS users (
	  id CHAR(36) NOT NULL,
	  email VARCHAR(255) NOT NULL,
	  password_hash VARCHAR(255) NOT NULL,
	  name VARCHAR(255) NOT NULL,
	  role VARCHAR(32) NOT NULL DEFAULT 'staff',
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  UNIQUE KEY ux_users_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS sessions (
	  id CHAR(36) NOT NULL,
	  user_id CHAR(36) NOT NULL,
	  token_hash BINARY(32) NOT NULL,
	  expires_at DATETIME(3) NOT NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),
	  last_seen_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_sessions_user_id (user_id),
	  UNIQUE KEY ux_sessions_token_hash (token_hash),
	  CONSTRAINT fk_sessions_user FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
	`

	if _, err := sqlDB.Exec(sql); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	log.Println("✓ orders table created successfully")
	log.Println("✓ order_events table created successfully")
	log.Println("✓ admin_notifications table created successfully")
	log.Println("✓ users table created successfully")
	log.Println("✓ sessions table created successfully")
}
