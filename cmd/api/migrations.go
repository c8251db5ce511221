// cmd/api/migrations.go

package main

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
)

func runMigrations(db *sqlx.DB) error {
	log.Println("   - Creating/updating tables...")

	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			email VARCHAR(255) UNIQUE NOT NULL,
			phone VARCHAR(20),
			password_hash VARCHAR(255) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS profiles (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT UNIQUE NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			first_name VARCHAR(50),
			last_name VARCHAR(50),
			birthday DATE,
			gender VARCHAR(30),
			location VARCHAR(100),
			looking_for VARCHAR(100),
			education VARCHAR(100),
			bio TEXT,
			interests TEXT[] NOT NULL DEFAULT '{}',
			avatar_url TEXT,
			is_verified BOOLEAN NOT NULL DEFAULT false,
			is_premium BOOLEAN NOT NULL DEFAULT false,
			like_count INTEGER NOT NULL DEFAULT 0,
			dislike_count INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS reactions (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			target_profile_id BIGINT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
			kind VARCHAR(10) NOT NULL CHECK (kind IN ('like', 'dislike')),
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (user_id, target_profile_id)
		)`,

		`CREATE TABLE IF NOT EXISTS love_requests (
			id BIGSERIAL PRIMARY KEY,
			sender_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			receiver_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			status VARCHAR(10) NOT NULL DEFAULT 'pending'
				CHECK (status IN ('pending', 'accepted', 'rejected')),
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CHECK (sender_id != receiver_id)
		)`,

		`CREATE TABLE IF NOT EXISTS matches (
			id BIGSERIAL PRIMARY KEY,
			user1_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			user2_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (user1_id, user2_id),
			CHECK (user1_id < user2_id)
		)`,

		`CREATE TABLE IF NOT EXISTS messages (
			id BIGSERIAL PRIMARY KEY,
			match_id BIGINT NOT NULL REFERENCES matches(id) ON DELETE CASCADE,
			sender_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			content TEXT NOT NULL,
			is_read BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS device_tokens (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			token TEXT UNIQUE NOT NULL,
			platform VARCHAR(10) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,

		// One request per pair, whichever direction it was sent in.
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_love_requests_pair
			ON love_requests (LEAST(sender_id, receiver_id), GREATEST(sender_id, receiver_id))`,
		`CREATE INDEX IF NOT EXISTS idx_love_requests_receiver
			ON love_requests(receiver_id, status)`,
		`CREATE INDEX IF NOT EXISTS idx_love_requests_sender
			ON love_requests(sender_id)`,
		`CREATE INDEX IF NOT EXISTS idx_matches_user1 ON matches(user1_id)`,
		`CREATE INDEX IF NOT EXISTS idx_matches_user2 ON matches(user2_id)`,
		`CREATE INDEX IF NOT EXISTS idx_messages_match
			ON messages(match_id, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_messages_unread
			ON messages(match_id, is_read) WHERE is_read = false`,
		`CREATE INDEX IF NOT EXISTS idx_device_tokens_user ON device_tokens(user_id)`,
	}

	for i, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	return nil
}
