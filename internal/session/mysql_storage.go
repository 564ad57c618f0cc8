package session

import (
	"context"
	"database/sql"
)

// MySQLStorage keeps session tokens in a MySQL table so a gateway restart
// does not log everyone out.
type MySQLStorage struct {
	DB *sql.DB
}

// EnsureSchema creates the sessions table when it does not exist yet.
func (s MySQLStorage) EnsureSchema(ctx context.Context) error {
	ddl := `
CREATE TABLE IF NOT EXISTS user_sessions (
	session_key VARCHAR(64) NOT NULL PRIMARY KEY,
	token TEXT NOT NULL,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`
	_, err := s.DB.ExecContext(ctx, ddl)
	return err
}

func (s MySQLStorage) Load(ctx context.Context, key string) (string, error) {
	var token string
	err := s.DB.QueryRowContext(ctx,
		`SELECT token FROM user_sessions WHERE session_key = ?`, key).Scan(&token)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s MySQLStorage) Save(ctx context.Context, key, token string) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO user_sessions (session_key, token) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE token = VALUES(token)
	`, key, token)
	return err
}

func (s MySQLStorage) Clear(ctx context.Context, key string) error {
	_, err := s.DB.ExecContext(ctx,
		`DELETE FROM user_sessions WHERE session_key = ?`, key)
	return err
}
